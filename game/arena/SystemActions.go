package arena

// systemActions runs the per-robot resolution pipeline: consult the
// strategy, resolve each proposed action into a candidate pose, validate
// it against the world, and commit or silently reject. Robots act in
// registration order. A dead robot stops acting but its body stays on the
// field as an obstruction.
func systemActions(game *Game) {
	for _, id := range game.robotOrder {
		qr := game.getEntity(id,
			game.poseComponent,
			game.healthComponent,
			game.strategyComponent,
		)
		if qr == nil {
			continue
		}

		healthAspect := game.CastHealth(qr.Components[game.healthComponent])
		if !healthAspect.Alive() {
			continue
		}

		healthAspect.TickDefenseBuff()

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		brainAspect := game.CastBrain(qr.Components[game.strategyComponent])

		actor := game.ActorFor(id)

		actions := brainAspect.strategy.Decide(actor, game)
		if len(actions) == 0 {
			// no decision this tick; not an error
			continue
		}

		for _, action := range actions {
			if action == nil {
				continue
			}

			candidate := action.Resolve(actor)
			if candidate == nil {
				// action is a no-op at decision level
				continue
			}

			if game.IsObstructed(*candidate, id) {
				// rejected silently; robot stays at its prior pose
				continue
			}

			poseAspect.SetBody(*candidate)
		}
	}
}
