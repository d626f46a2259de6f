package arena

// systemShooting materializes the shots queued during action resolution.
// Each shot consumes one round; a dry magazine drops the shot. Bullets
// leave from the gun's center, which the pose keeps on the midpoint of the
// body's front edge.
func systemShooting(game *Game) {
	for _, id := range game.robotOrder {
		qr := game.getEntity(id,
			game.poseComponent,
			game.healthComponent,
			game.armamentComponent,
			game.ownedComponent,
		)
		if qr == nil {
			continue
		}

		healthAspect := game.CastHealth(qr.Components[game.healthComponent])
		if !healthAspect.Alive() {
			continue
		}

		armamentAspect := game.CastArmament(qr.Components[game.armamentComponent])

		shots := armamentAspect.PopPendingShots()
		if len(shots) == 0 {
			continue
		}

		poseAspect := game.CastPose(qr.Components[game.poseComponent])
		ownedAspect := game.CastOwned(qr.Components[game.ownedComponent])

		for _, angle := range shots {
			if !armamentAspect.ConsumeRound() {
				continue
			}

			game.NewEntityBallisticProjectile(ownedAspect.owner, poseAspect.Gun().Center(), angle)
		}
	}
}
