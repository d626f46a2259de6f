package arena

import (
	"math"

	"github.com/bytearena/ecs"
)

// systemBallistics advances every live bullet one fixed step. Only the
// bullet's next sample point is tested against the impenetrable bodies —
// no swept-segment intersection — relying on the step being small relative
// to the smallest body dimension. The first blocking body in iteration
// order takes the hit; iteration order is obstacles then robots, both in
// registration order.
func systemBallistics(game *Game) {
	for _, entityresult := range game.bulletsView.Get() {
		ballisticAspect := game.CastBallistic(entityresult.Components[game.ballisticComponent])

		if !ballisticAspect.active {
			continue
		}

		if ballisticAspect.delay > 0 {
			// ignition latency consumes the tick
			ballisticAspect.delay--
			continue
		}

		next := ballisticAspect.position.Move(
			math.Cos(ballisticAspect.direction)*ballisticAspect.speed,
			math.Sin(ballisticAspect.direction)*ballisticAspect.speed,
		)
		motion := next.Diff(ballisticAspect.position)

		blocked := false
		for _, body := range game.Unpenetrables() {
			if !body.Shape.Blocks(next, motion) {
				continue
			}

			// at most one body takes the hit per tick
			blocked = true
			game.deactivateBullet(entityresult.Entity.GetID(), ballisticAspect)

			if body.IsRobot {
				game.applyDamage(body.EntityID, ballisticAspect.damage)
			}
			break
		}

		if blocked {
			continue
		}

		if game.IsLegal(next) {
			ballisticAspect.position = next
		} else {
			// left the field; no damage
			game.deactivateBullet(entityresult.Entity.GetID(), ballisticAspect)
		}
	}
}

// deactivateBullet retires a bullet: it performs no further action and the
// death sweep removes it from the live collection before the tick ends.
func (game *Game) deactivateBullet(id ecs.EntityID, ballistic *Ballistic) {
	ballistic.active = false

	if qr := game.getEntity(id, game.lifecycleComponent); qr != nil {
		game.CastLifecycle(qr.Components[game.lifecycleComponent]).SetDeath(game.ticknum)
	}
}

// applyDamage routes a bullet impact through the robot's health-reduction
// contract; dead robots and buffed robots apply their own rules there.
func (game *Game) applyDamage(id ecs.EntityID, damage float64) {
	qr := game.getEntity(id, game.healthComponent)
	if qr == nil {
		return
	}

	game.CastHealth(qr.Components[game.healthComponent]).ReduceHealth(damage)
}
