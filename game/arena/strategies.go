package arena

import (
	uuid "github.com/satori/go.uuid"
)

// Built-in decision functions. Real matches inject their own Strategy
// implementations; these cover the bundled robot behaviors.

// DoNothingStrategy never acts.
type DoNothingStrategy struct{}

func (s DoNothingStrategy) Decide(actor *Actor, game *Game) []Action {
	return nil
}

// SpinAndFireStrategy turns at full rotation speed and fires every tick.
type SpinAndFireStrategy struct{}

func (s SpinAndFireStrategy) Decide(actor *Actor, game *Game) []Action {
	return []Action{
		RotateAction{Degrees: MaxRotationSpeed},
		FireAction{},
	}
}

// AimAndFireStrategy rotates toward the nearest living enemy and fires.
type AimAndFireStrategy struct{}

func (s AimAndFireStrategy) Decide(actor *Actor, game *Game) []Action {
	enemy := nearestEnemy(actor, game)
	if enemy == nil {
		return nil
	}

	body := actor.Pose()
	desired := body.AngleTo(enemy.Pose())

	delta := signedAngleDelta(desired, body.Angle())

	return []Action{
		RotateAction{Degrees: delta},
		FireAction{},
	}
}

func nearestEnemy(actor *Actor, game *Game) *Actor {
	var nearest *Actor
	var nearestDistSq float64

	center := actor.Pose().Center()
	team := actor.TeamID()

	for _, id := range game.robotOrder {
		if id == actor.ID() {
			continue
		}
		if uuid.Equal(game.ownerOf(id), team) {
			continue
		}

		other := game.ActorFor(id)
		if !other.Alive() {
			continue
		}

		distSq := other.Pose().Center().Diff(center).MagSq()
		if nearest == nil || distSq < nearestDistSq {
			nearest = other
			nearestDistSq = distSq
		}
	}

	return nearest
}

// signedAngleDelta is the shortest rotation, in degrees within (-180,180],
// bringing current onto desired.
func signedAngleDelta(desired float64, current float64) float64 {
	delta := desired - current

	for delta > 180 {
		delta -= 360
	}
	for delta <= -180 {
		delta += 360
	}

	return delta
}
