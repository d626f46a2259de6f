package arena

import (
	"math"

	"github.com/robomatch/robomatch/common/utils/rect"
)

// AdvanceAction moves the robot along its facing axis, forward for a
// positive distance. The distance is clamped to the per-tick forward
// ceiling.
type AdvanceAction struct {
	Distance float64
}

func (action AdvanceAction) Resolve(actor *Actor) *rect.OrientedRect {
	distance := clamp(action.Distance, MaxForwardSpeed)

	body := actor.Pose()
	radians := body.AngleRadian()

	candidate := body.Translate(
		math.Cos(radians)*distance,
		math.Sin(radians)*distance,
	)
	return &candidate
}

// StrafeAction moves the robot along its sideways axis, clamped to the
// per-tick sideway ceiling.
type StrafeAction struct {
	Distance float64
}

func (action StrafeAction) Resolve(actor *Actor) *rect.OrientedRect {
	distance := clamp(action.Distance, MaxSidewaySpeed)

	body := actor.Pose()
	radians := body.AngleRadian()

	candidate := body.Translate(
		-math.Sin(radians)*distance,
		math.Cos(radians)*distance,
	)
	return &candidate
}

// RotateAction turns the robot about its anchor corner, clamped to the
// per-tick rotation ceiling.
type RotateAction struct {
	Degrees float64
}

func (action RotateAction) Resolve(actor *Actor) *rect.OrientedRect {
	degrees := clamp(action.Degrees, MaxRotationSpeed)

	body := actor.Pose()
	candidate := body.WithAngle(body.Angle() + degrees)
	return &candidate
}

// FireAction queues one shot along the gun's current angle. The shot is
// materialized into a bullet after all robots have acted, and consumes one
// round of ammunition at that point.
type FireAction struct{}

func (action FireAction) Resolve(actor *Actor) *rect.OrientedRect {
	actor.pushShot(actor.Gun().Angle())
	return nil
}

// LoadAmmoAction requests a resupply from the loading zone under the
// robot, if any. A no-op on foreign or exhausted zones.
type LoadAmmoAction struct{}

func (action LoadAmmoAction) Resolve(actor *Actor) *rect.OrientedRect {
	actor.game.LoadAt(actor)
	return nil
}

// ActivateDefenseBuffAction triggers the defense buff zone under the
// robot, if any. A no-op on foreign or spent zones.
type ActivateDefenseBuffAction struct{}

func (action ActivateDefenseBuffAction) Resolve(actor *Actor) *rect.OrientedRect {
	actor.game.ActivateBuffAt(actor)
	return nil
}

func clamp(value float64, max float64) float64 {
	if value > max {
		return max
	}
	if value < -max {
		return -max
	}
	return value
}
