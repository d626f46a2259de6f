package arena

import (
	"github.com/robomatch/robomatch/common/utils/rect"
)

// Pose is a robot's full rectangular placement plus the gun sub-rectangle
// derived from it. The gun is re-derived on every body replacement and is
// never allowed to go stale.
type Pose struct {
	body    rect.OrientedRect
	gun     rect.OrientedRect
	initial rect.OrientedRect
}

func NewPose(body rect.OrientedRect) *Pose {
	pose := &Pose{initial: body}
	pose.SetBody(body)
	return pose
}

func (game Game) CastPose(data interface{}) *Pose {
	return data.(*Pose)
}

func (pose Pose) Body() rect.OrientedRect {
	return pose.body
}

func (pose Pose) Gun() rect.OrientedRect {
	return pose.gun
}

func (pose Pose) InitialBody() rect.OrientedRect {
	return pose.initial
}

// SetBody commits a new pose atomically: the whole rectangle is replaced
// and the gun re-derived from it in the same call.
func (pose *Pose) SetBody(body rect.OrientedRect) {
	pose.body = body
	pose.gun = deriveGun(body)
}

// deriveGun places the gun through a nested midpoint chain: midpoint of the
// front-bottom vertex and the anchor, then twice toward the body center.
// The resulting gun center sits on the midpoint of the body's front edge.
// Gun-vs-bullet collision depends on this exact placement; do not simplify.
func deriveGun(body rect.OrientedRect) rect.OrientedRect {
	vertices := body.Vertices()

	anchor := vertices[1].
		Midpoint(body.Anchor()).
		Midpoint(body.Center()).
		Midpoint(body.Center())

	return rect.MakeOrientedRect(anchor, GunLength, GunWidth, body.Angle())
}
