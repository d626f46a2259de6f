package rect

import (
	"math"

	"github.com/robomatch/robomatch/common/utils"
	"github.com/robomatch/robomatch/common/utils/number"
	"github.com/robomatch/robomatch/common/utils/vector"
)

// containsTolerance absorbs floating error in the projection containment
// test. The test is approximate by design.
const containsTolerance = 0.01

// Shape is the capability set shared by every rectangular body in the
// arena: oriented rectangles (robots, guns) and axis-aligned rectangles
// (obstacles, zones).
type Shape interface {
	Vertices() [4]vector.Vector2
	Center() vector.Vector2
	Contains(point vector.Vector2) bool
	Blocks(point vector.Vector2, motion vector.Vector2) bool
}

// OrientedRect is an arbitrarily rotated rectangle, defined by its anchor
// corner, width, height and angle in degrees, normalized to [0,360).
// Vertices and center are derived at construction and never mutated
// independently; changing the pose means constructing a new value.
type OrientedRect struct {
	anchor      vector.Vector2
	width       float64
	height      float64
	angle       float64 // degrees, always in [0,360)
	angleRadian float64

	// vertices in fixed winding order:
	// anchor, anchor+width axis, diagonal, anchor+height axis
	vertices [4]vector.Vector2
	center   vector.Vector2
}

func MakeOrientedRect(anchor vector.Vector2, width float64, height float64, angleDeg float64) OrientedRect {
	utils.Assert(width >= 0 && height >= 0, "rect: width and height must not be negative")

	rec := OrientedRect{
		anchor: anchor,
		width:  width,
		height: height,
	}

	rec.angle = NormalizeAngleDeg(angleDeg)
	rec.angleRadian = number.DegreeToRadian(rec.angle)
	rec.derive()

	return rec
}

func (r *OrientedRect) derive() {
	widthDx := math.Cos(r.angleRadian) * r.width
	widthDy := math.Sin(r.angleRadian) * r.width

	heightDx := -math.Sin(r.angleRadian) * r.height
	heightDy := math.Cos(r.angleRadian) * r.height

	r.vertices[0] = r.anchor
	r.vertices[1] = r.anchor.Move(widthDx, widthDy)
	r.vertices[2] = r.vertices[1].Move(heightDx, heightDy)
	r.vertices[3] = r.anchor.Move(heightDx, heightDy)

	r.center = r.anchor.Midpoint(r.vertices[2])
}

// NormalizeAngleDeg brings any finite angle into [0,360) by repeated ±360
// adjustment.
func NormalizeAngleDeg(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

func (r OrientedRect) Anchor() vector.Vector2 {
	return r.anchor
}

func (r OrientedRect) Width() float64 {
	return r.width
}

func (r OrientedRect) Height() float64 {
	return r.height
}

// Angle is the rotation in degrees, always in [0,360).
func (r OrientedRect) Angle() float64 {
	return r.angle
}

func (r OrientedRect) AngleRadian() float64 {
	return r.angleRadian
}

func (r OrientedRect) Vertices() [4]vector.Vector2 {
	return r.vertices
}

func (r OrientedRect) Center() vector.Vector2 {
	return r.center
}

// WithAngle returns the same rectangle rotated to the given angle,
// normalized to [0,360).
func (r OrientedRect) WithAngle(angleDeg float64) OrientedRect {
	return MakeOrientedRect(r.anchor, r.width, r.height, angleDeg)
}

// Translate returns the same rectangle moved by (dx, dy).
func (r OrientedRect) Translate(dx float64, dy float64) OrientedRect {
	return MakeOrientedRect(r.anchor.Move(dx, dy), r.width, r.height, r.angle)
}

// Contains tests point containment by projecting the anchor-to-point vector
// onto the width and height axes. Approximate: a tolerance of 0.01 units
// absorbs floating error, it is not a correctness guarantee for degenerate
// geometries.
func (r OrientedRect) Contains(point vector.Vector2) bool {
	goalVec := point.Diff(r.anchor)

	widthVec := r.vertices[1].Diff(r.anchor)
	heightVec := r.vertices[3].Diff(r.anchor)

	widthProj, errw := goalVec.Project(widthVec)
	utils.Check(errw, "rect: degenerate width axis in containment test")

	heightProj, errh := goalVec.Project(heightVec)
	utils.Check(errh, "rect: degenerate height axis in containment test")

	return widthProj.Mag()-r.width < containsTolerance &&
		heightProj.Mag()-r.height < containsTolerance &&
		widthProj.Dot(widthVec) >= 0 &&
		heightProj.Dot(heightVec) >= 0
}

// Intersects reports whether any vertex of either rectangle is contained in
// the other. Approximate: may miss cross/plus overlaps where two rectangles
// intersect with no vertex inside the other. This incomplete semantics is
// part of the collision model contract; do not "fix" it.
func (r OrientedRect) Intersects(other Shape) bool {
	return Intersects(r, other)
}

// Blocks reports whether a body travelling along motion would be stopped at
// point. Rectangular bodies only sample the destination point each tick; no
// swept-segment test is performed, relying on step size being small
// relative to body size.
func (r OrientedRect) Blocks(point vector.Vector2, motion vector.Vector2) bool {
	return r.Contains(point)
}

// AngleTo is the angle, in degrees normalized to [0,360), of the vector
// going from this rectangle's center to the other's center.
func (r OrientedRect) AngleTo(other Shape) float64 {
	return NormalizeAngleDeg(number.RadianToDegree(other.Center().Diff(r.center).AngleRadian()))
}

// AlignedRect is the rotation-free specialization: trivial vertex
// derivation and an O(1) inclusive coordinate-bound containment test,
// behaviorally equivalent to an OrientedRect at angle 0.
type AlignedRect struct {
	anchor vector.Vector2
	width  float64
	height float64

	vertices [4]vector.Vector2
	center   vector.Vector2
}

func MakeAlignedRect(anchor vector.Vector2, width float64, height float64) AlignedRect {
	utils.Assert(width >= 0 && height >= 0, "rect: width and height must not be negative")

	rec := AlignedRect{
		anchor: anchor,
		width:  width,
		height: height,
	}

	rec.vertices[0] = anchor
	rec.vertices[1] = anchor.Move(width, 0)
	rec.vertices[2] = anchor.Move(width, height)
	rec.vertices[3] = anchor.Move(0, height)

	rec.center = anchor.Midpoint(rec.vertices[2])

	return rec
}

func (r AlignedRect) Anchor() vector.Vector2 {
	return r.anchor
}

func (r AlignedRect) Width() float64 {
	return r.width
}

func (r AlignedRect) Height() float64 {
	return r.height
}

func (r AlignedRect) Vertices() [4]vector.Vector2 {
	return r.vertices
}

func (r AlignedRect) Center() vector.Vector2 {
	return r.center
}

func (r AlignedRect) Contains(point vector.Vector2) bool {
	x, y := point.Get()
	ax, ay := r.anchor.Get()
	tx, ty := r.vertices[2].Get()

	return ax <= x && ay <= y && tx >= x && ty >= y
}

func (r AlignedRect) Intersects(other Shape) bool {
	return Intersects(r, other)
}

func (r AlignedRect) Blocks(point vector.Vector2, motion vector.Vector2) bool {
	return r.Contains(point)
}

// Oriented widens the axis-aligned rectangle back into the general
// representation, at angle 0.
func (r AlignedRect) Oriented() OrientedRect {
	return MakeOrientedRect(r.anchor, r.width, r.height, 0)
}

// Intersects applies the vertex-containment heuristic to any two shapes.
// Approximate: may miss cross/plus overlaps (see OrientedRect.Intersects).
func Intersects(a Shape, b Shape) bool {
	for _, v := range b.Vertices() {
		if a.Contains(v) {
			return true
		}
	}

	for _, v := range a.Vertices() {
		if b.Contains(v) {
			return true
		}
	}

	return false
}

// AABB is the axis-aligned bounding box of a shape, used as the broadphase
// key in the spatial index.
func AABB(s Shape) (min vector.Vector2, max vector.Vector2) {
	vertices := s.Vertices()

	minx, miny := vertices[0].Get()
	maxx, maxy := minx, miny

	for _, v := range vertices[1:] {
		x, y := v.Get()
		minx = math.Min(minx, x)
		miny = math.Min(miny, y)
		maxx = math.Max(maxx, x)
		maxy = math.Max(maxy, y)
	}

	return vector.MakeVector2(minx, miny), vector.MakeVector2(maxx, maxy)
}
