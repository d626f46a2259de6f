package rect

import (
	"math"
	"testing"

	"github.com/robomatch/robomatch/common/utils/vector"
)

func TestNormalizeAngleDeg(t *testing.T) {
	cases := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
		{359.5, 359.5},
	}

	for _, c := range cases {
		got := NormalizeAngleDeg(c.in)
		if got != c.expected {
			t.Fatalf("NormalizeAngleDeg(%f): expected %f, got %f", c.in, c.expected, got)
		}

		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeAngleDeg(%f) = %f out of [0,360)", c.in, got)
		}
	}
}

func TestOrientedRectDerivation(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 4, 2, 45)

	s := math.Sqrt2 / 2

	expected := [4]vector.Vector2{
		vector.MakeVector2(0, 0),
		vector.MakeVector2(4*s, 4*s),
		vector.MakeVector2(4*s-2*s, 4*s+2*s),
		vector.MakeVector2(-2*s, 2*s),
	}

	vertices := r.Vertices()
	for i := range expected {
		if !vertices[i].Equals(expected[i]) {
			t.Fatalf("vertex %d: expected %s, got %s", i, expected[i].String(), vertices[i].String())
		}
	}

	// center is the anchor/diagonal midpoint, which must coincide with the
	// mean of the four vertices
	mean := vector.MakeNullVector2()
	for _, v := range vertices {
		mean = mean.Add(v)
	}
	mean = mean.DivScalar(4)

	if !r.Center().Equals(mean) {
		t.Fatalf("center %s does not match vertex mean %s", r.Center().String(), mean.String())
	}
}

func TestWithAngleNormalizes(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(10, 10), 5, 3, 0)

	if r.WithAngle(-90).Angle() != 270 {
		t.Fatalf("expected angle 270, got %f", r.WithAngle(-90).Angle())
	}

	if r.WithAngle(720).Angle() != 0 {
		t.Fatalf("expected angle 0, got %f", r.WithAngle(720).Angle())
	}

	// rotating to the current angle is a no-op
	again := r.WithAngle(r.Angle())
	if again.Angle() != r.Angle() || !again.Center().Equals(r.Center()) {
		t.Fatalf("WithAngle(current) must preserve the pose")
	}
}

func TestContainsOriented(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 10, 4, 0)

	inside := []vector.Vector2{
		vector.MakeVector2(5, 2),
		vector.MakeVector2(0, 0),
		vector.MakeVector2(10, 4),
		vector.MakeVector2(0.001, 3.999),
	}

	for _, p := range inside {
		if !r.Contains(p) {
			t.Fatalf("expected %s to be contained", p.String())
		}
	}

	outside := []vector.Vector2{
		vector.MakeVector2(10.5, 2),
		vector.MakeVector2(5, 4.5),
		vector.MakeVector2(-1, -1),
	}

	for _, p := range outside {
		if r.Contains(p) {
			t.Fatalf("expected %s to be outside", p.String())
		}
	}
}

func TestContainsTolerance(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 10, 4, 0)

	// just past the far edge, but within the 0.01 tolerance band
	if !r.Contains(vector.MakeVector2(10.005, 2)) {
		t.Fatalf("points within the tolerance band must count as contained")
	}

	if r.Contains(vector.MakeVector2(10.02, 2)) {
		t.Fatalf("points past the tolerance band must not count as contained")
	}
}

func TestContainsRotated(t *testing.T) {
	// a square rotated 45 degrees around its anchor
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 10, 10, 45)

	if !r.Contains(r.Center()) {
		t.Fatalf("a rectangle must contain its own center")
	}

	if !r.Contains(vector.MakeVector2(0, 5)) {
		t.Fatalf("expected (0,5) inside the rotated square")
	}

	// behind the anchor relative to both axes
	if r.Contains(vector.MakeVector2(0, -1)) {
		t.Fatalf("expected (0,-1) outside the rotated square")
	}
}

func TestAlignedMatchesOrientedAtAngleZero(t *testing.T) {
	aligned := MakeAlignedRect(vector.MakeVector2(2, 3), 8, 5)
	oriented := aligned.Oriented()

	if !aligned.Center().Equals(oriented.Center()) {
		t.Fatalf("centers diverge between representations")
	}

	probes := []vector.Vector2{
		vector.MakeVector2(2, 3),
		vector.MakeVector2(10, 8),
		vector.MakeVector2(6, 5),
		vector.MakeVector2(1, 3),
		vector.MakeVector2(6, 9),
		vector.MakeVector2(11, 8),
	}

	for _, p := range probes {
		if aligned.Contains(p) != oriented.Contains(p) {
			t.Fatalf("containment diverges at %s: aligned=%t oriented=%t",
				p.String(), aligned.Contains(p), oriented.Contains(p))
		}
	}
}

func TestIntersects(t *testing.T) {
	a := MakeAlignedRect(vector.MakeVector2(0, 0), 10, 10)
	b := MakeAlignedRect(vector.MakeVector2(5, 5), 10, 10)
	c := MakeAlignedRect(vector.MakeVector2(20, 20), 5, 5)

	if !Intersects(a, b) {
		t.Fatalf("overlapping rectangles must intersect")
	}

	if !Intersects(b, a) {
		t.Fatalf("intersection must be symmetric")
	}

	if Intersects(a, c) {
		t.Fatalf("disjoint rectangles must not intersect")
	}

	// containment counts as intersection
	inner := MakeAlignedRect(vector.MakeVector2(2, 2), 2, 2)
	if !Intersects(a, inner) {
		t.Fatalf("a contained rectangle must intersect its container")
	}
}

func TestIntersectsMissesCrossOverlap(t *testing.T) {
	// two bars crossing like a plus sign: no vertex of either lies inside
	// the other, so the vertex-containment heuristic reports no
	// intersection. This is the documented behavior, not a bug.
	horizontal := MakeAlignedRect(vector.MakeVector2(0, 4), 10, 2)
	vertical := MakeAlignedRect(vector.MakeVector2(4, 0), 2, 10)

	if Intersects(horizontal, vertical) {
		t.Fatalf("the vertex heuristic is expected to miss cross overlaps")
	}
}

func TestBlocksSamplesDestinationOnly(t *testing.T) {
	wall := MakeAlignedRect(vector.MakeVector2(10, 0), 2, 10)

	if !wall.Blocks(vector.MakeVector2(11, 5), vector.MakeVector2(25, 0)) {
		t.Fatalf("a destination inside the wall must be blocked")
	}

	// the motion tunnels through the wall but the destination is clear;
	// only the destination point is sampled
	if wall.Blocks(vector.MakeVector2(25, 5), vector.MakeVector2(25, 0)) {
		t.Fatalf("a destination outside the wall must not be blocked")
	}
}

func TestAngleTo(t *testing.T) {
	origin := MakeOrientedRect(vector.MakeVector2(-1, -1), 2, 2, 0)

	cases := []struct {
		target   OrientedRect
		expected float64
	}{
		{MakeOrientedRect(vector.MakeVector2(9, -1), 2, 2, 0), 0},
		{MakeOrientedRect(vector.MakeVector2(-1, 9), 2, 2, 0), 90},
		{MakeOrientedRect(vector.MakeVector2(-11, -1), 2, 2, 0), 180},
		{MakeOrientedRect(vector.MakeVector2(-1, -11), 2, 2, 0), 270},
	}

	for _, c := range cases {
		got := origin.AngleTo(c.target)
		if math.Abs(got-c.expected) > 1e-9 {
			t.Fatalf("expected bearing %f, got %f", c.expected, got)
		}
	}
}

func TestTranslate(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 4, 2, 30)
	moved := r.Translate(3, -1)

	if !moved.Anchor().Equals(vector.MakeVector2(3, -1)) {
		t.Fatalf("unexpected anchor after translation")
	}

	if moved.Angle() != r.Angle() {
		t.Fatalf("translation must preserve the angle")
	}

	if !moved.Center().Equals(r.Center().Move(3, -1)) {
		t.Fatalf("the center must follow the translation")
	}
}

func TestAABB(t *testing.T) {
	r := MakeOrientedRect(vector.MakeVector2(0, 0), 10, 10, 45)

	min, max := AABB(r)

	s := math.Sqrt2 / 2

	if !min.Equals(vector.MakeVector2(-10*s, 0)) {
		t.Fatalf("unexpected AABB min %s", min.String())
	}

	if !max.Equals(vector.MakeVector2(10*s, 20*s)) {
		t.Fatalf("unexpected AABB max %s", max.String())
	}
}
