package vector

import (
	"errors"
	"math"
	"testing"

	bettererrors "github.com/xtuc/better-errors"
)

func TestMoveAndDiff(t *testing.T) {
	p := MakeVector2(3, 4)

	moved := p.Move(2, -1)
	if !moved.Equals(MakeVector2(5, 3)) {
		t.Fatalf("unexpected move result %s", moved.String())
	}

	// the original is untouched
	if !p.Equals(MakeVector2(3, 4)) {
		t.Fatalf("Move must not mutate the receiver")
	}

	diff := moved.Diff(p)
	if !diff.Equals(MakeVector2(2, -1)) {
		t.Fatalf("unexpected diff result %s", diff.String())
	}
}

func TestMidpoint(t *testing.T) {
	a := MakeVector2(0, 0)
	b := MakeVector2(10, 4)

	if !a.Midpoint(b).Equals(MakeVector2(5, 2)) {
		t.Fatalf("unexpected midpoint")
	}

	if !a.Midpoint(b).Equals(b.Midpoint(a)) {
		t.Fatalf("midpoint must be symmetric")
	}
}

func TestDotAndMag(t *testing.T) {
	a := MakeVector2(3, 4)

	if a.Mag() != 5 {
		t.Fatalf("expected length 5, got %f", a.Mag())
	}

	if a.Dot(MakeVector2(2, 1)) != 10 {
		t.Fatalf("unexpected dot product")
	}

	if a.Dot(MakeVector2(4, -3)) != 0 {
		t.Fatalf("orthogonal vectors must have a null dot product")
	}
}

func TestProject(t *testing.T) {
	a := MakeVector2(3, 4)

	onX, err := a.Project(MakeVector2(10, 0))
	if err != nil {
		t.Fatalf("unexpected projection error: %v", err)
	}

	if !onX.Equals(MakeVector2(3, 0)) {
		t.Fatalf("unexpected projection %s", onX.String())
	}

	onDiag, err := MakeVector2(2, 0).Project(MakeVector2(1, 1))
	if err != nil {
		t.Fatalf("unexpected projection error: %v", err)
	}

	if !onDiag.Equals(MakeVector2(1, 1)) {
		t.Fatalf("unexpected projection %s", onDiag.String())
	}
}

func TestProjectOntoNullVectorIsDegenerate(t *testing.T) {
	_, err := MakeVector2(3, 4).Project(MakeNullVector2())

	if err == nil {
		t.Fatalf("projecting onto a zero-length vector must fail")
	}

	if !IsDegenerateGeometry(err) {
		t.Fatalf("expected a degenerate geometry condition, got %v", err)
	}
}

func TestIsDegenerateGeometryIsSpecific(t *testing.T) {
	if IsDegenerateGeometry(nil) {
		t.Fatalf("nil is not a degenerate geometry condition")
	}

	if IsDegenerateGeometry(errors.New("disk full")) {
		t.Fatalf("a plain error is not a degenerate geometry condition")
	}

	// an unrelated better-errors chain must not pass either
	if IsDegenerateGeometry(bettererrors.New("connection refused")) {
		t.Fatalf("an unrelated error chain is not a degenerate geometry condition")
	}
}

func TestAngleRadian(t *testing.T) {
	if MakeVector2(1, 0).AngleRadian() != 0 {
		t.Fatalf("unexpected angle for +x")
	}

	if math.Abs(MakeVector2(0, 1).AngleRadian()-math.Pi/2) > 1e-9 {
		t.Fatalf("unexpected angle for +y")
	}

	if math.Abs(MakeVector2(-1, 0).AngleRadian()-math.Pi) > 1e-9 {
		t.Fatalf("unexpected angle for -x")
	}
}
