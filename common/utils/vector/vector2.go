package vector

import (
	"encoding/json"
	"math"
	"strconv"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/robomatch/robomatch/common/utils/number"
)

// Vector2 is an immutable 2D point/vector; every operation returns a new value.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (v Vector2) MarshalJSONString() string {
	json, _ := json.Marshal(v)
	return string(json)
}

func (a Vector2) Clone() Vector2 {
	return Vector2{
		x: a.x,
		y: a.y,
	}
}

// Move translates the point by (dx, dy).
func (a Vector2) Move(dx float64, dy float64) Vector2 {
	a.x += dx
	a.y += dy
	return a
}

// Diff is the vector going from other to a.
func (a Vector2) Diff(other Vector2) Vector2 {
	return a.Sub(other)
}

func (a Vector2) Midpoint(other Vector2) Vector2 {
	return a.Add(other).DivScalar(2)
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Vector2) MultScalar(f float64) Vector2 {
	a.x *= f
	a.y *= f
	return a
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector2) MagSq() float64 {
	return (a.x*a.x + a.y*a.y)
}

func (a Vector2) SetMag(mag float64) Vector2 {
	return a.Normalize().MultScalar(mag)
}

func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

// Project returns the vector projection of a onto b.
// Projecting onto a zero-length vector is degenerate geometry; the caller
// gets an error instead of a NaN-laden vector.
func (a Vector2) Project(b Vector2) (Vector2, error) {
	magsq := b.MagSq()
	if number.IsZero(magsq) {
		return MakeNullVector2(), ErrDegenerateGeometry("cannot project onto a zero-length vector")
	}

	return b.MultScalar(a.Dot(b) / magsq), nil
}

// AngleRadian is the atan2 angle of the vector, in ]-Pi, Pi].
func (a Vector2) AngleRadian() float64 {
	return math.Atan2(a.y, a.x)
}

func (a Vector2) Cross(v Vector2) float64 {
	return a.x*v.y - a.y*v.x
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

func (a Vector2) ToFloatArray() [2]float64 {
	return [2]float64{a.GetX(), a.GetY()}
}

// DegenerateGeometryError marks a geometric operation with no defined
// result, wrapping the better-errors chain describing it. The type is the
// identity; an unrelated error chain never passes for this condition.
type DegenerateGeometryError struct {
	chain error
}

func (e DegenerateGeometryError) Error() string {
	return e.chain.Error()
}

// Chain exposes the underlying better-errors chain for printing.
func (e DegenerateGeometryError) Chain() error {
	return e.chain
}

func ErrDegenerateGeometry(msg string) error {
	return DegenerateGeometryError{
		chain: bettererrors.
			New("Degenerate geometry").
			With(bettererrors.New(msg)),
	}
}

func IsDegenerateGeometry(err error) bool {
	_, ok := err.(DegenerateGeometryError)
	return ok
}
