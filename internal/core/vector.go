package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
var ErrDivisionByZero = errors.New("core: vector division by zero")

// Vector2 is a 2D vector in Cartesian form. Polar accessors are derived on demand.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a vector from Cartesian components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromPolar creates a vector from a length and an orientation in radians.
func FromPolar(length, angle float64) Vector2 {
	return Vector2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// FromNormalized creates a unit vector pointing at angle radians.
func FromNormalized(angle float64) Vector2 {
	return FromPolar(1, angle)
}

// RandomUnit returns a unit vector with a uniformly random orientation.
func RandomUnit(rng *rand.Rand) Vector2 {
	return FromNormalized(rng.Float64() * 2 * math.Pi)
}

// RandomInRect returns a vector uniformly distributed in [xMin,xMax]x[yMin,yMax].
func RandomInRect(rng *rand.Rand, xMin, xMax, yMin, yMax float64) Vector2 {
	return Vector2{
		X: xMin + rng.Float64()*(xMax-xMin),
		Y: yMin + rng.Float64()*(yMax-yMin),
	}
}

// RandomPolar returns a vector whose length is uniform in [lenMin,lenMax] and
// whose orientation is uniform over the full turn.
func RandomPolar(rng *rand.Rand, lenMin, lenMax float64) Vector2 {
	return RandomPolarRange(rng, lenMin, lenMax, 0, 2*math.Pi)
}

// RandomPolarRange is RandomPolar restricted to orientations in [angMin,angMax].
// The length is sampled uniformly, not the area, so results cluster toward lenMin.
func RandomPolarRange(rng *rand.Rand, lenMin, lenMax, angMin, angMax float64) Vector2 {
	length := lenMin + rng.Float64()*(lenMax-lenMin)
	angle := angMin + rng.Float64()*(angMax-angMin)
	return FromPolar(length, angle)
}

// IsValid reports whether neither component is NaN or infinite.
func (v Vector2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// IsDefined reports whether the vector is valid and non-zero under the default tolerance.
func (v Vector2) IsDefined() bool {
	return DefaultTolerance.IsDefined(v)
}

// IsNormalized reports whether the vector has unit length under the default tolerance.
func (v Vector2) IsNormalized() bool {
	return DefaultTolerance.IsNormalized(v)
}

// Equal compares two vectors component-wise under the default tolerance.
func (v Vector2) Equal(other Vector2) bool {
	return DefaultTolerance.Equal(v, other)
}

func (v Vector2) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length stays finite and non-zero for any defined vector, however large or
// small its components.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Orientation returns the angle in radians, in (-π, π].
func (v Vector2) Orientation() float64 {
	return math.Atan2(v.Y, v.X)
}

// SetLength rescales the vector, preserving its orientation.
// The zero vector has no orientation and is returned unchanged.
func (v Vector2) SetLength(length float64) Vector2 {
	current := v.Length()
	if current == 0 {
		return v
	}
	return v.Mul(length / current)
}

// SetSquaredLength rescales the vector so that its squared length is sq.
func (v Vector2) SetSquaredLength(sq float64) Vector2 {
	if sq < 0 {
		sq = 0
	}
	return v.SetLength(math.Sqrt(sq))
}

// SetOrientation rotates the vector to angle radians, preserving its length.
func (v Vector2) SetOrientation(angle float64) Vector2 {
	return FromPolar(v.Length(), angle)
}

// Normalized returns the unit vector with the same orientation.
// The zero vector is returned unchanged.
func (v Vector2) Normalized() Vector2 {
	return v.SetLength(1)
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. A zero divisor fails with ErrDivisionByZero
// and the vector is returned unchanged.
func (v Vector2) Div(s float64) (Vector2, error) {
	if s == 0 {
		return v, ErrDivisionByZero
	}
	return Vector2{X: v.X / s, Y: v.Y / s}, nil
}

func (v Vector2) SquaredDistance(other Vector2) float64 {
	return v.Sub(other).SquaredLength()
}

func (v Vector2) Distance(other Vector2) float64 {
	d := v.Sub(other)
	return math.Hypot(d.X, d.Y)
}

// String renders the vector with DefaultFormat.
func (v Vector2) String() string {
	return DefaultFormat.Vector(v)
}

// Tolerance holds the epsilon used by approximate vector comparisons.
type Tolerance struct {
	Epsilon float64
}

// DefaultTolerance uses the machine epsilon of float64.
var DefaultTolerance = Tolerance{Epsilon: 0x1p-52}

func (t Tolerance) approxZero(a float64) bool {
	return math.Abs(a) < t.Epsilon
}

func (t Tolerance) approxEqual(a, b float64) bool {
	return math.Abs(a-b) < t.Epsilon
}

// Equal reports whether |a.X-b.X| < ε and |a.Y-b.Y| < ε.
func (t Tolerance) Equal(a, b Vector2) bool {
	return t.approxEqual(a.X, b.X) && t.approxEqual(a.Y, b.Y)
}

// IsDefined reports whether v is valid and its length is not within ε of zero.
func (t Tolerance) IsDefined(v Vector2) bool {
	return v.IsValid() && !t.approxZero(v.Length())
}

// IsNormalized reports whether the length of v is within ε of one.
func (t Tolerance) IsNormalized(v Vector2) bool {
	return v.IsValid() && t.approxEqual(v.Length(), 1)
}

// Format describes how vectors are rendered as text.
type Format struct {
	Prefix    string
	Separator string
	Suffix    string
	Precision int
}

// DefaultFormat renders vectors as "(x, y)" with two decimals.
var DefaultFormat = Format{Prefix: "(", Separator: ", ", Suffix: ")", Precision: 2}

// Vector renders v using this format.
func (f Format) Vector(v Vector2) string {
	precision := max(f.Precision, 0)
	var sb strings.Builder
	sb.WriteString(f.Prefix)
	sb.WriteString(strconv.FormatFloat(v.X, 'f', precision, 64))
	sb.WriteString(f.Separator)
	sb.WriteString(strconv.FormatFloat(v.Y, 'f', precision, 64))
	sb.WriteString(f.Suffix)
	return sb.String()
}

// GoString makes %#v output readable in test failures.
func (v Vector2) GoString() string {
	return fmt.Sprintf("core.Vector2{X: %g, Y: %g}", v.X, v.Y)
}
