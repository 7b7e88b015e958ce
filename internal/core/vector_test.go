package core

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var testTolerance = Tolerance{Epsilon: 1e-9}

func TestVectorPolarAccessors(t *testing.T) {
	v := NewVector2(3, 4)

	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if v.SquaredLength() != 25 {
		t.Errorf("SquaredLength() = %v, expected 25", v.SquaredLength())
	}
	if got := NewVector2(0, 2).Orientation(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Orientation() = %v, expected π/2", got)
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, math.Pi)
	if !testTolerance.Equal(v, NewVector2(-2, 0)) {
		t.Errorf("FromPolar(2, π) = %v, expected (-2, 0)", v)
	}
	if !testTolerance.IsNormalized(FromNormalized(1.234)) {
		t.Error("FromNormalized should produce a unit vector")
	}
}

func TestSetLengthAndOrientation(t *testing.T) {
	v := NewVector2(3, 4)

	scaled := v.SetLength(10)
	if !testTolerance.Equal(scaled, NewVector2(6, 8)) {
		t.Errorf("SetLength(10) = %v, expected (6, 8)", scaled)
	}

	sq := v.SetSquaredLength(100)
	if !testTolerance.Equal(sq, NewVector2(6, 8)) {
		t.Errorf("SetSquaredLength(100) = %v, expected (6, 8)", sq)
	}

	rotated := v.SetOrientation(0)
	if !testTolerance.Equal(rotated, NewVector2(5, 0)) {
		t.Errorf("SetOrientation(0) = %v, expected (5, 0)", rotated)
	}
}

func TestExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2
		length float64
	}{
		{"huge on one axis", NewVector2(1e200, 0), 1e200},
		{"huge on both axes", NewVector2(3e154, 4e154), 5e154},
		{"tiny on one axis", NewVector2(0, 1e-170), 1e-170},
		{"tiny on both axes", NewVector2(3e-170, 4e-170), 5e-170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.IsInf(got, 0) || math.Abs(got-tt.length) > tt.length*1e-12 {
				t.Errorf("Length() = %v, expected %v", got, tt.length)
			}
			if n := tt.v.Normalized(); !testTolerance.IsNormalized(n) {
				t.Errorf("Normalized() = %v with length %v, expected unit length", n, n.Length())
			}
			if d := tt.v.Distance(Vector2{}); math.Abs(d-tt.length) > tt.length*1e-12 {
				t.Errorf("Distance() = %v, expected %v", d, tt.length)
			}
		})
	}
}

func TestZeroVectorDegenerateOperations(t *testing.T) {
	zero := Vector2{}

	tests := []struct {
		name string
		got  Vector2
	}{
		{"SetLength", zero.SetLength(5)},
		{"SetSquaredLength", zero.SetSquaredLength(25)},
		{"Normalized", zero.Normalized()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != zero {
				t.Errorf("%s on zero vector = %v, expected zero vector", tc.name, tc.got)
			}
			if !tc.got.IsValid() {
				t.Errorf("%s on zero vector produced NaN", tc.name)
			}
		})
	}

	if zero.IsDefined() {
		t.Error("zero vector should not be defined")
	}
}

func TestVectorDivision(t *testing.T) {
	v := NewVector2(6, -3)

	got, err := v.Div(3)
	if err != nil {
		t.Fatalf("Div(3) failed: %v", err)
	}
	if got != NewVector2(2, -1) {
		t.Errorf("Div(3) = %v, expected (2, -1)", got)
	}

	got, err = v.Div(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(0) error = %v, expected ErrDivisionByZero", err)
	}
	if got != v {
		t.Errorf("Div(0) = %v, expected unchanged %v", got, v)
	}
}

func TestVectorValidity(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector2
		valid   bool
		defined bool
	}{
		{"regular", NewVector2(1, 2), true, true},
		{"zero", NewVector2(0, 0), true, false},
		{"nan", NewVector2(math.NaN(), 0), false, false},
		{"inf", NewVector2(0, math.Inf(-1)), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.v.IsValid() != tc.valid {
				t.Errorf("IsValid() = %v, expected %v", tc.v.IsValid(), tc.valid)
			}
			if tc.v.IsDefined() != tc.defined {
				t.Errorf("IsDefined() = %v, expected %v", tc.v.IsDefined(), tc.defined)
			}
		})
	}
}

func TestToleranceEquality(t *testing.T) {
	a := NewVector2(1, 1)
	b := NewVector2(1+1e-6, 1)

	if a.Equal(b) {
		t.Error("default tolerance should distinguish a 1e-6 difference")
	}
	loose := Tolerance{Epsilon: 1e-3}
	if !loose.Equal(a, b) {
		t.Error("explicit tolerance 1e-3 should accept a 1e-6 difference")
	}
	if !a.Equal(a) {
		t.Error("a vector should equal itself")
	}
}

func TestVectorArithmeticProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		v := RandomInRect(rng, -1000, 1000, -1000, 1000)
		w := RandomInRect(rng, -1000, 1000, -1000, 1000)

		if got := v.Add(w).Sub(w); !testTolerance.Equal(got, v) {
			t.Fatalf("(v+w)-w = %v, expected %v", got, v)
		}
		if got := v.Mul(2); !testTolerance.Equal(got, v.Add(v)) {
			t.Fatalf("v*2 = %v, expected v+v = %v", got, v.Add(v))
		}
		if v.IsDefined() {
			if n := v.Normalized(); !testTolerance.IsNormalized(n) {
				t.Fatalf("Normalized() length = %v, expected 1", n.Length())
			}
		}
	}
}

func TestDistance(t *testing.T) {
	a := NewVector2(1, 1)
	b := NewVector2(4, 5)

	if a.Distance(b) != 5 {
		t.Errorf("Distance() = %v, expected 5", a.Distance(b))
	}
	if a.SquaredDistance(b) != 25 {
		t.Errorf("SquaredDistance() = %v, expected 25", a.SquaredDistance(b))
	}
}

func TestRandomFactories(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 100 {
		if u := RandomUnit(rng); !testTolerance.IsNormalized(u) {
			t.Fatalf("RandomUnit() length = %v, expected 1", u.Length())
		}

		r := RandomInRect(rng, 10, 20, -5, 5)
		if r.X < 10 || r.X > 20 || r.Y < -5 || r.Y > 5 {
			t.Fatalf("RandomInRect() = %v, outside bounds", r)
		}

		p := RandomPolar(rng, 3, 4)
		if l := p.Length(); l < 3-1e-9 || l > 4+1e-9 {
			t.Fatalf("RandomPolar() length = %v, expected within [3, 4]", l)
		}

		q := RandomPolarRange(rng, 1, 1, 0, math.Pi/2)
		if q.X < -1e-9 || q.Y < -1e-9 {
			t.Fatalf("RandomPolarRange() = %v, expected first quadrant", q)
		}
	}
}

func TestVectorFormat(t *testing.T) {
	v := NewVector2(1.23456, -2)

	if v.String() != "(1.23, -2.00)" {
		t.Errorf("String() = %q, expected %q", v.String(), "(1.23, -2.00)")
	}

	f := Format{Prefix: "[ ", Separator: " x ", Suffix: " ]", Precision: 4}
	if got := f.Vector(v); got != "[ 1.2346 x -2.0000 ]" {
		t.Errorf("Format.Vector() = %q, expected %q", got, "[ 1.2346 x -2.0000 ]")
	}
}
