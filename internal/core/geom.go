// Package core provides the math, color and shape primitives shared by every game,
// together with the collaborator interfaces (Screen, Keyboard, Timer) a host must
// supply. It has no terminal dependency so game logic stays pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp01 restricts a value to the normalized range [0, 1].
// NaN is mapped to 0 so color channels never hold an undefined value.
func Clamp01(val float64) float64 {
	if val != val {
		return 0
	}
	return ClampF(val, 0, 1)
}

// Lerp interpolates linearly: t=1 yields a, t=0 yields b.
func Lerp(a, b, t float64) float64 {
	return t*a + (1-t)*b
}
