package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by ParseColor for names that are neither a preset nor hex.
var ErrUnknownColor = errors.New("core: unknown color")

// Color is an RGBA color with every channel normalized to [0, 1].
// Only RGBA is stored; HSL and HSV components are computed on every read, and every
// HSL/HSV write is converted back to RGB. Setters clamp silently.
type Color struct {
	r, g, b, a float64
}

// Predefined colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorNoColor     = Color{0, 0, 0, 0}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorYellow      = Color{1, 1, 0, 1}
	ColorCyan        = Color{0, 1, 1, 1}
	ColorMagenta     = Color{1, 0, 1, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorOrange      = Color{1, 0.5, 0, 1}
	ColorLime        = Color{0.5, 1, 0, 1}
	ColorFuchsia     = Color{1, 0, 0.5, 1}
	ColorViolet      = Color{0.5, 0, 1, 1}
	ColorAqua        = Color{0, 1, 0.5, 1}
	ColorSky         = Color{0, 0.5, 1, 1}
	ColorLightGray   = Color{0.75, 0.75, 0.75, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorDarkGray    = Color{0.25, 0.25, 0.25, 1}
)

var namedColors = map[string]Color{
	"transparent": ColorTransparent,
	"nocolor":     ColorNoColor,
	"black":       ColorBlack,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"yellow":      ColorYellow,
	"cyan":        ColorCyan,
	"magenta":     ColorMagenta,
	"white":       ColorWhite,
	"orange":      ColorOrange,
	"lime":        ColorLime,
	"fuchsia":     ColorFuchsia,
	"violet":      ColorViolet,
	"aqua":        ColorAqua,
	"sky":         ColorSky,
	"lightgray":   ColorLightGray,
	"gray":        ColorGray,
	"darkgray":    ColorDarkGray,
}

// NewColor creates an opaque color.
func NewColor(r, g, b float64) Color {
	return NewColorRGBA(r, g, b, 1)
}

// NewColorRGBA creates a color, clamping every channel.
func NewColorRGBA(r, g, b, a float64) Color {
	return Color{r: Clamp01(r), g: Clamp01(g), b: Clamp01(b), a: Clamp01(a)}
}

// Gray returns an opaque gray of the given level.
func Gray(level float64) Color {
	return NewColor(level, level, level)
}

// FromHsl creates a color from HSL components, each in [0, 1].
func FromHsl(h, s, l, a float64) Color {
	var c Color
	c.SetHsla(h, s, l, a)
	return c
}

// FromHsv creates a color from HSV components, each in [0, 1].
func FromHsv(h, s, v, a float64) Color {
	var c Color
	c.SetHsva(h, s, v, a)
	return c
}

// ParseColor accepts a preset name (case-insensitive, spaces and dashes ignored)
// or a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		return NewColor(cf.R, cf.G, cf.B), nil
	}
	return Color{}, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

func (c Color) Red() float64   { return c.r }
func (c Color) Green() float64 { return c.g }
func (c Color) Blue() float64  { return c.b }
func (c Color) Alpha() float64 { return c.a }

// RGBA returns the four stored channels.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// Hex returns the opaque "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

// hueToDegrees maps a normalized hue onto [0, 360); a full turn wraps to 0.
func hueToDegrees(h float64) float64 {
	return math.Mod(Clamp01(h), 1) * 360
}

// Hsl returns hue, saturation and lightness in [0, 1].
// Hue is 0 for achromatic colors (saturation 0).
func (c Color) Hsl() (h, s, l float64) {
	h, s, l = c.colorful().Hsl()
	return Clamp01(h / 360), Clamp01(s), Clamp01(l)
}

func (c Color) HslHue() float64        { h, _, _ := c.Hsl(); return h }
func (c Color) HslSaturation() float64 { _, s, _ := c.Hsl(); return s }
func (c Color) HslLightness() float64  { _, _, l := c.Hsl(); return l }

// Hsv returns hue, saturation and value in [0, 1].
// Hue is 0 for achromatic colors (saturation 0).
func (c Color) Hsv() (h, s, v float64) {
	h, s, v = c.colorful().Hsv()
	return Clamp01(h / 360), Clamp01(s), Clamp01(v)
}

func (c Color) HsvHue() float64        { h, _, _ := c.Hsv(); return h }
func (c Color) HsvSaturation() float64 { _, s, _ := c.Hsv(); return s }
func (c Color) HsvValue() float64      { _, _, v := c.Hsv(); return v }

func (c *Color) SetRed(r float64)   { c.r = Clamp01(r) }
func (c *Color) SetGreen(g float64) { c.g = Clamp01(g) }
func (c *Color) SetBlue(b float64)  { c.b = Clamp01(b) }
func (c *Color) SetAlpha(a float64) { c.a = Clamp01(a) }

// Set replaces the chromatic channels, keeping alpha.
func (c *Color) Set(r, g, b float64) {
	c.SetRed(r)
	c.SetGreen(g)
	c.SetBlue(b)
}

// SetRGBA replaces all four channels.
func (c *Color) SetRGBA(r, g, b, a float64) {
	c.Set(r, g, b)
	c.SetAlpha(a)
}

func (c *Color) setColorful(cf colorful.Color) {
	c.Set(cf.R, cf.G, cf.B)
}

// SetHsl replaces the chromatic channels from HSL components, keeping alpha.
func (c *Color) SetHsl(h, s, l float64) {
	c.setColorful(colorful.Hsl(hueToDegrees(h), Clamp01(s), Clamp01(l)))
}

// SetHsla replaces all channels from HSL components and alpha.
func (c *Color) SetHsla(h, s, l, a float64) {
	c.SetHsl(h, s, l)
	c.SetAlpha(a)
}

func (c *Color) SetHslHue(h float64) {
	_, s, l := c.Hsl()
	c.SetHsl(h, s, l)
}

func (c *Color) SetHslSaturation(s float64) {
	h, _, l := c.Hsl()
	c.SetHsl(h, s, l)
}

func (c *Color) SetHslLightness(l float64) {
	h, s, _ := c.Hsl()
	c.SetHsl(h, s, l)
}

// SetHsv replaces the chromatic channels from HSV components, keeping alpha.
func (c *Color) SetHsv(h, s, v float64) {
	c.setColorful(colorful.Hsv(hueToDegrees(h), Clamp01(s), Clamp01(v)))
}

// SetHsva replaces all channels from HSV components and alpha.
func (c *Color) SetHsva(h, s, v, a float64) {
	c.SetHsv(h, s, v)
	c.SetAlpha(a)
}

func (c *Color) SetHsvHue(h float64) {
	_, s, v := c.Hsv()
	c.SetHsv(h, s, v)
}

func (c *Color) SetHsvSaturation(s float64) {
	h, _, v := c.Hsv()
	c.SetHsv(h, s, v)
}

func (c *Color) SetHsvValue(v float64) {
	h, s, _ := c.Hsv()
	c.SetHsv(h, s, v)
}

// Blended mixes c with other: each channel is factor*c + (1-factor)*other.
// factor is clamped to [0, 1]. Alpha is mixed only when blendAlpha is set,
// otherwise the alpha of c is kept.
func (c Color) Blended(other Color, factor float64, blendAlpha bool) Color {
	f := Clamp01(factor)
	out := NewColorRGBA(
		Lerp(c.r, other.r, f),
		Lerp(c.g, other.g, f),
		Lerp(c.b, other.b, f),
		c.a,
	)
	if blendAlpha {
		out.SetAlpha(Lerp(c.a, other.a, f))
	}
	return out
}

// Blend is the in-place form of Blended.
func (c *Color) Blend(other Color, factor float64, blendAlpha bool) {
	*c = c.Blended(other, factor, blendAlpha)
}

// Lighter moves the HSL lightness toward 1 by factor of the remaining distance.
func (c Color) Lighter(factor float64) Color {
	h, s, l := c.Hsl()
	out := c
	out.SetHsl(h, s, l+(1-l)*Clamp01(factor))
	return out
}

// Darker moves the HSL lightness toward 0 by factor of the current lightness.
func (c Color) Darker(factor float64) Color {
	h, s, l := c.Hsl()
	out := c
	out.SetHsl(h, s, l*(1-Clamp01(factor)))
	return out
}

func (c *Color) Lighten(factor float64) { *c = c.Lighter(factor) }
func (c *Color) Darken(factor float64)  { *c = c.Darker(factor) }

// ApproxEqual compares all four channels within epsilon.
func (c Color) ApproxEqual(other Color, epsilon float64) bool {
	return math.Abs(c.r-other.r) < epsilon &&
		math.Abs(c.g-other.g) < epsilon &&
		math.Abs(c.b-other.b) < epsilon &&
		math.Abs(c.a-other.a) < epsilon
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.r, c.g, c.b, c.a)
}

// HslRange bounds a uniform random draw in HSL space. Each component is sampled
// independently within [From, To].
type HslRange struct {
	HueFrom, HueTo               float64
	SaturationFrom, SaturationTo float64
	LightnessFrom, LightnessTo   float64
	AlphaFrom, AlphaTo           float64
}

// NewHslRange returns a range over the given hues with vivid defaults:
// saturation [0.85, 1], lightness [0.45, 0.55], opaque.
func NewHslRange(hueFrom, hueTo float64) HslRange {
	return HslRange{
		HueFrom: hueFrom, HueTo: hueTo,
		SaturationFrom: 0.85, SaturationTo: 1,
		LightnessFrom: 0.45, LightnessTo: 0.55,
		AlphaFrom: 1, AlphaTo: 1,
	}
}

func uniform(rng *rand.Rand, from, to float64) float64 {
	return from + rng.Float64()*(to-from)
}

// Randomized returns a color with uniformly random RGB channels.
// Alpha is random too when randomizeAlpha is set, otherwise opaque.
func Randomized(rng *rand.Rand, randomizeAlpha bool) Color {
	var c Color
	c.Randomize(rng, randomizeAlpha)
	return c
}

// RandomizedHsl returns a color drawn uniformly from the HSL box r.
func RandomizedHsl(rng *rand.Rand, r HslRange) Color {
	var c Color
	c.RandomizeHsl(rng, r)
	return c
}

// Randomize is the in-place form of Randomized.
func (c *Color) Randomize(rng *rand.Rand, randomizeAlpha bool) {
	c.Set(rng.Float64(), rng.Float64(), rng.Float64())
	if randomizeAlpha {
		c.SetAlpha(rng.Float64())
	} else {
		c.SetAlpha(1)
	}
}

// RandomizeHsl is the in-place form of RandomizedHsl.
func (c *Color) RandomizeHsl(rng *rand.Rand, r HslRange) {
	c.SetHsla(
		uniform(rng, r.HueFrom, r.HueTo),
		uniform(rng, r.SaturationFrom, r.SaturationTo),
		uniform(rng, r.LightnessFrom, r.LightnessTo),
		uniform(rng, r.AlphaFrom, r.AlphaTo),
	)
}
