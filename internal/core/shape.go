package core

import "strconv"

// Alignment selects which point of a shape's bounding box its position refers to.
// It only affects where a shape is rendered, never the stored position.
type Alignment int

const (
	AlignBaseLeft Alignment = iota // text baseline; same as center for circles
	AlignTopLeft
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenterCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// Offset returns the displacement from the aligned position to the top-left
// corner of a w x h box.
func (a Alignment) Offset(w, h float64) (dx, dy float64) {
	switch a {
	case AlignTopLeft:
		return 0, 0
	case AlignTopCenter:
		return -w / 2, 0
	case AlignTopRight:
		return -w, 0
	case AlignCenterLeft:
		return 0, -h / 2
	case AlignCenterRight:
		return -w, -h / 2
	case AlignBottomLeft, AlignBaseLeft:
		return 0, -h
	case AlignBottomCenter:
		return -w / 2, -h
	case AlignBottomRight:
		return -w, -h
	default:
		return -w / 2, -h / 2
	}
}

// Minimum geometric extents.
const (
	MinCircleRadius = 1.0
	MinTextSize     = 1.0
)

// Circle is a filled disc with an optional edge.
type Circle struct {
	radius    float64
	position  Vector2
	alignment Alignment
	fill      Color
	edge      Color
	edgeSize  float64
}

// NewCircle creates a circle with a single fill color and no edge.
func NewCircle(radius float64, position Vector2, fill Color) Circle {
	return NewCircleEdged(radius, position, fill, ColorTransparent, 0)
}

// NewCircleEdged creates a circle with fill and edge attributes.
func NewCircleEdged(radius float64, position Vector2, fill, edge Color, edgeSize float64) Circle {
	c := Circle{position: position, alignment: AlignCenterCenter, fill: fill, edge: edge}
	c.SetRadius(radius)
	c.SetEdgeSize(edgeSize)
	return c
}

func (c Circle) Radius() float64      { return c.radius }
func (c Circle) Position() Vector2    { return c.position }
func (c Circle) Alignment() Alignment { return c.alignment }
func (c Circle) FillColor() Color     { return c.fill }
func (c Circle) EdgeColor() Color     { return c.edge }
func (c Circle) EdgeSize() float64    { return c.edgeSize }

// SetRadius sets the radius, never below MinCircleRadius.
func (c *Circle) SetRadius(r float64) {
	c.radius = max(r, MinCircleRadius)
}

func (c *Circle) SetPosition(p Vector2)    { c.position = p }
func (c *Circle) SetAlignment(a Alignment) { c.alignment = a }
func (c *Circle) SetFill(color Color)      { c.fill = color }
func (c *Circle) SetNoFill()               { c.fill = ColorTransparent }
func (c *Circle) SetEdge(color Color)      { c.edge = color }
func (c *Circle) SetNoEdge()               { c.edge = ColorTransparent; c.edgeSize = 0 }

// SetEdgeSize sets the edge thickness, never below zero.
func (c *Circle) SetEdgeSize(size float64) {
	c.edgeSize = max(size, 0)
}

// SetColors replaces fill and edge colors.
func (c *Circle) SetColors(fill, edge Color) {
	c.fill = fill
	c.edge = edge
}

// AdjustSize scales the radius by a relative factor.
func (c *Circle) AdjustSize(ratio float64) {
	c.SetRadius(c.radius * ratio)
}

// Move translates the circle.
func (c *Circle) Move(displacement Vector2) {
	c.position = c.position.Add(displacement)
}

// IsColliding reports whether the distance between centers is strictly less than
// the sum of radii. Tangent circles do not collide.
func (c Circle) IsColliding(other Circle) bool {
	reach := c.radius + other.radius
	return c.position.SquaredDistance(other.position) < reach*reach
}

// Text is a string drawn at a position with paint attributes.
type Text struct {
	text      string
	size      float64
	position  Vector2
	alignment Alignment
	fill      Color
	edge      Color
	edgeSize  float64
}

// NewText creates a text with a single fill color, baseline-left aligned.
func NewText(text string, size float64, position Vector2, fill Color) Text {
	return NewTextEdged(text, size, position, fill, ColorTransparent, 0, AlignBaseLeft)
}

// NewTextEdged creates a text with fill, edge and alignment.
func NewTextEdged(text string, size float64, position Vector2, fill, edge Color, edgeSize float64, alignment Alignment) Text {
	t := Text{text: text, position: position, alignment: alignment, fill: fill, edge: edge}
	t.SetSize(size)
	t.SetEdgeSize(edgeSize)
	return t
}

func (t Text) String() string       { return t.text }
func (t Text) Size() float64        { return t.size }
func (t Text) Position() Vector2    { return t.position }
func (t Text) Alignment() Alignment { return t.alignment }
func (t Text) FillColor() Color     { return t.fill }
func (t Text) EdgeColor() Color     { return t.edge }
func (t Text) EdgeSize() float64    { return t.edgeSize }

func (t *Text) SetText(s string) { t.text = s }

// SetNumber displays an integer.
func (t *Text) SetNumber(n int) {
	t.text = strconv.Itoa(n)
}

// SetFloat displays a real number with the given decimal precision.
func (t *Text) SetFloat(f float64, precision int) {
	t.text = strconv.FormatFloat(f, 'f', max(precision, 0), 64)
}

// SetSize sets the text size, never below MinTextSize.
func (t *Text) SetSize(size float64) {
	t.size = max(size, MinTextSize)
}

func (t *Text) SetPosition(p Vector2)    { t.position = p }
func (t *Text) SetAlignment(a Alignment) { t.alignment = a }
func (t *Text) SetFill(color Color)      { t.fill = color }
func (t *Text) SetEdge(color Color)      { t.edge = color }

func (t *Text) SetEdgeSize(size float64) {
	t.edgeSize = max(size, 0)
}

func (t *Text) SetColors(fill, edge Color) {
	t.fill = fill
	t.edge = edge
}
