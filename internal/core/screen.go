package core

import (
	"math"
	"strings"
)

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// CellBuffer is a 2D grid of colored terminal cells. It implements Screen by
// rasterizing world-space shapes through a viewport that maps a worldW x worldH
// playfield onto the grid, so games draw in their own units while the host
// decides the resolution.
type CellBuffer struct {
	width  int
	height int
	worldW float64
	worldH float64
	cells  [][]Cell
}

// NewCellBuffer creates a width x height grid showing a worldW x worldH playfield.
func NewCellBuffer(width, height int, worldW, worldH float64) *CellBuffer {
	b := &CellBuffer{
		width:  max(width, 1),
		height: max(height, 1),
		worldW: worldW,
		worldH: worldH,
	}
	b.allocate()
	b.Clear(ColorBlack)
	return b
}

func (b *CellBuffer) allocate() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
}

// Width returns the grid width in cells.
func (b *CellBuffer) Width() int {
	return b.width
}

// Height returns the grid height in cells.
func (b *CellBuffer) Height() int {
	return b.height
}

// Resize changes the grid dimensions. Content is discarded; the next frame
// repaints everything.
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.allocate()
	b.Clear(ColorBlack)
}

// SetWorld changes the playfield dimensions mapped onto the grid.
func (b *CellBuffer) SetWorld(worldW, worldH float64) {
	b.worldW = worldW
	b.worldH = worldH
}

// cellSize returns the world extent of one cell.
func (b *CellBuffer) cellSize() (sx, sy float64) {
	return b.worldW / float64(b.width), b.worldH / float64(b.height)
}

// ToCell converts a world position to the cell containing it.
func (b *CellBuffer) ToCell(p Vector2) (x, y int) {
	sx, sy := b.cellSize()
	return int(math.Floor(p.X / sx)), int(math.Floor(p.Y / sy))
}

func (b *CellBuffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear fills every cell with a blank on the given background.
func (b *CellBuffer) Clear(c Color) {
	bg := NewColorRGBA(c.Red(), c.Green(), c.Blue(), 1)
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Rune: ' ', Fg: ColorWhite, Bg: bg}
		}
	}
}

// paint composites c over the background of a cell.
func (b *CellBuffer) paint(x, y int, c Color) {
	if !b.inside(x, y) || c.Alpha() == 0 {
		return
	}
	cell := &b.cells[y][x]
	cell.Bg = c.Blended(cell.Bg, c.Alpha(), false)
	cell.Bg.SetAlpha(1)
}

// DrawCircle rasterizes a circle: cells whose centers fall inside the radius get
// the fill color, and the outer ring of at least one cell gets the edge color
// when the circle has an edge. A circle smaller than a cell still marks the
// cell holding its center.
func (b *CellBuffer) DrawCircle(c Circle) {
	sx, sy := b.cellSize()
	center := c.Position()
	r := c.Radius()
	ring := 0.0
	if c.EdgeSize() > 0 && c.EdgeColor().Alpha() > 0 {
		ring = max(c.EdgeSize(), math.Min(sx, sy))
	}

	minX, minY := b.ToCell(center.Sub(NewVector2(r, r)))
	maxX, maxY := b.ToCell(center.Add(NewVector2(r, r)))
	covered := false
	for y := max(minY, 0); y <= min(maxY, b.height-1); y++ {
		for x := max(minX, 0); x <= min(maxX, b.width-1); x++ {
			cellCenter := NewVector2((float64(x)+0.5)*sx, (float64(y)+0.5)*sy)
			d := cellCenter.Distance(center)
			if d >= r {
				continue
			}
			covered = true
			if ring > 0 && d >= r-ring {
				b.paint(x, y, c.EdgeColor())
			} else {
				b.paint(x, y, c.FillColor())
			}
		}
	}
	if !covered {
		x, y := b.ToCell(center)
		b.paint(x, y, c.FillColor())
	}
}

// DrawText writes the text one rune per cell, honoring its alignment. The text
// takes the fill color as foreground over whatever background is already there.
func (b *CellBuffer) DrawText(t Text) {
	runes := []rune(t.String())
	sx, sy := b.cellSize()
	dx, dy := t.Alignment().Offset(float64(len(runes))*sx, sy)
	x0, y := b.ToCell(t.Position().Add(NewVector2(dx, dy)))
	if !b.inside(0, y) {
		return
	}
	for i, r := range runes {
		x := x0 + i
		if !b.inside(x, y) {
			continue
		}
		cell := &b.cells[y][x]
		cell.Rune = r
		cell.Fg = t.FillColor().Blended(cell.Bg, t.FillColor().Alpha(), false)
		cell.Fg.SetAlpha(1)
	}
}

// PutString writes a string at cell coordinates, clipping at the edges.
func (b *CellBuffer) PutString(x, y int, s string, fg Color) {
	for i, r := range []rune(s) {
		if b.inside(x+i, y) {
			b.cells[y][x+i].Rune = r
			b.cells[y][x+i].Fg = fg
		}
	}
}

// Cell returns the cell at the given position, or a blank cell when out of bounds.
func (b *CellBuffer) Cell(x, y int) Cell {
	if !b.inside(x, y) {
		return Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}
	}
	return b.cells[y][x]
}

// String converts the grid to plain text, one line per row.
func (b *CellBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row as a string.
func (b *CellBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return strings.Repeat(" ", b.width)
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

var _ Screen = (*CellBuffer)(nil)
