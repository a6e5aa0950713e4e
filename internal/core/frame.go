package core

import (
	"strings"
)

// Blank is the glyph every cell of a new frame starts with.
const Blank = ' '

// Cell is a single character position of a frame.
type Cell struct {
	Glyph rune
	Color Color
}

// BlankCell is the default content of a frame cell.
var BlankCell = Cell{Glyph: Blank}

// Frame is a fixed-size grid of cells representing one rendered moment.
// A new frame is built every tick and handed over to the renderer; once it
// has been sent the producer must not touch it again.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame creates a frame of the given size filled with blank cells.
// Negative dimensions are treated as zero.
func NewFrame(width, height int) Frame {
	width = Max(width, 0)
	height = Max(height, 0)

	f := Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range f.cells {
		f.cells[i] = BlankCell
	}
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// InBounds reports whether (col, row) addresses a cell of the frame.
func (f *Frame) InBounds(col, row int) bool {
	return col >= 0 && col < f.width && row >= 0 && row < f.height
}

// Set places a glyph with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(col, row int, glyph rune) {
	f.SetCell(col, row, Cell{Glyph: glyph})
}

// SetColored places a glyph with the given color.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) SetColored(col, row int, glyph rune, color Color) {
	f.SetCell(col, row, Cell{Glyph: glyph, Color: color})
}

// SetCell overwrites a whole cell.
// Out-of-bounds coordinates are silently ignored: entities keep themselves
// inside the field, so a stray write is dropped instead of failing the tick.
func (f *Frame) SetCell(col, row int, c Cell) {
	if !f.InBounds(col, row) {
		return
	}
	f.cells[row*f.width+col] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (f *Frame) Get(col, row int) Cell {
	if !f.InBounds(col, row) {
		return BlankCell
	}
	return f.cells[row*f.width+col]
}

// DrawText writes a string horizontally starting at (col, row).
// Characters that extend beyond the frame are clipped.
func (f *Frame) DrawText(col, row int, text string, color Color) {
	i := 0
	for _, r := range text {
		f.SetColored(col+i, row, r, color)
		i++
	}
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() Frame {
	c := Frame{
		width:  f.width,
		height: f.height,
		cells:  make([]Cell, len(f.cells)),
	}
	copy(c.cells, f.cells)
	return c
}

// Row returns the glyphs of the given row as a string.
func (f *Frame) Row(row int) string {
	if row < 0 || row >= f.height {
		return strings.Repeat(string(Blank), f.width)
	}
	var sb strings.Builder
	sb.Grow(f.width)
	for _, c := range f.cells[row*f.width : (row+1)*f.width] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// String converts the frame to text, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}
