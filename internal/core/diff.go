package core

// Change is a single cell that differs between two frames.
type Change struct {
	Col  int
	Row  int
	Cell Cell
}

// Diff returns the cells of next that differ from prev, in row-major order.
// If the frames have different dimensions every cell of next is reported.
func Diff(prev, next *Frame) []Change {
	if prev.width != next.width || prev.height != next.height {
		return Cells(next)
	}

	var changes []Change
	for i, c := range next.cells {
		if c == prev.cells[i] {
			continue
		}
		changes = append(changes, Change{
			Col:  i % next.width,
			Row:  i / next.width,
			Cell: c,
		})
	}
	return changes
}

// Cells returns every cell of the frame as a change, used for full redraws.
func Cells(f *Frame) []Change {
	changes := make([]Change, 0, len(f.cells))
	for i, c := range f.cells {
		changes = append(changes, Change{
			Col:  i % f.width,
			Row:  i / f.width,
			Cell: c,
		})
	}
	return changes
}
