package core

// Drawable is anything that can paint its own state into a frame.
//
// Drawables are invoked in sequence once per tick. Later drawables overwrite
// earlier ones on shared cells, so the order of the sequence is the z-order.
type Drawable interface {
	Draw(f *Frame)
}

// DrawAll paints every drawable into the frame in order.
func DrawAll(f *Frame, drawables ...Drawable) {
	for _, d := range drawables {
		d.Draw(f)
	}
}
