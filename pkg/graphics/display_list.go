package graphics

// DisplayList is a recorded sequence of canvas calls that can be replayed
// onto any Canvas. It is not modified after EndRecording.
type DisplayList struct {
	calls []func(Canvas)
	size  Size
}

// Paint replays the recorded calls onto canvas in order.
func (d *DisplayList) Paint(canvas Canvas) {
	if d == nil {
		return
	}
	for _, call := range d.calls {
		call(canvas)
	}
}

// Size returns the canvas size the list was recorded against.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.calls)
}

// PictureRecorder captures canvas calls into a DisplayList. The zero
// value is ready to use.
type PictureRecorder struct {
	canvas *recordingCanvas
}

// BeginRecording returns a canvas whose calls are captured until
// EndRecording. A recording already in progress is discarded.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.canvas = &recordingCanvas{size: size}
	return r.canvas
}

// EndRecording stops capturing and returns what was drawn. Later calls
// on the recording canvas are dropped.
func (r *PictureRecorder) EndRecording() *DisplayList {
	c := r.canvas
	if c == nil {
		return &DisplayList{}
	}
	r.canvas = nil
	c.done = true
	return &DisplayList{calls: c.calls, size: c.size}
}

type recordingCanvas struct {
	calls []func(Canvas)
	size  Size
	done  bool
}

func (c *recordingCanvas) add(call func(Canvas)) {
	if !c.done {
		c.calls = append(c.calls, call)
	}
}

func (c *recordingCanvas) Save()    { c.add(Canvas.Save) }
func (c *recordingCanvas) Restore() { c.add(Canvas.Restore) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.add(func(cv Canvas) { cv.Translate(dx, dy) })
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.add(func(cv Canvas) { cv.ClipRect(rect) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.add(func(cv Canvas) { cv.Clear(color) })
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.add(func(cv Canvas) { cv.DrawRect(rect, paint) })
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.add(func(cv Canvas) { cv.DrawRRect(rrect, paint) })
}

// DrawPath records a copy of path so the caller may keep editing it.
func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	snapshot := copyPath(path)
	c.add(func(cv Canvas) { cv.DrawPath(snapshot, paint) })
}

func (c *recordingCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	c.add(func(cv Canvas) { cv.DrawRRectShadow(rrect, shadow) })
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.add(func(cv Canvas) { cv.DrawText(layout, position) })
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

func copyPath(path *Path) *Path {
	if path == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(path.Commands))}
	for i, cmd := range path.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}
