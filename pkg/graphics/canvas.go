package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawRRectShadow draws a shadow behind a rounded rectangle using the
	// host's native blur.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)

	// DrawText draws a laid-out text block with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
