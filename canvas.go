package sprig

// Canvas is the drawing surface the core paints on: a stateful 2D context
// with immediate effect. Colors arrive already resolved through the Theme.
//
// Opacity and clip calls nest; every Push must be matched by a Pop.
type Canvas interface {
	// Size reports the surface extent. The render loop reads it once per frame.
	Size() (width, height float64)
	// Clear fills the whole surface with c.
	Clear(c Color)

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillRoundRect(r Rect, radius float64, c Color)
	FillEllipse(r Rect, c Color)
	StrokePath(points []Vec2, width float64, c Color)

	// FillText draws a single line of text with its top-left corner at (x, y).
	FillText(s string, x, y, size float64, c Color)
	// MeasureText returns the advance width of a single line of text.
	MeasureText(s string, size float64) float64

	// PushClip restricts painting to r intersected with the current clip.
	PushClip(r Rect)
	PopClip()
	// PushOpacity multiplies the alpha of everything painted until PopOpacity.
	PushOpacity(a float64)
	PopOpacity()
}

// FrameScheduler runs a callback once, when the host is ready for the next
// frame. The render loop re-registers itself every tick.
type FrameScheduler interface {
	RequestFrame(fn func())
}
