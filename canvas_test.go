package sprig

import (
	"image"
	"image/color"
	"math"
	"testing"
	"unicode/utf8"
)

// --- Test doubles ---

// canvasOp is one recorded Canvas call.
type canvasOp struct {
	name string
	r    Rect
	c    Color
	s    string
	v    float64
}

// recordCanvas records every call instead of painting. Text measures half
// the font size per rune.
type recordCanvas struct {
	w, h float64
	ops  []canvasOp

	clipDepth    int
	opacityDepth int
	maxOpacity   int

	// panicOnText makes FillText panic for this string.
	panicOnText string
	// panicOnClear makes Clear panic.
	panicOnClear bool
}

func newRecordCanvas(w, h float64) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordCanvas) Clear(cl Color) {
	if c.panicOnClear {
		panic("clear failed")
	}
	c.ops = append(c.ops, canvasOp{name: "clear", c: cl})
}

func (c *recordCanvas) FillRect(r Rect, cl Color) {
	c.ops = append(c.ops, canvasOp{name: "fillRect", r: r, c: cl})
}

func (c *recordCanvas) StrokeRect(r Rect, width float64, cl Color) {
	c.ops = append(c.ops, canvasOp{name: "strokeRect", r: r, c: cl, v: width})
}

func (c *recordCanvas) FillRoundRect(r Rect, radius float64, cl Color) {
	c.ops = append(c.ops, canvasOp{name: "fillRoundRect", r: r, c: cl, v: radius})
}

func (c *recordCanvas) FillEllipse(r Rect, cl Color) {
	c.ops = append(c.ops, canvasOp{name: "fillEllipse", r: r, c: cl})
}

func (c *recordCanvas) StrokePath(points []Vec2, width float64, cl Color) {
	c.ops = append(c.ops, canvasOp{name: "strokePath", c: cl, v: width})
}

func (c *recordCanvas) FillText(s string, x, y, size float64, cl Color) {
	if c.panicOnText != "" && s == c.panicOnText {
		panic("text failed: " + s)
	}
	c.ops = append(c.ops, canvasOp{name: "fillText", r: Rect{X: x, Y: y}, c: cl, s: s, v: size})
}

func (c *recordCanvas) MeasureText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

func (c *recordCanvas) PushClip(r Rect) {
	c.clipDepth++
	c.ops = append(c.ops, canvasOp{name: "pushClip", r: r})
}

func (c *recordCanvas) PopClip() {
	c.clipDepth--
	c.ops = append(c.ops, canvasOp{name: "popClip"})
}

func (c *recordCanvas) PushOpacity(a float64) {
	c.opacityDepth++
	c.maxOpacity = max(c.maxOpacity, c.opacityDepth)
	c.ops = append(c.ops, canvasOp{name: "pushOpacity", v: a})
}

func (c *recordCanvas) PopOpacity() {
	c.opacityDepth--
	c.ops = append(c.ops, canvasOp{name: "popOpacity"})
}

// Snapshot implements Snapshotter with a solid image of the canvas size.
func (c *recordCanvas) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(c.w), int(c.h)))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// opsNamed returns the recorded ops with the given name, in order.
func (c *recordCanvas) opsNamed(name string) []canvasOp {
	var out []canvasOp
	for _, op := range c.ops {
		if op.name == name {
			out = append(out, op)
		}
	}
	return out
}

// texts returns the strings passed to FillText, in order.
func (c *recordCanvas) texts() []string {
	var out []string
	for _, op := range c.opsNamed("fillText") {
		out = append(out, op.s)
	}
	return out
}

// manualScheduler holds frame requests until the test runs them.
type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// runNext runs the oldest pending frame and reports whether there was one.
func (s *manualScheduler) runNext() bool {
	if len(s.pending) == 0 {
		return false
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	fn()
	return true
}

// recordHandler collects reported failures.
type recordHandler struct {
	errs   []error
	panics []*PanicError
}

func (h *recordHandler) HandleError(err error)       { h.errs = append(h.errs, err) }
func (h *recordHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

// recordSink collects interaction events.
type recordSink struct {
	events []InteractionEvent
}

func (s *recordSink) EmitEvent(ev InteractionEvent) { s.events = append(s.events, ev) }

func (s *recordSink) types() []EventType {
	var out []EventType
	for _, ev := range s.events {
		out = append(out, ev.Type)
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

// --- Helpers used by the ebiten canvas ---

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 127, 0, 128}},
		{1, color.NRGBA{10, 20, 30, 255}},
		{2, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRecordCanvasSatisfiesInterfaces(t *testing.T) {
	var _ Canvas = newRecordCanvas(1, 1)
	var _ Snapshotter = newRecordCanvas(1, 1)
	var _ Canvas = (*EbitenCanvas)(nil)
	var _ Snapshotter = (*EbitenCanvas)(nil)
	var _ FrameScheduler = (*manualScheduler)(nil)
	var _ FrameScheduler = (*ebitenScheduler)(nil)
}

func TestEbitenSchedulerRunsPendingOnce(t *testing.T) {
	var s ebitenScheduler
	calls := 0
	s.RequestFrame(func() { calls++ })
	s.run()
	s.run()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
