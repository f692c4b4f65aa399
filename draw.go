package sprig

import "errors"

// Frame carries everything a node needs while painting one frame.
type Frame struct {
	Canvas   Canvas
	Theme    *Theme
	Viewport Rect
	// Focused is the text input holding keyboard focus, or nil.
	Focused *Node

	report func(error)
	nodes  int
}

// NewFrame returns a frame painting onto c. Subtree failures are passed to
// report; a nil report discards them.
func NewFrame(c Canvas, theme *Theme, report func(error)) *Frame {
	if theme == nil {
		theme = NewTheme()
	}
	w, h := c.Size()
	return &Frame{
		Canvas:   c,
		Theme:    theme,
		Viewport: Rect{Width: w, Height: h},
		report:   report,
	}
}

// Color resolves a color name through the frame's theme.
func (f *Frame) Color(name string) Color {
	return f.Theme.Resolve(name)
}

// Nodes returns how many nodes have been visited so far this frame.
func (f *Frame) Nodes() int {
	return f.nodes
}

// Draw paints the node and then its children in list order. Layout nodes
// arrange their children first.
//
// The returned error covers the node's own painting only. A failing child is
// reported to the frame as a *DrawError naming the child, and painting moves
// on to its siblings. A panic anywhere in the node's own work is returned as
// a *PanicError.
func (n *Node) Draw(f *Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverPanic("draw", r)
		}
	}()

	f.nodes++
	opacity := n.Opacity.Get()
	if opacity <= 0 {
		return nil
	}
	if n.Type == NodeTypeDialog {
		if !n.IsOpen() {
			return nil
		}
		n.centerIn(f.Viewport)
	}
	if opacity < 1 {
		f.Canvas.PushOpacity(opacity)
		defer f.Canvas.PopOpacity()
	}

	n.Arrange()
	err = n.paint(f)

	if n.Type == NodeTypeScrollView {
		f.Canvas.PushClip(n.Bounds())
		defer f.Canvas.PopClip()
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		f.drawChild(c)
	}
	return err
}

// drawChild paints c and reports, rather than returns, its failure.
func (f *Frame) drawChild(c *Node) {
	err := c.Draw(f)
	if err == nil {
		return
	}
	kind := KindPaint
	var pe *PanicError
	if errors.As(err, &pe) {
		kind = KindPanic
	}
	f.reportErr(&DrawError{Node: c.String(), Kind: kind, Err: err})
}

func (f *Frame) reportErr(err error) {
	if f.report != nil {
		f.report(err)
	}
}

// centerIn places a dialog in the middle of the viewport and stacks its
// content below the title.
func (n *Node) centerIn(vp Rect) {
	x := vp.X + (vp.Width-n.width)/2
	y := vp.Y + (vp.Height-n.height)/2
	n.SetPos(x, y)

	offset := y + dialogContentTop
	for _, c := range n.children {
		if c == nil {
			continue
		}
		c.SetPos(x+dialogPadding, offset)
		offset += c.height + dialogPadding
	}
}
