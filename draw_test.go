package sprig

import (
	"errors"
	"testing"
)

// drawTree paints root onto a fresh canvas and returns the canvas together
// with every reported subtree failure.
func drawTree(t *testing.T, root *Node, w, h float64) (*recordCanvas, []error) {
	t.Helper()
	c := newRecordCanvas(w, h)
	var reported []error
	f := NewFrame(c, nil, func(err error) { reported = append(reported, err) })
	if err := root.Draw(f); err != nil {
		t.Fatalf("root Draw: %v", err)
	}
	return c, reported
}

func TestDrawPaintOrder(t *testing.T) {
	root := NewContainer("root")
	a := NewRectangle("a", "#010101")
	group := NewContainer("group")
	b := NewRectangle("b", "#020202")
	group.AddWidget(b)
	c := NewRectangle("c", "#030303")
	root.AddWidget(a)
	root.AddWidget(group)
	root.AddWidget(c)

	canvas, reported := drawTree(t, root, 100, 100)
	if len(reported) != 0 {
		t.Fatalf("reported = %v", reported)
	}

	fills := canvas.opsNamed("fillRect")
	if len(fills) != 3 {
		t.Fatalf("fillRect count = %d, want 3", len(fills))
	}
	for i, want := range []string{"#010101", "#020202", "#030303"} {
		wantColor, _ := ParseColor(want)
		if fills[i].c != wantColor {
			t.Errorf("fill %d color = %v, want %v", i, fills[i].c, wantColor)
		}
	}
}

func TestDrawFailingChildIsolated(t *testing.T) {
	tests := []struct {
		name    string
		bad     *Node
		wantErr error
	}{
		{"empty slider range", NewSlider("bad", 5, 5), ErrEmptyRange},
		{"zero progress max", NewProgressBar("bad", 0), ErrNoMaximum},
		{"short line", NewLine("bad", []Vec2{{1, 1}}, 2, "black"), ErrShortPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewContainer("root")
			root.AddWidget(tt.bad)
			root.AddWidget(NewLabel("after", "still here"))

			canvas, reported := drawTree(t, root, 200, 100)

			if len(reported) != 1 {
				t.Fatalf("reported %d errors, want 1", len(reported))
			}
			var de *DrawError
			if !errors.As(reported[0], &de) {
				t.Fatalf("reported %T, want *DrawError", reported[0])
			}
			if de.Node != tt.bad.String() || de.Kind != KindPaint {
				t.Errorf("DrawError node=%q kind=%v", de.Node, de.Kind)
			}
			if !errors.Is(reported[0], tt.wantErr) {
				t.Errorf("error %v does not wrap %v", reported[0], tt.wantErr)
			}
			if got := canvas.texts(); len(got) != 1 || got[0] != "still here" {
				t.Errorf("texts = %q, sibling not painted", got)
			}
		})
	}
}

func TestDrawPanicIsolated(t *testing.T) {
	root := NewContainer("root")
	faded := NewContainer("faded")
	faded.Opacity.Set(0.5)
	btn := NewButton("btn", "boom")
	faded.AddWidget(btn)
	faded.AddWidget(NewLabel("next", "ok"))
	root.AddWidget(faded)

	c := newRecordCanvas(200, 100)
	c.panicOnText = "boom"
	var reported []error
	f := NewFrame(c, nil, func(err error) { reported = append(reported, err) })
	if err := root.Draw(f); err != nil {
		t.Fatalf("root Draw: %v", err)
	}

	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	var de *DrawError
	if !errors.As(reported[0], &de) || de.Kind != KindPanic {
		t.Fatalf("reported %v, want a panic DrawError", reported[0])
	}
	var pe *PanicError
	if !errors.As(reported[0], &pe) || pe.Op != "draw" {
		t.Errorf("underlying error = %v, want *PanicError from draw", de.Err)
	}
	if c.clipDepth != 0 || c.opacityDepth != 0 {
		t.Errorf("unbalanced stacks: clip=%d opacity=%d", c.clipDepth, c.opacityDepth)
	}
	if got := c.texts(); len(got) != 1 || got[0] != "ok" {
		t.Errorf("texts = %q", got)
	}
}

func TestDrawRootFailureReturned(t *testing.T) {
	c := newRecordCanvas(10, 10)
	err := NewSlider("s", 1, 1).Draw(NewFrame(c, nil, nil))
	if !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Draw = %v, want ErrEmptyRange", err)
	}
}

func TestDrawOpacity(t *testing.T) {
	t.Run("zero skips subtree", func(t *testing.T) {
		r := NewRectangle("r", "red")
		r.Opacity.Set(0)
		r.AddWidget(NewLabel("child", "hidden"))
		c, _ := drawTree(t, r, 100, 100)
		if len(c.ops) != 0 {
			t.Errorf("ops = %v, want none", c.ops)
		}
	})
	t.Run("partial pushes and pops", func(t *testing.T) {
		r := NewRectangle("r", "red")
		r.Opacity.Set(0.5)
		c, _ := drawTree(t, r, 100, 100)
		if len(c.ops) != 3 {
			t.Fatalf("ops = %v", c.ops)
		}
		if c.ops[0].name != "pushOpacity" || c.ops[0].v != 0.5 ||
			c.ops[1].name != "fillRect" || c.ops[2].name != "popOpacity" {
			t.Errorf("ops = %v", c.ops)
		}
	})
	t.Run("opaque pushes nothing", func(t *testing.T) {
		c, _ := drawTree(t, NewRectangle("r", "red"), 100, 100)
		if len(c.opsNamed("pushOpacity")) != 0 {
			t.Error("opacity pushed for an opaque node")
		}
	})
}

func TestDrawDialog(t *testing.T) {
	dlg := NewDialog("dlg", "Title", "Body")
	content := NewLabel("content", "inside")
	content.SetSize(100, 20)
	dlg.AddWidget(content)

	c, _ := drawTree(t, dlg, 800, 600)
	if len(c.ops) != 0 {
		t.Fatalf("closed dialog painted %v", c.ops)
	}

	dlg.Open()
	c, _ = drawTree(t, dlg, 800, 600)
	if dlg.X() != 250 || dlg.Y() != 200 {
		t.Errorf("dialog at (%v,%v), want (250,200)", dlg.X(), dlg.Y())
	}
	if content.X() != 260 || content.Y() != 260 {
		t.Errorf("content at (%v,%v), want (260,260)", content.X(), content.Y())
	}
	want := []string{"Title", "Body", "inside"}
	got := c.texts()
	if len(got) != len(want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(c.opsNamed("strokeRect")) != 1 {
		t.Error("dialog border not stroked")
	}
}

func TestDrawTextInputCursor(t *testing.T) {
	in := NewTextInput("in", "abc")
	in.SetSize(200, 30)

	c := newRecordCanvas(300, 100)
	f := NewFrame(c, nil, nil)
	_ = in.Draw(f)
	if n := len(c.opsNamed("fillRect")); n != 1 {
		t.Fatalf("unfocused fillRect count = %d, want 1", n)
	}

	c = newRecordCanvas(300, 100)
	f = NewFrame(c, nil, nil)
	f.Focused = in
	_ = in.Draw(f)
	fills := c.opsNamed("fillRect")
	if len(fills) != 2 {
		t.Fatalf("focused fillRect count = %d, want 2", len(fills))
	}
	// 3 runes at 16pt measure 24.
	if cursor := fills[1]; cursor.r.X != textInputPadding+24+1 || cursor.r.Width != 1 {
		t.Errorf("cursor rect = %+v", cursor.r)
	}
}

func TestDrawButtonShrinksCaption(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		wantSize float64
	}{
		{"fits", 300, 16},
		{"shrinks to fit", 80, 12},
		{"stops at minimum", 30, minButtonFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			btn := NewButton("b", "abcdefghij")
			btn.SetSize(tt.width, 40)
			c, _ := drawTree(t, btn, 400, 100)
			texts := c.opsNamed("fillText")
			if len(texts) != 1 {
				t.Fatalf("fillText count = %d", len(texts))
			}
			if texts[0].v != tt.wantSize {
				t.Errorf("font size = %v, want %v", texts[0].v, tt.wantSize)
			}
			if c.clipDepth != 0 {
				t.Errorf("clip depth = %d", c.clipDepth)
			}
		})
	}
}

func TestDrawSliderThumb(t *testing.T) {
	s := NewSlider("s", 0, 10)
	s.SetSize(100, 20)
	c, _ := drawTree(t, s, 200, 100)
	thumbs := c.opsNamed("fillEllipse")
	if len(thumbs) != 1 {
		t.Fatalf("fillEllipse count = %d", len(thumbs))
	}
	if thumbs[0].r.X != 40 || thumbs[0].r.Width != 20 {
		t.Errorf("thumb = %+v, want centered at x=50", thumbs[0].r)
	}
}

func TestDrawScrollViewClipsChildren(t *testing.T) {
	sv := NewScrollView("sv")
	sv.SetSize(100, 50)
	sv.AddWidget(NewRectangle("r", "blue"))

	c, _ := drawTree(t, sv, 100, 100)
	var names []string
	for _, op := range c.ops {
		names = append(names, op.name)
	}
	want := []string{"pushClip", "fillRect", "popClip"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDrawResolvesThemeColors(t *testing.T) {
	tests := []struct {
		color string
		want  Color
	}{
		{"red", rgb(220, 20, 60)},
		{"RED", rgb(220, 20, 60)},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"no-such-color", ColorBlack},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			c, _ := drawTree(t, NewRectangle("r", tt.color), 10, 10)
			fills := c.opsNamed("fillRect")
			if len(fills) != 1 || fills[0].c != tt.want {
				t.Errorf("fills = %v, want color %v", fills, tt.want)
			}
		})
	}
}

func TestDrawSkipsNilChildren(t *testing.T) {
	root := NewContainer("root")
	root.children = append(root.children, nil)
	root.AddWidget(NewRectangle("r", "red"))
	c, reported := drawTree(t, root, 10, 10)
	if len(reported) != 0 || len(c.opsNamed("fillRect")) != 1 {
		t.Errorf("reported=%v ops=%v", reported, c.ops)
	}
}

func TestFrameCountsNodes(t *testing.T) {
	root := NewContainer("root")
	for range 3 {
		root.AddWidget(NewContainer("c"))
	}
	c := newRecordCanvas(10, 10)
	f := NewFrame(c, nil, nil)
	_ = root.Draw(f)
	if f.Nodes() != 4 {
		t.Errorf("Nodes = %d, want 4", f.Nodes())
	}
	if f.Viewport != (Rect{Width: 10, Height: 10}) {
		t.Errorf("Viewport = %+v", f.Viewport)
	}
}
