package sprig

import (
	"errors"
	"fmt"
)

// Skin errors. Paint returns them instead of dividing by zero.
var (
	ErrEmptyRange  = errors.New("sprig: slider range is empty")
	ErrNoMaximum   = errors.New("sprig: progress maximum must be positive")
	ErrShortPath   = errors.New("sprig: line needs at least two points")
	ErrUnknownType = errors.New("sprig: unknown node type")
)

const (
	buttonPadding    = 10
	minButtonFont    = 8
	textInputPadding = 5
	toolbarFontSize  = 20
	dialogTitleSize  = 18
	dialogPadding    = 10
	dialogContentTop = 60
	cardShadowAlpha  = 0.25
)

// paint draws the node's own visual. Group and layout nodes have none.
func (n *Node) paint(f *Frame) error {
	switch n.Type {
	case NodeTypeContainer, NodeTypeBoxLayout, NodeTypeGridLayout,
		NodeTypeScrollView, NodeTypeScreen:
		return nil
	case NodeTypeLabel:
		n.paintLabel(f)
	case NodeTypeButton:
		n.paintButton(f)
	case NodeTypeTextInput:
		n.paintTextInput(f)
	case NodeTypeSlider:
		return n.paintSlider(f)
	case NodeTypeSwitch:
		n.paintSwitch(f)
	case NodeTypeProgressBar:
		return n.paintProgress(f)
	case NodeTypeRectangle:
		f.Canvas.FillRect(n.Bounds(), f.Color(n.Color))
	case NodeTypeToolbar:
		n.paintToolbar(f)
	case NodeTypeCard:
		n.paintCard(f)
	case NodeTypeDialog:
		n.paintDialog(f)
	case NodeTypeLine:
		if len(n.Points) < 2 {
			return fmt.Errorf("%d points: %w", len(n.Points), ErrShortPath)
		}
		f.Canvas.StrokePath(n.Points, n.LineWidth, f.Color(n.Color))
	case NodeTypeEllipse:
		f.Canvas.FillEllipse(n.Bounds(), f.Color(n.Color))
	case NodeTypeImage:
		f.Canvas.FillRect(n.Bounds(), f.Color("gray"))
	default:
		return fmt.Errorf("%v: %w", n.Type, ErrUnknownType)
	}
	return nil
}

func (n *Node) paintLabel(f *Frame) {
	size := n.FontSize
	f.Canvas.FillText(n.Text.Get(), n.X(), n.Y()+(n.height-size)/2, size, f.Color(n.Color))
}

// paintButton shrinks the caption one step at a time until it fits between
// the paddings, down to minButtonFont, and clips whatever still overflows.
func (n *Node) paintButton(f *Frame) {
	b := n.Bounds()
	f.Canvas.FillRoundRect(b, n.Radius, f.Color(n.BgColor))

	text := n.Text.Get()
	size := n.FontSize
	tw := f.Canvas.MeasureText(text, size)
	for tw+buttonPadding*2 > b.Width && size > minButtonFont {
		size--
		tw = f.Canvas.MeasureText(text, size)
	}

	f.Canvas.PushClip(b.Inset(buttonPadding, 2))
	defer f.Canvas.PopClip()
	f.Canvas.FillText(text, b.X+(b.Width-tw)/2, b.Y+(b.Height-size)/2, size, f.Color(n.TextColor))
}

func (n *Node) paintTextInput(f *Frame) {
	b := n.Bounds()
	f.Canvas.FillRect(b, f.Color(n.BgColor))
	text := n.Text.Get()
	f.Canvas.FillText(text, b.X+textInputPadding, b.Y+(b.Height-n.FontSize)/2, n.FontSize, f.Color(n.Color))
	if f.Focused == n {
		tw := f.Canvas.MeasureText(text, n.FontSize)
		cursor := Rect{X: b.X + textInputPadding + tw + 1, Y: b.Y + 4, Width: 1, Height: b.Height - 8}
		f.Canvas.FillRect(cursor, f.Color("black"))
	}
}

func (n *Node) paintSlider(f *Frame) error {
	if n.Max == n.Min {
		return fmt.Errorf("[%g, %g]: %w", n.Min, n.Max, ErrEmptyRange)
	}
	b := n.Bounds()
	f.Canvas.FillRect(Rect{X: b.X, Y: b.Y + b.Height/3, Width: b.Width, Height: b.Height / 3}, f.Color("gray"))

	frac := clamp01((n.Value.Get() - n.Min) / (n.Max - n.Min))
	cx := b.X + frac*b.Width
	r := b.Height / 2
	f.Canvas.FillEllipse(Rect{X: cx - r, Y: b.Y, Width: 2 * r, Height: 2 * r}, f.Color("primary"))
	return nil
}

func (n *Node) paintSwitch(f *Frame) {
	b := n.Bounds()
	track := "gray"
	if n.Active.Get() {
		track = "primary"
	}
	f.Canvas.FillRect(b, f.Color(track))

	d := max(b.Height-4, 0)
	x := b.X + 2
	if n.Active.Get() {
		x = b.X + b.Width - d - 2
	}
	f.Canvas.FillEllipse(Rect{X: x, Y: b.Y + 2, Width: d, Height: d}, f.Color("white"))
}

func (n *Node) paintProgress(f *Frame) error {
	if n.Max <= 0 {
		return fmt.Errorf("max %g: %w", n.Max, ErrNoMaximum)
	}
	b := n.Bounds()
	f.Canvas.FillRect(b, f.Color("gray"))
	filled := b
	filled.Width = b.Width * clamp01(n.Value.Get()/n.Max)
	f.Canvas.FillRect(filled, f.Color("accent"))
	return nil
}

func (n *Node) paintToolbar(f *Frame) {
	b := n.Bounds()
	f.Canvas.FillRect(b, f.Color("primary"))
	f.Canvas.FillText(n.Title, b.X+10, b.Y+(b.Height-toolbarFontSize)/2, toolbarFontSize, f.Color("white"))
}

// paintCard approximates the elevation shadow with a translucent block offset
// downward by half the elevation.
func (n *Node) paintCard(f *Frame) {
	b := n.Bounds()
	if n.Elevation > 0 {
		shadow := b
		shadow.Y += n.Elevation / 2
		f.Canvas.FillRect(shadow, ColorBlack.WithAlpha(cardShadowAlpha))
	}
	f.Canvas.FillRect(b, f.Color("white"))
}

func (n *Node) paintDialog(f *Frame) {
	b := n.Bounds()
	f.Canvas.FillRect(b, f.Color("white"))
	f.Canvas.StrokeRect(b, 1, f.Color("gray"))
	black := f.Color("black")
	f.Canvas.FillText(n.Title, b.X+dialogPadding, b.Y+dialogPadding, dialogTitleSize, black)
	f.Canvas.FillText(n.Text.Get(), b.X+dialogPadding, b.Y+dialogPadding+dialogTitleSize+8, n.FontSize, black)
}
