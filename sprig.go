package sprig

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite and ColorBlack are the two colors every theme can fall back to.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// WithAlpha returns c with its alpha multiplied by a (clamped to [0, 1]).
func (c Color) WithAlpha(a float64) Color {
	c.A *= clamp01(a)
	return c
}

// RGBA converts c to a premultiplied color.RGBA for the drawing backend.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. The result never has negative extents.
func (r Rect) Inset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	r.Width = math.Max(0, r.Width-2*dx)
	r.Height = math.Max(0, r.Height-2*dy)
	return r
}

// Hint is an optional size hint. A zero Hint declares nothing, so the node
// keeps its explicit size along that axis.
type Hint struct {
	Weight float64
	Valid  bool
}

// NoHint is the absent hint.
var NoHint = Hint{}

// Weight returns a hint declaring the given proportional weight.
func Weight(w float64) Hint {
	return Hint{Weight: w, Valid: true}
}

// NodeType selects painting and hit-testing behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer   NodeType = iota // plain group, paints only its children
	NodeTypeBoxLayout                   // linear row/column layout
	NodeTypeGridLayout                  // fixed-column grid layout
	NodeTypeScrollView                  // clips and scrolls its children vertically
	NodeTypeScreen                      // named top-level node for a ScreenManager
	NodeTypeLabel                       // single line of text
	NodeTypeButton                      // pressable rounded rectangle with a caption
	NodeTypeTextInput                   // focusable single-line text field
	NodeTypeSlider                      // draggable continuous value
	NodeTypeSwitch                      // two-state toggle (also used as a checkbox)
	NodeTypeProgressBar                 // filled fraction of a maximum
	NodeTypeRectangle                   // solid color block
	NodeTypeToolbar                     // titled bar at the top of a screen
	NodeTypeCard                        // surface with an elevation shadow
	NodeTypeDialog                      // centered modal box, painted only while open
	NodeTypeLine                        // stroked polyline
	NodeTypeEllipse                     // filled ellipse
	NodeTypeImage                       // image placeholder
)

var nodeTypeNames = [...]string{
	NodeTypeContainer:   "Container",
	NodeTypeBoxLayout:   "BoxLayout",
	NodeTypeGridLayout:  "GridLayout",
	NodeTypeScrollView:  "ScrollView",
	NodeTypeScreen:      "Screen",
	NodeTypeLabel:       "Label",
	NodeTypeButton:      "Button",
	NodeTypeTextInput:   "TextInput",
	NodeTypeSlider:      "Slider",
	NodeTypeSwitch:      "Switch",
	NodeTypeProgressBar: "ProgressBar",
	NodeTypeRectangle:   "Rectangle",
	NodeTypeToolbar:     "Toolbar",
	NodeTypeCard:        "Card",
	NodeTypeDialog:      "Dialog",
	NodeTypeLine:        "Line",
	NodeTypeEllipse:     "Ellipse",
	NodeTypeImage:       "Image",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// Orientation is the main axis of a BoxLayout.
type Orientation uint8

const (
	Horizontal Orientation = iota // children laid out left to right
	Vertical                      // children laid out top to bottom
)

// EventType identifies a kind of interaction event delivered to an EventSink.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer-down was consumed by a node
	EventPointerMove                  // the pointer moved while a drag was held
	EventPointerUp                    // the pointer was released
	EventFocus                        // a text input claimed keyboard focus
	EventBlur                         // keyboard focus was dropped
	EventDragStart                    // a continuous-value widget claimed the drag
	EventDragEnd                      // the active drag was released
	EventKey                          // a key was delivered to the focused input
	EventScreenSwitch                 // the current screen changed
)

// Dp converts a density-independent value to whole pixels, rounding up.
func Dp(v float64) float64 {
	return math.Ceil(v)
}

// iconGlyphs maps a few common icon names to single-glyph fallbacks.
var iconGlyphs = map[string]string{
	"close": "✕",
	"add":   "➕",
	"cog":   "⚙",
	"star":  "★",
}

// IconGlyph returns the glyph for a known icon name, or the first rune of the
// name itself, or "?" when the name is empty.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	for _, r := range name {
		return string(r)
	}
	return "?"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
