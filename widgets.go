package sprig

// --- Layout constructors ---

// NewBoxLayout creates a linear layout along the given orientation.
func NewBoxLayout(name string, o Orientation) *Node {
	n := newNode(name, NodeTypeBoxLayout)
	n.Orientation = o
	n.Spacing.Set(5)
	return n
}

// NewGridLayout creates a grid layout with a fixed column count (at least 1).
func NewGridLayout(name string, cols int) *Node {
	n := newNode(name, NodeTypeGridLayout)
	n.Cols = max(cols, 1)
	return n
}

// NewScrollView creates a node that clips its children to its bounds and
// shifts them vertically according to ScrollY.
func NewScrollView(name string) *Node {
	return newNode(name, NodeTypeScrollView)
}

// NewScreen creates a named screen for a ScreenManager.
func NewScreen(name string) *Node {
	return newNode(name, NodeTypeScreen)
}

// --- Leaf widget constructors ---

// NewLabel creates a single line of text.
func NewLabel(name, text string) *Node {
	n := newNode(name, NodeTypeLabel)
	n.Text.Set(text)
	n.Color = "black"
	return n
}

// NewButton creates a pressable button with a caption.
func NewButton(name, text string) *Node {
	n := newNode(name, NodeTypeButton)
	n.Text.Set(text)
	n.BgColor = "gray"
	n.TextColor = "white"
	n.Radius = 5
	return n
}

// NewIconButton creates a square button showing the glyph for icon.
func NewIconButton(name, icon string) *Node {
	n := NewButton(name, IconGlyph(icon))
	n.SetSize(Dp(36), Dp(36))
	n.BgColor = "white"
	n.TextColor = "black"
	return n
}

// NewTextInput creates a focusable single-line text field.
func NewTextInput(name, text string) *Node {
	n := newNode(name, NodeTypeTextInput)
	n.Text.Set(text)
	n.Color = "black"
	n.BgColor = "white"
	return n
}

// NewSlider creates a slider over [lo, hi] starting at the midpoint.
func NewSlider(name string, lo, hi float64) *Node {
	n := newNode(name, NodeTypeSlider)
	n.Min, n.Max = lo, hi
	n.Value.Set((lo + hi) / 2)
	return n
}

// NewSwitch creates a two-state toggle.
func NewSwitch(name string, active bool) *Node {
	n := newNode(name, NodeTypeSwitch)
	n.Active.Set(active)
	return n
}

// NewCheckbox is a Switch under another name.
func NewCheckbox(name string, active bool) *Node {
	n := NewSwitch(name, active)
	n.SetSize(30, 30)
	return n
}

// NewProgressBar creates a progress bar filled to Value/Max.
func NewProgressBar(name string, maxValue float64) *Node {
	n := newNode(name, NodeTypeProgressBar)
	n.Max = maxValue
	return n
}

// NewRectangle creates a solid block of the named color.
func NewRectangle(name, color string) *Node {
	n := newNode(name, NodeTypeRectangle)
	n.Color = color
	return n
}

// NewToolbar creates a titled bar.
func NewToolbar(name, title string) *Node {
	n := newNode(name, NodeTypeToolbar)
	n.Title = title
	n.SetHeight(50)
	return n
}

// NewCard creates a white surface with a drop shadow sized by elevation.
func NewCard(name string, elevation float64) *Node {
	n := newNode(name, NodeTypeCard)
	n.Elevation = elevation
	return n
}

// NewDialog creates a closed dialog. It paints only while open.
func NewDialog(name, title, text string) *Node {
	n := newNode(name, NodeTypeDialog)
	n.Title = title
	n.Text.Set(text)
	n.SetSize(300, 200)
	return n
}

// NewLine creates a stroked polyline through points.
func NewLine(name string, points []Vec2, width float64, color string) *Node {
	n := newNode(name, NodeTypeLine)
	n.Points = points
	n.LineWidth = width
	n.Color = color
	return n
}

// NewEllipse creates an ellipse filling the node's bounds.
func NewEllipse(name, color string) *Node {
	n := newNode(name, NodeTypeEllipse)
	n.Color = color
	return n
}

// NewImage creates a placeholder for an image source.
func NewImage(name, source string) *Node {
	n := newNode(name, NodeTypeImage)
	n.Source = source
	return n
}

// --- Widget behavior ---

// SetValueFromX maps a horizontal surface coordinate onto the slider range,
// clamped to [Min, Max], and stores it. OnValue runs when the value changed.
func (n *Node) SetValueFromX(x float64) {
	w := n.Width()
	if w <= 0 {
		return
	}
	frac := clamp01((x - n.X()) / w)
	v := n.Min + frac*(n.Max-n.Min)
	if n.Value.Set(v) && n.OnValue != nil {
		n.OnValue(v)
	}
}

// Toggle flips a switch and runs OnActive.
func (n *Node) Toggle() {
	active := !n.Active.Get()
	n.Active.Set(active)
	if n.OnActive != nil {
		n.OnActive(active)
	}
}

// Press runs the button's callbacks: OnPress, then OnRelease, then everything
// bound to Presses.
func (n *Node) Press() {
	if n.OnPress != nil {
		n.OnPress()
	}
	if n.OnRelease != nil {
		n.OnRelease()
	}
	n.Presses.Set(n.Presses.Get() + 1)
}

// Open shows a dialog.
func (n *Node) Open() { n.Active.Set(true) }

// Dismiss hides a dialog.
func (n *Node) Dismiss() { n.Active.Set(false) }

// IsOpen reports whether a dialog is showing.
func (n *Node) IsOpen() bool { return n.Active.Get() }

// acceptsText reports whether the node can hold keyboard focus.
func (n *Node) acceptsText() bool {
	return n.Type == NodeTypeTextInput
}

// draggable reports whether the node can claim the active drag.
func (n *Node) draggable() bool {
	return n.Type == NodeTypeSlider
}
