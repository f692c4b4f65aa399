package sprig

import "fmt"

// nodeIDCounter is a plain counter. Trees are only touched from one goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// defaultNodeSize is the size a node gets when its constructor is not told
// otherwise.
var defaultNodeSize = Vec2{100, 30}

// Node is the fundamental scene graph element. A single flat struct is used
// for all node types; Type selects how the node paints itself and whether it
// tests its own bounds on pointer-down. Fields that belong to one type are
// ignored by the others.
//
// Nodes must not be copied after construction: their properties hold a
// pointer back to the owning node.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry
	Pos       Property[Vec2]
	Size      Property[Vec2]
	SizeHintX Property[Hint]
	SizeHintY Property[Hint]
	Spacing   Property[float64]
	Opacity   Property[float64]

	// Scalar mirror of Size, see ResyncSize.
	width, height float64

	// Layout fields (NodeTypeBoxLayout, NodeTypeGridLayout)
	Orientation Orientation
	Cols        int

	// Scroll fraction, 1 = top (NodeTypeScrollView)
	ScrollY Property[float64]

	// Text and colors (Label, Button, TextInput, Toolbar, Dialog, shapes)
	Text      Property[string]
	Title     string
	FontSize  float64
	Color     string
	BgColor   string
	TextColor string
	Radius    float64

	// Continuous values (NodeTypeSlider, NodeTypeProgressBar)
	Min, Max float64
	Value    Property[float64]

	// Two-state values (NodeTypeSwitch, NodeTypeDialog)
	Active Property[bool]

	// Shape fields
	Elevation float64 // NodeTypeCard
	Points    []Vec2  // NodeTypeLine, in absolute surface coordinates
	LineWidth float64 // NodeTypeLine
	Source    string  // NodeTypeImage

	// Metadata
	UserData any

	// Per-node callbacks (nil by default)
	OnPress   func()
	OnRelease func()
	OnValue   func(v float64)
	OnActive  func(active bool)

	// Presses counts button presses; bind to it to observe every press.
	Presses Property[int]
}

func newNode(name string, typ NodeType) *Node {
	n := &Node{ID: nextNodeID(), Name: name, Type: typ, FontSize: 16}
	n.Pos.init(n, "pos", Vec2{})
	n.Size.init(n, "size", defaultNodeSize)
	n.Size.stored = n.ResyncSize
	n.SizeHintX.init(n, "size_hint_x", NoHint)
	n.SizeHintY.init(n, "size_hint_y", NoHint)
	n.Spacing.init(n, "spacing", 0)
	n.Opacity.init(n, "opacity", 1)
	n.ScrollY.init(n, "scroll_y", 1)
	n.Text.init(n, "text", "")
	n.Value.init(n, "value", 0)
	n.Active.init(n, "active", false)
	n.Presses.init(n, "presses", 0)
	n.ResyncSize()
	return n
}

// NewContainer creates a plain group node with no visual of its own.
func NewContainer(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// String identifies the node in diagnostics.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q #%d", n.Type, n.Name, n.ID)
}

// --- Geometry ---

// X returns the left edge.
func (n *Node) X() float64 { return n.Pos.Get().X }

// Y returns the top edge.
func (n *Node) Y() float64 { return n.Pos.Get().Y }

// Width returns the scalar width. It equals Size().X after every resync.
func (n *Node) Width() float64 { return n.width }

// Height returns the scalar height. It equals Size().Y after every resync.
func (n *Node) Height() float64 { return n.height }

// SetPos moves the node's top-left corner.
func (n *Node) SetPos(x, y float64) {
	n.Pos.Set(Vec2{x, y})
}

// SetSize is the standard size setter. The scalar width and height are
// updated before any size callback runs.
func (n *Node) SetSize(w, h float64) {
	n.Size.Set(Vec2{w, h})
}

// SetWidth changes only the width.
func (n *Node) SetWidth(w float64) {
	n.SetSize(w, n.Size.Get().Y)
}

// SetHeight changes only the height.
func (n *Node) SetHeight(h float64) {
	n.SetSize(n.Size.Get().X, h)
}

// ResyncSize recomputes the scalar width and height from Size.
func (n *Node) ResyncSize() {
	s := n.Size.Get()
	n.width, n.height = s.X, s.Y
}

// Bounds returns the node's rectangle in surface coordinates.
func (n *Node) Bounds() Rect {
	p := n.Pos.Get()
	return Rect{X: p.X, Y: p.Y, Width: n.width, Height: n.height}
}

// --- Tree manipulation ---

// AddWidget appends child to this node's children. A nil child is ignored.
// If child already has a parent, it is removed from that parent first.
// Panics if child is an ancestor of this node (cycle).
func (n *Node) AddWidget(child *Node) {
	if child == nil {
		return
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveWidget detaches child from this node without destroying it.
// No-op if child is not one of this node's children.
func (n *Node) RemoveWidget(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// ClearWidgets detaches all children from this node.
func (n *Node) ClearWidgets() {
	for i, child := range n.children {
		if child != nil {
			child.Parent = nil
		}
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveWidget(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// countNodes returns the number of nodes in the subtree rooted at n.
func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
