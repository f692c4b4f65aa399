package sprig

import (
	"unicode"
	"unicode/utf8"
)

// KeyBackspace is the key name that deletes the last character of the focused
// text input.
const KeyBackspace = "Backspace"

// InputState is the pointer and keyboard state that outlives a single event:
// the focused text input and the widget holding the active drag. It belongs
// to an App and is passed into every dispatch.
type InputState struct {
	focused *Node
	drag    *Node
	// hit is the node that consumed the most recent pointer-down.
	hit *Node
}

// Focused returns the text input holding keyboard focus, or nil.
func (s *InputState) Focused() *Node { return s.focused }

// Dragging returns the widget holding the active drag, or nil.
func (s *InputState) Dragging() *Node { return s.drag }

// focus gives keyboard focus to n, releasing the previous holder.
func (s *InputState) focus(n *Node) {
	s.focused = n
}

// blur drops keyboard focus.
func (s *InputState) blur() {
	s.focused = nil
}

// moveDrag feeds a pointer position to the drag holder. It reports whether a
// drag was held.
func (s *InputState) moveDrag(x float64) bool {
	if s.drag == nil {
		return false
	}
	s.drag.SetValueFromX(x)
	return true
}

// releaseDrag ends the active drag and returns the widget that held it.
func (s *InputState) releaseDrag() *Node {
	n := s.drag
	s.drag = nil
	return n
}

// applyKey edits the focused text input. Backspace removes the last
// character; a single printable character is appended. Anything else, or any
// key without focus, is discarded. It reports whether the key was used.
func (s *InputState) applyKey(key string) bool {
	n := s.focused
	if n == nil {
		return false
	}
	text := n.Text.Get()
	if key == KeyBackspace {
		if text == "" {
			return true
		}
		_, size := utf8.DecodeLastRuneInString(text)
		n.Text.Set(text[:len(text)-size])
		return true
	}
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return false
	}
	n.Text.Set(text + key)
	return true
}

// PointerDown routes a pointer-down at (x, y) through the subtree and reports
// whether some node consumed it.
//
// Interactive widgets test their own bounds first and consume a hit. Every
// node then tries its children from last to first, since the last child
// paints on top, and stops at the first that consumes. A closed dialog and
// everything inside it ignore the pointer; an open dialog consumes any hit on
// its box that its content did not.
func (n *Node) PointerDown(x, y float64, in *InputState) bool {
	if n == nil {
		return false
	}
	inside := n.Bounds().Contains(x, y)

	switch n.Type {
	case NodeTypeButton:
		if inside {
			in.hit = n
			n.Press()
			return true
		}
	case NodeTypeTextInput:
		if inside {
			in.hit = n
			in.focus(n)
			return true
		}
	case NodeTypeSlider:
		if inside {
			in.hit = n
			in.drag = n
			n.SetValueFromX(x)
			return true
		}
	case NodeTypeSwitch:
		if inside {
			in.hit = n
			n.Toggle()
			return true
		}
	case NodeTypeDialog:
		if !n.IsOpen() {
			return false
		}
	}

	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c == nil {
			continue
		}
		if c.PointerDown(x, y, in) {
			return true
		}
	}

	if n.Type == NodeTypeDialog && inside {
		in.hit = n
		return true
	}
	return false
}
