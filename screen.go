package sprig

import "fmt"

// Transition is an opaque token stored on a ScreenManager. The manager never
// interprets it; the App decides how to animate a switch from it.
type Transition interface {
	transitionName() string
}

// NoTransition switches screens instantly.
type NoTransition struct{}

func (NoTransition) transitionName() string { return "none" }

// FadeTransition fades the new screen in over Duration seconds.
type FadeTransition struct {
	Duration float32
}

func (FadeTransition) transitionName() string { return "fade" }

// ScreenManager is a registry of named screens with exactly one current
// screen once any screen has been added.
type ScreenManager struct {
	screens map[string]*Node
	order   []string
	current *Node

	// Transition is consulted by the App on every switch. Nil means none.
	Transition Transition

	// CurrentName holds the current screen's name; bind to it to observe
	// switches. Its callbacks receive a nil node.
	CurrentName Property[string]
}

// NewScreenManager creates an empty manager using transition t (may be nil).
func NewScreenManager(t Transition) *ScreenManager {
	m := &ScreenManager{
		screens:    make(map[string]*Node),
		Transition: t,
	}
	m.CurrentName.init(nil, "current", "")
	return m
}

// AddScreen registers s under its name. The first screen added becomes current.
func (m *ScreenManager) AddScreen(s *Node) error {
	switch {
	case s == nil || s.Type != NodeTypeScreen:
		return fmt.Errorf("add %v: %w", s, ErrNotScreen)
	case s.Name == "":
		return ErrScreenNameEmpty
	}
	if _, dup := m.screens[s.Name]; dup {
		return fmt.Errorf("add %q: %w", s.Name, ErrDuplicateScreen)
	}
	m.screens[s.Name] = s
	m.order = append(m.order, s.Name)
	if m.current == nil {
		m.setCurrent(s)
	}
	return nil
}

// SwitchTo makes the named screen current and reports whether it did.
// An unregistered name leaves the current screen unchanged.
func (m *ScreenManager) SwitchTo(name string) bool {
	s, ok := m.screens[name]
	if !ok {
		if globalDebug {
			logf("warning: switch to unknown screen %q ignored", name)
		}
		return false
	}
	m.setCurrent(s)
	return true
}

func (m *ScreenManager) setCurrent(s *Node) {
	m.current = s
	m.CurrentName.Set(s.Name)
}

// Current returns the current screen, or nil before any screen is added.
func (m *ScreenManager) Current() *Node {
	return m.current
}

// Screen returns the screen registered under name, or nil.
func (m *ScreenManager) Screen(name string) *Node {
	return m.screens[name]
}

// Has reports whether name is registered.
func (m *ScreenManager) Has(name string) bool {
	_, ok := m.screens[name]
	return ok
}

// Names returns the registered names in registration order.
func (m *ScreenManager) Names() []string {
	return append([]string(nil), m.order...)
}

// Draw paints the current screen. It is a no-op with no screens.
func (m *ScreenManager) Draw(f *Frame) error {
	if m.current == nil {
		return nil
	}
	return m.current.Draw(f)
}

// PointerDown routes the event to the current screen.
func (m *ScreenManager) PointerDown(x, y float64, in *InputState) bool {
	if m.current == nil {
		return false
	}
	return m.current.PointerDown(x, y, in)
}

// resize gives every registered screen the full surface extent.
func (m *ScreenManager) resize(w, h float64) {
	for _, s := range m.screens {
		s.SetPos(0, 0)
		s.SetSize(w, h)
	}
}
