package sprig

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestScreens(t *testing.T, names ...string) *ScreenManager {
	t.Helper()
	m := NewScreenManager(NoTransition{})
	for _, name := range names {
		if err := m.AddScreen(NewScreen(name)); err != nil {
			t.Fatalf("AddScreen(%q): %v", name, err)
		}
	}
	return m
}

func TestScreenManagerFirstScreenIsCurrent(t *testing.T) {
	m := NewScreenManager(nil)
	if m.Current() != nil || m.CurrentName.Get() != "" {
		t.Fatal("empty manager has a current screen")
	}
	home := NewScreen("home")
	m.AddScreen(home)
	m.AddScreen(NewScreen("detail"))
	if m.Current() != home || m.CurrentName.Get() != "home" {
		t.Errorf("current = %v", m.Current())
	}
}

func TestScreenManagerSwitchTo(t *testing.T) {
	m := newTestScreens(t, "home", "detail")
	if !m.SwitchTo("detail") {
		t.Fatal("SwitchTo(detail) = false")
	}
	if m.Current() != m.Screen("detail") || m.CurrentName.Get() != "detail" {
		t.Errorf("current = %v", m.Current())
	}
}

func TestScreenManagerUnknownNameIsNoop(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nil)
	globalDebug = true
	defer func() { globalDebug = false }()

	m := newTestScreens(t, "home")
	if m.SwitchTo("missing") {
		t.Error("SwitchTo(missing) = true")
	}
	if m.CurrentName.Get() != "home" {
		t.Errorf("current = %q, want home", m.CurrentName.Get())
	}
	if !strings.Contains(buf.String(), `"missing"`) {
		t.Errorf("log = %q", buf.String())
	}
}

func TestScreenManagerAddErrors(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want error
	}{
		{"nil", nil, ErrNotScreen},
		{"not a screen", NewContainer("box"), ErrNotScreen},
		{"empty name", NewScreen(""), ErrScreenNameEmpty},
		{"duplicate", NewScreen("home"), ErrDuplicateScreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestScreens(t, "home")
			if err := m.AddScreen(tt.node); !errors.Is(err, tt.want) {
				t.Errorf("AddScreen = %v, want %v", err, tt.want)
			}
			if len(m.Names()) != 1 {
				t.Errorf("names = %v", m.Names())
			}
		})
	}
}

func TestScreenManagerNamesAndHas(t *testing.T) {
	m := newTestScreens(t, "c", "a", "b")
	names := m.Names()
	if strings.Join(names, ",") != "c,a,b" {
		t.Errorf("Names = %v, want registration order", names)
	}
	names[0] = "mutated"
	if m.Names()[0] != "c" {
		t.Error("Names returned internal storage")
	}
	if !m.Has("a") || m.Has("z") || m.Screen("z") != nil {
		t.Error("Has/Screen mismatch")
	}
}

func TestScreenManagerEmpty(t *testing.T) {
	m := NewScreenManager(nil)
	c := newRecordCanvas(10, 10)
	if err := m.Draw(NewFrame(c, nil, nil)); err != nil {
		t.Errorf("Draw = %v", err)
	}
	if len(c.ops) != 0 {
		t.Errorf("ops = %v", c.ops)
	}
	var in InputState
	if m.PointerDown(1, 1, &in) {
		t.Error("empty manager consumed a pointer-down")
	}
}

func TestScreenManagerRoutesToCurrent(t *testing.T) {
	m := newTestScreens(t, "home", "detail")
	homeBtn := place(NewButton("hb", "h"), 0, 0, 50, 50)
	m.Screen("home").AddWidget(homeBtn)
	detailBtn := place(NewButton("db", "d"), 0, 0, 50, 50)
	m.Screen("detail").AddWidget(detailBtn)
	m.Screen("detail").AddWidget(NewLabel("dl", "detail text"))

	var in InputState
	m.PointerDown(10, 10, &in)
	m.SwitchTo("detail")
	m.PointerDown(10, 10, &in)
	if homeBtn.Presses.Get() != 1 || detailBtn.Presses.Get() != 1 {
		t.Errorf("presses home=%d detail=%d", homeBtn.Presses.Get(), detailBtn.Presses.Get())
	}

	c := newRecordCanvas(100, 100)
	m.Draw(NewFrame(c, nil, nil))
	texts := c.texts()
	if len(texts) != 2 || texts[1] != "detail text" {
		t.Errorf("texts = %q", texts)
	}
}

func TestScreenManagerCurrentNameBinding(t *testing.T) {
	m := newTestScreens(t, "home", "detail")
	var seen []string
	m.CurrentName.Bind(func(owner *Node, name string) error {
		if owner != nil {
			t.Errorf("owner = %v, want nil", owner)
		}
		seen = append(seen, name)
		return nil
	})
	m.SwitchTo("detail")
	m.SwitchTo("detail")
	m.SwitchTo("home")
	if strings.Join(seen, ",") != "detail,home" {
		t.Errorf("seen = %v", seen)
	}
}

func TestScreenManagerResize(t *testing.T) {
	m := newTestScreens(t, "home", "detail")
	m.Screen("detail").SetPos(5, 5)
	m.resize(640, 480)
	for _, name := range m.Names() {
		s := m.Screen(name)
		if s.Bounds() != (Rect{Width: 640, Height: 480}) {
			t.Errorf("%s bounds = %+v", name, s.Bounds())
		}
	}
}

func TestTransitionNames(t *testing.T) {
	if (NoTransition{}).transitionName() != "none" || (FadeTransition{}).transitionName() != "fade" {
		t.Error("unexpected transition names")
	}
}
