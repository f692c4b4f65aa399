package sprig

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EventSink is the interface for optional interaction event forwarding.
// When set on an App, every consumed pointer-down, drag, focus change, key
// and screen switch is reported to it.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data to an EventSink.
type InteractionEvent struct {
	Type     EventType
	NodeID   uint32
	NodeName string
	X, Y     float64
	// Value is the slider value for drag events.
	Value float64
	// Key is the key name for EventKey.
	Key string
	// Screen is the new screen name for EventScreenSwitch.
	Screen string
}

// App drives a node tree: it owns the cross-event input state, paints one
// frame per tick, and keeps rescheduling itself once started.
type App struct {
	root    *Node
	screens *ScreenManager
	theme   *Theme
	input   InputState
	errs    ErrorHandler
	sink    EventSink
	debug   bool

	// ClearColor fills the surface before every frame.
	ClearColor Color

	// Render loop
	sched   FrameScheduler
	canvas  Canvas
	running bool
	now     func() time.Time
	last    time.Time

	// Animation
	tweens    []*TweenGroup
	fade      *gween.Tween
	fadeAlpha float64
	switchSub BindHandle

	// Automation
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
}

// NewApp creates an app painting root. A nil root gets an empty container.
func NewApp(root *Node) *App {
	if root == nil {
		root = NewContainer("root")
	}
	return &App{
		root:          root,
		theme:         NewTheme(),
		errs:          LogHandler{},
		ClearColor:    ColorWhite,
		now:           time.Now,
		fadeAlpha:     1,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the app's root node.
func (a *App) Root() *Node {
	return a.root
}

// SetScreens makes m the paint and pointer target in place of the root.
// Switches on m trigger its transition. Pass nil to go back to the root.
func (a *App) SetScreens(m *ScreenManager) {
	a.switchSub.Remove()
	a.switchSub = BindHandle{}
	a.screens = m
	if m == nil {
		return
	}
	a.switchSub = m.CurrentName.Bind(func(_ *Node, name string) error {
		a.onScreenSwitch(name)
		return nil
	})
}

// Screens returns the screen manager, or nil.
func (a *App) Screens() *ScreenManager {
	return a.screens
}

// Theme returns the theme colors resolve through.
func (a *App) Theme() *Theme {
	return a.theme
}

// SetTheme replaces the theme. A nil theme restores the defaults.
func (a *App) SetTheme(t *Theme) {
	if t == nil {
		t = NewTheme()
	}
	a.theme = t
}

// SetErrorHandler replaces where isolated failures are reported.
// A nil handler restores LogHandler.
func (a *App) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = LogHandler{}
	}
	a.errs = h
}

// SetEventSink sets the optional interaction event sink.
func (a *App) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings, swallowed binding failures, unknown colors and
// screens, and per-frame stats are logged.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
	globalDebug = enabled
}

// Input returns the app's input state.
func (a *App) Input() *InputState {
	return &a.input
}

// --- Render loop ---

// Start registers the render loop with sched. Every frame paints onto c and
// requests the next one, whatever happened while painting. The loop runs
// until Stop.
func (a *App) Start(sched FrameScheduler, c Canvas) {
	a.sched = sched
	a.canvas = c
	a.running = true
	a.last = time.Time{}
	a.sched.RequestFrame(a.frame)
}

// Stop ends rescheduling after the current frame.
func (a *App) Stop() {
	a.running = false
}

// Running reports whether the loop is registered.
func (a *App) Running() bool {
	return a.running
}

func (a *App) frame() {
	defer func() {
		if a.running {
			a.sched.RequestFrame(a.frame)
		}
	}()
	a.Tick(a.canvas)
}

// Tick runs one frame onto c: automation, animation, resize to the surface,
// clear, and paint. A panic that escapes every subtree boundary is reported
// to the error handler and the frame is abandoned.
func (a *App) Tick(c Canvas) {
	defer func() {
		if r := recover(); r != nil {
			a.errs.HandlePanic(recoverPanic("app.Tick", r))
		}
	}()

	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	now := a.now()
	var dt float32
	if !a.last.IsZero() {
		dt = float32(now.Sub(a.last).Seconds())
	}
	a.last = now

	if a.testRunner != nil {
		a.testRunner.step(a)
	}
	a.processInjected()
	a.Advance(dt)

	w, h := c.Size()
	a.resize(w, h)
	c.Clear(a.ClearColor)

	var stats debugStats
	f := NewFrame(c, a.theme, func(err error) {
		stats.failures++
		a.errs.HandleError(err)
	})
	f.Focused = a.input.focused

	var tDraw time.Time
	if a.debug {
		tDraw = time.Now()
	}
	a.drawTarget(f)
	a.flushScreenshots(c)

	if a.debug {
		stats.arrangeDraw = time.Since(tDraw)
		stats.total = time.Since(t0)
		stats.nodes = f.Nodes()
		a.debugLog(stats)
	}
}

// resize gives the root, and every screen, the surface extent.
func (a *App) resize(w, h float64) {
	a.root.SetSize(w, h)
	if a.screens != nil {
		a.screens.resize(w, h)
	}
}

func (a *App) drawTarget(f *Frame) {
	target := a.root
	if a.screens != nil {
		target = a.screens.Current()
		if target == nil {
			return
		}
	}
	if a.fadeAlpha < 1 {
		f.Canvas.PushOpacity(a.fadeAlpha)
		defer f.Canvas.PopOpacity()
	}
	f.drawChild(target)
}

// Advance moves the app's tweens and any screen fade forward by dt seconds.
// Tick calls it with the time since the previous tick.
func (a *App) Advance(dt float32) {
	if a.fade != nil {
		v, done := a.fade.Update(dt)
		a.fadeAlpha = float64(v)
		if done {
			a.fade = nil
			a.fadeAlpha = 1
		}
	}
	if len(a.tweens) == 0 {
		return
	}
	running := a.tweens
	a.tweens = nil
	for _, g := range running {
		g.Update(dt)
	}
	// Bindings fired by Update may have started new tweens.
	started := a.tweens
	live := running[:0]
	for _, g := range running {
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(running[len(live):])
	a.tweens = append(live, started...)
}

// Animate runs g on every Advance until it is done.
func (a *App) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	a.tweens = append(a.tweens, g)
}

func (a *App) onScreenSwitch(name string) {
	a.emit(InteractionEvent{Type: EventScreenSwitch, Screen: name})
	if ft, ok := a.screens.Transition.(FadeTransition); ok && ft.Duration > 0 {
		a.fade = gween.New(0, 1, ft.Duration, ease.OutQuad)
		a.fadeAlpha = 0
	}
}

// --- Input entry points ---

// pointerTarget returns where pointer-downs are dispatched.
func (a *App) pointerTarget() func(x, y float64, in *InputState) bool {
	if a.screens != nil {
		return a.screens.PointerDown
	}
	return a.root.PointerDown
}

// PointerDown dispatches a pointer-down at (x, y) and reports whether a node
// consumed it. Pressing a text input moves keyboard focus to it; pressing a
// slider claims the active drag.
func (a *App) PointerDown(x, y float64) (consumed bool) {
	prevFocus := a.input.focused
	a.input.hit = nil
	a.guard("app.PointerDown", func() {
		consumed = a.pointerTarget()(x, y, &a.input)
	})

	hit := a.input.hit
	if consumed && hit != nil {
		a.emitNode(EventPointerDown, hit, x, y)
	}
	if a.input.focused != prevFocus {
		if prevFocus != nil {
			a.emitNode(EventBlur, prevFocus, x, y)
		}
		a.emitNode(EventFocus, a.input.focused, x, y)
	}
	if hit != nil && a.input.drag == hit {
		ev := a.nodeEvent(EventDragStart, hit, x, y)
		ev.Value = hit.Value.Get()
		a.emit(ev)
	}
	return consumed
}

// PointerMove feeds (x, y) to the widget holding the active drag, wherever
// the pointer is. Without a drag it does nothing.
func (a *App) PointerMove(x, y float64) {
	var moved bool
	a.guard("app.PointerMove", func() {
		moved = a.input.moveDrag(x)
	})
	if moved {
		ev := a.nodeEvent(EventPointerMove, a.input.drag, x, y)
		ev.Value = a.input.drag.Value.Get()
		a.emit(ev)
	}
}

// PointerUp releases the active drag, wherever the pointer is.
func (a *App) PointerUp() {
	released := a.input.releaseDrag()
	a.emit(InteractionEvent{Type: EventPointerUp})
	if released != nil {
		ev := a.nodeEvent(EventDragEnd, released, 0, 0)
		ev.Value = released.Value.Get()
		a.emit(ev)
	}
}

// KeyDown delivers a key to the focused text input. See KeyBackspace.
func (a *App) KeyDown(key string) {
	var used bool
	a.guard("app.KeyDown", func() {
		used = a.input.applyKey(key)
	})
	if used {
		ev := a.nodeEvent(EventKey, a.input.focused, 0, 0)
		ev.Key = key
		a.emit(ev)
	}
}

// Blur drops keyboard focus.
func (a *App) Blur() {
	prev := a.input.focused
	if prev == nil {
		return
	}
	a.input.blur()
	a.emitNode(EventBlur, prev, 0, 0)
}

// guard runs fn, reporting a panic instead of propagating it.
func (a *App) guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.errs.HandlePanic(recoverPanic(op, r))
		}
	}()
	fn()
}

func (a *App) nodeEvent(typ EventType, n *Node, x, y float64) InteractionEvent {
	ev := InteractionEvent{Type: typ, X: x, Y: y}
	if n != nil {
		ev.NodeID = n.ID
		ev.NodeName = n.Name
	}
	return ev
}

func (a *App) emitNode(typ EventType, n *Node, x, y float64) {
	a.emit(a.nodeEvent(typ, n, x, y))
}

func (a *App) emit(ev InteractionEvent) {
	if a.sink != nil {
		a.sink.EmitEvent(ev)
	}
}
