package sprig

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthKey
)

// syntheticEvent represents a single injected input event. Coordinates are
// surface coordinates, the same ones a screenshot shows.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	key  string
}

// InjectPress queues a pointer-down at the given surface coordinates. The
// event is consumed on the next Tick, one event per tick.
func (a *App) InjectPress(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y})
}

// InjectMove queues a pointer move. Use this between InjectPress and
// InjectRelease to simulate a drag.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectRelease queues a pointer release. The coordinates are kept for
// symmetry; a release applies wherever the pointer is.
func (a *App) InjectRelease(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y})
}

// InjectKey queues a key-down with the given key name.
func (a *App) InjectKey(key string) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{kind: synthKey, key: key})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (a *App) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectText queues one key-down per rune of s.
func (a *App) InjectText(s string) {
	for _, r := range s {
		a.InjectKey(string(r))
	}
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		a.InjectMove(x, y)
	}
	a.InjectRelease(toX, toY)
}

// processInjected pops one event from the inject queue and feeds it through
// the same entry points as real input. Returns true if an event was consumed.
func (a *App) processInjected() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		a.PointerDown(evt.x, evt.y)
	case synthMove:
		a.PointerMove(evt.x, evt.y)
	case synthRelease:
		a.PointerUp()
	case synthKey:
		a.KeyDown(evt.key)
	}
	return true
}
