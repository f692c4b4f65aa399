package sprig

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Backspace auto-repeat, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// ebitenScheduler hands the render loop's frame request to the next
// ebiten Draw call.
type ebitenScheduler struct {
	pending func()
}

func (s *ebitenScheduler) RequestFrame(fn func()) {
	s.pending = fn
}

// run invokes the pending frame, if any. The callback normally re-registers
// itself.
func (s *ebitenScheduler) run() {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}

// host adapts an App to ebiten.Game: Update translates ebiten input into App
// pointer and key calls, Draw runs the frame the App scheduled.
type host struct {
	app    *App
	canvas *EbitenCanvas
	sched  ebitenScheduler
	fps    *fpsOverlay

	runes     []rune
	touches   []ebiten.TouchID
	touchID   ebiten.TouchID
	touching  bool
	lastX     int
	lastY     int
	mouseHeld bool
}

// Run opens a window and drives app until the window is closed or the app
// is stopped. Zero-valued fields of cfg take their defaults.
func Run(app *App, cfg RunConfig) error {
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.ThemeFile != "" {
		theme, err := LoadTheme(cfg.ThemeFile)
		if err != nil {
			return err
		}
		app.SetTheme(theme)
	}
	if cfg.ClearColor != "" {
		c, ok := app.Theme().Lookup(cfg.ClearColor)
		if !ok {
			return fmt.Errorf("clear_color %q: %w", cfg.ClearColor, ErrBadColor)
		}
		app.ClearColor = c
	}
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cfg.TestScript, err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner)
	}
	app.ScreenshotDir = cfg.ScreenshotDir
	if cfg.Debug {
		app.SetDebugMode(true)
	}

	canvas, err := NewEbitenCanvas()
	if err != nil {
		return err
	}
	h := &host{app: app, canvas: canvas}
	if cfg.ShowFPS {
		h.fps = newFPSOverlay()
	}
	app.Start(&h.sched, canvas)
	defer app.Stop()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(h)
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	if !h.app.Running() {
		return ebiten.Termination
	}
	h.updateMouse()
	h.updateTouch()
	h.updateKeys()
	if h.fps != nil {
		h.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

func (h *host) updateMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.mouseHeld = true
		h.app.PointerDown(float64(x), float64(y))
	} else if h.mouseHeld && (x != h.lastX || y != h.lastY) {
		h.app.PointerMove(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.mouseHeld = false
		h.app.PointerUp()
	}
	h.lastX, h.lastY = x, y
}

// updateTouch maps the first active touch onto the pointer calls.
func (h *host) updateTouch() {
	if h.touching {
		if inpututil.IsTouchJustReleased(h.touchID) {
			h.touching = false
			h.app.PointerUp()
			return
		}
		x, y := ebiten.TouchPosition(h.touchID)
		h.app.PointerMove(float64(x), float64(y))
		return
	}
	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	if len(h.touches) == 0 {
		return
	}
	h.touchID = h.touches[0]
	h.touching = true
	x, y := ebiten.TouchPosition(h.touchID)
	h.app.PointerDown(float64(x), float64(y))
}

func (h *host) updateKeys() {
	h.runes = ebiten.AppendInputChars(h.runes[:0])
	for _, r := range h.runes {
		h.app.KeyDown(string(r))
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d == 1 ||
		(d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0) {
		h.app.KeyDown(KeyBackspace)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.app.Blur()
	}
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.sched.run()
	if h.fps != nil {
		h.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The surface always matches the window, so
// the App resizes its root every tick.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
