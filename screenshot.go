package sprig

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Snapshotter is implemented by canvases that can read back what they
// painted. Screenshots need one.
type Snapshotter interface {
	Snapshot() *image.NRGBA
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// current tick's painting. The resulting PNG is written to ScreenshotDir
// with a timestamped filename.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots captures the painted frame for every queued label and
// writes each as a PNG file. Called at the end of App.Tick.
func (a *App) flushScreenshots(c Canvas) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	snap, ok := c.(Snapshotter)
	if !ok {
		logf("screenshot: canvas %T cannot be read back", c)
		return
	}
	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", a.ScreenshotDir, err)
		return
	}

	img := snap.Snapshot()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range a.screenshotQueue {
		path := filepath.Join(a.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', turns every other
// rune into '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= utf8.RuneSelf:
			return '_'
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
