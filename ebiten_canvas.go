package sprig

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ellipseKappa is the control point distance for a quarter-ellipse cubic.
const ellipseKappa = 0.5522847498

// EbitenCanvas paints onto an *ebiten.Image. Clips are sub-images of the
// target; opacity multiplies the alpha of every color.
type EbitenCanvas struct {
	screen *ebiten.Image
	clips  []image.Rectangle
	alphas []float64

	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewEbitenCanvas creates a canvas using the Go Regular font for text.
func NewEbitenCanvas() (*EbitenCanvas, error) {
	return NewEbitenCanvasWithFont(goregular.TTF)
}

// NewEbitenCanvasWithFont creates a canvas using the given TTF/OTF data for
// text.
func NewEbitenCanvasWithFont(ttfData []byte) (*EbitenCanvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("sprig: failed to parse TTF data: %w", err)
	}
	return &EbitenCanvas{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// SetTarget points the canvas at img and resets the clip and opacity stacks.
func (c *EbitenCanvas) SetTarget(img *ebiten.Image) {
	c.screen = img
	c.clips = c.clips[:0]
	c.alphas = c.alphas[:0]
}

func (c *EbitenCanvas) target() *ebiten.Image {
	if len(c.clips) == 0 {
		return c.screen
	}
	return c.screen.SubImage(c.clips[len(c.clips)-1]).(*ebiten.Image)
}

func (c *EbitenCanvas) col(cl Color) color.RGBA {
	a := 1.0
	for _, v := range c.alphas {
		a *= v
	}
	return cl.WithAlpha(a).RGBA()
}

func (c *EbitenCanvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.source, Size: size}
		c.faces[size] = f
	}
	return f
}

// Size implements Canvas.
func (c *EbitenCanvas) Size() (float64, float64) {
	if c.screen == nil {
		return 0, 0
	}
	b := c.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear implements Canvas. It ignores the clip and opacity stacks.
func (c *EbitenCanvas) Clear(cl Color) {
	c.screen.Fill(cl.RGBA())
}

// FillRect implements Canvas.
func (c *EbitenCanvas) FillRect(r Rect, cl Color) {
	vector.FillRect(c.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.col(cl), false)
}

// StrokeRect implements Canvas.
func (c *EbitenCanvas) StrokeRect(r Rect, width float64, cl Color) {
	vector.StrokeRect(c.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c.col(cl), false)
}

// FillRoundRect implements Canvas. The radius is limited to half the shorter
// side.
func (c *EbitenCanvas) FillRoundRect(r Rect, radius float64, cl Color) {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		c.FillRect(r, cl)
		return
	}
	c.fill(roundRectPath(r, float32(radius)), cl)
}

// FillEllipse implements Canvas.
func (c *EbitenCanvas) FillEllipse(r Rect, cl Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	if r.Width == r.Height {
		rad := float32(r.Width / 2)
		vector.FillCircle(c.target(), float32(r.X)+rad, float32(r.Y)+rad, rad, c.col(cl), true)
		return
	}
	c.fill(ellipsePath(r), cl)
}

// StrokePath implements Canvas.
func (c *EbitenCanvas) StrokePath(points []Vec2, width float64, cl Color) {
	if len(points) < 2 || width <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	strokeOp := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinRound, LineCap: vector.LineCapRound}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c.col(cl))
	vector.StrokePath(c.target(), &path, strokeOp, drawOp)
}

// FillText implements Canvas.
func (c *EbitenCanvas) FillText(s string, x, y, size float64, cl Color) {
	if s == "" || size <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.col(cl))
	text.Draw(c.target(), s, c.face(size), op)
}

// MeasureText implements Canvas.
func (c *EbitenCanvas) MeasureText(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	return text.Advance(s, c.face(size))
}

// PushClip implements Canvas.
func (c *EbitenCanvas) PushClip(r Rect) {
	clip := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
	if len(c.clips) > 0 {
		clip = clip.Intersect(c.clips[len(c.clips)-1])
	} else if c.screen != nil {
		clip = clip.Intersect(c.screen.Bounds())
	}
	c.clips = append(c.clips, clip)
}

// PopClip implements Canvas.
func (c *EbitenCanvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

// PushOpacity implements Canvas.
func (c *EbitenCanvas) PushOpacity(a float64) {
	c.alphas = append(c.alphas, clamp01(a))
}

// PopOpacity implements Canvas.
func (c *EbitenCanvas) PopOpacity() {
	if len(c.alphas) > 0 {
		c.alphas = c.alphas[:len(c.alphas)-1]
	}
}

// Snapshot implements Snapshotter by reading the target back.
func (c *EbitenCanvas) Snapshot() *image.NRGBA {
	bounds := c.screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	c.screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func (c *EbitenCanvas) fill(path *vector.Path, cl Color) {
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c.col(cl))
	vector.FillPath(c.target(), path, nil, drawOp)
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func roundRectPath(r Rect, radius float32) *vector.Path {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	var path vector.Path
	path.MoveTo(x+radius, y)
	path.LineTo(x+w-radius, y)
	path.QuadTo(x+w, y, x+w, y+radius)
	path.LineTo(x+w, y+h-radius)
	path.QuadTo(x+w, y+h, x+w-radius, y+h)
	path.LineTo(x+radius, y+h)
	path.QuadTo(x, y+h, x, y+h-radius)
	path.LineTo(x, y+radius)
	path.QuadTo(x, y, x+radius, y)
	path.Close()
	return &path
}

func ellipsePath(r Rect) *vector.Path {
	rx, ry := float32(r.Width/2), float32(r.Height/2)
	cx, cy := float32(r.X)+rx, float32(r.Y)+ry
	kx, ky := rx*ellipseKappa, ry*ellipseKappa
	var path vector.Path
	path.MoveTo(cx+rx, cy)
	path.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	path.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	path.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	path.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	path.Close()
	return &path
}
