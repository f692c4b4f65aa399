package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 values simultaneously and writes them
// through a node's property setters, so bound callbacks see every step.
// Create one via the convenience constructors (TweenFloat, TweenPosition,
// TweenSize, TweenOpacity) and either call Update(dt) each frame or hand it
// to App.Animate.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(v [2]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenFloat creates a TweenGroup that animates p to the target value over
// the specified duration using the easing function.
func TweenFloat(p *Property[float64], to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(p.Get()), float32(to), duration, fn)
	g.apply = func(v [2]float64) { p.Set(v[0]) }
	return g
}

// TweenPosition creates a TweenGroup that moves node to the given
// coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(node.X()), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y()), float32(toY), duration, fn)
	g.apply = func(v [2]float64) { node.SetPos(v[0], v[1]) }
	return g
}

// TweenSize creates a TweenGroup that resizes node to the given extent.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(node.Width()), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(node.Height()), float32(toH), duration, fn)
	g.apply = func(v [2]float64) { node.SetSize(v[0], v[1]) }
	return g
}

// TweenOpacity creates a TweenGroup that animates node.Opacity.
func TweenOpacity(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFloat(&node.Opacity, to, duration, fn)
}
