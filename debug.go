package sprig

import "time"

// globalDebug mirrors the most recently set App debug flag so that node and
// property operations (which lack an App pointer) can check it cheaply. Only
// valid with a single App.
var globalDebug bool

// debugStats holds per-frame timing and node metrics.
// Only populated when App debug mode is on.
type debugStats struct {
	arrangeDraw time.Duration
	total       time.Duration
	nodes       int
	failures    int
}

// debugLog prints frame stats.
func (a *App) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	logf("draw: %v | total: %v | nodes: %d | failures: %d",
		stats.arrangeDraw, stats.total, stats.nodes, stats.failures)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logf("warning: node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugBindingFailure reports a swallowed binding callback failure. Outside
// debug mode the failure is dropped silently.
func debugBindingFailure(owner *Node, attr string, err error) {
	if !globalDebug {
		return
	}
	logf("binding %s on %v failed: %v", attr, owner, err)
}
