package sprig

import "math"

// Arrange sizes and positions the node's direct children according to its
// type. Box and grid layouts distribute their extent; a scroll view offsets
// its children by the scroll fraction. Other node types leave their children
// where they are. Draw calls Arrange before painting, so it only needs to be
// called directly when geometry is needed outside a frame.
func (n *Node) Arrange() {
	switch n.Type {
	case NodeTypeBoxLayout:
		n.arrangeBox()
	case NodeTypeGridLayout:
		n.arrangeGrid()
	case NodeTypeScrollView:
		n.arrangeScroll()
	}
}

// arrangeBox distributes the layout's main-axis extent over its children.
// Hinted children share what is left after the gaps in proportion to their
// weight; unhinted children keep their explicit extent. Every child is
// stretched to the full cross-axis extent.
func (n *Node) arrangeBox() {
	horizontal := n.Orientation == Horizontal
	spacing := n.Spacing.Get()

	var totalHint float64
	count := 0
	for _, c := range n.children {
		if c == nil {
			continue
		}
		count++
		if h := c.axisHint(horizontal); h.Valid {
			totalHint += h.Weight
		}
	}
	if count == 0 {
		return
	}
	if totalHint == 0 {
		totalHint = 1
	}

	mainExtent, crossExtent := n.width, n.height
	if !horizontal {
		mainExtent, crossExtent = n.height, n.width
	}
	available := math.Max(0, mainExtent-spacing*float64(count-1))

	origin := n.Pos.Get()
	offset := 0.0
	for _, c := range n.children {
		if c == nil {
			continue
		}
		s := c.Size.Get()
		if horizontal {
			if h := c.SizeHintX.Get(); h.Valid {
				s.X = available * h.Weight / totalHint
			}
			s.Y = crossExtent
			c.Size.Set(s)
			c.Pos.Set(Vec2{origin.X + offset, origin.Y})
			offset += s.X + spacing
		} else {
			if h := c.SizeHintY.Get(); h.Valid {
				s.Y = available * h.Weight / totalHint
			}
			s.X = crossExtent
			c.Size.Set(s)
			c.Pos.Set(Vec2{origin.X, origin.Y + offset})
			offset += s.Y + spacing
		}
	}
}

func (n *Node) axisHint(horizontal bool) Hint {
	if horizontal {
		return n.SizeHintX.Get()
	}
	return n.SizeHintY.Get()
}

// gridRows returns the number of rows needed for the grid's children.
func (n *Node) gridRows() int {
	cols := max(n.Cols, 1)
	return max((len(n.children)+cols-1)/cols, 1)
}

// arrangeGrid places children row-major into uniform cells. A grid with zero
// height grows to rows times its tallest child before placement.
func (n *Node) arrangeGrid() {
	if len(n.children) == 0 {
		return
	}
	cols := max(n.Cols, 1)
	rows := n.gridRows()

	if n.height == 0 {
		var tallest float64
		for _, c := range n.children {
			if c != nil {
				tallest = math.Max(tallest, c.height)
			}
		}
		n.SetHeight(float64(rows) * tallest)
	}

	cw := n.width / float64(cols)
	ch := n.height / float64(rows)
	origin := n.Pos.Get()
	for i, c := range n.children {
		if c == nil {
			continue
		}
		row, col := i/cols, i%cols
		c.Size.Set(Vec2{cw, ch})
		c.Pos.Set(Vec2{origin.X + float64(col)*cw, origin.Y + float64(row)*ch})
	}
}

// arrangeScroll shifts each child up by the unscrolled fraction of its own
// height. A scroll fraction of 1 shows the top of the content.
func (n *Node) arrangeScroll() {
	origin := n.Pos.Get()
	frac := 1 - clamp01(n.ScrollY.Get())
	for _, c := range n.children {
		if c == nil {
			continue
		}
		c.Pos.Set(Vec2{c.X(), origin.Y - frac*c.height})
	}
}
