package flex

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Only dirty nodes are recalculated.
//
// availableWidth and availableHeight specify the root constraint,
// typically the parent window's client area.
func Calculate(root *Node, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// The root resolves its own constraints against the available
	// space; children receive their size from the parent's flex pass.
	width := root.Style.Width.Resolve(availableWidth, availableWidth)
	height := root.Style.Height.Resolve(availableHeight, availableHeight)

	calculateNode(root, NewRect(0, 0, width, height))
}

// calculateNode computes the layout for one node within the available
// space. The available rect is the border box allocated by the parent,
// which has already applied this node's margin.
func calculateNode(node *Node, available Rect) {
	// Dirty propagates up, so a clean node guarantees a clean subtree.
	if !node.dirty {
		return
	}

	style := node.Style
	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	if len(node.Children) > 0 {
		layoutChildren(node, contentRect)
	}

	node.Layout = Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	}
	node.dirty = false
}

// computeBorderBox applies min/max constraints to the allocated space.
// Width/Height were already consumed by the parent's flex pass, so only
// the clamping remains.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return Rect{X: available.X, Y: available.Y, Width: width, Height: height}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
