package flex

// flexItem holds intermediate calculation state for a child.
// Stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node        *Node
	baseSize    int // main-axis base size including margin
	mainSize    int // final main-axis slot size including margin
	crossSize   int // final cross-axis slot size including margin
	mainPos     int // offset along the main axis
	crossPos    int // offset within the line
	mainMargin  int
	crossMargin int
	grow        float64
	shrink      float64
}

// flexLine is one run of items on the main axis. Without wrapping
// there is exactly one line spanning the full cross axis.
type flexLine struct {
	start, end int // item index range [start, end)
	crossSize  int // line extent on the cross axis
	crossPos   int // line offset within the content rect
}

// layoutChildren arranges the children of a node within the given
// content rect. This implements the core flexbox algorithm.
func layoutChildren(node *Node, contentRect Rect) {
	if len(node.Children) == 0 {
		return
	}

	style := node.Style
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors. Base size is the child's
	// basis (falling back to its main-axis dimension) plus its margin;
	// margin is part of the child's outer size in the flex calculation.
	items := make([]flexItem, len(node.Children))
	for i, child := range node.Children {
		item := &items[i]
		item.node = child

		if isRow {
			item.mainMargin = child.Style.Margin.Horizontal()
			item.crossMargin = child.Style.Margin.Vertical()
		} else {
			item.mainMargin = child.Style.Margin.Vertical()
			item.crossMargin = child.Style.Margin.Horizontal()
		}

		base := child.Style.Basis
		if base.IsAuto() {
			if isRow {
				base = child.Style.Width
			} else {
				base = child.Style.Height
			}
		}
		item.baseSize = base.Resolve(mainSize, 0) + item.mainMargin
		item.grow = child.Style.FlexGrow
		item.shrink = child.Style.FlexShrink
	}

	lines := splitLines(items, style, mainSize)

	for li := range lines {
		layoutLine(&lines[li], items, style, mainSize)
	}

	positionLines(lines, items, style, crossSize)

	// Final phase: convert to rects and recurse. The child receives its
	// border box, so margin is not re-applied below this point.
	for li := range lines {
		line := &lines[li]
		for i := line.start; i < line.end; i++ {
			item := &items[i]

			var slot Rect
			if isRow {
				slot = Rect{
					X:      contentRect.X + item.mainPos,
					Y:      contentRect.Y + line.crossPos + item.crossPos,
					Width:  item.mainSize,
					Height: item.crossSize,
				}
			} else {
				slot = Rect{
					X:      contentRect.X + line.crossPos + item.crossPos,
					Y:      contentRect.Y + item.mainPos,
					Width:  item.crossSize,
					Height: item.mainSize,
				}
			}

			calculateNode(item.node, slot.Inset(item.node.Style.Margin))
		}
	}
}

// splitLines partitions items into lines. Without Wrap all items share
// one line; with Wrap a line closes when the next base size would
// overflow the main axis.
func splitLines(items []flexItem, style Style, mainSize int) []flexLine {
	if !style.Wrap {
		return []flexLine{{start: 0, end: len(items)}}
	}

	var lines []flexLine
	start, used := 0, 0
	for i := range items {
		need := items[i].baseSize
		if i > start {
			need += style.Gap
		}
		if i > start && used+need > mainSize {
			lines = append(lines, flexLine{start: start, end: i})
			start = i
			used = items[i].baseSize
			continue
		}
		used += need
	}
	return append(lines, flexLine{start: start, end: len(items)})
}

// layoutLine distributes free space and positions one line's items
// along the main axis.
func layoutLine(line *flexLine, items []flexItem, style Style, mainSize int) {
	count := line.end - line.start

	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0
	for i := line.start; i < line.end; i++ {
		totalBase += items[i].baseSize
		totalGrow += items[i].grow
		totalShrink += items[i].shrink
	}

	totalGap := style.Gap * max(0, count-1)
	freeSpace := mainSize - totalBase - totalGap

	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := line.start; i < line.end; i++ {
			extra := 0
			if items[i].grow > 0 {
				extra = int(float64(freeSpace) * items[i].grow / totalGrow)
			}
			items[i].mainSize = items[i].baseSize + extra
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := line.start; i < line.end; i++ {
			if items[i].shrink > 0 {
				reduction := int(float64(deficit) * items[i].shrink / totalShrink)
				items[i].mainSize = max(0, items[i].baseSize-reduction)
			} else {
				items[i].mainSize = items[i].baseSize
			}
		}
	default:
		for i := line.start; i < line.end; i++ {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Min/max constraints, then recompute free space for justify.
	isRow := style.Direction == Row
	totalUsed := 0
	for i := line.start; i < line.end; i++ {
		minMain := resolveMinMain(items[i].node.Style, isRow, mainSize)
		maxMain := resolveMaxMain(items[i].node.Style, isRow, mainSize)
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	offset := justifyOffset(style.JustifyContent, freeSpace, count)
	spacing := justifySpacing(style.JustifyContent, freeSpace, count)
	for i := line.start; i < line.end; i++ {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}
}

// positionLines sizes each line on the cross axis, packs the lines per
// AlignContent, and aligns every item within its line.
func positionLines(lines []flexLine, items []flexItem, style Style, crossSize int) {
	isRow := style.Direction == Row

	if len(lines) == 1 {
		// A single line always spans the full cross axis.
		lines[0].crossSize = crossSize
	} else {
		total := 0
		for li := range lines {
			extent := 0
			for i := lines[li].start; i < lines[li].end; i++ {
				extent = max(extent, hypotheticalCross(&items[i], isRow, crossSize))
			}
			lines[li].crossSize = extent
			total += extent
		}

		leftover := crossSize - total
		pos := 0
		switch {
		case leftover > 0 && style.AlignContent == AlignStretch:
			// Distribute the remainder one pixel at a time to the
			// leading lines so the extents still sum to crossSize.
			share := leftover / len(lines)
			rem := leftover % len(lines)
			for li := range lines {
				lines[li].crossSize += share
				if li < rem {
					lines[li].crossSize++
				}
			}
		case leftover > 0:
			pos = alignOffset(style.AlignContent, crossSize, total)
		}

		for li := range lines {
			lines[li].crossPos = pos
			pos += lines[li].crossSize
		}
	}

	for li := range lines {
		line := &lines[li]
		for i := line.start; i < line.end; i++ {
			alignItem(&items[i], style, isRow, line.crossSize)
		}
	}
}

// hypotheticalCross is the cross extent an item contributes to its
// line before stretching: its resolved cross size plus margin, or just
// the margin when the size is auto.
func hypotheticalCross(item *flexItem, isRow bool, crossSize int) int {
	value := item.node.Style.Height
	if !isRow {
		value = item.node.Style.Width
	}
	return value.Resolve(crossSize-item.crossMargin, 0) + item.crossMargin
}

// alignItem resolves one item's cross size and position within its
// line.
func alignItem(item *flexItem, style Style, isRow bool, lineCross int) {
	align := style.AlignItems
	if item.node.Style.AlignSelf != nil {
		align = *item.node.Style.AlignSelf
	}

	value := item.node.Style.Height
	if !isRow {
		value = item.node.Style.Width
	}

	availableCross := lineCross - item.crossMargin

	if align == AlignStretch && value.IsAuto() {
		item.crossSize = lineCross
		item.crossPos = 0
		return
	}

	content := availableCross
	if !value.IsAuto() {
		content = value.Resolve(availableCross, availableCross)
	}
	item.crossSize = content + item.crossMargin
	item.crossPos = alignOffset(align, lineCross, item.crossSize)
}

// justifyOffset returns the initial main-axis offset for a line.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between a line's items.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the cross-axis offset for an extent within a
// larger extent.
func alignOffset(align Align, outer, inner int) int {
	switch align {
	case AlignEnd:
		return outer - inner
	case AlignCenter:
		return (outer - inner) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMinMain resolves the minimum size constraint for the main axis.
func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain resolves the maximum size constraint for the main
// axis. Returns the available space when no max is set.
func resolveMaxMain(style Style, isRow bool, available int) int {
	value := style.MaxWidth
	if !isRow {
		value = style.MaxHeight
	}
	if value.IsAuto() {
		return available
	}
	return value.Resolve(available, available)
}
