package declwin

// Layouts attach to their container's resize notification and
// recompute child geometry from the new size. Like controls, a layout
// is owned by the dispatch goroutine: its children list and
// configuration carry no locks and must not be touched from
// background goroutines.

// bindLayoutResize invokes fn with the container's new size whenever
// the container itself is resized. Resizes of descendants bubble
// through the same handlers, so fn fires only when src is the
// container; that keeps a layout pass from re-entering itself through
// its own child moves.
func bindLayoutResize(container Handle, fn func(Size)) *EventHandler {
	return BindEventHandler(container, func(evt Event, data EventData, src Handle) {
		if evt == OnResize && src == container {
			fn(data.Size)
		}
	})
}

func sumSlots(slots []int) int {
	total := 0
	for _, s := range slots {
		total += s
	}
	return total
}

// splitSlots divides space into count slots, spreading the integer
// remainder one pixel at a time over the leading slots.
func splitSlots(space, count int) []int {
	each := space / count
	extra := space - each*count
	slots := make([]int, count)
	for i := range slots {
		slots[i] = each
		if i < extra {
			slots[i]++
		}
	}
	return slots
}
