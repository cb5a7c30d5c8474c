package uigen

import (
	"cmp"
	"fmt"
	"slices"
)

// topLevelTypes never need a parent: they are self-sufficient
// containers a unit can be rooted in.
var topLevelTypes = map[string]bool{
	"Window":        true,
	"MessageWindow": true,
	"TabsContainer": true,
	"Tab":           true,
}

// autoParentTypes may be inferred as the implicit parent of any
// control declared after them.
var autoParentTypes = map[string]bool{
	"Window":        true,
	"TabsContainer": true,
	"Tab":           true,
	"Frame":         true,
}

// partialParentID is the sentinel recorded when a control falls back
// to the enclosing partial's external parent. It can never collide
// with a field name.
const partialParentID = "<partial-parent>"

// resolveParents runs both resolver passes: parent assignment in
// declaration order, then weight computation and the stable
// depth-major sort that fixes construction order.
func resolveParents(unit *Unit, errs *ErrorList) {
	assignParents(unit, errs)
	if errs.HasErrors() {
		return
	}
	computeWeights(unit, errs)
}

// assignParents decides each control's parent, in declaration order.
// The resolved reference is stored on the control, never written back
// into the authored parameter list.
func assignParents(unit *Unit, errs *ErrorList) {
	for i, c := range unit.Controls {
		// Top-level containers stand on their own.
		if topLevelTypes[c.Type] {
			continue
		}

		// Explicit parent parameter wins.
		if j := c.Params.Index("parent"); j >= 0 {
			expr := c.Params[j].Expr
			if !isPath(expr) {
				errs.Add(NewErrorWithHint(c.Pos,
					fmt.Sprintf("parent of field %s must be a field reference, found %q", c.Name, expr),
					"write parent: Window"))
				continue
			}
			c.ParentID = lastSegment(expr)
			c.ResolvedParent = "&data." + c.ParentID
			continue
		}

		// Nearest preceding auto-parent-capable control.
		if p := nearestAutoParent(unit.Controls[:i]); p != nil {
			c.ParentID = p.Name
			c.ResolvedParent = "&data." + p.Name
			continue
		}

		// Inside a partial, fall back to the externally supplied
		// parent argument of the generated build function.
		if unit.Partial {
			c.ParentID = partialParentID
			c.ResolvedParent = partialParentExpr
			continue
		}

		// Parentless non-top-level control. Accepted here; the
		// builder rejects it at construction time if the type
		// requires a parent.
	}
}

// nearestAutoParent scans backward through the controls declared
// before the current one and returns the most recently declared one
// whose type can host children implicitly.
func nearestAutoParent(before []*Control) *Control {
	for i := len(before) - 1; i >= 0; i-- {
		if autoParentTypes[before[i].Type] {
			return before[i]
		}
	}
	return nil
}

// computeWeights resolves each control's depth by following its parent
// chain, then produces the final construction order: ascending by
// (depth, declaration index). Depth dominates, so every parent is
// built strictly before its children; the declaration index preserves
// authored sibling order and makes the order a strict total one.
func computeWeights(unit *Unit, errs *ErrorList) {
	byName := make(map[string]*Control, len(unit.Controls))
	for _, c := range unit.Controls {
		byName[c.Name] = c
	}

	var chase func(c *Control, steps int) int
	chase = func(c *Control, steps int) int {
		if c.ParentID == "" {
			return 0
		}
		p, ok := byName[c.ParentID]
		if !ok {
			// External parent: partial sentinel or a reference the
			// target builder resolves. The chain ends here.
			return 0
		}
		if steps > len(unit.Controls) {
			errs.AddErrorf(c.Pos, "circular parent chain through field %s", c.Name)
			return 0
		}
		return chase(p, steps+1) + 1
	}

	for _, c := range unit.Controls {
		c.Depth = chase(c, 0)
	}
	if errs.HasErrors() {
		return
	}

	sorted := slices.Clone(unit.Controls)
	slices.SortStableFunc(sorted, func(a, b *Control) int {
		if c := cmp.Compare(a.Depth, b.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.DeclIndex, b.DeclIndex)
	})
	unit.Sorted = sorted
}
