package uigen

import "fmt"

// layoutKinds maps a layout's type name to the placement variant its
// children take.
var layoutKinds = map[string]PlacementKind{
	"GridLayout":    PlacementGrid,
	"BoxLayout":     PlacementBox,
	"FlexboxLayout": PlacementFlex,
}

// bindLayouts resolves each layout's parent and matches every pending
// placement record against the declared layouts. Layouts never walk
// backward for an implicit parent: outside a partial an explicit
// parent parameter is required.
func bindLayouts(unit *Unit, errs *ErrorList) {
	for i, layout := range unit.Layouts {
		if j := layout.Params.Index("parent"); j >= 0 {
			expr := layout.Params[j].Expr
			if !isPath(expr) {
				errs.Add(NewErrorWithHint(layout.Pos,
					fmt.Sprintf("parent of layout %s must be a field reference, found %q", layout.Name, expr),
					"write parent: Window"))
				continue
			}
			layout.ResolvedParent = "&data." + lastSegment(expr)
		} else if unit.Partial {
			layout.ResolvedParent = partialParentExpr
		} else {
			errs.Add(NewErrorWithHint(layout.Pos,
				fmt.Sprintf("layout %s has no parent", layout.Name),
				"auto-detection of layout parent outside of a partial is not yet implemented; add a parent parameter"))
			continue
		}

		kind, kindOK := layoutKinds[layout.Type]

		for _, c := range unit.Controls {
			p := c.Placement
			if p == nil || p.LayoutName != layout.Name {
				continue
			}
			if !kindOK {
				errs.AddErrorf(p.Pos, "layout %s of type %s does not accept layout items",
					layout.Name, layout.Type)
				continue
			}
			p.Kind = kind
			p.LayoutIndex = i
			validatePlacementParams(c, errs)
			layout.Children = append(layout.Children, c)
		}
	}

	// A record still pending after every layout has been visited can
	// never be placed.
	for _, c := range unit.Controls {
		if c.Placement != nil && c.Placement.Kind == PlacementPending {
			errs.Add(NewErrorWithHint(c.Placement.Pos,
				fmt.Sprintf("unmatched layout item on field %s", c.Name),
				"did you forget the layout parameter?"))
		}
	}
}

// placementParams lists the parameters each placement variant accepts.
// Flexbox placements map onto FlexChildStyle fields.
var placementParams = map[PlacementKind]map[string]bool{
	PlacementGrid: {
		"col": true, "row": true, "col_span": true, "row_span": true,
	},
	PlacementBox: {
		"cell": true, "cell_span": true,
	},
	PlacementFlex: {
		"width": true, "height": true,
		"min_width": true, "min_height": true,
		"max_width": true, "max_height": true,
		"grow": true, "shrink": true, "basis": true,
		"align_self": true, "margin": true,
	},
}

// validatePlacementParams rejects parameters the matched layout's
// placement variant does not know.
func validatePlacementParams(c *Control, errs *ErrorList) {
	allowed := placementParams[c.Placement.Kind]
	for _, p := range c.Placement.Params {
		if !allowed[p.Name] {
			errs.AddErrorf(c.Placement.Pos,
				"unknown layout item parameter %s on field %s", p.Name, c.Name)
		}
	}
}

// resolvePartialParents resolves the optional explicit parent of each
// nested partial. Partials never inherit a parent implicitly; absent
// an explicit parameter they are built parentless.
func resolvePartialParents(unit *Unit, errs *ErrorList) {
	for _, p := range unit.Partials {
		j := p.Params.Index("parent")
		if j < 0 {
			continue
		}
		expr := p.Params[j].Expr
		if !isPath(expr) {
			errs.Add(NewErrorWithHint(p.Pos,
				fmt.Sprintf("parent of partial %s must be a field reference, found %q", p.Name, expr),
				"write parent: Window"))
			continue
		}
		p.ResolvedParent = "&data." + lastSegment(expr)
	}
}
