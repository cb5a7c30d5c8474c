package uigen

// Role classifies what part a struct field plays in the UI graph.
type Role int

const (
	// RolePlain marks a field with no directive; it is ignored entirely.
	RolePlain Role = iota
	RoleControl
	RoleResource
	RoleLayout
	RolePartial
)

// String returns the directive name for the role.
func (r Role) String() string {
	switch r {
	case RoleControl:
		return "control"
	case RoleResource:
		return "resource"
	case RoleLayout:
		return "layout"
	case RolePartial:
		return "partial"
	default:
		return "plain"
	}
}

// Param is a single name/expression pair from a directive payload.
// The expression is opaque Go source; only downstream consumers
// interpret specific names (parent, ty, flags, layout).
type Param struct {
	Name string
	Expr string
}

// ParamList is an ordered parameter sequence. Order is significant:
// it becomes builder-call order in emitted code. Duplicate names are
// preserved and produce duplicate builder calls.
type ParamList []Param

// Index returns the position of the first parameter with the given
// name, or -1 if absent.
func (pl ParamList) Index(name string) int {
	for i, p := range pl {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the expression of the first parameter with the given name.
func (pl ParamList) Get(name string) (string, bool) {
	if i := pl.Index(name); i >= 0 {
		return pl[i].Expr, true
	}
	return "", false
}

// Has reports whether a parameter with the given name exists.
func (pl ParamList) Has(name string) bool {
	return pl.Index(name) >= 0
}

// PlacementKind is the variant tag of a layout placement record.
type PlacementKind int

const (
	// PlacementPending marks a record that has not been matched to a
	// declared layout yet. A record still pending at emission time is
	// a hard error.
	PlacementPending PlacementKind = iota
	PlacementGrid
	PlacementBox
	PlacementFlex
)

// Placement binds a control to a position inside one of the unit's
// layouts. It is created pending, holding only the layout field name
// from the item directive, and becomes concrete when the binder
// matches it against a declared layout.
type Placement struct {
	Pos         Position
	LayoutName  string // layout field referenced by the layout: parameter
	Kind        PlacementKind
	LayoutIndex int       // index into Unit.Layouts, set by the binder
	Params      ParamList // placement parameters, without the layout: selector
}

// EventBinding wires one event kind to a niladic method on the
// annotated struct.
type EventBinding struct {
	Pos    Position
	Event  string
	Method string
}

// Control is a field that builds a native control.
type Control struct {
	Name      string
	Type      string
	Pos       Position
	Params    ParamList
	Placement *Placement // nil when the field carries no item directive
	Events    []EventBinding

	// Set by the resolver. ResolvedParent is the emitted parent
	// expression and is kept separate from Params so the parameter
	// list stays exactly as authored.
	ParentID       string
	ResolvedParent string
	Depth          int
	DeclIndex      int
}

// HasExplicitParent reports whether the authored parameter list
// already names a parent.
func (c *Control) HasExplicitParent() bool {
	return c.Params.Has("parent")
}

// Resource is a field that builds a non-control asset such as a font.
type Resource struct {
	Name   string
	Type   string
	Pos    Position
	Params ParamList
}

// Layout is a field that builds one of the layout engines.
type Layout struct {
	Name   string
	Type   string
	Pos    Position
	Params ParamList

	// Set by the binder.
	ResolvedParent string
	Children       []*Control // bound placements in match order
}

// Partial is a field holding a nested sub-unit built by its own
// generated build function.
type Partial struct {
	Name   string
	Type   string
	Pos    Position
	Params ParamList

	// ResolvedParent is empty when the partial receives no parent.
	ResolvedParent string
}

// partialParentExpr is the expression controls and layouts resolve to
// when they fall back to the enclosing partial's external parent: the
// parent argument of the generated build function.
const partialParentExpr = "parent"

// Unit is one annotated struct: the full graph the emitter serializes.
type Unit struct {
	Name    string
	Pos     Position
	Package string
	Partial bool

	Controls  []*Control
	Resources []*Resource
	Layouts   []*Layout
	Partials  []*Partial

	// Sorted is the weight-ordered control list produced by the
	// resolver; emission always walks Sorted, never Controls.
	Sorted []*Control
}
