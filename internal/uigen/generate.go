package uigen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/tools/imports"
)

// runtimeImportPath is the module the generated code builds against.
const runtimeImportPath = "github.com/declwin/declwin"

// Generator serializes resolved units into Go source.
type Generator struct {
	buf        bytes.Buffer
	indent     int
	sourceFile string // original .go filename for the header comment

	// SkipImports uses format.Source instead of imports.Process
	// (faster for tests, no GOPATH resolution).
	SkipImports bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces the companion source for every unit of one file.
// The emission order inside each build function is fixed: resources,
// controls in weight order, event bindings, layouts with their bound
// children, nested partials. Later stages reference bindings earlier
// stages created, so the order is part of the contract.
func (g *Generator) Generate(pkg, sourceFile string, units []*Unit) ([]byte, error) {
	g.buf.Reset()
	g.sourceFile = sourceFile

	g.generateHeader()
	g.writef("package %s\n\n", pkg)
	g.writeln("import (")
	g.indent++
	g.writef("%s %q\n", runtimePackage, runtimeImportPath)
	g.indent--
	g.writeln(")")
	g.writeln("")

	for i, unit := range units {
		if i > 0 {
			g.writeln("")
		}
		g.generateUnit(unit)
	}

	// For tests: just format without import processing (much faster)
	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}

	// For production: format and fix imports with goimports
	out, err := imports.Process(g.sourceFile, g.buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", g.sourceFile, err)
	}
	return out, nil
}

// generateHeader writes the "DO NOT EDIT" comment.
func (g *Generator) generateHeader() {
	g.writeln("// Code generated by declwin generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

// generateUnit writes the build function for one annotated struct.
func (g *Generator) generateUnit(u *Unit) {
	if u.Partial {
		g.writef("// Build%s constructs the controls declared on %s under an\n", u.Name, u.Name)
		g.writeln("// externally supplied parent.")
		g.writef("func Build%s(data *%s, parent %s.Parent) error {\n", u.Name, u.Name, runtimePackage)
	} else {
		g.writef("// Build%s constructs the UI graph declared on %s.\n", u.Name, u.Name)
		g.writef("func Build%s(data *%s) error {\n", u.Name, u.Name)
	}
	g.indent++

	for _, r := range u.Resources {
		g.generateResource(r)
	}
	for _, c := range u.Sorted {
		g.generateControl(c)
	}
	g.generateEvents(u)
	for _, l := range u.Layouts {
		g.generateLayout(l)
	}
	for _, p := range u.Partials {
		g.generatePartial(p)
	}

	g.writeln("return nil")
	g.indent--
	g.writeln("}")

	if u.Partial {
		g.writeln("")
		g.writef("// ProcessEvent dispatches events delivered by the enclosing unit.\n")
		g.writef("func (data *%s) ProcessEvent(evt %s.Event, evtData %s.EventData, src %s.Handle) {\n",
			u.Name, runtimePackage, runtimePackage, runtimePackage)
		g.indent++
		g.generateDispatchBody(u, eventArms(u))
		g.indent--
		g.writeln("}")
	}
}

// generateResource writes one resource builder chain.
func (g *Generator) generateResource(r *Resource) {
	g.writef("if err := %s.New%sBuilder().\n", runtimePackage, r.Type)
	g.indent++
	for _, p := range r.Params {
		g.writef("%s(%s).\n", pascal(p.Name), p.Expr)
	}
	g.writef("Build(&data.%s); err != nil {\n", r.Name)
	g.writeln("return err")
	g.indent--
	g.writeln("}")
}

// generateControl writes one control builder chain. The parent call
// uses the resolver's reference: in the authored position when the
// parameter list named one, appended otherwise.
func (g *Generator) generateControl(c *Control) {
	g.writef("if err := %s.New%sBuilder().\n", runtimePackage, c.Type)
	g.indent++
	for _, p := range c.Params {
		if p.Name == "parent" && c.ResolvedParent != "" {
			g.writef("Parent(%s).\n", c.ResolvedParent)
			continue
		}
		g.writef("%s(%s).\n", pascal(p.Name), p.Expr)
	}
	if c.ResolvedParent != "" && !c.Params.Has("parent") {
		g.writef("Parent(%s).\n", c.ResolvedParent)
	}
	g.writef("Build(&data.%s); err != nil {\n", c.Name)
	g.writeln("return err")
	g.indent--
	g.writeln("}")
}

// eventArm groups the controls bound to one event kind, preserving
// first-appearance order.
type eventArm struct {
	event    string
	controls []*Control
}

func eventArms(u *Unit) []eventArm {
	var arms []eventArm
	for _, c := range u.Controls {
		for _, b := range c.Events {
			i := 0
			for ; i < len(arms); i++ {
				if arms[i].event == b.Event {
					break
				}
			}
			if i == len(arms) {
				arms = append(arms, eventArm{event: b.Event})
			}
			// A control's bindings are grouped, so a duplicate entry
			// for the same event is always adjacent.
			cs := arms[i].controls
			if len(cs) == 0 || cs[len(cs)-1] != c {
				arms[i].controls = append(cs, c)
			}
		}
	}
	return arms
}

// generateEvents wires the unit's bindings. Native notifications
// surface on the enclosing top-level window, so full units bind one
// dispatch closure per top-level control. Partial units instead get a
// ProcessEvent method (emitted after the build function) that the
// enclosing unit's dispatcher calls.
func (g *Generator) generateEvents(u *Unit) {
	if u.Partial {
		return
	}
	arms := eventArms(u)
	if len(arms) == 0 && len(u.Partials) == 0 {
		return
	}

	for _, top := range u.Sorted {
		if !topLevelTypes[top.Type] {
			continue
		}
		g.writef("%s.BindEventHandler(data.%s.Handle(), func(evt %s.Event, evtData %s.EventData, src %s.Handle) {\n",
			runtimePackage, top.Name, runtimePackage, runtimePackage, runtimePackage)
		g.indent++
		g.generateDispatchBody(u, arms)
		g.indent--
		g.writeln("})")
	}
}

// generateDispatchBody forwards to nested partials, then switches on
// the event kind and the source handle.
func (g *Generator) generateDispatchBody(u *Unit, arms []eventArm) {
	for _, p := range u.Partials {
		g.writef("data.%s.ProcessEvent(evt, evtData, src)\n", p.Name)
	}
	if len(arms) == 0 {
		return
	}

	g.writeln("switch evt {")
	for _, a := range arms {
		g.writef("case %s.%s:\n", runtimePackage, a.event)
		g.indent++
		g.writeln("switch src {")
		for _, c := range a.controls {
			g.writef("case data.%s.Handle():\n", c.Name)
			g.indent++
			for _, b := range c.Events {
				if b.Event == a.event {
					g.writef("data.%s()\n", b.Method)
				}
			}
			g.indent--
		}
		g.writeln("}")
		g.indent--
	}
	g.writeln("}")
}

// generateLayout writes one layout builder chain followed by its bound
// children in match order.
func (g *Generator) generateLayout(l *Layout) {
	g.writef("if err := %s.New%sBuilder().\n", runtimePackage, l.Type)
	g.indent++
	for _, p := range l.Params {
		if p.Name == "parent" {
			g.writef("Parent(%s).\n", l.ResolvedParent)
			continue
		}
		g.writef("%s(%s).\n", pascal(p.Name), p.Expr)
	}
	if !l.Params.Has("parent") {
		g.writef("Parent(%s).\n", l.ResolvedParent)
	}
	for _, c := range l.Children {
		g.generateLayoutChild(c)
	}
	g.writef("Build(&data.%s); err != nil {\n", l.Name)
	g.writeln("return err")
	g.indent--
	g.writeln("}")
}

// generateLayoutChild writes the attachment call for one placement.
func (g *Generator) generateLayoutChild(c *Control) {
	p := c.Placement
	switch p.Kind {
	case PlacementGrid:
		col := placementParam(p.Params, "col", "0")
		row := placementParam(p.Params, "row", "0")
		colSpan := placementParam(p.Params, "col_span", "1")
		rowSpan := placementParam(p.Params, "row_span", "1")
		g.writef("ChildItem(%s.GridChild{Col: %s, Row: %s, ColSpan: %s, RowSpan: %s}, &data.%s).\n",
			runtimePackage, col, row, colSpan, rowSpan, c.Name)
	case PlacementBox:
		cell := placementParam(p.Params, "cell", "0")
		cellSpan := placementParam(p.Params, "cell_span", "1")
		g.writef("ChildCell(%s.BoxChild{Cell: %s, CellSpan: %s}, &data.%s).\n",
			runtimePackage, cell, cellSpan, c.Name)
	case PlacementFlex:
		var fields []string
		for _, sp := range p.Params {
			fields = append(fields, fmt.Sprintf("%s: %s", pascal(sp.Name), sp.Expr))
		}
		g.writef("ChildStyle(%s.FlexChildStyle{%s}, &data.%s).\n",
			runtimePackage, strings.Join(fields, ", "), c.Name)
	}
}

// placementParam returns the named placement parameter or its default.
func placementParam(params ParamList, name, def string) string {
	if expr, ok := params.Get(name); ok {
		return expr
	}
	return def
}

// generatePartial writes the nested build call for one partial unit.
func (g *Generator) generatePartial(p *Partial) {
	buildFn := "Build" + p.Type
	if i := strings.LastIndexByte(p.Type, '.'); i >= 0 {
		buildFn = p.Type[:i] + ".Build" + p.Type[i+1:]
	}

	parent := p.ResolvedParent
	if parent == "" {
		parent = "nil"
	}
	g.writef("if err := %s(&data.%s, %s); err != nil {\n", buildFn, p.Name, parent)
	g.indent++
	g.writeln("return err")
	g.indent--
	g.writeln("}")
}

// writef writes a formatted string with indentation.
func (g *Generator) writef(format string, args ...interface{}) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

// writeln writes a line with indentation.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}
