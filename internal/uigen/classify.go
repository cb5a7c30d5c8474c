package uigen

import (
	"fmt"
	"strings"
)

// roleDirectives maps directive names to field roles. A participating
// field carries exactly one of these.
var roleDirectives = map[string]Role{
	"control":  RoleControl,
	"resource": RoleResource,
	"layout":   RoleLayout,
	"partial":  RolePartial,
}

// auxDirectives are the non-role directives a field may carry in
// addition to its role marker.
var auxDirectives = map[string]bool{
	"item":   true,
	"events": true,
}

// buildUnit classifies every field of a scanned struct and assembles
// the unit graph the resolver and binder operate on. Errors accumulate
// in errs; the returned unit is usable only when errs stays empty.
func buildUnit(s *ScannedStruct, pkg string, errs *ErrorList) *Unit {
	unit := &Unit{
		Name:    s.Name,
		Pos:     s.Pos,
		Package: pkg,
		Partial: s.Partial,
	}

	for _, field := range s.Fields {
		classifyField(unit, field, errs)
	}
	return unit
}

// classifyField decides the role of one field and appends the
// resulting entity to the unit.
func classifyField(unit *Unit, field Field, errs *ErrorList) {
	role := RolePlain
	var roleDir, itemDir Directive
	var eventDirs []Directive

	for _, d := range field.Directives {
		if r, ok := roleDirectives[d.Name]; ok {
			if role != RolePlain {
				errs.AddErrorf(d.Pos, "field %s has both ui:%s and ui:%s role directives",
					field.Name, role, d.Name)
				return
			}
			role = r
			roleDir = d
			continue
		}
		switch d.Name {
		case "item":
			itemDir = d
		case "events":
			eventDirs = append(eventDirs, d)
		default:
			errs.Add(NewErrorWithHint(d.Pos,
				fmt.Sprintf("unknown directive ui:%s on field %s", d.Name, field.Name),
				"valid directives are control, resource, layout, partial, item, events"))
			return
		}
	}

	if role == RolePlain {
		if itemDir.Name != "" || len(eventDirs) > 0 {
			errs.Add(NewErrorWithHint(field.Pos,
				fmt.Sprintf("field %s has ui:item or ui:events but no role directive", field.Name),
				"add a ui:control directive"))
		}
		return
	}

	params, ok := parseParams(roleDir.Payload, roleDir.payloadPos, errs)
	if !ok {
		return
	}

	typeName, fullType, params, ok := resolveType(field, params, roleDir.Pos, errs)
	if !ok {
		return
	}

	if role != RoleControl {
		if itemDir.Name != "" {
			errs.AddErrorf(itemDir.Pos, "ui:item is only valid on a ui:control field, not ui:%s", role)
		}
		if len(eventDirs) > 0 {
			errs.AddErrorf(eventDirs[0].Pos, "ui:events is only valid on a ui:control field, not ui:%s", role)
		}
	}

	switch role {
	case RoleControl:
		ctrl := &Control{
			Name:      field.Name,
			Type:      typeName,
			Pos:       field.Pos,
			Params:    params,
			DeclIndex: len(unit.Controls),
		}
		if itemDir.Name != "" {
			ctrl.Placement = parsePlacement(itemDir, errs)
		}
		for _, d := range eventDirs {
			ctrl.Events = append(ctrl.Events, parseEvents(d, errs)...)
		}
		unit.Controls = append(unit.Controls, ctrl)

	case RoleResource:
		unit.Resources = append(unit.Resources, &Resource{
			Name:   field.Name,
			Type:   typeName,
			Pos:    field.Pos,
			Params: params,
		})

	case RoleLayout:
		unit.Layouts = append(unit.Layouts, &Layout{
			Name:   field.Name,
			Type:   typeName,
			Pos:    field.Pos,
			Params: params,
		})

	case RolePartial:
		unit.Partials = append(unit.Partials, &Partial{
			Name:   field.Name,
			Type:   fullType,
			Pos:    field.Pos,
			Params: params,
		})
	}
}

// resolveType applies the ty parameter override: a plain path
// expression whose last segment replaces the field's declared type.
// The ty parameter is consumed here and never reaches the emitter.
// fullType keeps any package qualifier; partial emission needs it to
// name the nested build function.
func resolveType(field Field, params ParamList, pos Position, errs *ErrorList) (typeName, fullType string, out ParamList, ok bool) {
	i := params.Index("ty")
	if i < 0 {
		if field.TypeName == "" {
			errs.Add(NewErrorWithHint(pos,
				fmt.Sprintf("cannot determine a type for field %s", field.Name),
				"declare a concrete type or add a ty parameter"))
			return "", "", params, false
		}
		return field.TypeName, field.TypeExpr, params, true
	}

	expr := params[i].Expr
	if !isPath(expr) {
		errs.Add(NewErrorWithHint(pos,
			fmt.Sprintf("ty parameter of field %s must be a type path, found %q", field.Name, expr),
			"write ty: Button or ty: declwin.Button"))
		return "", "", params, false
	}

	out = make(ParamList, 0, len(params)-1)
	out = append(out, params[:i]...)
	out = append(out, params[i+1:]...)
	return lastSegment(expr), expr, out, true
}

// parsePlacement turns a ui:item directive into a pending placement
// record. The layout: parameter names a layout field of the same
// struct; matching happens later in the binder.
func parsePlacement(d Directive, errs *ErrorList) *Placement {
	params, ok := parseParams(d.Payload, d.payloadPos, errs)
	if !ok {
		return nil
	}

	p := &Placement{Pos: d.Pos, Kind: PlacementPending}

	if i := params.Index("layout"); i >= 0 {
		expr := params[i].Expr
		if !isPath(expr) {
			errs.Add(NewErrorWithHint(d.Pos,
				fmt.Sprintf("layout parameter must name a layout field, found %q", expr),
				"write layout: Grid"))
			return nil
		}
		p.LayoutName = lastSegment(expr)
		rest := make(ParamList, 0, len(params)-1)
		rest = append(rest, params[:i]...)
		rest = append(rest, params[i+1:]...)
		p.Params = rest
	} else {
		// No layout selector: the record stays pending forever and is
		// reported at emission as an unmatched item.
		p.Params = params
	}
	return p
}

// parseEvents turns a ui:events directive into bindings. Each value
// must be a method path; only the last segment is kept since handlers
// are methods on the annotated struct.
func parseEvents(d Directive, errs *ErrorList) []EventBinding {
	params, ok := parseParams(d.Payload, d.payloadPos, errs)
	if !ok {
		return nil
	}

	bindings := make([]EventBinding, 0, len(params))
	for _, p := range params {
		if !isPath(p.Expr) {
			errs.Add(NewErrorWithHint(d.Pos,
				fmt.Sprintf("handler for %s must be a method name, found %q", p.Name, p.Expr),
				"write "+p.Name+": MethodName"))
			continue
		}
		if !strings.HasPrefix(p.Name, "On") {
			errs.Add(NewErrorWithHint(d.Pos,
				fmt.Sprintf("unknown event %q", p.Name),
				"event names start with On, e.g. OnButtonClick"))
			continue
		}
		bindings = append(bindings, EventBinding{
			Pos:    d.Pos,
			Event:  p.Name,
			Method: lastSegment(p.Expr),
		})
	}
	return bindings
}
