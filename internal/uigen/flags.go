package uigen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// runtimePackage is the selector generated expressions are qualified
// with. Generated files import the runtime under this name.
const runtimePackage = "declwin"

// expandFlags rewrites a flags parameter whose expression is a string
// literal of |-separated bare symbols into a bitwise-or of flag
// constants scoped to the control type:
//
//	flags: "MAIN_WINDOW|VISIBLE" on a Window
//	→ declwin.WindowFlagMainWindow|declwin.WindowFlagVisible
//
// Any other expression shape (an existing bitwise expression, a
// variable reference) passes through unchanged. Applied to at most one
// parameter per control, once.
func expandFlags(typeName, expr string, pos Position, errs *ErrorList) string {
	lit, ok := stringLiteralValue(expr)
	if !ok {
		return expr
	}

	syms := strings.Split(lit, "|")
	parts := make([]string, 0, len(syms))
	for _, sym := range syms {
		sym = strings.TrimSpace(sym)
		if !isFlagSymbol(sym) {
			errs.Add(NewErrorWithHint(pos,
				fmt.Sprintf("invalid flag symbol %q", sym),
				`flags are written as |-separated names, e.g. "MAIN_WINDOW|VISIBLE"`))
			return expr
		}
		parts = append(parts, runtimePackage+"."+typeName+"Flag"+pascal(sym))
	}
	return strings.Join(parts, "|")
}

// stringLiteralValue unquotes expr when it is a single interpreted
// string literal.
func stringLiteralValue(expr string) (string, bool) {
	if len(expr) < 2 || expr[0] != '"' || expr[len(expr)-1] != '"' {
		return "", false
	}
	v, err := strconv.Unquote(expr)
	if err != nil {
		return "", false
	}
	return v, true
}

// isFlagSymbol reports whether s is a bare SCREAMING_SNAKE symbol.
func isFlagSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsUpper(r) || r == '_':
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// enumParams are the parameters whose values are runtime enum
// constants; a bare identifier there is qualified with the runtime
// package so generated code compiles outside it.
var enumParams = map[string]bool{
	"h_align":         true,
	"v_align":         true,
	"check_state":     true,
	"layout_type":     true,
	"flex_direction":  true,
	"justify_content": true,
	"align_items":     true,
	"align_content":   true,
	"align_self":      true,
}

// qualifyEnums rewrites bare enum identifiers in place.
func qualifyEnums(params ParamList) {
	for i, p := range params {
		if enumParams[p.Name] && isPath(p.Expr) && !strings.Contains(p.Expr, ".") {
			params[i].Expr = runtimePackage + "." + p.Expr
		}
	}
}

// pascal converts a snake_case or SCREAMING_SNAKE name to PascalCase:
// col_span → ColSpan, MAIN_WINDOW → MainWindow.
func pascal(name string) string {
	var sb strings.Builder
	up := true
	for _, r := range name {
		if r == '_' {
			up = true
			continue
		}
		if up {
			sb.WriteRune(unicode.ToUpper(r))
			up = false
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
