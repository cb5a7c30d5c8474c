package uigen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// directivePrefix introduces a directive comment. Like go:generate
// directives, the prefix must start the comment with no space after
// the slashes; anything else is an ordinary comment.
const directivePrefix = "//ui:"

// Directive is one parsed //ui: comment attached to a field or struct.
type Directive struct {
	Name    string // control, resource, layout, partial, item, events
	Payload string // text between the parentheses, may be empty
	Pos     Position
	// payloadPos locates the first payload byte for parameter errors.
	payloadPos Position
}

// Field is the language-neutral field descriptor the rest of the
// pipeline operates on: the annotated struct reduced to name, type and
// directive payloads.
type Field struct {
	Name       string
	TypeExpr   string // declared Go type as written, stars stripped
	TypeName   string // last path segment of TypeExpr
	Pos        Position
	Directives []Directive
}

// ScannedStruct is one struct type declaration carrying directives.
type ScannedStruct struct {
	Name    string
	Pos     Position
	Partial bool
	Fields  []Field
}

// ScanSource parses Go source and returns the package name and every
// struct declaration that participates in the UI graph. Structs with
// no directives are skipped entirely.
func ScanSource(filename string, src []byte) (string, []*ScannedStruct, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	errs := NewErrorList()
	var structs []*ScannedStruct

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			s := scanStruct(fset, typeSpec.Name.Name, structType, doc, errs)
			if s != nil {
				structs = append(structs, s)
			}
		}
	}

	if err := errs.Err(); err != nil {
		return file.Name.Name, structs, err
	}
	return file.Name.Name, structs, nil
}

// scanStruct collects the directives of one struct declaration.
// Returns nil when neither the struct nor any field carries one.
func scanStruct(fset *token.FileSet, name string, st *ast.StructType, doc *ast.CommentGroup, errs *ErrorList) *ScannedStruct {
	s := &ScannedStruct{Name: name, Pos: position(fset, st.Pos())}

	annotated := false
	for _, d := range parseDirectives(fset, doc, errs) {
		if d.Name == "partial" && d.Payload == "" {
			s.Partial = true
			annotated = true
			continue
		}
		errs.Add(NewErrorWithHint(d.Pos,
			fmt.Sprintf("directive ui:%s is not valid on a struct type", d.Name),
			"only a bare ui:partial marker may precede the type declaration"))
	}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			continue // embedded fields never participate
		}

		directives := parseDirectives(fset, f.Doc, errs)
		if len(directives) == 0 {
			continue
		}
		if len(f.Names) > 1 {
			errs.AddErrorf(position(fset, f.Pos()),
				"annotated fields must be declared one per line, found %d names", len(f.Names))
			continue
		}

		typeExpr := typeString(f.Type)
		s.Fields = append(s.Fields, Field{
			Name:       f.Names[0].Name,
			TypeExpr:   typeExpr,
			TypeName:   lastSegment(typeExpr),
			Pos:        position(fset, f.Pos()),
			Directives: directives,
		})
		annotated = true
	}

	if !annotated {
		return nil
	}
	return s
}

// parseDirectives extracts //ui: directives from a comment group,
// preserving their order.
func parseDirectives(fset *token.FileSet, doc *ast.CommentGroup, errs *ErrorList) []Directive {
	if doc == nil {
		return nil
	}

	var out []Directive
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, directivePrefix) {
			continue
		}
		pos := position(fset, c.Pos())
		d, ok := parseDirective(c.Text, pos, errs)
		if ok {
			out = append(out, d)
		}
	}
	return out
}

// parseDirective splits one comment into directive name and payload.
// Valid shapes: //ui:name and //ui:name(payload).
func parseDirective(text string, pos Position, errs *ErrorList) (Directive, bool) {
	body := text[len(directivePrefix):]

	nameEnd := 0
	for nameEnd < len(body) && isIdentRune(rune(body[nameEnd]), nameEnd) {
		nameEnd++
	}
	name := body[:nameEnd]
	if name == "" {
		errs.AddErrorf(pos, "malformed directive %q: missing name", text)
		return Directive{}, false
	}

	rest := strings.TrimSpace(body[nameEnd:])
	if rest == "" {
		return Directive{Name: name, Pos: pos}, true
	}

	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		errs.Add(NewErrorWithHint(pos,
			fmt.Sprintf("malformed directive ui:%s: expected parenthesized parameters", name),
			"directives are written //ui:"+name+"(name: expression, ...)"))
		return Directive{}, false
	}

	payload := rest[1 : len(rest)-1]
	payloadPos := pos
	payloadPos.Column += len(directivePrefix) + strings.Index(body, "(") + 1

	return Directive{Name: name, Payload: payload, Pos: pos, payloadPos: payloadPos}, true
}

// typeString renders a field type the way it was written, resolving
// the shapes that can actually declare a control. Pointers are
// flattened since builders fill the slot either way.
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name + "." + t.Sel.Name
		}
		return t.Sel.Name
	case *ast.StarExpr:
		return typeString(t.X)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func position(fset *token.FileSet, p token.Pos) Position {
	fp := fset.Position(p)
	return Position{File: fp.Filename, Line: fp.Line, Column: fp.Column}
}
