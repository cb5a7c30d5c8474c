package uigen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseParams scans a directive payload of the form
//
//	name1: expr1, name2: expr2, ...
//
// into an ordered ParamList. Expressions are opaque Go source: the
// scanner only tracks delimiter nesting and string/rune literals so a
// top-level comma ends a parameter and a nested one does not. A
// trailing comma is allowed. No semantic validation of expressions
// happens here.
func parseParams(payload string, base Position, errs *ErrorList) (ParamList, bool) {
	p := &paramScanner{src: payload, base: base, errors: errs}
	return p.scan()
}

type paramScanner struct {
	src    string
	pos    int // byte offset into src
	base   Position
	errors *ErrorList
}

// position reports the source position of the current offset. Payloads
// are single-line, so only the column moves.
func (p *paramScanner) position() Position {
	return Position{File: p.base.File, Line: p.base.Line, Column: p.base.Column + p.pos}
}

func (p *paramScanner) scan() (ParamList, bool) {
	var params ParamList
	ok := true

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}

		name, nameOK := p.scanName()
		if !nameOK {
			return params, false
		}

		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			p.errors.Add(NewErrorWithHint(p.position(),
				"expected ':' after parameter name "+name,
				"parameters are written name: expression"))
			return params, false
		}
		p.pos++ // consume ':'

		expr, exprOK := p.scanExpr()
		if !exprOK {
			return params, false
		}
		if expr == "" {
			p.errors.AddErrorf(p.position(), "parameter %s has an empty expression", name)
			return params, false
		}

		params = append(params, Param{Name: name, Expr: expr})

		p.skipSpace()
		if p.pos < len(p.src) {
			if p.src[p.pos] != ',' {
				p.errors.AddErrorf(p.position(), "expected ',' between parameters, found %q", p.src[p.pos])
				return params, false
			}
			p.pos++ // consume ','
		}
	}

	return params, ok
}

func (p *paramScanner) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
}

// scanName reads a Go identifier.
func (p *paramScanner) scanName() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentRune(r, p.pos-start) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		p.errors.AddErrorf(p.position(), "expected parameter name, found %q", rest(p.src[p.pos:]))
		return "", false
	}
	return p.src[start:p.pos], true
}

// scanExpr reads an expression up to the next top-level comma or the
// end of the payload, tracking delimiter depth and skipping string,
// raw string, and rune literals.
func (p *paramScanner) scanExpr() (string, bool) {
	start := p.pos
	depth := 0

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '(', '[', '{':
			depth++
			p.pos++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				p.errors.AddErrorf(p.position(), "unmatched %q in parameter expression", p.src[p.pos])
				return "", false
			}
			p.pos++
		case ',':
			if depth == 0 {
				return strings.TrimSpace(p.src[start:p.pos]), true
			}
			p.pos++
		case '"':
			p.skipString()
		case '`':
			p.skipRawString()
		case '\'':
			p.skipRune()
		default:
			p.pos++
		}
	}

	if depth != 0 {
		p.errors.AddError(p.position(), "unterminated parameter expression: unbalanced delimiters")
		return "", false
	}

	return strings.TrimSpace(p.src[start:p.pos]), true
}

func (p *paramScanner) skipString() {
	p.pos++ // consume opening "
	for p.pos < len(p.src) && p.src[p.pos] != '"' {
		if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			p.pos += 2
			continue
		}
		p.pos++
	}
	if p.pos < len(p.src) {
		p.pos++ // consume closing "
	}
}

func (p *paramScanner) skipRawString() {
	p.pos++ // consume opening `
	for p.pos < len(p.src) && p.src[p.pos] != '`' {
		p.pos++
	}
	if p.pos < len(p.src) {
		p.pos++ // consume closing `
	}
}

func (p *paramScanner) skipRune() {
	p.pos++ // consume opening '
	if p.pos < len(p.src) && p.src[p.pos] == '\\' {
		p.pos += 2
	} else if p.pos < len(p.src) {
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '\'' {
		p.pos++
	}
}

func isIdentRune(r rune, i int) bool {
	if unicode.IsLetter(r) || r == '_' {
		return true
	}
	return i > 0 && unicode.IsDigit(r)
}

// rest returns a short prefix of s for use in diagnostics.
func rest(s string) string {
	if len(s) > 12 {
		return s[:12] + "..."
	}
	return s
}

// isPath reports whether expr is a plain identifier path such as
// Window or declwin.Button. Paths are the only expression shape the
// resolver accepts for parent and ty parameters.
func isPath(expr string) bool {
	if expr == "" {
		return false
	}
	for _, seg := range strings.Split(expr, ".") {
		if seg == "" {
			return false
		}
		for i, r := range seg {
			if !isIdentRune(r, i) {
				return false
			}
		}
	}
	return true
}

// lastSegment returns the final element of an identifier path.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
