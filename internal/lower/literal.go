package lower

import (
	"fmt"
	"strconv"
	"strings"

	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// literal lowers a Literal to its source spelling (§4.3, Literals).
func (l *Lowerer) literal(lit ast.Literal) (doc.Doc, error) {
	switch v := lit.(type) {
	case ast.LitInt:
		return doc.Text(strconv.FormatInt(v.Value, 10)), nil
	case ast.LitFloat:
		s := strconv.FormatFloat(v.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return doc.Text(s), nil
	case ast.LitBool:
		if v.Value {
			return doc.Text("true"), nil
		}
		return doc.Text("false"), nil
	case ast.LitString:
		return doc.Text(`"` + escapeString(v.Value) + `"`), nil
	case ast.LitChar:
		return doc.Text("'" + escapeChar(v.Value) + "'"), nil
	default:
		return nil, errorf("Literal", "unknown variant", "unrecognized Literal implementation")
	}
}

// escapeString applies Rust's string-escaping rules (§4.3): backslash,
// double quote, newline, tab, carriage return, and any other non-printable
// rune as \u{…}.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		writeEscapedRune(&b, r, '"')
	}
	return b.String()
}

func escapeChar(r rune) string {
	var b strings.Builder
	writeEscapedRune(&b, r, '\'')
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune, quote rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case quote:
		b.WriteByte('\\')
		b.WriteRune(quote)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	default:
		if !strconv.IsPrint(r) {
			fmt.Fprintf(b, `\u{%x}`, r)
			return
		}
		b.WriteRune(r)
	}
}
