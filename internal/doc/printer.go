package doc

import (
	"strings"
	"unicode/utf8"
)

// mode controls how a Line/Softline term renders inside whatever Group
// (if any) currently encloses it.
type mode int

const (
	modeFlat mode = iota
	modeBreak
)

// DefaultWidth is the target column width used when a caller does not
// supply one.
const DefaultWidth = 100

// Render lays out d for the given target width and returns the resulting
// text. Render never fails (§4.1: "the layout engine itself does not
// fail"); an unbreakable Text wider than the remaining budget simply
// overflows the width.
func Render(d Doc, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	p := &printer{width: width}
	p.render(d, 0, modeBreak)
	return p.buf.String()
}

type printer struct {
	buf    strings.Builder
	width  int
	column int
}

func (p *printer) render(d Doc, indent int, m mode) {
	switch v := d.(type) {
	case nilDoc:
		// no-op
	case textDoc:
		s := string(v)
		p.buf.WriteString(s)
		p.column += utf8.RuneCountInString(s)
	case lineDoc:
		p.renderLine(v, indent, m)
	case nestDoc:
		p.render(v.d, indent+v.n, m)
	case groupDoc:
		next := modeBreak
		if fits(v.d, p.width-p.column) {
			next = modeFlat
		}
		p.render(v.d, indent, next)
	case concatDoc:
		for _, sub := range v {
			p.render(sub, indent, m)
		}
	}
}

func (p *printer) renderLine(l lineDoc, indent int, m mode) {
	switch l.kind {
	case lineHard:
		p.newline(indent)
	case lineNormal:
		if m == modeFlat {
			p.buf.WriteByte(' ')
			p.column++
		} else {
			p.newline(indent)
		}
	case lineSoft:
		if m == modeBreak {
			p.newline(indent)
		}
	}
}

func (p *printer) newline(indent int) {
	p.buf.WriteByte('\n')
	if indent > 0 {
		p.buf.WriteString(strings.Repeat(" ", indent))
	}
	p.column = indent
}

// fits reports whether d, fully flattened (Line -> space, Softline ->
// nothing), renders within remaining columns before either a Hardline or
// the end of d is reached. It is the probe behind every Group's mode
// decision (§4.1 step 5): work is bounded by remaining, not by the size of
// d, because the scan stops the moment the budget is exhausted.
func fits(d Doc, remaining int) bool {
	stack := []Doc{d}
	for remaining >= 0 {
		if len(stack) == 0 {
			return true
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cur.(type) {
		case nilDoc:
		case textDoc:
			remaining -= utf8.RuneCountInString(string(v))
		case lineDoc:
			switch v.kind {
			case lineHard:
				return false
			case lineNormal:
				remaining--
			case lineSoft:
				// zero width when flattened
			}
		case nestDoc:
			stack = append(stack, v.d)
		case groupDoc:
			stack = append(stack, v.d)
		case concatDoc:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
		}
	}
	return false
}
