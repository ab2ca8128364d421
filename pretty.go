// Package rustpp is a pretty-printer for a Rust-shaped expression/item AST:
// a document-algebra layout engine (internal/doc) driven by a lowering pass
// (internal/lower) that turns ast values into layout documents.
package rustpp

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
	"rustpp/internal/lower"
)

// Options configures a Pretty call. The zero value is not valid on its own;
// use DefaultOptions or Pretty, which fills in zero fields with defaults.
type Options struct {
	Width  int // max line width; default 100
	Indent int // columns per nesting level; default 4
}

// DefaultOptions returns the documented defaults (§4.4): 100 columns wide,
// 4-column indent steps.
func DefaultOptions() Options {
	return Options{Width: 100, Indent: 4}
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = 100
	}
	if o.Indent <= 0 {
		o.Indent = 4
	}
	return o
}

// Node is any AST value Pretty accepts: an Item, an Expr, a Stmt, a Type, a
// Pattern, a *ast.Block, or the root *ast.File.
type Node any

// Pretty renders node to formatted source text. It is pure: no I/O, no
// global state, deterministic for identical input. The returned string ends
// with exactly one trailing '\n' when node is a *ast.File; for any other
// node kind no trailing newline is added (§6, Output contract).
func Pretty(node Node, opts ...Options) (string, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0].normalized()
	}
	l := lower.New(o.Indent)

	d, isFile, err := lowerNode(l, node)
	if err != nil {
		return "", err
	}
	out := doc.Render(d, o.Width)
	if isFile {
		out += "\n"
	}
	return out, nil
}

func lowerNode(l *lower.Lowerer, node Node) (doc.Doc, bool, error) {
	switch v := node.(type) {
	case *ast.File:
		d, err := l.File(v)
		return d, true, err
	case ast.Item:
		d, err := l.Item(v)
		return d, false, err
	case ast.Expr:
		d, err := l.Expr(v)
		return d, false, err
	case ast.Stmt:
		d, err := l.Stmt(v)
		return d, false, err
	case ast.Type:
		d, err := l.Type(v)
		return d, false, err
	case ast.Pattern:
		d, err := l.Pattern(v)
		return d, false, err
	case *ast.Block:
		d, err := l.Block(v)
		return d, false, err
	default:
		return nil, false, &lower.Error{NodeKind: "root", Rule: "supported node kind", Detail: "unrecognized root node type passed to Pretty"}
	}
}
