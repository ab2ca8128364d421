// Package lower implements the AST → Document lowering rules of §4.3: the
// mapping from each ast variant to a composition of doc terms, including
// comment and attribute placement.
package lower

import (
	"strings"

	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// Lowerer turns AST values into document terms. It carries no output
// state — only the configured indent width — so a single Lowerer is safe
// to reuse (or share across goroutines) for any number of lowerings.
type Lowerer struct {
	indent int
}

// New returns a Lowerer using indent columns per nesting level. indent <= 0
// falls back to the default of 4 (§4.1, Indentation policy).
func New(indent int) *Lowerer {
	if indent <= 0 {
		indent = 4
	}
	return &Lowerer{indent: indent}
}

func (l *Lowerer) nest(d doc.Doc) doc.Doc {
	return doc.Nest(l.indent, d)
}

// textWithNewlines renders s as a doc, splitting on '\n' so that multi-line
// Block comments (the one comment form allowed to contain raw newlines)
// still advance indentation correctly instead of being smuggled into a
// single Text term, which may not contain newlines.
func textWithNewlines(s string) doc.Doc {
	lines := strings.Split(s, "\n")
	parts := make([]doc.Doc, 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, doc.Hardline)
		}
		parts = append(parts, doc.Text(line))
	}
	return doc.Concat(parts...)
}

// commentAllowed is a small set of the CommentKinds valid at one anchor
// position (§3: "comments attach only to positions marked 'comments'").
type commentAllowed map[ast.CommentKind]bool

var (
	allowLeadingItem  = commentAllowed{ast.CommentLine: true, ast.CommentBlock: true, ast.CommentDoc: true}
	allowTrailing     = commentAllowed{ast.CommentLine: true, ast.CommentBlock: true}
	allowLeadingFile  = commentAllowed{ast.CommentInnerDoc: true}
	allowLeadingStmt  = commentAllowed{ast.CommentLine: true, ast.CommentBlock: true}
	allowLeadingInner = commentAllowed{ast.CommentLine: true, ast.CommentBlock: true, ast.CommentInnerDoc: true}
)

func commentText(kind ast.CommentKind, text string) doc.Doc {
	switch kind {
	case ast.CommentLine:
		return doc.Text("// " + text)
	case ast.CommentDoc:
		return doc.Text("/// " + text)
	case ast.CommentInnerDoc:
		return doc.Text("//! " + text)
	case ast.CommentBlock:
		return textWithNewlines("/* " + text + " */")
	default:
		return doc.Nil
	}
}

// leadingComments validates and lowers a leading-comment list, each entry
// followed by a Hardline so whatever follows (another comment, an
// attribute, or the node's own keyword) starts its own line.
func leadingComments(nodeKind string, comments []ast.Comment, allowed commentAllowed) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(comments)*2)
	for _, c := range comments {
		if !allowed[c.Kind] {
			return nil, errorf(nodeKind, "comment placement", "comment kind %d is not permitted as a leading comment here", c.Kind)
		}
		parts = append(parts, commentText(c.Kind, c.Text), doc.Hardline)
	}
	return doc.Concat(parts...), nil
}

// trailingComments validates and lowers a trailing-comment list, each entry
// preceded by a Hardline so it starts on its own new line after whatever
// precedes it.
func trailingComments(nodeKind string, comments []ast.Comment, allowed commentAllowed) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(comments)*2)
	for _, c := range comments {
		if !allowed[c.Kind] {
			return nil, errorf(nodeKind, "comment placement", "comment kind %d is not permitted as a trailing comment here", c.Kind)
		}
		parts = append(parts, doc.Hardline, commentText(c.Kind, c.Text))
	}
	return doc.Concat(parts...), nil
}

func requireIdent(nodeKind, field, name string) error {
	if strings.TrimSpace(name) == "" {
		return errorf(nodeKind, "invariant 1: non-empty identifier", "%s must not be empty", field)
	}
	return nil
}

// Visibility lowers a Visibility to its keyword form, including the
// trailing space when non-empty (§4.3's item shape treats visibility as one
// of the segments preceding the keyword).
func (l *Lowerer) Visibility(v ast.Visibility) doc.Doc {
	switch v.Kind {
	case ast.VisPublic:
		return doc.Text("pub ")
	case ast.VisCrate:
		return doc.Text("pub(crate) ")
	case ast.VisRestricted:
		return doc.Text("pub(in " + v.Path + ") ")
	default:
		return doc.Nil
	}
}

// outerAttrs lowers an ordinary (Outer-only) attribute list, each entry
// followed by a Hardline (§4.3).
func (l *Lowerer) outerAttrs(nodeKind string, attrs []ast.Attribute) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(attrs)*2)
	for _, a := range attrs {
		if a.Style != ast.AttrOuter {
			return nil, errorf(nodeKind, "invariant 5: Inner attribute placement", "an Inner attribute cannot appear in an Outer-only attribute list")
		}
		md, err := l.meta(a.Meta)
		if err != nil {
			return nil, err
		}
		parts = append(parts, doc.Concat(doc.Text("#["), md, doc.Text("]")), doc.Hardline)
	}
	return doc.Concat(parts...), nil
}

// innerAttrs lowers an Inner-only attribute list belonging to one of the
// enclosing positions invariant 5 permits (File, Mod body, Block, Impl,
// Trait), each entry followed by a Hardline.
func (l *Lowerer) innerAttrs(nodeKind string, attrs []ast.Attribute) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(attrs)*2)
	for _, a := range attrs {
		if a.Style != ast.AttrInner {
			return nil, errorf(nodeKind, "invariant 5: Inner attribute placement", "only Inner attributes may appear here")
		}
		md, err := l.meta(a.Meta)
		if err != nil {
			return nil, err
		}
		parts = append(parts, doc.Concat(doc.Text("#!["), md, doc.Text("]")), doc.Hardline)
	}
	return doc.Concat(parts...), nil
}

func (l *Lowerer) meta(m ast.Meta) (doc.Doc, error) {
	switch v := m.(type) {
	case ast.MetaPath:
		return l.path(v.Path, pathExprPosition), nil
	case ast.MetaList:
		pathDoc := l.path(v.Path, pathExprPosition)
		nested := make([]doc.Doc, len(v.Metas))
		for i, nm := range v.Metas {
			d, err := l.meta(nm)
			if err != nil {
				return nil, err
			}
			nested[i] = d
		}
		return doc.Concat(pathDoc, doc.Text("("), doc.Join(doc.Text(", "), nested...), doc.Text(")")), nil
	case ast.MetaNameValue:
		pathDoc := l.path(v.Path, pathExprPosition)
		litDoc, err := l.literal(v.Value)
		if err != nil {
			return nil, err
		}
		return doc.Concat(pathDoc, doc.Text(" = "), litDoc), nil
	default:
		return nil, errorf("Meta", "unknown variant", "unrecognized Meta implementation")
	}
}

type pathPosition int

const (
	pathExprPosition pathPosition = iota
	pathTypePosition
)

// path lowers a Path, rendering generic arguments as `::<…>` in expression
// position and `<…>` in type position (§4.3, Paths).
func (l *Lowerer) path(p ast.Path, pos pathPosition) doc.Doc {
	segs := make([]doc.Doc, len(p.Segments))
	for i, seg := range p.Segments {
		d := doc.Text(seg.Name)
		if len(seg.Generics) > 0 {
			args := make([]doc.Doc, len(seg.Generics))
			for j, t := range seg.Generics {
				// generic-argument lowering never fails (Type lowering has
				// no invariant checks of its own); errors, if any, surface
				// from the enclosing expression/type lowering instead.
				td, _ := l.typ(t)
				args[j] = td
			}
			sep := "::<"
			if pos == pathTypePosition {
				sep = "<"
			}
			d = doc.Concat(d, doc.Text(sep), doc.Join(doc.Text(", "), args...), doc.Text(">"))
		}
		segs[i] = d
	}
	return doc.Join(doc.Text("::"), segs...)
}

// genericParams lowers a non-empty `<…>` parameter list, reordered per §4.3
// (lifetimes, then types, then consts). An empty list lowers to Nil.
func (l *Lowerer) genericParams(params []ast.GenericParam) (doc.Doc, error) {
	if len(params) == 0 {
		return doc.Nil, nil
	}
	ordered := ast.SortedGenerics(params)
	parts := make([]doc.Doc, len(ordered))
	for i, p := range ordered {
		switch p.Kind {
		case ast.GenericLifetime:
			if err := requireIdent("GenericParam", "lifetime name", p.Name); err != nil {
				return nil, err
			}
			parts[i] = doc.Text("'" + p.Name)
		case ast.GenericType:
			if err := requireIdent("GenericParam", "type parameter name", p.Name); err != nil {
				return nil, err
			}
			if len(p.Bounds) == 0 {
				parts[i] = doc.Text(p.Name)
				continue
			}
			bounds := make([]doc.Doc, len(p.Bounds))
			for j, b := range p.Bounds {
				bd, err := l.typ(b)
				if err != nil {
					return nil, err
				}
				bounds[j] = bd
			}
			parts[i] = doc.Concat(doc.Text(p.Name+": "), doc.Join(doc.Text(" + "), bounds...))
		case ast.GenericConst:
			if err := requireIdent("GenericParam", "const parameter name", p.Name); err != nil {
				return nil, err
			}
			td, err := l.typ(p.Type)
			if err != nil {
				return nil, err
			}
			parts[i] = doc.Concat(doc.Text("const "+p.Name+": "), td)
		}
	}
	return doc.Concat(doc.Text("<"), doc.Join(doc.Text(", "), parts...), doc.Text(">")), nil
}

// whereClause lowers an optional `where` clause, emitted on its own line
// after the rest of the signature (§4.3, Generic parameters).
func (l *Lowerer) whereClause(preds []ast.WherePredicate) (doc.Doc, error) {
	if len(preds) == 0 {
		return doc.Nil, nil
	}
	parts := make([]doc.Doc, len(preds))
	for i, p := range preds {
		td, err := l.typ(p.Type)
		if err != nil {
			return nil, err
		}
		bounds := make([]doc.Doc, len(p.Bounds))
		for j, b := range p.Bounds {
			bd, err := l.typ(b)
			if err != nil {
				return nil, err
			}
			bounds[j] = bd
		}
		parts[i] = doc.Concat(td, doc.Text(": "), doc.Join(doc.Text(" + "), bounds...))
	}
	return doc.Concat(doc.Hardline, doc.Text("where "), l.nest(doc.Join(doc.Concat(doc.Text(","), doc.Hardline), parts...))), nil
}

// Item lowers it as a root node (no surrounding statement or trailing
// newline policy applied — that is the façade's job).
func (l *Lowerer) Item(it ast.Item) (doc.Doc, error) { return l.item(it) }

// Expr lowers e as a root node, with no parenthesization added beyond what
// e's own shape already carries.
func (l *Lowerer) Expr(e ast.Expr) (doc.Doc, error) { return l.exprRaw(e) }

// Stmt lowers s as a root node.
func (l *Lowerer) Stmt(s ast.Stmt) (doc.Doc, error) { return l.stmt(s) }

// Type lowers t as a root node.
func (l *Lowerer) Type(t ast.Type) (doc.Doc, error) { return l.typ(t) }

// Pattern lowers p as a root node.
func (l *Lowerer) Pattern(p ast.Pattern) (doc.Doc, error) { return l.pattern(p) }

// Block lowers b as a root node.
func (l *Lowerer) Block(b *ast.Block) (doc.Doc, error) { return l.block(b) }
