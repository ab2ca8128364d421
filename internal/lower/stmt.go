package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// block lowers a Block to `{}` (empty) or a braced, hardline-separated
// statement sequence. Blocks never participate in the fits-probe the way
// expression groups do (§4.3): once a block has any content it always
// breaks, matching Rust's conventional one-statement-per-line style.
func (l *Lowerer) block(b *ast.Block) (doc.Doc, error) {
	leadingInner, err := leadingComments("Block", b.LeadingInner, allowLeadingInner)
	if err != nil {
		return nil, err
	}
	innerAttrs, err := l.innerAttrs("Block", b.InnerAttrs)
	if err != nil {
		return nil, err
	}
	stmts := make([]doc.Doc, len(b.Stmts))
	for i, s := range b.Stmts {
		d, err := l.stmt(s)
		if err != nil {
			return nil, err
		}
		stmts[i] = d
	}
	trailing, err := trailingComments("Block", b.Trailing, allowTrailing)
	if err != nil {
		return nil, err
	}

	if len(b.Stmts) == 0 && leadingInner == doc.Nil && innerAttrs == doc.Nil && trailing == doc.Nil {
		return doc.Text("{}"), nil
	}

	body := doc.Concat(leadingInner, innerAttrs, doc.Join(doc.Hardline, stmts...), trailing)
	return doc.Concat(doc.Text("{"), l.nest(doc.Concat(doc.Hardline, body)), doc.Hardline, doc.Text("}")), nil
}

func (l *Lowerer) stmt(s ast.Stmt) (doc.Doc, error) {
	switch v := s.(type) {
	case *ast.LocalStmt:
		leading, err := leadingComments("LocalStmt", v.Leading, allowLeadingStmt)
		if err != nil {
			return nil, err
		}
		pat, err := l.pattern(v.Pattern)
		if err != nil {
			return nil, err
		}
		out := doc.Concat(doc.Text("let "), pat)
		if v.Type != nil {
			ty, err := l.typ(v.Type)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(": "), ty)
		}
		if v.Init != nil {
			init, err := l.expr(v.Init, precAssign)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(" = "), init)
		}
		return doc.Concat(leading, out, doc.Text(";")), nil
	case *ast.ExprStmt:
		leading, err := leadingComments("ExprStmt", v.Leading, allowLeadingStmt)
		if err != nil {
			return nil, err
		}
		e, err := l.expr(v.Expr, precAssign)
		if err != nil {
			return nil, err
		}
		if v.HasSemicolon {
			e = doc.Concat(e, doc.Text(";"))
		}
		return doc.Concat(leading, e), nil
	case *ast.ItemStmt:
		leading, err := leadingComments("ItemStmt", v.Leading, allowLeadingStmt)
		if err != nil {
			return nil, err
		}
		item, err := l.item(v.Item)
		if err != nil {
			return nil, err
		}
		return doc.Concat(leading, item), nil
	default:
		return nil, errorf("Stmt", "unknown variant", "unrecognized Stmt implementation")
	}
}
