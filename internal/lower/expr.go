package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// expr lowers e for use in a context that requires at least minPrec to avoid
// parenthesization, wrapping in ParenExpr-style parens when e's own
// precedence falls short.
func (l *Lowerer) expr(e ast.Expr, minPrec int) (doc.Doc, error) {
	d, err := l.exprRaw(e)
	if err != nil {
		return nil, err
	}
	if exprPrecedence(e) < minPrec {
		return doc.Concat(doc.Text("("), d, doc.Text(")")), nil
	}
	return d, nil
}

func (l *Lowerer) exprRaw(e ast.Expr) (doc.Doc, error) {
	switch v := e.(type) {
	case *ast.LitExpr:
		return l.literal(v.Value)
	case *ast.IdentExpr:
		if err := requireIdent("IdentExpr", "Name", v.Name); err != nil {
			return nil, err
		}
		if v.Raw {
			return doc.Text("r#" + v.Name), nil
		}
		return doc.Text(v.Name), nil
	case *ast.PathExpr:
		return l.path(v.Path, pathExprPosition), nil
	case *ast.BinaryExpr:
		return l.binaryExpr(v)
	case *ast.UnaryExpr:
		operand, err := l.expr(v.Operand, precUnary)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text(v.Op), operand), nil
	case *ast.CallExpr:
		callee, err := l.expr(v.Callee, precPostfix)
		if err != nil {
			return nil, err
		}
		args, err := l.exprList(v.Args)
		if err != nil {
			return nil, err
		}
		return doc.Concat(callee, doc.Text("("), args, doc.Text(")")), nil
	case *ast.MethodCallExpr:
		if err := requireIdent("MethodCallExpr", "Name", v.Name); err != nil {
			return nil, err
		}
		recv, err := l.expr(v.Receiver, precPostfix)
		if err != nil {
			return nil, err
		}
		args, err := l.exprList(v.Args)
		if err != nil {
			return nil, err
		}
		return doc.Concat(recv, doc.Text("."+v.Name+"("), args, doc.Text(")")), nil
	case *ast.FieldExpr:
		if err := requireIdent("FieldExpr", "Name", v.Name); err != nil {
			return nil, err
		}
		base, err := l.expr(v.Base, precPostfix)
		if err != nil {
			return nil, err
		}
		return doc.Concat(base, doc.Text("."+v.Name)), nil
	case *ast.IndexExpr:
		base, err := l.expr(v.Base, precPostfix)
		if err != nil {
			return nil, err
		}
		idx, err := l.expr(v.Index, precAssign)
		if err != nil {
			return nil, err
		}
		return doc.Concat(base, doc.Text("["), idx, doc.Text("]")), nil
	case *ast.TupleExpr:
		elems, err := l.exprSlice(v.Elems)
		if err != nil {
			return nil, err
		}
		if len(elems) == 1 {
			return doc.Concat(doc.Text("("), elems[0], doc.Text(",)")), nil
		}
		return doc.Concat(doc.Text("("), doc.Join(doc.Text(", "), elems...), doc.Text(")")), nil
	case *ast.ArrayExpr:
		args, err := l.exprList(v.Elems)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("["), args, doc.Text("]")), nil
	case *ast.StructExpr:
		return l.structExpr(v)
	case *ast.IfExpr:
		return l.ifExpr(v)
	case *ast.MatchExpr:
		return l.matchExpr(v)
	case *ast.LoopExpr:
		body, err := l.block(v.Body)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("loop "), body), nil
	case *ast.WhileExpr:
		cond, err := l.expr(v.Cond, precAssign)
		if err != nil {
			return nil, err
		}
		body, err := l.block(v.Body)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("while "), cond, doc.Text(" "), body), nil
	case *ast.ForExpr:
		pat, err := l.pattern(v.Pattern)
		if err != nil {
			return nil, err
		}
		iter, err := l.expr(v.Iter, precAssign)
		if err != nil {
			return nil, err
		}
		body, err := l.block(v.Body)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("for "), pat, doc.Text(" in "), iter, doc.Text(" "), body), nil
	case *ast.BlockExpr:
		return l.block(v.Block)
	case *ast.ReturnExpr:
		if v.Value == nil {
			return doc.Text("return"), nil
		}
		val, err := l.expr(v.Value, precAssign)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("return "), val), nil
	case *ast.BreakExpr:
		parts := []doc.Doc{doc.Text("break")}
		if v.Label != "" {
			parts = append(parts, doc.Text(" '"+v.Label))
		}
		if v.Value != nil {
			val, err := l.expr(v.Value, precAssign)
			if err != nil {
				return nil, err
			}
			parts = append(parts, doc.Text(" "), val)
		}
		return doc.Concat(parts...), nil
	case *ast.ContinueExpr:
		if v.Label != "" {
			return doc.Text("continue '" + v.Label), nil
		}
		return doc.Text("continue"), nil
	case *ast.ClosureExpr:
		return l.closureExpr(v)
	case *ast.CastExpr:
		inner, err := l.expr(v.Expr, precCast)
		if err != nil {
			return nil, err
		}
		ty, err := l.typ(v.Type)
		if err != nil {
			return nil, err
		}
		return doc.Concat(inner, doc.Text(" as "), ty), nil
	case *ast.ReferenceExpr:
		inner, err := l.expr(v.Expr, precUnary)
		if err != nil {
			return nil, err
		}
		if v.Mutable {
			return doc.Concat(doc.Text("&mut "), inner), nil
		}
		return doc.Concat(doc.Text("&"), inner), nil
	case *ast.ParenExpr:
		inner, err := l.expr(v.Expr, precAssign)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("("), inner, doc.Text(")")), nil
	default:
		return nil, errorf("Expr", "unknown variant", "unrecognized Expr implementation")
	}
}

func (l *Lowerer) exprSlice(es []ast.Expr) ([]doc.Doc, error) {
	out := make([]doc.Doc, len(es))
	for i, e := range es {
		d, err := l.expr(e, precAssign)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// exprList lowers a comma-separated argument/element list as a single Group
// that breaks one element per line when it does not fit (§4.1, §4.3).
func (l *Lowerer) exprList(es []ast.Expr) (doc.Doc, error) {
	if len(es) == 0 {
		return doc.Nil, nil
	}
	elems, err := l.exprSlice(es)
	if err != nil {
		return nil, err
	}
	return doc.Group(l.nest(doc.Concat(doc.Softline, doc.Join(doc.Concat(doc.Text(","), doc.Line), elems...)))), nil
}

func (l *Lowerer) binaryExpr(v *ast.BinaryExpr) (doc.Doc, error) {
	p := binaryPrecedence(v.Op)
	leftMin, rightMin := p, p+1
	if isRightAssociative(v.Op) {
		leftMin, rightMin = p+1, p
	}
	left, err := l.expr(v.Left, leftMin)
	if err != nil {
		return nil, err
	}
	right, err := l.expr(v.Right, rightMin)
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(left, doc.Text(" "+v.Op+" "), right)), nil
}

func (l *Lowerer) structExpr(v *ast.StructExpr) (doc.Doc, error) {
	pathDoc := l.path(v.Path, pathExprPosition)
	fields := make([]doc.Doc, 0, len(v.Fields)+1)
	for _, f := range v.Fields {
		if err := requireIdent("FieldValue", "Name", f.Name); err != nil {
			return nil, err
		}
		val, err := l.expr(f.Value, precAssign)
		if err != nil {
			return nil, err
		}
		if ident, ok := f.Value.(*ast.IdentExpr); ok && ident.Name == f.Name && !ident.Raw {
			fields = append(fields, doc.Text(f.Name))
			continue
		}
		fields = append(fields, doc.Concat(doc.Text(f.Name+": "), val))
	}
	if v.Base != nil {
		base, err := l.expr(v.Base, precAssign)
		if err != nil {
			return nil, err
		}
		fields = append(fields, doc.Concat(doc.Text(".."), base))
	}
	if len(fields) == 0 {
		return doc.Concat(pathDoc, doc.Text(" {}")), nil
	}
	body := doc.Group(doc.Concat(
		doc.Text("{"),
		l.nest(doc.Concat(doc.Line, doc.Join(doc.Concat(doc.Text(","), doc.Line), fields...))),
		doc.Line,
		doc.Text("}"),
	))
	return doc.Concat(pathDoc, doc.Text(" "), body), nil
}

func (l *Lowerer) ifExpr(v *ast.IfExpr) (doc.Doc, error) {
	cond, err := l.expr(v.Cond, precAssign)
	if err != nil {
		return nil, err
	}
	then, err := l.block(v.Then)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(doc.Text("if "), cond, doc.Text(" "), then)
	if v.Else == nil {
		return out, nil
	}
	elseDoc, err := l.exprRaw(v.Else)
	if err != nil {
		return nil, err
	}
	return doc.Concat(out, doc.Text(" else "), elseDoc), nil
}

func (l *Lowerer) matchExpr(v *ast.MatchExpr) (doc.Doc, error) {
	scrutinee, err := l.expr(v.Scrutinee, precAssign)
	if err != nil {
		return nil, err
	}
	arms := make([]doc.Doc, len(v.Arms))
	for i, arm := range v.Arms {
		pat, err := l.pattern(arm.Pattern)
		if err != nil {
			return nil, err
		}
		body, err := l.expr(arm.Body, precAssign)
		if err != nil {
			return nil, err
		}
		armDoc := doc.Concat(pat)
		if arm.Guard != nil {
			guard, err := l.expr(arm.Guard, precAssign)
			if err != nil {
				return nil, err
			}
			armDoc = doc.Concat(armDoc, doc.Text(" if "), guard)
		}
		armDoc = doc.Concat(armDoc, doc.Text(" => "), body)
		if !isBlockForm(arm.Body) {
			armDoc = doc.Concat(armDoc, doc.Text(","))
		}
		arms[i] = armDoc
	}
	body := doc.Concat(
		doc.Text("{"),
		l.nest(doc.Concat(doc.Hardline, doc.Join(doc.Hardline, arms...))),
		doc.Hardline,
		doc.Text("}"),
	)
	return doc.Concat(doc.Text("match "), scrutinee, doc.Text(" "), body), nil
}

// isBlockForm reports whether e always lowers to a brace-delimited block, in
// which case a match arm omits its trailing comma (§4.3).
func isBlockForm(e ast.Expr) bool {
	switch e.(type) {
	case *ast.BlockExpr, *ast.IfExpr, *ast.MatchExpr, *ast.LoopExpr, *ast.WhileExpr, *ast.ForExpr:
		return true
	default:
		return false
	}
}

func (l *Lowerer) closureExpr(v *ast.ClosureExpr) (doc.Doc, error) {
	params := make([]doc.Doc, len(v.Params))
	for i, p := range v.Params {
		if err := requireIdent("ClosureParam", "Name", p.Name); err != nil {
			return nil, err
		}
		if p.Type == nil {
			params[i] = doc.Text(p.Name)
			continue
		}
		ty, err := l.typ(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = doc.Concat(doc.Text(p.Name+": "), ty)
	}
	body, err := l.expr(v.Body, precAssign)
	if err != nil {
		return nil, err
	}
	return doc.Concat(doc.Text("|"), doc.Join(doc.Text(", "), params...), doc.Text("| "), body), nil
}
