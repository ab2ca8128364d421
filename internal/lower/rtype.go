package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// typ lowers a Type expression. Types never break across lines in this
// grammar (§4.3): a long type simply produces a long line, left to the
// enclosing signature's Group to decide whether to wrap around it.
func (l *Lowerer) typ(t ast.Type) (doc.Doc, error) {
	switch v := t.(type) {
	case ast.PathType:
		return l.path(v.Path, pathTypePosition), nil
	case ast.ReferenceType:
		inner, err := l.typ(v.Inner)
		if err != nil {
			return nil, err
		}
		parts := []doc.Doc{doc.Text("&")}
		if v.Lifetime != "" {
			parts = append(parts, doc.Text("'"+v.Lifetime+" "))
		}
		if v.Mutable {
			parts = append(parts, doc.Text("mut "))
		}
		parts = append(parts, inner)
		return doc.Concat(parts...), nil
	case ast.TupleType:
		elems := make([]doc.Doc, len(v.Elems))
		for i, e := range v.Elems {
			d, err := l.typ(e)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return doc.Concat(doc.Text("("), doc.Join(doc.Text(", "), elems...), doc.Text(")")), nil
	case ast.ArrayType:
		elem, err := l.typ(v.Elem)
		if err != nil {
			return nil, err
		}
		length, err := l.expr(v.Length, precAssign)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("["), elem, doc.Text("; "), length, doc.Text("]")), nil
	case ast.FnType:
		inputs := make([]doc.Doc, len(v.Inputs))
		for i, in := range v.Inputs {
			d, err := l.typ(in)
			if err != nil {
				return nil, err
			}
			inputs[i] = d
		}
		out := doc.Concat(doc.Text("fn("), doc.Join(doc.Text(", "), inputs...), doc.Text(")"))
		if v.Output != nil {
			ret, err := l.typ(v.Output)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(" -> "), ret)
		}
		return out, nil
	case ast.InferType:
		return doc.Text("_"), nil
	case ast.SelfType:
		return doc.Text("Self"), nil
	default:
		return nil, errorf("Type", "unknown variant", "unrecognized Type implementation")
	}
}
