package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

func (l *Lowerer) pattern(p ast.Pattern) (doc.Doc, error) {
	switch v := p.(type) {
	case ast.WildcardPattern:
		return doc.Text("_"), nil
	case ast.IdentPattern:
		if err := requireIdent("IdentPattern", "Name", v.Name); err != nil {
			return nil, err
		}
		out := doc.Text(v.Name)
		if v.Mutable {
			out = doc.Concat(doc.Text("mut "), out)
		}
		if v.Sub != nil {
			sub, err := l.pattern(v.Sub)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(" @ "), sub)
		}
		return out, nil
	case ast.TuplePattern:
		elems := make([]doc.Doc, len(v.Elems))
		for i, e := range v.Elems {
			d, err := l.pattern(e)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return doc.Concat(doc.Text("("), doc.Join(doc.Text(", "), elems...), doc.Text(")")), nil
	case ast.StructPattern:
		pathDoc := l.path(v.Path, pathExprPosition)
		fields := make([]doc.Doc, 0, len(v.Fields)+1)
		for _, f := range v.Fields {
			if err := requireIdent("FieldPattern", "Name", f.Name); err != nil {
				return nil, err
			}
			if ident, ok := f.Pattern.(ast.IdentPattern); ok && ident.Name == f.Name && !ident.Mutable && ident.Sub == nil {
				fields = append(fields, doc.Text(f.Name))
				continue
			}
			pd, err := l.pattern(f.Pattern)
			if err != nil {
				return nil, err
			}
			fields = append(fields, doc.Concat(doc.Text(f.Name+": "), pd))
		}
		if v.Rest {
			fields = append(fields, doc.Text(".."))
		}
		if len(fields) == 0 {
			return doc.Concat(pathDoc, doc.Text(" {}")), nil
		}
		return doc.Concat(pathDoc, doc.Text(" { "), doc.Join(doc.Text(", "), fields...), doc.Text(" }")), nil
	case ast.EnumPattern:
		pathDoc := l.path(v.Path, pathExprPosition)
		if len(v.Elems) == 0 {
			return pathDoc, nil
		}
		elems := make([]doc.Doc, len(v.Elems))
		for i, e := range v.Elems {
			d, err := l.pattern(e)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return doc.Concat(pathDoc, doc.Text("("), doc.Join(doc.Text(", "), elems...), doc.Text(")")), nil
	case ast.LitPattern:
		return l.literal(v.Value)
	case ast.OrPattern:
		alts := make([]doc.Doc, len(v.Alts))
		for i, a := range v.Alts {
			d, err := l.pattern(a)
			if err != nil {
				return nil, err
			}
			alts[i] = d
		}
		return doc.Join(doc.Text(" | "), alts...), nil
	case ast.RangePattern:
		lo, err := l.literal(v.Low)
		if err != nil {
			return nil, err
		}
		hi, err := l.literal(v.High)
		if err != nil {
			return nil, err
		}
		op := ".."
		if v.Inclusive {
			op = "..="
		}
		return doc.Concat(lo, doc.Text(op), hi), nil
	default:
		return nil, errorf("Pattern", "unknown variant", "unrecognized Pattern implementation")
	}
}
