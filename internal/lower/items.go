package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// item lowers any top-level or nested Item to its full textual form,
// including its own leading/trailing comments and attributes, per the
// general item shape of §4.3: leading comments, attributes, visibility,
// keyword, name, generics, body, trailing comments.
func (l *Lowerer) item(it ast.Item) (doc.Doc, error) {
	switch v := it.(type) {
	case *ast.Fn:
		return l.fnItem(v)
	case *ast.Struct:
		return l.structItem(v)
	case *ast.Union:
		return l.unionItem(v)
	case *ast.Enum:
		return l.enumItem(v)
	case *ast.Trait:
		return l.traitItem(v)
	case *ast.Impl:
		return l.implItem(v)
	case *ast.Use:
		return l.useItem(v)
	case *ast.Mod:
		return l.modItem(v)
	case *ast.Const:
		return l.constItem(v)
	case *ast.Static:
		return l.staticItem(v)
	case *ast.TypeAlias:
		return l.typeAliasItem(v)
	case *ast.ExternCrate:
		return l.externCrateItem(v)
	case *ast.ForeignMod:
		return l.foreignModItem(v)
	case *ast.TraitAlias:
		return l.traitAliasItem(v)
	default:
		return nil, errorf("Item", "unknown variant", "unrecognized Item implementation")
	}
}

// paramList lowers a parenthesized, comma-separated Param list as a Group
// that breaks one parameter per line when the signature does not fit.
func (l *Lowerer) paramList(params []ast.Param) (doc.Doc, error) {
	if len(params) == 0 {
		return doc.Text("()"), nil
	}
	docs := make([]doc.Doc, len(params))
	for i, p := range params {
		if err := requireIdent("Param", "Name", p.Name); err != nil {
			return nil, err
		}
		ty, err := l.typ(p.Type)
		if err != nil {
			return nil, err
		}
		docs[i] = doc.Concat(doc.Text(p.Name+": "), ty)
	}
	return doc.Group(doc.Concat(
		doc.Text("("),
		l.nest(doc.Concat(doc.Softline, doc.Join(doc.Concat(doc.Text(","), doc.Line), docs...))),
		doc.Softline,
		doc.Text(")"),
	)), nil
}

// fnSignature lowers the shared `name<generics>(params) -> Output [where …]`
// shape used by Fn, AssocFn and ForeignMod declarations.
func (l *Lowerer) fnSignature(keyword string, sig ast.FnSignature) (doc.Doc, error) {
	if err := requireIdent("FnSignature", "Name", sig.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(sig.Generics)
	if err != nil {
		return nil, err
	}
	params, err := l.paramList(sig.Inputs)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(doc.Text(keyword+sig.Name), generics, params)
	if sig.Output != nil {
		ret, err := l.typ(sig.Output)
		if err != nil {
			return nil, err
		}
		out = doc.Concat(out, doc.Text(" -> "), ret)
	}
	where, err := l.whereClause(sig.Where)
	if err != nil {
		return nil, err
	}
	return doc.Concat(out, where), nil
}

func (l *Lowerer) fnItem(v *ast.Fn) (doc.Doc, error) {
	leading, err := leadingComments("Fn", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Fn", v.Attrs)
	if err != nil {
		return nil, err
	}
	sig, err := l.fnSignature("fn ", v.Signature)
	if err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), sig)
	if v.Body == nil {
		return l.withTrailing("Fn", doc.Concat(head, doc.Text(";")), v.Trailing)
	}
	body, err := l.block(v.Body)
	if err != nil {
		return nil, err
	}
	return l.withTrailing("Fn", doc.Concat(head, doc.Text(" "), body), v.Trailing)
}

func (l *Lowerer) withTrailing(nodeKind string, head doc.Doc, comments []ast.Comment) (doc.Doc, error) {
	trailing, err := trailingComments(nodeKind, comments, allowTrailing)
	if err != nil {
		return nil, err
	}
	return doc.Concat(head, trailing), nil
}

func (l *Lowerer) fieldList(nodeKind string, fields []ast.FieldDef) (doc.Doc, error) {
	if len(fields) == 0 {
		return doc.Text("{}"), nil
	}
	docs := make([]doc.Doc, len(fields))
	for i, f := range fields {
		if err := requireIdent(nodeKind, "field name", f.Name); err != nil {
			return nil, err
		}
		ty, err := l.typ(f.Type)
		if err != nil {
			return nil, err
		}
		docs[i] = doc.Concat(doc.Text(f.Name+": "), ty, doc.Text(","))
	}
	return doc.Concat(
		doc.Text("{"),
		l.nest(doc.Concat(doc.Hardline, doc.Join(doc.Hardline, docs...))),
		doc.Hardline,
		doc.Text("}"),
	), nil
}

func (l *Lowerer) structItem(v *ast.Struct) (doc.Doc, error) {
	leading, err := leadingComments("Struct", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Struct", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Struct", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	fields, err := l.fieldList("Struct", v.Fields)
	if err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("struct "+v.Name), generics, where, doc.Text(" "), fields)
	return l.withTrailing("Struct", head, v.Trailing)
}

func (l *Lowerer) unionItem(v *ast.Union) (doc.Doc, error) {
	leading, err := leadingComments("Union", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Union", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Union", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	fields, err := l.fieldList("Union", v.Fields)
	if err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("union "+v.Name), generics, where, doc.Text(" "), fields)
	return l.withTrailing("Union", head, v.Trailing)
}

func (l *Lowerer) enumItem(v *ast.Enum) (doc.Doc, error) {
	leading, err := leadingComments("Enum", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Enum", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Enum", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	var body doc.Doc
	if len(v.Variants) == 0 {
		body = doc.Text("{}")
	} else {
		variants := make([]doc.Doc, len(v.Variants))
		for i, variant := range v.Variants {
			if err := requireIdent("EnumVariant", "Name", variant.Name); err != nil {
				return nil, err
			}
			d := doc.Text(variant.Name)
			if len(variant.Payload) > 0 {
				payload := make([]doc.Doc, len(variant.Payload))
				for j, t := range variant.Payload {
					td, err := l.typ(t)
					if err != nil {
						return nil, err
					}
					payload[j] = td
				}
				d = doc.Concat(d, doc.Text("("), doc.Join(doc.Text(", "), payload...), doc.Text(")"))
			}
			variants[i] = doc.Concat(d, doc.Text(","))
		}
		body = doc.Concat(
			doc.Text("{"),
			l.nest(doc.Concat(doc.Hardline, doc.Join(doc.Hardline, variants...))),
			doc.Hardline,
			doc.Text("}"),
		)
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("enum "+v.Name), generics, where, doc.Text(" "), body)
	return l.withTrailing("Enum", head, v.Trailing)
}

func (l *Lowerer) assocItemsBody(nodeKind string, innerAttrs []ast.Attribute, items []ast.AssocItem) (doc.Doc, error) {
	inner, err := l.innerAttrs(nodeKind, innerAttrs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && inner == doc.Nil {
		return doc.Text("{}"), nil
	}
	docs := make([]doc.Doc, len(items))
	for i, it := range items {
		d, err := l.assocItem(it)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	body := doc.Concat(inner, doc.Join(doc.Concat(doc.Hardline, doc.Hardline), docs...))
	return doc.Concat(doc.Text("{"), l.nest(doc.Concat(doc.Hardline, body)), doc.Hardline, doc.Text("}")), nil
}

func (l *Lowerer) assocItem(it ast.AssocItem) (doc.Doc, error) {
	switch v := it.(type) {
	case *ast.AssocFn:
		leading, err := leadingComments("AssocFn", v.Leading, allowLeadingItem)
		if err != nil {
			return nil, err
		}
		attrs, err := l.outerAttrs("AssocFn", v.Attrs)
		if err != nil {
			return nil, err
		}
		sig, err := l.fnSignature("fn ", v.Signature)
		if err != nil {
			return nil, err
		}
		head := doc.Concat(leading, attrs, l.Visibility(v.Vis), sig)
		if v.Body == nil {
			return l.withTrailing("AssocFn", doc.Concat(head, doc.Text(";")), v.Trailing)
		}
		body, err := l.block(v.Body)
		if err != nil {
			return nil, err
		}
		return l.withTrailing("AssocFn", doc.Concat(head, doc.Text(" "), body), v.Trailing)
	case *ast.AssocType:
		leading, err := leadingComments("AssocType", v.Leading, allowLeadingItem)
		if err != nil {
			return nil, err
		}
		attrs, err := l.outerAttrs("AssocType", v.Attrs)
		if err != nil {
			return nil, err
		}
		if err := requireIdent("AssocType", "Name", v.Name); err != nil {
			return nil, err
		}
		out := doc.Concat(leading, attrs, doc.Text("type "+v.Name))
		if len(v.Bounds) > 0 {
			bounds := make([]doc.Doc, len(v.Bounds))
			for i, b := range v.Bounds {
				bd, err := l.typ(b)
				if err != nil {
					return nil, err
				}
				bounds[i] = bd
			}
			out = doc.Concat(out, doc.Text(": "), doc.Join(doc.Text(" + "), bounds...))
		}
		if v.Default != nil {
			def, err := l.typ(v.Default)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(" = "), def)
		}
		return l.withTrailing("AssocType", doc.Concat(out, doc.Text(";")), v.Trailing)
	case *ast.AssocConst:
		leading, err := leadingComments("AssocConst", v.Leading, allowLeadingItem)
		if err != nil {
			return nil, err
		}
		attrs, err := l.outerAttrs("AssocConst", v.Attrs)
		if err != nil {
			return nil, err
		}
		if err := requireIdent("AssocConst", "Name", v.Name); err != nil {
			return nil, err
		}
		ty, err := l.typ(v.Type)
		if err != nil {
			return nil, err
		}
		out := doc.Concat(leading, attrs, doc.Text("const "+v.Name+": "), ty)
		if v.Value != nil {
			val, err := l.expr(v.Value, precAssign)
			if err != nil {
				return nil, err
			}
			out = doc.Concat(out, doc.Text(" = "), val)
		}
		return l.withTrailing("AssocConst", doc.Concat(out, doc.Text(";")), v.Trailing)
	default:
		return nil, errorf("AssocItem", "unknown variant", "unrecognized AssocItem implementation")
	}
}

func (l *Lowerer) traitItem(v *ast.Trait) (doc.Doc, error) {
	leading, err := leadingComments("Trait", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Trait", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Trait", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("trait "+v.Name), generics)
	if len(v.Bounds) > 0 {
		bounds := make([]doc.Doc, len(v.Bounds))
		for i, b := range v.Bounds {
			bd, err := l.typ(b)
			if err != nil {
				return nil, err
			}
			bounds[i] = bd
		}
		head = doc.Concat(head, doc.Text(": "), doc.Join(doc.Text(" + "), bounds...))
	}
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	body, err := l.assocItemsBody("Trait", v.InnerAttrs, v.Items)
	if err != nil {
		return nil, err
	}
	return l.withTrailing("Trait", doc.Concat(head, where, doc.Text(" "), body), v.Trailing)
}

func (l *Lowerer) implItem(v *ast.Impl) (doc.Doc, error) {
	leading, err := leadingComments("Impl", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Impl", v.Attrs)
	if err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	selfTy, err := l.typ(v.SelfType)
	if err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, doc.Text("impl"), generics, doc.Text(" "))
	if v.TraitRef != nil {
		head = doc.Concat(head, l.path(*v.TraitRef, pathTypePosition), doc.Text(" for "))
	}
	head = doc.Concat(head, selfTy)
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	body, err := l.assocItemsBody("Impl", v.InnerAttrs, v.Items)
	if err != nil {
		return nil, err
	}
	return l.withTrailing("Impl", doc.Concat(head, where, doc.Text(" "), body), v.Trailing)
}

func (l *Lowerer) useItem(v *ast.Use) (doc.Doc, error) {
	leading, err := leadingComments("Use", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Use", v.Attrs)
	if err != nil {
		return nil, err
	}
	if v.Rename != "" && v.Glob {
		return nil, errorf("Use", "mutually exclusive fields", "Rename and Glob cannot both be set")
	}
	pathDoc := l.path(v.Path, pathExprPosition)
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("use "), pathDoc)
	if v.Glob {
		out = doc.Concat(out, doc.Text("::*"))
	} else if v.Rename != "" {
		out = doc.Concat(out, doc.Text(" as "+v.Rename))
	}
	return l.withTrailing("Use", doc.Concat(out, doc.Text(";")), v.Trailing)
}

func (l *Lowerer) modItem(v *ast.Mod) (doc.Doc, error) {
	leading, err := leadingComments("Mod", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Mod", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Mod", "Name", v.Name); err != nil {
		return nil, err
	}
	head := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("mod "+v.Name))
	if v.Body == nil {
		return l.withTrailing("Mod", doc.Concat(head, doc.Text(";")), v.Trailing)
	}
	innerLeading, err := leadingComments("Mod", v.InnerLeading, allowLeadingInner)
	if err != nil {
		return nil, err
	}
	innerAttrs, err := l.innerAttrs("Mod", v.InnerAttrs)
	if err != nil {
		return nil, err
	}
	itemsDoc, err := l.itemSequence(v.Body)
	if err != nil {
		return nil, err
	}
	var body doc.Doc
	if len(v.Body) == 0 && innerLeading == doc.Nil && innerAttrs == doc.Nil {
		body = doc.Text("{}")
	} else {
		body = doc.Concat(
			doc.Text("{"),
			l.nest(doc.Concat(doc.Hardline, innerLeading, innerAttrs, itemsDoc)),
			doc.Hardline,
			doc.Text("}"),
		)
	}
	return l.withTrailing("Mod", doc.Concat(head, doc.Text(" "), body), v.Trailing)
}

func (l *Lowerer) constItem(v *ast.Const) (doc.Doc, error) {
	leading, err := leadingComments("Const", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Const", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Const", "Name", v.Name); err != nil {
		return nil, err
	}
	ty, err := l.typ(v.Type)
	if err != nil {
		return nil, err
	}
	init, err := l.expr(v.Init, precAssign)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("const "+v.Name+": "), ty, doc.Text(" = "), init, doc.Text(";"))
	return l.withTrailing("Const", out, v.Trailing)
}

func (l *Lowerer) staticItem(v *ast.Static) (doc.Doc, error) {
	leading, err := leadingComments("Static", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("Static", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("Static", "Name", v.Name); err != nil {
		return nil, err
	}
	ty, err := l.typ(v.Type)
	if err != nil {
		return nil, err
	}
	init, err := l.expr(v.Init, precAssign)
	if err != nil {
		return nil, err
	}
	mut := ""
	if v.Mutable {
		mut = "mut "
	}
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("static "+mut+v.Name+": "), ty, doc.Text(" = "), init, doc.Text(";"))
	return l.withTrailing("Static", out, v.Trailing)
}

func (l *Lowerer) typeAliasItem(v *ast.TypeAlias) (doc.Doc, error) {
	leading, err := leadingComments("TypeAlias", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("TypeAlias", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("TypeAlias", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	where, err := l.whereClause(v.Where)
	if err != nil {
		return nil, err
	}
	ty, err := l.typ(v.Type)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("type "+v.Name), generics, where, doc.Text(" = "), ty, doc.Text(";"))
	return l.withTrailing("TypeAlias", out, v.Trailing)
}

func (l *Lowerer) externCrateItem(v *ast.ExternCrate) (doc.Doc, error) {
	leading, err := leadingComments("ExternCrate", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("ExternCrate", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("ExternCrate", "Name", v.Name); err != nil {
		return nil, err
	}
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("extern crate "+v.Name))
	if v.Rename != "" {
		out = doc.Concat(out, doc.Text(" as "+v.Rename))
	}
	return l.withTrailing("ExternCrate", doc.Concat(out, doc.Text(";")), v.Trailing)
}

func (l *Lowerer) foreignModItem(v *ast.ForeignMod) (doc.Doc, error) {
	leading, err := leadingComments("ForeignMod", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("ForeignMod", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("ForeignMod", "Abi", v.Abi); err != nil {
		return nil, err
	}
	body, err := l.assocItemsBody("ForeignMod", nil, v.Items)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(leading, attrs, doc.Text(`extern "`+v.Abi+`" `), body)
	return l.withTrailing("ForeignMod", out, v.Trailing)
}

func (l *Lowerer) traitAliasItem(v *ast.TraitAlias) (doc.Doc, error) {
	leading, err := leadingComments("TraitAlias", v.Leading, allowLeadingItem)
	if err != nil {
		return nil, err
	}
	attrs, err := l.outerAttrs("TraitAlias", v.Attrs)
	if err != nil {
		return nil, err
	}
	if err := requireIdent("TraitAlias", "Name", v.Name); err != nil {
		return nil, err
	}
	generics, err := l.genericParams(v.Generics)
	if err != nil {
		return nil, err
	}
	if len(v.Bounds) == 0 {
		return nil, errorf("TraitAlias", "non-empty bounds", "a trait alias must name at least one bound")
	}
	bounds := make([]doc.Doc, len(v.Bounds))
	for i, b := range v.Bounds {
		bd, err := l.typ(b)
		if err != nil {
			return nil, err
		}
		bounds[i] = bd
	}
	out := doc.Concat(leading, attrs, l.Visibility(v.Vis), doc.Text("trait "+v.Name), generics, doc.Text(" = "), doc.Join(doc.Text(" + "), bounds...), doc.Text(";"))
	return l.withTrailing("TraitAlias", out, v.Trailing)
}

// itemSequence lowers a list of items with a blank line (two Hardlines)
// between consecutive items (§8, scenario 4).
func (l *Lowerer) itemSequence(items []ast.Item) (doc.Doc, error) {
	docs := make([]doc.Doc, len(items))
	for i, it := range items {
		d, err := l.item(it)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return doc.Join(doc.Concat(doc.Hardline, doc.Hardline), docs...), nil
}
