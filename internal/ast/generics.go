package ast

import "golang.org/x/exp/slices"

// GenericParamKind is the tag of a GenericParam value.
type GenericParamKind int

const (
	GenericLifetime GenericParamKind = iota
	GenericType
	GenericConst
)

// GenericParam is one entry of an item's `<…>` parameter list: a lifetime
// (`'a`), a type parameter with bounds (`T: Bound`), or a const parameter
// (`const N: usize`).
type GenericParam struct {
	Kind   GenericParamKind
	Name   string
	Bounds []Type // GenericType only
	Type   Type   // GenericConst only
}

// Lifetime builds a lifetime generic parameter, name without the leading `'`.
func Lifetime(name string) GenericParam {
	return GenericParam{Kind: GenericLifetime, Name: name}
}

// TypeParam builds a type generic parameter with the given bounds.
func TypeParam(name string, bounds ...Type) GenericParam {
	return GenericParam{Kind: GenericType, Name: name, Bounds: bounds}
}

// ConstParam builds a const generic parameter.
func ConstParam(name string, typ Type) GenericParam {
	return GenericParam{Kind: GenericConst, Name: name, Type: typ}
}

// WherePredicate is one bound of a `where` clause: `Type: Bound1 + Bound2`.
type WherePredicate struct {
	Type   Type
	Bounds []Type
}

// sortedGenerics implements the lowering order from §4.3: lifetimes first,
// then types, then consts, each bucket keeping its original relative order.
// It works from a clone of params so the caller's slice (and therefore the
// order the AST was built in) is left untouched.
func sortedGenerics(params []GenericParam) []GenericParam {
	if len(params) == 0 {
		return nil
	}
	src := slices.Clone(params)
	out := make([]GenericParam, 0, len(src))
	for _, kind := range []GenericParamKind{GenericLifetime, GenericType, GenericConst} {
		for _, p := range src {
			if p.Kind == kind {
				out = append(out, p)
			}
		}
	}
	return out
}

// SortedGenerics returns params reordered per the lowering rule (lifetimes,
// then types, then consts), without mutating the input.
func SortedGenerics(params []GenericParam) []GenericParam {
	return sortedGenerics(params)
}
