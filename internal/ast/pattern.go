package ast

// Pattern is a binding pattern, used in `let`, function parameters, `for`
// loops, and `match` arms.
type Pattern interface {
	patternNode()
}

// WildcardPattern is `_`.
type WildcardPattern struct{}

func (WildcardPattern) patternNode() {}

// IdentPattern binds a name, optionally `mut`, optionally with an `@`
// sub-pattern (`n @ 1..=5`).
type IdentPattern struct {
	Name    string
	Mutable bool
	Sub     Pattern // nil when there is no `@` sub-pattern
}

func (IdentPattern) patternNode() {}

// TuplePattern is `(p1, p2, …)`.
type TuplePattern struct {
	Elems []Pattern
}

func (TuplePattern) patternNode() {}

// FieldPattern is one `name: pattern` entry of a StructPattern. A shorthand
// field (`Point { x, y }`) is represented with Pattern == IdentPattern{Name: name}.
type FieldPattern struct {
	Name    string
	Pattern Pattern
}

// StructPattern is `Path { field: pattern, …, [..] }`.
type StructPattern struct {
	Path   Path
	Fields []FieldPattern
	Rest   bool // true when the pattern ends with `..`
}

func (StructPattern) patternNode() {}

// EnumPattern is a tuple-style enum variant pattern: `Path(p1, p2, …)`. A
// unit variant pattern (`None`) has an empty Elems.
type EnumPattern struct {
	Path  Path
	Elems []Pattern
}

func (EnumPattern) patternNode() {}

// LitPattern matches a literal value exactly.
type LitPattern struct {
	Value Literal
}

func (LitPattern) patternNode() {}

// OrPattern is `p1 | p2 | …`.
type OrPattern struct {
	Alts []Pattern
}

func (OrPattern) patternNode() {}

// RangePattern is `lo..=hi` (or `lo..hi` when Inclusive is false).
type RangePattern struct {
	Low       Literal
	High      Literal
	Inclusive bool
}

func (RangePattern) patternNode() {}
