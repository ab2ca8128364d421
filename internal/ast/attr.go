package ast

// AttrStyle is Outer (`#[…]`, applies to the following item) or Inner
// (`#![…]`, applies to the enclosing item). Per invariant 5, Inner only
// ever appears on File, a Mod's body, a Block, or an Impl/Trait.
type AttrStyle int

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// Attribute is `#[META]` or `#![META]`.
type Attribute struct {
	Style AttrStyle
	Meta  Meta
}

// Meta is the tree inside an attribute's brackets.
type Meta interface {
	metaNode()
}

// MetaPath is a bare path meta item, e.g. the `test` in `#[test]`.
type MetaPath struct {
	Path Path
}

func (MetaPath) metaNode() {}

// MetaList is a path followed by nested metas, e.g. `repr(C, packed)`.
type MetaList struct {
	Path  Path
	Metas []Meta
}

func (MetaList) metaNode() {}

// MetaNameValue is `path = literal`, e.g. `doc = "text"`.
type MetaNameValue struct {
	Path  Path
	Value Literal
}

func (MetaNameValue) metaNode() {}
