package ast

// VisibilityKind is the tag of a Visibility value.
type VisibilityKind int

const (
	VisPrivate VisibilityKind = iota
	VisPublic
	VisCrate
	VisRestricted
)

// Visibility is an item's visibility. Restricted carries the path of a
// `pub(in path)`-style restriction (including the bare forms `super` and
// `crate`, which Rust also spells pub(super)/pub(crate)).
type Visibility struct {
	Kind VisibilityKind
	Path string // only meaningful when Kind == VisRestricted
}

var Private = Visibility{Kind: VisPrivate}
var Public = Visibility{Kind: VisPublic}
var Crate = Visibility{Kind: VisCrate}

// Restricted builds a `pub(in path)` visibility.
func Restricted(path string) Visibility {
	return Visibility{Kind: VisRestricted, Path: path}
}
