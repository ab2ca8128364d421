package ast

// PathSegment is one `::`-separated component of a Path, optionally carrying
// generic arguments (rendered as `::<…>` in expression position and `<…>`
// in type position — the lowering layer, not the data model, decides which).
type PathSegment struct {
	Name     string
	Generics []Type
}

// Path is a `::`-joined sequence of segments, e.g. `std::collections::HashMap`.
type Path struct {
	Segments []PathSegment
}

// NewPath builds a Path from plain segment names with no generic arguments.
func NewPath(names ...string) Path {
	segs := make([]PathSegment, len(names))
	for i, n := range names {
		segs[i] = PathSegment{Name: n}
	}
	return Path{Segments: segs}
}
