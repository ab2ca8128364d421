package ast

// Type is a type expression.
type Type interface {
	typeNode()
}

// PathType is a named type, possibly qualified (`std::io::Error`) and/or
// generic (`Vec<T>`).
type PathType struct {
	Path Path
}

func (PathType) typeNode() {}

// ReferenceType is `&T`, `&mut T`, `&'a T` or `&'a mut T`.
type ReferenceType struct {
	Mutable  bool
	Lifetime string // empty when elided
	Inner    Type
}

func (ReferenceType) typeNode() {}

// TupleType is `(T1, T2, …)`. A zero-element TupleType is the unit type `()`.
type TupleType struct {
	Elems []Type
}

func (TupleType) typeNode() {}

// ArrayType is `[T; N]`. Length is rendered as an expression since Rust
// array lengths are const expressions, not bare integers.
type ArrayType struct {
	Elem   Type
	Length Expr
}

func (ArrayType) typeNode() {}

// FnType is a function pointer type: `fn(T1, T2) -> R`.
type FnType struct {
	Inputs []Type
	Output Type // nil means the implicit unit return type
}

func (FnType) typeNode() {}

// InferType is the placeholder type `_`.
type InferType struct{}

func (InferType) typeNode() {}

// SelfType is the `Self` type.
type SelfType struct{}

func (SelfType) typeNode() {}
