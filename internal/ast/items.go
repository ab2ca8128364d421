package ast

// File is the root of the tree: an ordered sequence of top-level items,
// optionally preceded by inner doc comments / inner attributes (`//!`,
// `#![…]`) that document the file (or crate root) as a whole.
type File struct {
	Leading    []Comment // InnerDoc only, per invariant 4
	InnerAttrs []Attribute
	Items      []Item
}

// Item is a top-level (or, via ItemStmt / Mod.Body, nested) declaration.
type Item interface {
	itemNode()
}

// Param is one function parameter: `name: type`.
type Param struct {
	Name string
	Type Type
}

// FnSignature is the interface of a function: name, generics, parameter
// list, and optional return type. Shared between a top-level Fn, an
// AssocFn, and a ForeignMod's declarations.
type FnSignature struct {
	Name     string
	Generics []GenericParam
	Where    []WherePredicate
	Inputs   []Param
	Output   Type // nil means the function returns unit
}

// Fn is a function item.
type Fn struct {
	Vis       Visibility
	Attrs     []Attribute
	Leading   []Comment
	Signature FnSignature
	Body      *Block
	Trailing  []Comment
}

func (*Fn) itemNode() {}

// FieldDef is one `name: type` field of a Struct or Union.
type FieldDef struct {
	Name string
	Type Type
}

// Struct is a struct item with named fields.
type Struct struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Generics []GenericParam
	Where    []WherePredicate
	Fields   []FieldDef
	Trailing []Comment
}

func (*Struct) itemNode() {}

// Union is a union item; it shares Struct's field shape (§ supplemented
// features).
type Union struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Generics []GenericParam
	Where    []WherePredicate
	Fields   []FieldDef
	Trailing []Comment
}

func (*Union) itemNode() {}

// EnumVariant is one variant of an Enum. An empty Payload is a unit variant
// (`None`); a non-empty Payload is a tuple variant (`Some(T)`).
type EnumVariant struct {
	Name    string
	Payload []Type
}

// Enum is an enum item.
type Enum struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Generics []GenericParam
	Where    []WherePredicate
	Variants []EnumVariant
	Trailing []Comment
}

func (*Enum) itemNode() {}

// AssocItem is a member of a Trait or Impl body.
type AssocItem interface {
	assocItemNode()
}

// AssocFn is a function signature (with optional default body) inside a
// Trait or Impl.
type AssocFn struct {
	Attrs     []Attribute
	Leading   []Comment
	Vis       Visibility // only meaningful inside an Impl
	Signature FnSignature
	Body      *Block // nil means a signature-only declaration, ending in `;`
	Trailing  []Comment
}

func (*AssocFn) assocItemNode() {}

// AssocType is an associated type declaration, with optional bounds and
// optional default.
type AssocType struct {
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Bounds   []Type
	Default  Type // optional
	Trailing []Comment
}

func (*AssocType) assocItemNode() {}

// AssocConst is an associated const declaration, with optional value
// (traits may declare one without a default).
type AssocConst struct {
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Type     Type
	Value    Expr // optional
	Trailing []Comment
}

func (*AssocConst) assocItemNode() {}

// Trait is a trait item.
type Trait struct {
	Vis        Visibility
	Attrs      []Attribute
	Leading    []Comment
	Name       string
	Generics   []GenericParam
	Bounds     []Type // supertrait bounds
	Where      []WherePredicate
	InnerAttrs []Attribute
	Items      []AssocItem
	Trailing   []Comment
}

func (*Trait) itemNode() {}

// Impl is an inherent impl (TraitRef == nil) or a trait impl.
type Impl struct {
	Attrs      []Attribute
	Leading    []Comment
	Generics   []GenericParam
	TraitRef   *Path // optional
	SelfType   Type
	Where      []WherePredicate
	InnerAttrs []Attribute
	Items      []AssocItem
	Trailing   []Comment
}

func (*Impl) itemNode() {}

// Use is a `use` declaration: a path with an optional rename or trailing
// glob.
type Use struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Path     Path
	Rename   string // optional, mutually exclusive with Glob
	Glob     bool
	Trailing []Comment
}

func (*Use) itemNode() {}

// Mod is a module item. A nil Body renders `mod name;` (an out-of-line
// module); a non-nil (possibly empty) Body renders an inline `mod name { … }`.
type Mod struct {
	Vis         Visibility
	Attrs       []Attribute
	Leading     []Comment
	Name        string
	Body        []Item
	InnerLeading []Comment   // InnerDoc comments at the top of Body; only meaningful when Body != nil
	InnerAttrs   []Attribute // only meaningful when Body != nil
	Trailing     []Comment
}

func (*Mod) itemNode() {}

// Const is a `const` item.
type Const struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Type     Type
	Init     Expr
	Trailing []Comment
}

func (*Const) itemNode() {}

// Static is a `static` item, optionally `mut`.
type Static struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Mutable  bool
	Name     string
	Type     Type
	Init     Expr
	Trailing []Comment
}

func (*Static) itemNode() {}

// TypeAlias is a `type Name = Type;` item.
type TypeAlias struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Generics []GenericParam
	Where    []WherePredicate
	Type     Type
	Trailing []Comment
}

func (*TypeAlias) itemNode() {}

// ExternCrate is `extern crate name [as rename];`.
type ExternCrate struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Rename   string // optional
	Trailing []Comment
}

func (*ExternCrate) itemNode() {}

// ForeignMod is `extern "abi" { items… }`. Its items are function signatures
// without bodies (Body always nil in practice).
type ForeignMod struct {
	Attrs    []Attribute
	Leading  []Comment
	Abi      string
	Items    []AssocItem
	Trailing []Comment
}

func (*ForeignMod) itemNode() {}

// TraitAlias is `trait Name = Bound1 + Bound2;`.
type TraitAlias struct {
	Vis      Visibility
	Attrs    []Attribute
	Leading  []Comment
	Name     string
	Generics []GenericParam
	Bounds   []Type
	Trailing []Comment
}

func (*TraitAlias) itemNode() {}
