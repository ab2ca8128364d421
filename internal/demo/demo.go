// Package demo builds small, hand-constructed ASTs used by cmd/rustfmt to
// exercise the façade without a parser (none exists in this module's
// scope): each sample is a *ast.File a caller can pass straight to
// rustpp.Pretty.
package demo

import "rustpp/internal/ast"

// Names lists the samples Sample accepts, in display order.
var Names = []string{"point", "precedence", "shapes"}

// Sample returns the demo AST registered under name, or nil if name is not
// one of Names.
func Sample(name string) *ast.File {
	switch name {
	case "point":
		return pointSample()
	case "precedence":
		return precedenceSample()
	case "shapes":
		return shapesSample()
	default:
		return nil
	}
}

// pointSample is a doc-commented struct with a constructor and a distance
// method, showing doc-comment placement and method calls.
func pointSample() *ast.File {
	f64 := ast.PathType{Path: ast.NewPath("f64")}
	selfRef := ast.ReferenceType{Inner: ast.SelfType{}}

	point := &ast.Struct{
		Vis:     ast.Public,
		Leading: []ast.Comment{ast.Doc("A point in the Cartesian plane.")},
		Name:    "Point",
		Fields: []ast.FieldDef{
			{Name: "x", Type: f64},
			{Name: "y", Type: f64},
		},
	}

	newFn := &ast.AssocFn{
		Leading: []ast.Comment{ast.Doc("Builds a point at the given coordinates.")},
		Vis:     ast.Public,
		Signature: ast.FnSignature{
			Name:   "new",
			Inputs: []ast.Param{{Name: "x", Type: f64}, {Name: "y", Type: f64}},
			Output: ast.PathType{Path: ast.NewPath("Self")},
		},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{
					HasSemicolon: false,
					Expr: &ast.StructExpr{
						Path: ast.NewPath("Self"),
						Fields: []ast.FieldValue{
							{Name: "x", Value: &ast.IdentExpr{Name: "x"}},
							{Name: "y", Value: &ast.IdentExpr{Name: "y"}},
						},
					},
				},
			},
			HasTrailingExpression: true,
		},
	}

	distanceFn := &ast.AssocFn{
		Leading: []ast.Comment{ast.Doc("Euclidean distance to another point.")},
		Vis:     ast.Public,
		Signature: ast.FnSignature{
			Name:   "distance",
			Inputs: []ast.Param{{Name: "self", Type: ast.SelfType{}}, {Name: "other", Type: selfRef}},
			Output: f64,
		},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.LocalStmt{
					Pattern: ast.IdentPattern{Name: "dx"},
					Init: &ast.BinaryExpr{
						Op:   "-",
						Left: &ast.FieldExpr{Base: &ast.IdentExpr{Name: "self"}, Name: "x"},
						Right: &ast.FieldExpr{
							Base: &ast.IdentExpr{Name: "other"}, Name: "x",
						},
					},
				},
				&ast.LocalStmt{
					Pattern: ast.IdentPattern{Name: "dy"},
					Init: &ast.BinaryExpr{
						Op:   "-",
						Left: &ast.FieldExpr{Base: &ast.IdentExpr{Name: "self"}, Name: "y"},
						Right: &ast.FieldExpr{
							Base: &ast.IdentExpr{Name: "other"}, Name: "y",
						},
					},
				},
				&ast.ExprStmt{
					HasSemicolon: false,
					Expr: &ast.MethodCallExpr{
						Receiver: &ast.ParenExpr{
							Expr: &ast.BinaryExpr{
								Op: "+",
								Left: &ast.BinaryExpr{
									Op:   "*",
									Left: &ast.IdentExpr{Name: "dx"}, Right: &ast.IdentExpr{Name: "dx"},
								},
								Right: &ast.BinaryExpr{
									Op:   "*",
									Left: &ast.IdentExpr{Name: "dy"}, Right: &ast.IdentExpr{Name: "dy"},
								},
							},
						},
						Name: "sqrt",
					},
				},
			},
			HasTrailingExpression: true,
		},
	}

	impl := &ast.Impl{
		SelfType: ast.PathType{Path: ast.NewPath("Point")},
		Items:    []ast.AssocItem{newFn, distanceFn},
	}

	return &ast.File{
		Leading: []ast.Comment{ast.InnerDoc("Geometry primitives.")},
		Items:   []ast.Item{point, impl},
	}
}

// precedenceSample is a single function whose body exercises operator
// precedence and parenthesization.
func precedenceSample() *ast.File {
	i32 := ast.PathType{Path: ast.NewPath("i32")}
	one := &ast.LitExpr{Value: ast.LitInt{Value: 1}}
	two := &ast.LitExpr{Value: ast.LitInt{Value: 2}}
	three := &ast.LitExpr{Value: ast.LitInt{Value: 3}}

	grouped := &ast.BinaryExpr{
		Op:    "*",
		Left:  &ast.ParenExpr{Expr: &ast.BinaryExpr{Op: "+", Left: one, Right: two}},
		Right: three,
	}
	ungrouped := &ast.BinaryExpr{
		Op:    "+",
		Left:  &ast.BinaryExpr{Op: "*", Left: one, Right: two},
		Right: three,
	}

	fn := &ast.Fn{
		Vis: ast.Public,
		Signature: ast.FnSignature{
			Name:   "arithmetic",
			Output: i32,
		},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.LocalStmt{Pattern: ast.IdentPattern{Name: "grouped"}, Init: grouped},
				&ast.ExprStmt{HasSemicolon: false, Expr: ungrouped},
			},
			HasTrailingExpression: true,
		},
	}

	return &ast.File{Items: []ast.Item{fn}}
}

// shapesSample is an enum plus a match expression over it, showing
// tuple-variant patterns and multi-arm layout.
func shapesSample() *ast.File {
	f64 := ast.PathType{Path: ast.NewPath("f64")}

	shape := &ast.Enum{
		Vis:  ast.Public,
		Name: "Shape",
		Variants: []ast.EnumVariant{
			{Name: "Circle", Payload: []ast.Type{f64}},
			{Name: "Rectangle", Payload: []ast.Type{f64, f64}},
			{Name: "Point"},
		},
	}

	area := &ast.Fn{
		Vis: ast.Public,
		Signature: ast.FnSignature{
			Name:   "area",
			Inputs: []ast.Param{{Name: "shape", Type: ast.ReferenceType{Inner: ast.PathType{Path: ast.NewPath("Shape")}}}},
			Output: f64,
		},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{
					HasSemicolon: false,
					Expr: &ast.MatchExpr{
						Scrutinee: &ast.IdentExpr{Name: "shape"},
						Arms: []ast.MatchArm{
							{
								Pattern: ast.EnumPattern{Path: ast.NewPath("Shape", "Circle"), Elems: []ast.Pattern{ast.IdentPattern{Name: "r"}}},
								Body: &ast.BinaryExpr{
									Op:   "*",
									Left: &ast.PathExpr{Path: ast.NewPath("std", "f64", "consts", "PI")},
									Right: &ast.BinaryExpr{
										Op: "*", Left: &ast.IdentExpr{Name: "r"}, Right: &ast.IdentExpr{Name: "r"},
									},
								},
							},
							{
								Pattern: ast.EnumPattern{
									Path: ast.NewPath("Shape", "Rectangle"),
									Elems: []ast.Pattern{
										ast.IdentPattern{Name: "w"}, ast.IdentPattern{Name: "h"},
									},
								},
								Body: &ast.BinaryExpr{Op: "*", Left: &ast.IdentExpr{Name: "w"}, Right: &ast.IdentExpr{Name: "h"}},
							},
							{
								Pattern: ast.EnumPattern{Path: ast.NewPath("Shape", "Point")},
								Body:    &ast.LitExpr{Value: ast.LitFloat{Value: 0.0}},
							},
						},
					},
				},
			},
			HasTrailingExpression: true,
		},
	}

	return &ast.File{Items: []ast.Item{shape, area}}
}
