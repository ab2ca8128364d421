package lower

import (
	"strings"
	"testing"

	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

func render(t *testing.T, d doc.Doc, width int) string {
	t.Helper()
	return doc.Render(d, width)
}

func TestEmptyFunction(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{
		Vis: ast.Public,
		Signature: ast.FnSignature{
			Name: "noop",
		},
		Body: &ast.Block{},
	}
	d, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	got := render(t, d, 100)
	want := "pub fn noop() {}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpressionStatementFunction(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{
		Signature: ast.FnSignature{
			Name:   "double",
			Inputs: []ast.Param{{Name: "x", Type: ast.PathType{Path: ast.NewPath("i32")}}},
			Output: ast.PathType{Path: ast.NewPath("i32")},
		},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{
					HasSemicolon: false,
					Expr: &ast.BinaryExpr{
						Op:   "*",
						Left: &ast.IdentExpr{Name: "x"},
						Right: &ast.LitExpr{
							Value: ast.LitInt{Value: 2},
						},
					},
				},
			},
			HasTrailingExpression: true,
		},
	}
	d, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	got := render(t, d, 100)
	want := "fn double(x: i32) -> i32 {\n    x * 2\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDocCommentAttributeAndInnerComment(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{
		Leading: []ast.Comment{ast.Doc("Greets the caller.")},
		Attrs: []ast.Attribute{
			{Style: ast.AttrOuter, Meta: ast.MetaPath{Path: ast.NewPath("inline")}},
		},
		Signature: ast.FnSignature{Name: "greet"},
		Body: &ast.Block{
			LeadingInner: []ast.Comment{ast.Line("say hello")},
			Stmts: []ast.Stmt{
				&ast.ExprStmt{
					HasSemicolon: true,
					Expr: &ast.MethodCallExpr{
						Receiver: &ast.StructExpr{Path: ast.NewPath("String")},
						Name:     "clone",
					},
				},
			},
			Trailing: []ast.Comment{ast.Line("done")},
		},
		Trailing: []ast.Comment{ast.Line("end of greet")},
	}
	d, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	got := render(t, d, 100)
	want := "/// Greets the caller.\n" +
		"#[inline]\n" +
		"fn greet() {\n" +
		"    // say hello\n" +
		"    String {}.clone();\n" +
		"    // done\n" +
		"}\n" +
		"// end of greet"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStructAndImplBlankLineSeparation(t *testing.T) {
	l := New(4)
	s := &ast.Struct{
		Vis:  ast.Public,
		Name: "Pair",
		Fields: []ast.FieldDef{
			{Name: "a", Type: ast.PathType{Path: ast.NewPath("i32")}},
			{Name: "b", Type: ast.PathType{Path: ast.NewPath("i32")}},
		},
	}
	impl := &ast.Impl{
		SelfType: ast.PathType{Path: ast.NewPath("Pair")},
	}
	f := &ast.File{Items: []ast.Item{s, impl}}
	d, err := l.File(f)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	got := render(t, d, 100)
	want := "pub struct Pair {\n    a: i32,\n    b: i32,\n}\n\nimpl Pair {}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLongSignatureBreaksOneParamPerLine(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{
		Vis: ast.Public,
		Signature: ast.FnSignature{
			Name: "configure",
			Inputs: []ast.Param{
				{Name: "first_long_parameter", Type: ast.PathType{Path: ast.NewPath("String")}},
				{Name: "second_long_parameter", Type: ast.PathType{Path: ast.NewPath("String")}},
				{Name: "third_long_parameter", Type: ast.PathType{Path: ast.NewPath("String")}},
			},
		},
		Body: &ast.Block{},
	}
	d, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	got := render(t, d, 40)
	if !strings.Contains(got, "configure(\n") {
		t.Fatalf("expected the parameter list to break, got %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 40 && !strings.Contains(line, "first_long_parameter") {
			t.Fatalf("line exceeds width and is not the single unbreakable exception: %q", line)
		}
	}
}

func TestGroupedPrecedenceRoundTrips(t *testing.T) {
	l := New(4)
	one := &ast.LitExpr{Value: ast.LitInt{Value: 1}}
	two := &ast.LitExpr{Value: ast.LitInt{Value: 2}}
	three := &ast.LitExpr{Value: ast.LitInt{Value: 3}}

	grouped := &ast.BinaryExpr{
		Op:    "*",
		Left:  &ast.ParenExpr{Expr: &ast.BinaryExpr{Op: "+", Left: one, Right: two}},
		Right: three,
	}
	d, err := l.Expr(grouped)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "(1 + 2) * 3" {
		t.Fatalf("got %q, want %q", got, "(1 + 2) * 3")
	}
}

func TestUngroupedPrecedenceOmitsParens(t *testing.T) {
	l := New(4)
	one := &ast.LitExpr{Value: ast.LitInt{Value: 1}}
	two := &ast.LitExpr{Value: ast.LitInt{Value: 2}}
	three := &ast.LitExpr{Value: ast.LitInt{Value: 3}}

	ungrouped := &ast.BinaryExpr{
		Op:    "+",
		Left:  &ast.BinaryExpr{Op: "*", Left: one, Right: two},
		Right: three,
	}
	d, err := l.Expr(ungrouped)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "1 * 2 + 3" {
		t.Fatalf("got %q, want %q", got, "1 * 2 + 3")
	}
}

func TestRightAssociativeAssignmentChainOmitsParens(t *testing.T) {
	l := New(4)
	a := &ast.IdentExpr{Name: "a"}
	b := &ast.IdentExpr{Name: "b"}
	c := &ast.IdentExpr{Name: "c"}
	chain := &ast.BinaryExpr{Op: "=", Left: a, Right: &ast.BinaryExpr{Op: "=", Left: b, Right: c}}
	d, err := l.Expr(chain)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "a = b = c" {
		t.Fatalf("got %q, want %q", got, "a = b = c")
	}
}

func TestIfConditionWithBinaryExprOmitsParens(t *testing.T) {
	l := New(4)
	ifExpr := &ast.IfExpr{
		Cond: &ast.BinaryExpr{Op: "<", Left: &ast.IdentExpr{Name: "a"}, Right: &ast.IdentExpr{Name: "b"}},
		Then: &ast.Block{},
	}
	d, err := l.Expr(ifExpr)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "if a < b {}" {
		t.Fatalf("got %q, want %q", got, "if a < b {}")
	}
}

func TestWhileConditionWithBinaryExprOmitsParens(t *testing.T) {
	l := New(4)
	whileExpr := &ast.WhileExpr{
		Cond: &ast.BinaryExpr{Op: "<", Left: &ast.IdentExpr{Name: "i"}, Right: &ast.IdentExpr{Name: "n"}},
		Body: &ast.Block{},
	}
	d, err := l.Expr(whileExpr)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "while i < n {}" {
		t.Fatalf("got %q, want %q", got, "while i < n {}")
	}
}

func TestForIteratorWithCallExprOmitsParens(t *testing.T) {
	l := New(4)
	forExpr := &ast.ForExpr{
		Pattern: ast.IdentPattern{Name: "x"},
		Iter:    &ast.CallExpr{Callee: &ast.IdentExpr{Name: "iter"}},
		Body:    &ast.Block{},
	}
	d, err := l.Expr(forExpr)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "for x in iter() {}" {
		t.Fatalf("got %q, want %q", got, "for x in iter() {}")
	}
}

func TestMatchScrutineeWithFieldExprOmitsParens(t *testing.T) {
	l := New(4)
	matchExpr := &ast.MatchExpr{
		Scrutinee: &ast.FieldExpr{Base: &ast.IdentExpr{Name: "self"}, Name: "kind"},
		Arms: []ast.MatchArm{
			{Pattern: ast.WildcardPattern{}, Body: &ast.LitExpr{Value: ast.LitInt{Value: 0}}},
		},
	}
	d, err := l.Expr(matchExpr)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	want := "match self.kind {\n    _ => 0,\n}"
	if got := render(t, d, 100); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMatchArmWithBlockBodyOmitsTrailingComma(t *testing.T) {
	l := New(4)
	matchExpr := &ast.MatchExpr{
		Scrutinee: &ast.IdentExpr{Name: "x"},
		Arms: []ast.MatchArm{
			{
				Pattern: ast.WildcardPattern{},
				Body: &ast.BlockExpr{Block: &ast.Block{
					Stmts:                 []ast.Stmt{&ast.ExprStmt{HasSemicolon: false, Expr: &ast.LitExpr{Value: ast.LitInt{Value: 1}}}},
					HasTrailingExpression: true,
				}},
			},
		},
	}
	d, err := l.Expr(matchExpr)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	want := "match x {\n    _ => {\n        1\n    }\n}"
	if got := render(t, d, 100); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIndexWithBinaryExprOmitsParens(t *testing.T) {
	l := New(4)
	idx := &ast.IndexExpr{
		Base:  &ast.IdentExpr{Name: "a"},
		Index: &ast.BinaryExpr{Op: "+", Left: &ast.IdentExpr{Name: "i"}, Right: &ast.LitExpr{Value: ast.LitInt{Value: 1}}},
	}
	d, err := l.Expr(idx)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if got := render(t, d, 100); got != "a[i + 1]" {
		t.Fatalf("got %q, want %q", got, "a[i + 1]")
	}
}

func TestArrayTypeLengthWithBinaryExprOmitsParens(t *testing.T) {
	l := New(4)
	ty := ast.ArrayType{
		Elem:   ast.PathType{Path: ast.NewPath("u8")},
		Length: &ast.BinaryExpr{Op: "*", Left: &ast.IdentExpr{Name: "N"}, Right: &ast.LitExpr{Value: ast.LitInt{Value: 2}}},
	}
	d, err := l.Type(ty)
	if err != nil {
		t.Fatalf("Type() error = %v", err)
	}
	if got := render(t, d, 100); got != "[u8; N * 2]" {
		t.Fatalf("got %q, want %q", got, "[u8; N * 2]")
	}
}

func TestDisallowedDocCommentOnStatementIsRejected(t *testing.T) {
	l := New(4)
	block := &ast.Block{
		Stmts: []ast.Stmt{
			&ast.ExprStmt{
				Leading:      []ast.Comment{ast.Doc("not allowed here")},
				HasSemicolon: true,
				Expr:         &ast.IdentExpr{Name: "x"},
			},
		},
	}
	_, err := l.Block(block)
	if err == nil {
		t.Fatalf("expected an error for a Doc comment attached to a statement")
	}
	var lerr *Error
	if !asError(err, &lerr) {
		t.Fatalf("expected *lower.Error, got %T", err)
	}
	if lerr.NodeKind != "ExprStmt" {
		t.Fatalf("NodeKind = %q, want %q", lerr.NodeKind, "ExprStmt")
	}
}

func TestEmptyIdentifierIsRejected(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{Signature: ast.FnSignature{Name: ""}, Body: &ast.Block{}}
	_, err := l.Item(fn)
	if err == nil {
		t.Fatalf("expected an error for an empty function name")
	}
}

func TestStringLiteralEscaping(t *testing.T) {
	l := New(4)
	lit := &ast.LitExpr{Value: ast.LitString{Value: "a\tb\n\"c\"\\d"}}
	d, err := l.Expr(lit)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	got := render(t, d, 100)
	want := `"a\tb\n\"c\"\\d"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeterministicRendering(t *testing.T) {
	l := New(4)
	fn := &ast.Fn{
		Signature: ast.FnSignature{Name: "f", Output: ast.PathType{Path: ast.NewPath("i32")}},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{HasSemicolon: false, Expr: &ast.LitExpr{Value: ast.LitInt{Value: 1}}},
			},
			HasTrailingExpression: true,
		},
	}
	d1, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	d2, err := l.Item(fn)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	if render(t, d1, 80) != render(t, d2, 80) {
		t.Fatalf("rendering the same AST twice produced different output")
	}
}

// asError is a small helper so tests can assert the concrete *Error type
// without importing errors.As for a single-use case.
func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
