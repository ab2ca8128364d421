package rustpp

import (
	"strings"
	"testing"

	"rustpp/internal/ast"
	"rustpp/internal/demo"
)

func TestPrettyFileEndsWithSingleTrailingNewline(t *testing.T) {
	for _, name := range demo.Names {
		sample := demo.Sample(name)
		out, err := Pretty(sample)
		if err != nil {
			t.Fatalf("Pretty(%q) error = %v", name, err)
		}
		if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
			t.Fatalf("Pretty(%q) does not end with exactly one trailing newline: %q", name, out)
		}
		if strings.Contains(out, "\r") {
			t.Fatalf("Pretty(%q) output contains a carriage return", name)
		}
	}
}

func TestPrettySubtreeHasNoTrailingNewline(t *testing.T) {
	fn := &ast.Fn{Signature: ast.FnSignature{Name: "f"}, Body: &ast.Block{}}
	out, err := Pretty(fn)
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("sub-tree output should not end with a newline, got %q", out)
	}
}

func TestPrettyDefaultsMatchDocumentedWidthAndIndent(t *testing.T) {
	o := DefaultOptions()
	if o.Width != 100 || o.Indent != 4 {
		t.Fatalf("DefaultOptions() = %+v, want {Width:100 Indent:4}", o)
	}
}

func TestPrettyIsDeterministic(t *testing.T) {
	sample := demo.Sample("point")
	a, err := Pretty(sample)
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	b, err := Pretty(sample)
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	if a != b {
		t.Fatalf("Pretty() is not deterministic across calls")
	}
}

func TestPrettyRejectsUnknownRootKind(t *testing.T) {
	if _, err := Pretty(42); err == nil {
		t.Fatalf("expected an error for an unsupported root node type")
	}
}

func TestPrettyNarrowWidthKeepsWholeIndentSteps(t *testing.T) {
	sample := demo.Sample("shapes")
	out, err := Pretty(sample, Options{Width: 60, Indent: 2})
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		leading := len(line) - len(trimmed)
		if leading%2 != 0 {
			t.Fatalf("indentation is not a whole number of 2-column steps: %q", line)
		}
	}
}
