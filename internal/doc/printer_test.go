package doc

import "testing"

func TestRenderFlatWhenItFits(t *testing.T) {
	d := Group(Concat(
		Text("fn foo("),
		Text("a"), Text(","), Line,
		Text("b"),
		Text(")"),
	))
	got := Render(d, 100)
	want := "fn foo(a, b)"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderBreaksWhenItDoesNotFit(t *testing.T) {
	d := Group(Concat(
		Text("fn foo("),
		Nest(4, Concat(
			Softline,
			Text("aaaaaaaaaaaaaaaaaaaaaaaaaa"), Text(","), Line,
			Text("bbbbbbbbbbbbbbbbbbbbbbbbbb"),
		)),
		Softline,
		Text(")"),
	))
	got := Render(d, 20)
	want := "fn foo(\n    aaaaaaaaaaaaaaaaaaaaaaaaaa,\n    bbbbbbbbbbbbbbbbbbbbbbbbbb\n)"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestHardlineForcesBreakEvenWhenShort(t *testing.T) {
	d := Group(Concat(Text("x"), Hardline, Text("y")))
	got := Render(d, 100)
	want := "x\ny"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestNestOnlyAffectsNewlines(t *testing.T) {
	d := Nest(2, Concat(Text("a"), Hardline, Text("b")))
	got := Render(d, 100)
	want := "a\n  b"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestNilRendersNothing(t *testing.T) {
	got := Render(Concat(Text("a"), Nil, Text("b")), 100)
	if got != "ab" {
		t.Fatalf("Render() = %q, want %q", got, "ab")
	}
}

func TestFitsStopsEarlyOnOverflow(t *testing.T) {
	// A group whose content is longer than the remaining budget must
	// break; fits() must not need to scan past the budget to know that.
	long := make([]Doc, 0, 1000)
	for i := 0; i < 1000; i++ {
		long = append(long, Text("x"))
	}
	d := Group(Concat(long...))
	if fits(d, 10) {
		t.Fatalf("expected fits() to report false for a 1000-char group in a 10-column budget")
	}
}
