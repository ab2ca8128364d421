package ast

import "testing"

func TestSortedGenerics(t *testing.T) {
	tests := []struct {
		name   string
		params []GenericParam
		want   []GenericParamKind
	}{
		{
			name:   "empty",
			params: nil,
			want:   nil,
		},
		{
			name: "already ordered",
			params: []GenericParam{
				Lifetime("a"),
				TypeParam("T"),
				ConstParam("N", PathType{Path: NewPath("usize")}),
			},
			want: []GenericParamKind{GenericLifetime, GenericType, GenericConst},
		},
		{
			name: "needs reordering",
			params: []GenericParam{
				ConstParam("N", PathType{Path: NewPath("usize")}),
				TypeParam("T"),
				Lifetime("a"),
				TypeParam("U"),
				Lifetime("b"),
			},
			want: []GenericParamKind{GenericLifetime, GenericLifetime, GenericType, GenericType, GenericConst},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SortedGenerics(tc.params)
			if len(got) != len(tc.want) {
				t.Fatalf("len(got) = %d, want %d", len(got), len(tc.want))
			}
			for i, kind := range tc.want {
				if got[i].Kind != kind {
					t.Fatalf("got[%d].Kind = %v, want %v", i, got[i].Kind, kind)
				}
			}
		})
	}
}

func TestSortedGenericsPreservesBucketOrder(t *testing.T) {
	params := []GenericParam{
		TypeParam("First"),
		Lifetime("only"),
		TypeParam("Second"),
	}
	got := SortedGenerics(params)
	if got[1].Name != "First" || got[2].Name != "Second" {
		t.Fatalf("type bucket order not preserved: got %+v", got)
	}
}

func TestSortedGenericsDoesNotMutateInput(t *testing.T) {
	params := []GenericParam{
		TypeParam("T"),
		Lifetime("a"),
	}
	_ = SortedGenerics(params)
	if params[0].Kind != GenericType || params[1].Kind != GenericLifetime {
		t.Fatalf("SortedGenerics mutated its input: %+v", params)
	}
}
