package main

import (
	"testing"

	"github.com/repodeck/repodeck/repo"
)

func TestListToMatrixRowMajor(t *testing.T) {
	grid := listToMatrix([]int{1, 2, 3, 4, 5}, 2)
	if len(grid) != 3 {
		t.Fatalf("rows = %d, want 3", len(grid))
	}
	if len(grid[0]) != 2 || len(grid[1]) != 2 || len(grid[2]) != 1 {
		t.Fatalf("row widths = %d,%d,%d, want 2,2,1", len(grid[0]), len(grid[1]), len(grid[2]))
	}
	// row-major order is preserved
	flat := []int{}
	for _, row := range grid {
		flat = append(flat, row...)
	}
	for i, v := range flat {
		if v != i+1 {
			t.Fatalf("flat[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestListToMatrixEdgeCases(t *testing.T) {
	if got := listToMatrix([]int{}, 2); got != nil {
		t.Fatalf("empty list: got %v, want nil", got)
	}
	if got := listToMatrix([]int{1, 2}, 0); got != nil {
		t.Fatalf("n=0: got %v, want nil", got)
	}
	grid := listToMatrix([]int{1}, 3)
	if len(grid) != 1 || len(grid[0]) != 1 {
		t.Fatalf("single item: got %v, want one short row", grid)
	}
}

func TestFilterByTag(t *testing.T) {
	gens := []repo.Generator{
		{Key: "a", Tags: []string{"production"}},
		{Key: "b", Tags: []string{"demo"}},
		{Key: "c", Tags: []string{"production", "demo"}},
		{Key: "d"},
	}
	prod := filterByTag(gens, "production")
	if len(prod) != 2 || prod[0].Key != "a" || prod[1].Key != "c" {
		t.Fatalf("production filter = %v", prod)
	}
	demo := filterByTag(gens, "demo")
	if len(demo) != 2 || demo[0].Key != "b" || demo[1].Key != "c" {
		t.Fatalf("demo filter = %v", demo)
	}
	if got := filterByTag(gens, "beta"); got != nil {
		t.Fatalf("unknown tag: got %v, want nil", got)
	}
}

func TestIsEditingVisible(t *testing.T) {
	cases := []struct {
		name       string
		permission string
		released   bool
		want       bool
	}{
		{"full access draft", "FULL_ACCESS", false, true},
		{"modify draft", "MODIFY", false, true},
		{"read only draft", "READ", false, false},
		{"full access released", "FULL_ACCESS", true, false},
		{"read only released", "READ", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entity := testEntity()
			entity.Released = tc.released
			if got := isEditingVisible(tc.permission, entity); got != tc.want {
				t.Fatalf("isEditingVisible(%q, released=%v) = %v, want %v",
					tc.permission, tc.released, got, tc.want)
			}
		})
	}
}

func TestHasOfficialPrefix(t *testing.T) {
	private := testEntity()
	private.ID.Namespace = "vorto.private.alice"
	if hasOfficialPrefix(private, "vorto.private") {
		t.Fatal("private namespace reported as official")
	}
	official := testEntity()
	official.ID.Namespace = "org.eclipse.vorto"
	if !hasOfficialPrefix(official, "vorto.private") {
		t.Fatal("official namespace not detected")
	}
}
