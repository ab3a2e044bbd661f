package main

import (
	"strings"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Action gate: pure predicates deciding which lifecycle actions are legal
// ---------------------------------------------------------------------------

const permissionRead = "READ"

// isEditingVisible reports whether save/refactor affordances may be shown:
// never for read-only callers, never for released models.
func isEditingVisible(permission string, entity repo.ModelInfo) bool {
	return permission != permissionRead && !entity.Released
}

// hasOfficialPrefix reports whether the model lives outside the caller's
// private namespace, i.e. in official namespace territory.
func hasOfficialPrefix(entity repo.ModelInfo, privatePrefix string) bool {
	return !strings.HasPrefix(entity.ID.Namespace, privatePrefix)
}

// filterByTag returns the generators carrying the given catalog tag.
func filterByTag(gens []repo.Generator, tag string) []repo.Generator {
	var filtered []repo.Generator
	for _, g := range gens {
		if g.HasTag(tag) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// listToMatrix reshapes list into rows of n columns, row-major, with a short
// last row and no padding.
func listToMatrix[T any](list []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	var grid [][]T
	for i, item := range list {
		if i%n == 0 {
			grid = append(grid, nil)
		}
		grid[len(grid)-1] = append(grid[len(grid)-1], item)
	}
	return grid
}
