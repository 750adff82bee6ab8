package wordsearch

import "github.com/rocketscienceinc/wordsearch-backend/internal/entity"

// Solve locates every remaining word in grid. Cells are tried in row-major order and
// directions in entity.Directions order; the first forward reading wins. Words that do not
// occur are left out of the result.
func Solve(grid *entity.Grid, remaining []string) []entity.Solution {
	solutions := make([]entity.Solution, 0, len(remaining))
	seen := make(map[string]struct{}, len(remaining))

	for _, word := range remaining {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		if placement, ok := locate(grid, word); ok {
			solutions = append(solutions, entity.Solution{Word: word, Path: placement.Path()})
		}
	}

	return solutions
}

func locate(grid *entity.Grid, word string) (entity.Placement, bool) {
	letters := []rune(word)
	if len(letters) == 0 || len(letters) > grid.Size() {
		return entity.Placement{}, false
	}

	for row := range grid.Size() {
		for col := range grid.Size() {
			start := entity.Coordinate{Row: row, Col: col}
			if first, _ := grid.At(start); first != letters[0] {
				continue
			}

			for _, dir := range entity.Directions {
				if readsAlong(grid, letters, start, dir) {
					return entity.Placement{Word: word, Start: start, Direction: dir}, true
				}
			}
		}
	}

	return entity.Placement{}, false
}

func readsAlong(grid *entity.Grid, letters []rune, start entity.Coordinate, dir entity.Direction) bool {
	for i, want := range letters {
		got, ok := grid.At(start.Step(dir, i))
		if !ok || got != want {
			return false
		}
	}

	return true
}
