package wordsearch

import "github.com/rocketscienceinc/wordsearch-backend/internal/entity"

// ResolveLine returns the cells from start to end inclusive when both lie on a common
// horizontal, vertical or diagonal line. ok is false for any other pair.
func ResolveLine(start, end entity.Coordinate) (entity.Path, bool) {
	dRow := end.Row - start.Row
	dCol := end.Col - start.Col

	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return nil, false
	}

	dir := entity.Direction{DRow: sign(dRow), DCol: sign(dCol)}
	length := max(abs(dRow), abs(dCol)) + 1

	path := make(entity.Path, length)
	for i := range length {
		path[i] = start.Step(dir, i)
	}

	return path, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
