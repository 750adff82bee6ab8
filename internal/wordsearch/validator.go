package wordsearch

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
)

// Validate reports whether the letters between start and end, read either way, spell one of
// the remaining words. The matched word is returned as it appears in remaining.
// remaining is not modified; removing the word is up to the caller.
func Validate(grid *entity.Grid, remaining []string, start, end entity.Coordinate) (entity.Match, error) {
	for _, c := range [2]entity.Coordinate{start, end} {
		if !grid.InBounds(c) {
			return entity.Match{}, fmt.Errorf("%w: %w: (%d,%d) on a %dx%d grid",
				apperror.ErrInvalidRequest, entity.ErrOutOfBounds, c.Row, c.Col, grid.Size(), grid.Size())
		}
	}

	path, ok := ResolveLine(start, end)
	if !ok {
		return entity.Match{}, nil
	}

	forward, ok := grid.Read(path)
	if !ok {
		return entity.Match{}, nil
	}

	for _, candidate := range [2]string{forward, reverse(forward)} {
		if slices.Contains(remaining, candidate) {
			return entity.Match{Found: true, Word: candidate, Path: path}, nil
		}
	}

	return entity.Match{}, nil
}

func reverse(s string) string {
	letters := []rune(s)
	slices.Reverse(letters)

	return string(letters)
}
