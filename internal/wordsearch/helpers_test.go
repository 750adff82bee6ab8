package wordsearch

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

// gridFromLines builds a grid from one string per row.
func gridFromLines(t *testing.T, lines ...string) *entity.Grid {
	t.Helper()

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, "")
	}

	grid, err := entity.ParseGrid(rows)
	require.NoError(t, err)

	return grid
}
