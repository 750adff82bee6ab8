package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	t.Run("Lowercase letters are normalized", func(t *testing.T) {
		// Given: rows with mixed case
		rows := [][]string{{"a", "B"}, {"ñ", "d"}}

		// When: parsing them
		grid, err := ParseGrid(rows)

		// Then: every cell is upper case
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"A", "B"}, {"Ñ", "D"}}, grid.Rows())
	})

	t.Run("Empty grid is rejected", func(t *testing.T) {
		_, err := ParseGrid(nil)

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrGridEmpty)
	})

	t.Run("Ragged grid is rejected", func(t *testing.T) {
		_, err := ParseGrid([][]string{{"A", "B"}, {"C"}})

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrGridNotSquare)
	})

	t.Run("Cells must be single letters", func(t *testing.T) {
		for _, cell := range []string{"", "AB", "1", " "} {
			_, err := ParseGrid([][]string{{cell}})

			require.ErrorIs(t, err, apperror.ErrInvalidRequest, "cell %q", cell)
			assert.ErrorIs(t, err, ErrInvalidLetter, "cell %q", cell)
		}
	})
}

func TestGrid_Access(t *testing.T) {
	grid, err := ParseGrid([][]string{{"S", "O"}, {"L", "X"}})
	require.NoError(t, err)

	t.Run("At reports cells inside the grid", func(t *testing.T) {
		letter, ok := grid.At(Coordinate{Row: 1, Col: 0})

		assert.True(t, ok)
		assert.Equal(t, 'L', letter)
	})

	t.Run("At rejects cells outside the grid", func(t *testing.T) {
		for _, c := range []Coordinate{{Row: -1, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2}} {
			_, ok := grid.At(c)
			assert.False(t, ok, "coordinate %+v", c)
		}
	})

	t.Run("Set refuses to write outside the grid", func(t *testing.T) {
		err := NewGrid(2).Set(Coordinate{Row: 2, Col: 0}, 'A')

		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Read follows the path", func(t *testing.T) {
		word, ok := grid.Read(Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}})

		assert.True(t, ok)
		assert.Equal(t, "SOL", word)
	})

	t.Run("Read fails when the path leaves the grid", func(t *testing.T) {
		_, ok := grid.Read(Path{{Row: 0, Col: 0}, {Row: 0, Col: 2}})

		assert.False(t, ok)
	})
}

func TestGrid_JSON(t *testing.T) {
	t.Run("Round trips as rows of strings", func(t *testing.T) {
		// Given: a JSON grid
		data := []byte(`[["S","O"],["L","X"]]`)

		// When: decoding and encoding again
		var grid Grid
		require.NoError(t, json.Unmarshal(data, &grid))
		out, err := json.Marshal(&grid)

		// Then: the encoding is unchanged
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(out))
	})

	t.Run("Decoding a non-square grid fails", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`[["S","O"],["L"]]`), &grid)

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})

	t.Run("Decoding something else than rows fails", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`"SOL"`), &grid)

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})
}
