package wordsearch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts Options) *PlacementEngine {
	t.Helper()

	engine, err := NewPlacementEngine(opts)
	require.NoError(t, err)

	return engine
}

func TestPlacementEngine_Generate(t *testing.T) {
	t.Run("Same words, size and seed give the same grid", func(t *testing.T) {
		// Given: an engine and a fixed request
		engine := newTestEngine(t, Options{})
		words := []string{"PYTHON", "ALGORITMO", "SOL"}

		// When: generating twice
		first, err := engine.Generate(words, 15, 7)
		require.NoError(t, err)
		second, err := engine.Generate(words, 15, 7)
		require.NoError(t, err)

		// Then: the grids are identical
		assert.Equal(t, first.Grid.String(), second.Grid.String())
		assert.Equal(t, first.Placements, second.Placements)
	})

	t.Run("Input order of the words does not change the grid", func(t *testing.T) {
		engine := newTestEngine(t, Options{})

		first, err := engine.Generate([]string{"LUNA", "SOL", "MAR"}, 10, 3)
		require.NoError(t, err)
		second, err := engine.Generate([]string{"MAR", "LUNA", "SOL"}, 10, 3)
		require.NoError(t, err)

		assert.Equal(t, first.Grid.String(), second.Grid.String())
	})

	t.Run("Different seeds give different grids", func(t *testing.T) {
		engine := newTestEngine(t, Options{})

		first, err := engine.Generate([]string{"SOL"}, 10, 1)
		require.NoError(t, err)
		second, err := engine.Generate([]string{"SOL"}, 10, 2)
		require.NoError(t, err)

		assert.NotEqual(t, first.Grid.String(), second.Grid.String())
	})

	t.Run("SOL and GATO on a 10x10 grid with seed 42", func(t *testing.T) {
		// Given: the two words
		engine := newTestEngine(t, Options{})
		words := []string{"SOL", "GATO"}

		// When: generating and solving
		result, err := engine.Generate(words, 10, 42)
		require.NoError(t, err)
		solutions := Solve(result.Grid, words)

		// Then: the grid is 10x10 and both words are readable along their paths
		assert.Equal(t, 10, result.Grid.Size())
		assert.Empty(t, result.Omitted)
		require.Len(t, solutions, 2)
		for i, word := range words {
			read, ok := result.Grid.Read(solutions[i].Path)
			require.True(t, ok)
			assert.Equal(t, word, read)
			assert.Equal(t, word, solutions[i].Word)
		}
	})

	t.Run("Every placed word is found by the solver", func(t *testing.T) {
		engine := newTestEngine(t, Options{})
		words := []string{"SOL", "GATO", "PERRO", "CASA", "LUNA", "MAR", "RIO", "FLOR"}

		for seed := int64(1); seed <= 50; seed++ {
			t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
				// When: generating a 12x12 grid
				result, err := engine.Generate(words, 12, seed)
				require.NoError(t, err)

				// Then: every placement reads its word
				for _, placement := range result.Placements {
					read, ok := result.Grid.Read(placement.Path())
					require.True(t, ok)
					assert.Equal(t, placement.Word, read)
				}

				// Then: the solver finds every word that was not omitted
				solutions := Solve(result.Grid, words)
				assert.Len(t, solutions, len(words)-len(result.Omitted))
				for _, solution := range solutions {
					read, ok := result.Grid.Read(solution.Path)
					require.True(t, ok)
					assert.Equal(t, solution.Word, read)
				}
			})
		}
	})

	t.Run("Every cell holds a letter", func(t *testing.T) {
		// Given: a two-letter filler alphabet
		engine := newTestEngine(t, Options{Alphabet: "xy"})

		// When: generating
		result, err := engine.Generate([]string{"SOL"}, 6, 11)
		require.NoError(t, err)

		// Then: no cell is empty and fillers come from the alphabet
		for _, row := range result.Grid.Rows() {
			for _, cell := range row {
				assert.Contains(t, "XYSOL", cell)
				assert.NotEmpty(t, cell)
			}
		}
	})

	t.Run("Words that cannot fit are omitted, not fatal", func(t *testing.T) {
		// Given: four two-letter words with no shared letters and only four cells
		engine := newTestEngine(t, Options{MaxAttempts: 50})
		words := []string{"AB", "CD", "EF", "GH"}

		// When: generating a 2x2 grid
		result, err := engine.Generate(words, 2, 5)

		// Then: a grid still comes back and the lost words are listed
		require.NoError(t, err)
		assert.Equal(t, 2, result.Grid.Size())
		assert.GreaterOrEqual(t, len(result.Omitted), 2)
		assert.Len(t, result.Placements, len(words)-len(result.Omitted))
	})

	t.Run("Explicit size smaller than a word is an invalid request", func(t *testing.T) {
		engine := newTestEngine(t, Options{})

		_, err := engine.Generate([]string{"PROGRAMACION"}, 10, 1)

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrWordTooLong)
	})

	t.Run("Size above the maximum is an invalid request", func(t *testing.T) {
		// Given: an engine capped at 20
		engine := newTestEngine(t, Options{MaxSize: 20})

		// When: asking for a larger grid
		_, err := engine.Generate([]string{"SOL"}, 21, 1)

		// Then: nothing is allocated and the request is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrSizeTooLarge)
	})

	t.Run("Default size above the maximum is an invalid request", func(t *testing.T) {
		engine := newTestEngine(t, Options{MinSize: 5, MaxSize: 10})

		_, err := engine.Generate([]string{"ELECTROCARDIOGRAMA"}, 0, 1)

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrSizeTooLarge)
	})

	t.Run("Lowercase words are placed in upper case", func(t *testing.T) {
		// Given: words that were not normalized by the caller
		engine := newTestEngine(t, Options{})

		// When: generating
		result, err := engine.Generate([]string{"sol", "gaTo"}, 10, 42)
		require.NoError(t, err)

		// Then: the grid matches the upper-case request and holds no lower-case cells
		upper, err := engine.Generate([]string{"SOL", "GATO"}, 10, 42)
		require.NoError(t, err)
		assert.Equal(t, upper.Grid.Rows(), result.Grid.Rows())
		assert.Equal(t, upper.Placements, result.Placements)

		for _, row := range result.Grid.Rows() {
			for _, cell := range row {
				assert.Equal(t, strings.ToUpper(cell), cell)
			}
		}
	})
}

func TestPlacementEngine_DefaultSize(t *testing.T) {
	engine := newTestEngine(t, Options{})

	t.Run("Short lists get the minimum size", func(t *testing.T) {
		assert.Equal(t, DefaultMinSize, engine.DefaultSize([]string{"SOL", "GATO"}))
	})

	t.Run("The longest word sets a lower bound", func(t *testing.T) {
		assert.Equal(t, 15, engine.DefaultSize([]string{"OTORRINOLOGOS", "ELECTROCARDIOGR"}))
	})

	t.Run("Many letters grow the grid", func(t *testing.T) {
		// Given: 40 five-letter words, 200 letters in total
		words := make([]string, 40)
		for i := range words {
			words[i] = strings.Repeat(string(rune('A'+i%26)), 5)
		}

		// Then: the side is ceil(sqrt(400))
		assert.Equal(t, 20, engine.DefaultSize(words))
	})

	t.Run("Generate uses the default when no size is given", func(t *testing.T) {
		result, err := engine.Generate([]string{"SOL"}, 0, 1)

		require.NoError(t, err)
		assert.Equal(t, DefaultMinSize, result.Grid.Size())
	})
}

func TestNewPlacementEngine(t *testing.T) {
	t.Run("Alphabet without letters is rejected", func(t *testing.T) {
		_, err := NewPlacementEngine(Options{Alphabet: "123 !"})

		require.ErrorIs(t, err, ErrEmptyAlphabet)
	})

	t.Run("Minimum above maximum is rejected", func(t *testing.T) {
		_, err := NewPlacementEngine(Options{MinSize: 30, MaxSize: 20})

		require.ErrorIs(t, err, ErrSizeBounds)
	})

	t.Run("Maximum defaults when unset", func(t *testing.T) {
		engine := newTestEngine(t, Options{})

		assert.Equal(t, DefaultMaxSize, engine.MaxSize())
	})

	t.Run("Spanish letters are accepted as fillers", func(t *testing.T) {
		engine := newTestEngine(t, Options{Alphabet: "ñ"})

		result, err := engine.Generate([]string{}, 3, 1)
		require.NoError(t, err)

		assert.Equal(t, "ÑÑÑ\nÑÑÑ\nÑÑÑ\n", result.Grid.String())
	})
}

func TestPlacement_Path(t *testing.T) {
	placement := entity.Placement{
		Word:      "GATO",
		Start:     entity.Coordinate{Row: 3, Col: 3},
		Direction: entity.Direction{DRow: -1, DCol: -1},
	}

	assert.Equal(t, entity.Path{{Row: 3, Col: 3}, {Row: 2, Col: 2}, {Row: 1, Col: 1}, {Row: 0, Col: 0}}, placement.Path())
}
