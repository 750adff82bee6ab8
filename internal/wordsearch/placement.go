package wordsearch

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
)

const (
	DefaultMinSize     = 12
	DefaultMaxSize     = 100
	DefaultMaxAttempts = 500
	DefaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrEmptyAlphabet = errors.New("filler alphabet is empty")
	ErrWordTooLong   = errors.New("word is longer than the grid side")
	ErrSizeTooLarge  = errors.New("grid side exceeds the maximum")
	ErrSizeBounds    = errors.New("minimum size exceeds the maximum size")
)

type Options struct {
	MinSize     int
	MaxSize     int
	MaxAttempts int
	Alphabet    string
}

// Result is a generated grid and what happened to each requested word.
type Result struct {
	Grid       *entity.Grid
	Placements []entity.Placement
	Omitted    []string
}

// PlacementEngine builds grids. It holds only its options, every call gets its own random source.
type PlacementEngine struct {
	minSize     int
	maxSize     int
	maxAttempts int
	alphabet    []rune
}

func NewPlacementEngine(opts Options) (*PlacementEngine, error) {
	if opts.MinSize <= 0 {
		opts.MinSize = DefaultMinSize
	}

	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}

	if opts.MinSize > opts.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeBounds, opts.MinSize, opts.MaxSize)
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	if opts.Alphabet == "" {
		opts.Alphabet = DefaultAlphabet
	}

	alphabet := make([]rune, 0, len(opts.Alphabet))
	for _, letter := range strings.ToUpper(opts.Alphabet) {
		if unicode.IsLetter(letter) && !slices.Contains(alphabet, letter) {
			alphabet = append(alphabet, letter)
		}
	}

	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	return &PlacementEngine{
		minSize:     opts.MinSize,
		maxSize:     opts.MaxSize,
		maxAttempts: opts.MaxAttempts,
		alphabet:    alphabet,
	}, nil
}

// MaxSize is the largest grid side Generate accepts.
func (that *PlacementEngine) MaxSize() int {
	return that.maxSize
}

// DefaultSize picks a side for words when the caller gave none: at least the minimum size,
// at least the longest word, and enough cells for twice the total letter count.
func (that *PlacementEngine) DefaultSize(words []string) int {
	size := that.minSize
	total := 0

	for _, word := range words {
		n := len([]rune(word))
		total += n
		size = max(size, n)
	}

	return max(size, int(math.Ceil(math.Sqrt(float64(2*total)))))
}

// Generate places words into a size×size grid (size 0 picks DefaultSize) and fills the rest
// with random letters. The same words, size and seed always give the same grid.
// Words are upper-cased first. Words that cannot be placed within the attempt budget are
// reported in Result.Omitted.
func (that *PlacementEngine) Generate(words []string, size int, seed int64) (*Result, error) {
	words = upperCase(words)

	if size <= 0 {
		size = that.DefaultSize(words)
	}

	if size > that.maxSize {
		return nil, fmt.Errorf("%w: %w: %d > %d", apperror.ErrInvalidRequest, ErrSizeTooLarge, size, that.maxSize)
	}

	for _, word := range words {
		if len([]rune(word)) > size {
			return nil, fmt.Errorf("%w: %w: %q does not fit a %dx%d grid",
				apperror.ErrInvalidRequest, ErrWordTooLong, word, size, size)
		}
	}

	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // reproducible puzzles, not secrets
	grid := entity.NewGrid(size)
	result := &Result{Grid: grid}

	for _, word := range placementOrder(words) {
		placement, ok := that.place(rng, grid, word)
		if !ok {
			result.Omitted = append(result.Omitted, word)
			continue
		}
		result.Placements = append(result.Placements, placement)
	}

	that.fill(rng, grid)

	return result, nil
}

func upperCase(words []string) []string {
	upper := make([]string, len(words))
	for i, word := range words {
		upper[i] = strings.ToUpper(word)
	}

	return upper
}

// placementOrder sorts longest first; ties alphabetically so the order never depends on input order.
func placementOrder(words []string) []string {
	ordered := slices.Clone(words)
	slices.SortStableFunc(ordered, func(a, b string) int {
		if la, lb := len([]rune(a)), len([]rune(b)); la != lb {
			return lb - la
		}
		return strings.Compare(a, b)
	})

	return slices.Compact(ordered)
}

func (that *PlacementEngine) place(rng *rand.Rand, grid *entity.Grid, word string) (entity.Placement, bool) {
	letters := []rune(word)
	size := grid.Size()

	for range that.maxAttempts {
		start := entity.Coordinate{Row: rng.Intn(size), Col: rng.Intn(size)}
		dir := entity.Directions[rng.Intn(len(entity.Directions))]

		if !fits(grid, letters, start, dir) {
			continue
		}

		for i, letter := range letters {
			// fits has already checked bounds
			_ = grid.Set(start.Step(dir, i), letter)
		}

		return entity.Placement{Word: word, Start: start, Direction: dir}, true
	}

	return entity.Placement{}, false
}

// fits reports whether letters can be written from start along dir: every cell in bounds and
// either empty or already holding the same letter.
func fits(grid *entity.Grid, letters []rune, start entity.Coordinate, dir entity.Direction) bool {
	for i, letter := range letters {
		current, ok := grid.At(start.Step(dir, i))
		if !ok {
			return false
		}

		if current != entity.EmptyCell && current != letter {
			return false
		}
	}

	return true
}

func (that *PlacementEngine) fill(rng *rand.Rand, grid *entity.Grid) {
	for row := range grid.Size() {
		for col := range grid.Size() {
			c := entity.Coordinate{Row: row, Col: col}
			if letter, _ := grid.At(c); letter == entity.EmptyCell {
				_ = grid.Set(c, that.alphabet[rng.Intn(len(that.alphabet))])
			}
		}
	}
}
