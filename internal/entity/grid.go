package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
)

// EmptyCell marks a cell no letter has been written to yet.
const EmptyCell rune = 0

var (
	ErrGridEmpty     = errors.New("grid is empty")
	ErrGridNotSquare = errors.New("grid is not square")
	ErrInvalidLetter = errors.New("cell must hold exactly one uppercase letter")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// Grid is a square board of letters. Cells are addressed by Coordinate.
type Grid struct {
	cells [][]rune
}

// NewGrid returns a size×size grid with every cell empty.
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for r := range cells {
		cells[r] = make([]rune, size)
	}

	return &Grid{cells: cells}
}

// ParseGrid builds a grid from rows of single-letter strings, as exchanged with callers.
// Letters are upper-cased; anything else than one letter per cell is rejected.
func ParseGrid(rows [][]string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrGridEmpty)
	}

	size := len(rows)
	grid := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				apperror.ErrInvalidRequest, ErrGridNotSquare, r, len(row), size)
		}

		for c, cell := range row {
			letter, err := parseLetter(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: %w at (%d,%d): %q", apperror.ErrInvalidRequest, err, r, c, cell)
			}
			grid.cells[r][c] = letter
		}
	}

	return grid, nil
}

func parseLetter(cell string) (rune, error) {
	if utf8.RuneCountInString(cell) != 1 {
		return EmptyCell, ErrInvalidLetter
	}

	letter, _ := utf8.DecodeRuneInString(cell)
	if !unicode.IsLetter(letter) {
		return EmptyCell, ErrInvalidLetter
	}

	return unicode.ToUpper(letter), nil
}

func (that *Grid) Size() int {
	return len(that.cells)
}

func (that *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(that.cells) && c.Col >= 0 && c.Col < len(that.cells)
}

// At returns the letter at c, or false when c lies outside the grid.
func (that *Grid) At(c Coordinate) (rune, bool) {
	if !that.InBounds(c) {
		return EmptyCell, false
	}

	return that.cells[c.Row][c.Col], true
}

// Set writes a letter at c.
func (that *Grid) Set(c Coordinate, letter rune) error {
	if !that.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}

	that.cells[c.Row][c.Col] = letter

	return nil
}

// Read returns the letters along path. Coordinates outside the grid make it fail.
func (that *Grid) Read(path Path) (string, bool) {
	letters := make([]rune, 0, len(path))
	for _, c := range path {
		letter, ok := that.At(c)
		if !ok {
			return "", false
		}
		letters = append(letters, letter)
	}

	return string(letters), true
}

// Rows renders the grid as rows of single-letter strings. Empty cells render as "".
func (that *Grid) Rows() [][]string {
	rows := make([][]string, len(that.cells))
	for r, row := range that.cells {
		rows[r] = make([]string, len(row))
		for c, letter := range row {
			if letter != EmptyCell {
				rows[r][c] = string(letter)
			}
		}
	}

	return rows
}

func (that *Grid) String() string {
	var out []rune
	for _, row := range that.cells {
		for _, letter := range row {
			if letter == EmptyCell {
				letter = '.'
			}
			out = append(out, letter)
		}
		out = append(out, '\n')
	}

	return string(out)
}

func (that *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: grid: %w", apperror.ErrInvalidRequest, err)
	}

	grid, err := ParseGrid(rows)
	if err != nil {
		return err
	}

	that.cells = grid.cells

	return nil
}
