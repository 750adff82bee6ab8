package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
)

var ErrIncompleteCoordinate = errors.New("coordinate needs both r and c")

// Coordinate addresses a grid cell, 0-indexed.
type Coordinate struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

// UnmarshalJSON rejects coordinates with a missing r or c instead of reading them as 0.
func (that *Coordinate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Row *int `json:"r"`
		Col *int `json:"c"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	if raw.Row == nil || raw.Col == nil {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidRequest, ErrIncompleteCoordinate, data)
	}

	that.Row, that.Col = *raw.Row, *raw.Col

	return nil
}

// Path is an ordered run of coordinates from a selection's start to its end, inclusive.
type Path []Coordinate

// Direction is a unit step between neighbouring cells.
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the 8 placement directions in the order the solver scans them.
var Directions = [8]Direction{
	{DRow: 0, DCol: 1},   // E
	{DRow: 1, DCol: 0},   // S
	{DRow: 1, DCol: 1},   // SE
	{DRow: -1, DCol: 1},  // NE
	{DRow: 0, DCol: -1},  // W
	{DRow: -1, DCol: 0},  // N
	{DRow: -1, DCol: -1}, // NW
	{DRow: 1, DCol: -1},  // SW
}

// Step returns the coordinate n steps away along d.
func (that Coordinate) Step(d Direction, n int) Coordinate {
	return Coordinate{Row: that.Row + d.DRow*n, Col: that.Col + d.DCol*n}
}

// Placement is a word's position and direction within a grid.
type Placement struct {
	Word      string     `json:"word"`
	Start     Coordinate `json:"start"`
	Direction Direction  `json:"-"`
}

// Path expands the placement into the coordinates it covers.
func (that Placement) Path() Path {
	n := len([]rune(that.Word))
	path := make(Path, n)
	for i := range n {
		path[i] = that.Start.Step(that.Direction, i)
	}

	return path
}

// Selection is the pair of endpoints a player picked.
type Selection struct {
	Start *Coordinate `json:"start"`
	End   *Coordinate `json:"end"`
}

// Solution is a word located in a grid together with the cells it occupies.
type Solution struct {
	Word string `json:"word"`
	Path Path   `json:"path"`
}
