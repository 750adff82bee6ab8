package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the caller-side state of one word search: the grid plus which words are still hidden.
// The engine never sees a Game, it is handed Grid and Remaining on each call.
type Game struct {
	ID        string   `json:"id"`
	Seed      int64    `json:"seed"`
	Grid      *Grid    `json:"grid"`
	Words     []string `json:"words"`
	Remaining []string `json:"remaining"`
	Found     []string `json:"found"`
	Omitted   []string `json:"omitted,omitempty"`
	Status    string   `json:"status"`
}

// NewGame starts a session over grid. Omitted words were never placed and are not hidden.
func NewGame(id string, seed int64, grid *Grid, words, omitted []string) *Game {
	remaining := make([]string, 0, len(words))
	for _, word := range words {
		if !slices.Contains(omitted, word) {
			remaining = append(remaining, word)
		}
	}

	game := &Game{
		ID:        id,
		Seed:      seed,
		Grid:      grid,
		Words:     words,
		Remaining: remaining,
		Found:     []string{},
		Omitted:   omitted,
		Status:    StatusOngoing,
	}
	game.UpdateGameState()

	return game
}

// MarkFound moves word from remaining to found. It reports false when word was not remaining.
func (that *Game) MarkFound(word string) bool {
	idx := slices.Index(that.Remaining, word)
	if idx < 0 {
		return false
	}

	that.Remaining = slices.Delete(that.Remaining, idx, idx+1)
	that.Found = append(that.Found, word)
	that.UpdateGameState()

	return true
}

// RevealAll moves every remaining word to found, whether or not it can be located in the grid,
// and finishes the game.
func (that *Game) RevealAll() {
	that.Found = append(that.Found, that.Remaining...)
	that.Remaining = []string{}
	that.UpdateGameState()
}

func (that *Game) UpdateGameState() {
	if len(that.Remaining) == 0 {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
