package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
	"github.com/rocketscienceinc/wordsearch-backend/internal/pkg"
	"github.com/rocketscienceinc/wordsearch-backend/internal/wordlist"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type puzzleEngine interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	Validate(ctx context.Context, req *entity.ValidateRequest) (*entity.Match, error)
	Solve(ctx context.Context, req *entity.SolveRequest) (*entity.SolveResponse, error)
}

// GameManager keeps word search sessions for callers that do not want to carry the grid and
// remaining words themselves. Each call loads the game, runs one stateless puzzle operation and
// stores the result.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	puzzle   puzzleEngine

	defaultWords []string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, puzzle puzzleEngine, defaultWords []string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		puzzle:   puzzle,

		defaultWords: defaultWords,
	}
}

// NewGame generates a grid and stores a fresh session for it. Without words the configured
// word list is used.
func (that *GameManager) NewGame(ctx context.Context, req *entity.GenerateRequest) (*entity.Game, error) {
	if len(req.Words) == 0 {
		if len(that.defaultWords) == 0 {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingWords)
		}
		req = &entity.GenerateRequest{Words: that.defaultWords, Size: req.Size, Seed: req.Seed}
	}

	generated, err := that.puzzle.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate puzzle: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	words, err := wordlist.Normalize(req.Words)
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(gameID, generated.Seed, generated.Grid, words, generated.Omitted)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.InfoContext(ctx, "Game created", "game_id", game.ID, "words", len(game.Remaining), "seed", game.Seed)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Guess checks a selection against the game's remaining words and records the word when found.
func (that *GameManager) Guess(ctx context.Context, id string, selection *entity.Selection) (*entity.Game, *entity.Match, error) {
	if selection == nil || selection.Start == nil || selection.End == nil {
		return nil, nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingSelection)
	}

	if *selection.Start == *selection.End {
		return nil, nil, apperror.ErrSelectionTooShort
	}

	game, err := that.getOngoingGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	match, err := that.puzzle.Validate(ctx, &entity.ValidateRequest{
		Grid:           game.Grid,
		WordsRemaining: game.Remaining,
		Selection:      selection,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate selection: %w", err)
	}

	if !match.Found {
		return game, match, nil
	}

	game.MarkFound(match.Word)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.InfoContext(ctx, "Word found", "game_id", game.ID, "word", match.Word, "remaining", len(game.Remaining))

	return game, match, nil
}

// Reveal solves whatever is left and finishes the game.
func (that *GameManager) Reveal(ctx context.Context, id string) (*entity.Game, []entity.Solution, error) {
	game, err := that.getOngoingGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	solved, err := that.puzzle.Solve(ctx, &entity.SolveRequest{Grid: game.Grid, WordsRemaining: game.Remaining})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to solve game: %w", err)
	}

	if missing := len(game.Remaining) - len(solved.Solutions); missing > 0 {
		that.logger.WarnContext(ctx, "Revealing words absent from the grid", "game_id", game.ID, "missing", missing)
	}

	game.RevealAll()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.InfoContext(ctx, "Game revealed", "game_id", game.ID, "solutions", len(solved.Solutions))

	return game, solved.Solutions, nil
}

// DeleteGame drops a session. Unknown ids report apperror.ErrGameNotFound.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameManager) getOngoingGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	return game, nil
}
