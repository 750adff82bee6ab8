package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
	"github.com/rocketscienceinc/wordsearch-backend/internal/wordlist"
	"github.com/rocketscienceinc/wordsearch-backend/internal/wordsearch"
)

var (
	ErrMissingWords     = errors.New("words are missing")
	ErrMissingGrid      = errors.New("grid is missing")
	ErrMissingRemaining = errors.New("wordsRemaining is missing")
	ErrMissingSelection = errors.New("selection needs a start and an end")
	ErrInvalidSize      = errors.New("size is out of range")
)

type PuzzleUseCase interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	Validate(ctx context.Context, req *entity.ValidateRequest) (*entity.Match, error)
	Solve(ctx context.Context, req *entity.SolveRequest) (*entity.SolveResponse, error)
}

// Puzzle checks requests and runs them through the engine. It keeps no state between calls.
type Puzzle struct {
	logger *slog.Logger
	engine *wordsearch.PlacementEngine
	strict bool

	newSeed func() int64
}

func NewPuzzle(logger *slog.Logger, engine *wordsearch.PlacementEngine, strict bool) *Puzzle {
	return &Puzzle{
		logger: logger.With("component", "puzzle"),
		engine: engine,
		strict: strict,

		newSeed: rand.Int63,
	}
}

func (that *Puzzle) Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error) {
	if that.engine == nil {
		return nil, apperror.ErrNotConfigured
	}

	if req.Words == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingWords)
	}

	words, err := wordlist.Normalize(req.Words)
	if err != nil {
		return nil, err
	}

	size := 0
	if req.Size != nil {
		if *req.Size <= 0 || *req.Size > that.engine.MaxSize() {
			return nil, fmt.Errorf("%w: %w: %d not in 1..%d",
				apperror.ErrInvalidRequest, ErrInvalidSize, *req.Size, that.engine.MaxSize())
		}
		size = *req.Size
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = that.newSeed()
		that.logger.InfoContext(ctx, "No seed supplied, generated one", "seed", seed)
	}

	result, err := that.engine.Generate(words, size, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid: %w", err)
	}

	if len(result.Omitted) > 0 {
		that.logger.WarnContext(ctx, "Some words could not be placed",
			"omitted", result.Omitted, "size", result.Grid.Size(), "seed", seed)

		if that.strict {
			return nil, fmt.Errorf("%w: %v", apperror.ErrUnplaceableWord, result.Omitted)
		}
	}

	that.logger.DebugContext(ctx, "Grid generated",
		"words", len(words), "placed", len(result.Placements), "size", result.Grid.Size(), "seed", seed)

	return &entity.GenerateResponse{
		Grid:    result.Grid,
		Seed:    seed,
		Omitted: result.Omitted,
	}, nil
}

func (that *Puzzle) Validate(ctx context.Context, req *entity.ValidateRequest) (*entity.Match, error) {
	if req.Grid == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingGrid)
	}

	remaining, err := normalizeRemaining(req.WordsRemaining)
	if err != nil {
		return nil, err
	}

	if req.Selection == nil || req.Selection.Start == nil || req.Selection.End == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingSelection)
	}

	match, err := wordsearch.Validate(req.Grid, remaining, *req.Selection.Start, *req.Selection.End)
	if err != nil {
		return nil, fmt.Errorf("failed to validate selection: %w", err)
	}

	that.logger.DebugContext(ctx, "Selection validated", "found", match.Found, "word", match.Word)

	return &match, nil
}

func (that *Puzzle) Solve(ctx context.Context, req *entity.SolveRequest) (*entity.SolveResponse, error) {
	if req.Grid == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingGrid)
	}

	remaining, err := normalizeRemaining(req.WordsRemaining)
	if err != nil {
		return nil, err
	}

	solutions := wordsearch.Solve(req.Grid, remaining)

	if missing := len(remaining) - len(solutions); missing > 0 {
		that.logger.InfoContext(ctx, "Some remaining words are not in the grid", "missing", missing)
	}

	return &entity.SolveResponse{Solutions: solutions}, nil
}

func normalizeRemaining(words []string) ([]string, error) {
	if words == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrMissingRemaining)
	}

	return wordlist.Normalize(words)
}
