package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/wordsearch-backend/internal/config"
	"github.com/rocketscienceinc/wordsearch-backend/internal/repository"
	"github.com/rocketscienceinc/wordsearch-backend/internal/repository/storage"
	"github.com/rocketscienceinc/wordsearch-backend/internal/usecase"
	"github.com/rocketscienceinc/wordsearch-backend/internal/wordlist"
	"github.com/rocketscienceinc/wordsearch-backend/internal/wordsearch"
	"github.com/rocketscienceinc/wordsearch-backend/transport/cli"
	"github.com/rocketscienceinc/wordsearch-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunOnce - answers a single generate, validate or solve request and returns the exit status.
func RunOnce(ctx context.Context, logger *slog.Logger, conf *config.Config, op string, in io.Reader, out io.Writer) int {
	puzzle, err := newPuzzle(logger, conf)
	if err != nil {
		logger.Error("Engine misconfigured", "error", err)
		return cli.ExitInternalFault
	}

	err = cli.New(logger, puzzle).Run(ctx, op, in, out)
	if err != nil {
		logger.Error("Operation failed", "op", op, "error", err)
	}

	return cli.ExitCode(err)
}

// RunApp - runs the HTTP service until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	puzzle, err := newPuzzle(logger, conf)
	if err != nil {
		return err
	}

	var defaultWords []string
	if conf.WordsFile != "" {
		if defaultWords, err = wordlist.Load(conf.WordsFile); err != nil {
			return fmt.Errorf("could not load word list: %w", err)
		}
		log.Info("Word list loaded", "path", conf.WordsFile, "words", len(defaultWords))
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.GameTTL)
	gameManager := usecase.NewGameManager(logger, gameRepo, puzzle, defaultWords)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.New(logger, puzzle, gameManager).Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newPuzzle(logger *slog.Logger, conf *config.Config) (*usecase.Puzzle, error) {
	engine, err := wordsearch.NewPlacementEngine(wordsearch.Options{
		MinSize:     conf.Engine.MinSize,
		MaxSize:     conf.Engine.MaxSize,
		MaxAttempts: conf.Engine.MaxAttempts,
		Alphabet:    conf.Engine.Alphabet,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build placement engine: %w", err)
	}

	return usecase.NewPuzzle(logger, engine, conf.Engine.StrictPlacement), nil
}
