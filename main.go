package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/wordsearch-backend/internal"
	"github.com/rocketscienceinc/wordsearch-backend/internal/config"
	"github.com/rocketscienceinc/wordsearch-backend/transport/cli"
)

const usage = "usage: wordsearch generate|validate|solve < request.json\n       wordsearch serve\n"

// main - reads the operation from the first argument. One-shot operations take their request
// from stdin and write the response to stdout; serve runs the HTTP service.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(cli.ExitInternalFault)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(cli.ExitInvalidRequest)
	}

	conf := initConfig()
	logger := initLogger(conf)

	op := os.Args[1]
	if op != "serve" {
		os.Exit(app.RunOnce(context.Background(), logger, conf, op, os.Stdin, os.Stdout))
	}

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env: %w", err))
	}

	path := os.Getenv("WORDSEARCH_CONFIG")
	if path == "" {
		path = "./config.yml"
	}

	return config.MustLoad(path)
}

// initialize logger. stdout carries responses, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
