package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
)

const (
	maxBodyBytes    = 1 << 20
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type puzzleUseCase interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	Validate(ctx context.Context, req *entity.ValidateRequest) (*entity.Match, error)
	Solve(ctx context.Context, req *entity.SolveRequest) (*entity.SolveResponse, error)
}

type gameUseCase interface {
	NewGame(ctx context.Context, req *entity.GenerateRequest) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	Guess(ctx context.Context, id string, selection *entity.Selection) (*entity.Game, *entity.Match, error)
	Reveal(ctx context.Context, id string) (*entity.Game, []entity.Solution, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	puzzle puzzleUseCase
	games  gameUseCase

	router chi.Router
}

// New wires the routes. games may be nil, in which case only the stateless endpoints exist.
func New(logger *slog.Logger, puzzle puzzleUseCase, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		puzzle: puzzle,
		games:  games,

		router: chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.Recoverer)
	server.router.Use(middleware.Timeout(handlerTimeout))
	server.router.Use(server.requestLogger)

	server.router.Get("/ping", server.handlePing)

	server.router.Post("/generate", server.handleGenerate)
	server.router.Post("/validate", server.handleValidate)
	server.router.Post("/solve", server.handleSolve)

	if games != nil {
		server.router.Route("/games", func(r chi.Router) {
			r.Post("/", server.handleNewGame)
			r.Get("/{id}", server.handleGetGame)
			r.Delete("/{id}", server.handleDeleteGame)
			r.Post("/{id}/guess", server.handleGuess)
			r.Post("/{id}/reveal", server.handleReveal)
		})
	}

	server.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.router.ServeHTTP(w, r)
}

// Start - serves HTTP on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped with error: %w", err)
		}

		return nil
	}
}

// requestLogger logs method, path, status, bytes and duration for every request.
func (that *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		that.logger.InfoContext(r.Context(), "http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"dur", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
