package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
)

type errorResponse struct {
	Error string `json:"error"`
}

type guessResponse struct {
	Game  *entity.Game  `json:"game"`
	Match *entity.Match `json:"match"`
}

type revealResponse struct {
	Game      *entity.Game      `json:"game"`
	Solutions []entity.Solution `json:"solutions"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (that *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req entity.GenerateRequest
	if !that.decode(w, r, &req) {
		return
	}

	resp, err := that.puzzle.Generate(r.Context(), &req)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (that *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req entity.ValidateRequest
	if !that.decode(w, r, &req) {
		return
	}

	resp, err := that.puzzle.Validate(r.Context(), &req)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (that *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req entity.SolveRequest
	if !that.decode(w, r, &req) {
		return
	}

	resp, err := that.puzzle.Solve(r.Context(), &req)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req entity.GenerateRequest
	if !that.decode(w, r, &req) {
		return
	}

	game, err := that.games.NewGame(r.Context(), &req)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var selection entity.Selection
	if !that.decode(w, r, &selection) {
		return
	}

	game, match, err := that.games.Guess(r.Context(), chi.URLParam(r, "id"), &selection)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, guessResponse{Game: game, Match: match})
}

func (that *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	game, solutions, err := that.games.Reveal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, revealResponse{Game: game, Solutions: solutions})
}

// decode reads the JSON body into dst and answers 400 itself when that fails.
func (that *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		that.fail(w, r, fmt.Errorf("%w: malformed request: %w", apperror.ErrInvalidRequest, err))
		return false
	}

	return true
}

func (that *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
		writeError(w, status, "internal error")
		return
	}

	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidRequest), errors.Is(err, apperror.ErrSelectionTooShort):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrUnplaceableWord):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(errorResponse{Error: msg})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
