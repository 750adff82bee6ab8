// Package cli runs one engine operation per process: the request is read from stdin as JSON and
// the response written to stdout. Failures never reach stdout; they surface as a non-zero exit
// status chosen by ExitCode.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/rocketscienceinc/wordsearch-backend/internal/entity"
)

const (
	OpGenerate = "generate"
	OpValidate = "validate"
	OpSolve    = "solve"
)

const (
	ExitOK             = 0
	ExitInternalFault  = 1
	ExitInvalidRequest = 2
)

var ErrTrailingData = errors.New("unexpected data after the request")

type puzzleUseCase interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	Validate(ctx context.Context, req *entity.ValidateRequest) (*entity.Match, error)
	Solve(ctx context.Context, req *entity.SolveRequest) (*entity.SolveResponse, error)
}

type Runner struct {
	logger *slog.Logger
	puzzle puzzleUseCase

	handlers map[string]func(ctx context.Context, in io.Reader) (any, error)
}

func New(logger *slog.Logger, puzzle puzzleUseCase) *Runner {
	runner := &Runner{
		logger: logger.With("component", "cli"),
		puzzle: puzzle,

		handlers: make(map[string]func(context.Context, io.Reader) (any, error)),
	}

	runner.handlers[OpGenerate] = runner.handleGenerate
	runner.handlers[OpValidate] = runner.handleValidate
	runner.handlers[OpSolve] = runner.handleSolve

	return runner
}

// IsOperation reports whether op names one of the one-shot engine operations.
func (that *Runner) IsOperation(op string) bool {
	_, ok := that.handlers[op]
	return ok
}

// Run handles op with the request in in and writes the JSON response to out.
// Nothing is written to out when an error is returned.
func (that *Runner) Run(ctx context.Context, op string, in io.Reader, out io.Writer) error {
	handler, ok := that.handlers[op]
	if !ok {
		return fmt.Errorf("%w: %w: %q", apperror.ErrInvalidRequest, apperror.ErrUnknownOperation, op)
	}

	resp, err := handler(ctx, in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	if err = json.NewEncoder(&buf).Encode(resp); err != nil {
		return fmt.Errorf("%s: failed to encode response: %w", op, err)
	}

	if _, err = out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%s: failed to write response: %w", op, err)
	}

	that.logger.DebugContext(ctx, "Operation completed", "op", op, "bytes", buf.Len())

	return nil
}

func (that *Runner) handleGenerate(ctx context.Context, in io.Reader) (any, error) {
	var req entity.GenerateRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}

	return that.puzzle.Generate(ctx, &req)
}

func (that *Runner) handleValidate(ctx context.Context, in io.Reader) (any, error) {
	var req entity.ValidateRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}

	return that.puzzle.Validate(ctx, &req)
}

func (that *Runner) handleSolve(ctx context.Context, in io.Reader) (any, error) {
	var req entity.SolveRequest
	if err := decodeRequest(in, &req); err != nil {
		return nil, err
	}

	return that.puzzle.Solve(ctx, &req)
}

// decodeRequest reads exactly one JSON object, rejecting unknown fields.
func decodeRequest(in io.Reader, req any) error {
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("%w: malformed request: %w", apperror.ErrInvalidRequest, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, ErrTrailingData)
	}

	return nil
}

// ExitCode maps an error returned by Run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, apperror.ErrInvalidRequest):
		return ExitInvalidRequest
	default:
		return ExitInternalFault
	}
}
