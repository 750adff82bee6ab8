package apperror

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnplaceableWord   = errors.New("word could not be placed")
	ErrSelectionTooShort = errors.New("selection must span at least two cells")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrNotConfigured     = errors.New("dependency not configured")
)
