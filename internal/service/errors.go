package service

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the handler layer. Repository-level absence is
// repository.ErrNotFound; anything not matching one of these maps to an
// internal error.
var (
	// ErrValidation marks missing or malformed input, detected before any
	// mutation happens.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden is returned when the acting user is authenticated but is
	// not the author of the post being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrImageProcessing marks a decode or upload failure in the image
	// pipeline. It always aborts the operation before any post is written.
	ErrImageProcessing = errors.New("image processing failed")
)

// Specific validation failures. Each one is an ErrValidation, so callers may
// match either the broad class or the exact cause.
var (
	ErrMissingFields    = fmt.Errorf("%w: some fields are missing", ErrValidation)
	ErrInvalidCategory  = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrEmptyCommentText = fmt.Errorf("%w: text is required", ErrValidation)
)
