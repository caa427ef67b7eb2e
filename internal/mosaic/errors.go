package mosaic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegion marks a center or diameter that does not describe a
	// non-empty region inside the frame.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidFraction marks a cell fraction, opacity, corner percentage or
	// feather width outside its domain.
	ErrInvalidFraction = errors.New("invalid fraction")

	// ErrEmptyFrame is returned by Apply for a frame without pixels.
	ErrEmptyFrame = errors.New("frame is empty")

	// ErrMissingMask is returned by Apply in image overlay mode when no mask
	// image was given.
	ErrMissingMask = errors.New("image overlay mode requires a mask image")
)

// ValidationError describes one out-of-range field of a Params value.
type ValidationError struct {
	Field string
	Value any
	Err   error // ErrInvalidRegion or ErrInvalidFraction
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %v", e.Err, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
