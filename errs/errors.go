// Package errs defines the sentinel errors returned by this module.
//
// Callers match them with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

var (
	// ErrInvalidChunkSize indicates a negative chunk size was configured.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrInvalidCapacityHint indicates a negative capacity hint was configured.
	ErrInvalidCapacityHint = errors.New("invalid capacity hint")
)
