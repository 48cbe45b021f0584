package v3math

import "errors"

// ErrInvalidInput is returned for non-positive prices, negative amounts and
// degenerate price ranges.
var ErrInvalidInput = errors.New("invalid input")
