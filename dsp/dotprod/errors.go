package dotprod

import "errors"

// Sentinel errors returned by dot-product operations.
var (
	// ErrNilObject is returned when an operation requires a non-nil object,
	// e.g. copying a nil DotProduct.
	ErrNilObject = errors.New("dotprod: nil object")
)
