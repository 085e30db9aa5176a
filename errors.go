package euclid

import "fmt"

// ErrDimensionMismatch indicates that two vectors combined by a binary
// operation do not have compatible dimensions.
type ErrDimensionMismatch struct {
	Expected int // Dimension of the receiver
	Actual   int // Dimension of the other operand
	reason   string
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	if e.reason != "" {
		return "dimension mismatch: " + e.reason
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a dimension argument an operation cannot
// honor, such as transforming a vector into fewer dimensions or
// constructing one from coordinate slices of different lengths.
type ErrInvalidDimension struct {
	Dimension int
	reason    string
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension %d: %s", e.Dimension, e.reason)
}
