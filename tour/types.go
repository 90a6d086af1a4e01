package tour

import "errors"

// ErrDimensionMismatch is returned when slice lengths disagree with the
// instance size (e.g. a tour of the wrong length, mismatched parents).
var ErrDimensionMismatch = errors.New("tour: dimension mismatch")

// ErrInvalidPermutation is returned when a sequence is not a permutation
// of 0..n-1. Once an instance is set up correctly this signals an
// internal invariant violation and must be treated as fatal by callers.
var ErrInvalidPermutation = errors.New("tour: not a valid permutation")
