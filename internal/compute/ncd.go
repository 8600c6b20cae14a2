package compute

import "errors"

// ErrEmptyInput is returned when both individual compressed sizes are zero and
// the NCD denominator would be zero.
var ErrEmptyInput = errors.New("empty input: both compressed sizes are zero")

// Sizes holds the three compressed lengths of one measurement, in bytes.
type Sizes struct {
	// X is C(X), the compressed size of the first input alone.
	X int
	// Y is C(Y), the compressed size of the second input alone.
	Y int
	// XY is C(X‖Y), the compressed size of X immediately followed by Y.
	XY int
}

// Result is the outcome of one measurement.
type Result struct {
	Sizes

	// DeltaK is C(Y) − C(X). Positive when Y is the more complex input.
	DeltaK int

	// NCD is the normalized compression distance. 0 means maximally similar.
	NCD float64
}

// FromSizes computes ΔK and NCD from compressed sizes.
//
// Returns ErrEmptyInput if max(C(X), C(Y)) is zero.
func FromSizes(s Sizes) (Result, error) {
	lo, hi := s.X, s.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return Result{Sizes: s}, ErrEmptyInput
	}
	return Result{
		Sizes:  s,
		DeltaK: s.Y - s.X,
		NCD:    float64(s.XY-lo) / float64(hi),
	}, nil
}
