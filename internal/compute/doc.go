// Package compute derives the Normalized Compression Distance and the
// complexity delta from compressed sizes.
//
// ncd.go provides the pure FromSizes(Sizes) function:
//
//	ΔK  = C(Y) − C(X)
//	NCD = (C(X‖Y) − min(C(X), C(Y))) / max(C(X), C(Y))
//
// calculator.go provides Calculator, which owns one pinned codec and runs the
// three compressions of a measurement. The concatenation is always X followed
// by Y; C(X‖Y) and C(Y‖X) are not guaranteed to be equal.
//
// NCD is nominally in [0, 1] but real compressors can push it slightly above 1.
package compute
