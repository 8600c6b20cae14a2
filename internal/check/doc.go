// Package check evaluates threshold conditions against a measurement so the
// tool can gate CI jobs ("fail if the two builds drifted").
//
// A condition is "field operator value", whitespace separated:
//
//	ncd < 0.3
//	delta_k <= 64
//	size_xy > 1000
//
// Fields: ncd, delta_k, size_x, size_y, size_xy.
// Operators: > >= < <= == !=.
package check
