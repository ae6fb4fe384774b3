// Package trinary provides the three-valued logic used as the result of every
// relational query in the type core.
//
// Values are ordered No < Maybe < Yes. And is the minimum, Or is the maximum
// and Negate swaps Yes and No while leaving Maybe unchanged. Maybe is a value,
// never an error.
package trinary
