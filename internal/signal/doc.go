// Package signal turns user-typed signal expressions into evaluable signals.
//
// The package implements the full expression pipeline:
//
//   - [Validate]: security and syntax gate for raw input
//   - [Rewrite]: normalizes domain notation into canonical expression text
//   - [Compile]: parses canonical text into a [Signal] over t or n
//   - [ParseSequence]: extracts a finite [Sequence] for discrete signals
//
// Expressions are parsed by a recursive-descent parser over a closed grammar
// (numbers, the domain variable, pi/e, arithmetic operators, and a fixed set
// of named functions). The grammar cannot express name binding, attribute
// access, or calls outside the function table, so evaluation never touches
// the host environment. [Validate] remains in front of the parser as an
// independent gate.
//
// # Conventions
//
//	u(0)    = 0.5
//	rect(x) = 1 for |x| <= 0.5
//	tri(x)  = 1 - |x| for |x| <= 1
//	sinc(x) = sin(pi*x)/(pi*x), 1 at x = 0
//
// Non-finite values arising inside a user expression (division by zero,
// log of a non-positive number) evaluate to 0 so interactive use stays
// responsive.
//
// # Thread Safety
//
// Compiled signals and sequences are immutable and safe for concurrent use.
package signal
