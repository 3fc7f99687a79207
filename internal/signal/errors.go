package signal

import (
	"errors"
	"fmt"
)

// Domain errors for expression validation and compilation.
var (
	// ErrEmpty indicates an empty or whitespace-only expression.
	ErrEmpty = errors.New("signal: empty expression")

	// ErrUnsafeToken indicates the expression contains a deny-listed token.
	ErrUnsafeToken = errors.New("signal: unsafe token")

	// ErrUnbalanced indicates unbalanced parentheses or brackets.
	ErrUnbalanced = errors.New("signal: unbalanced delimiters")

	// ErrMalformedList indicates a literal list with a non-numeric element.
	ErrMalformedList = errors.New("signal: malformed list literal")

	// ErrSyntax indicates the canonical text could not be parsed.
	ErrSyntax = errors.New("signal: syntax error")

	// ErrUnknownIdent indicates an identifier outside the whitelist.
	ErrUnknownIdent = errors.New("signal: unknown identifier")

	// ErrProbeFailed indicates the compiled expression failed a probe evaluation.
	ErrProbeFailed = errors.New("signal: probe evaluation failed")

	// ErrShapeMismatch indicates a sequence form where a function was required,
	// or vice versa.
	ErrShapeMismatch = errors.New("signal: shape mismatch")
)

// ExprError wraps a pipeline error with the offending expression text.
type ExprError struct {
	Expr    string
	Pos     int // byte offset into the canonical text, -1 if not positional
	Detail  string
	Wrapped error
}

func (e *ExprError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v at offset %d in %q: %s", e.Wrapped, e.Pos, e.Expr, e.Detail)
	}
	return fmt.Sprintf("%v in %q: %s", e.Wrapped, e.Expr, e.Detail)
}

func (e *ExprError) Unwrap() error {
	return e.Wrapped
}

func exprErr(expr string, pos int, wrapped error, format string, args ...any) *ExprError {
	return &ExprError{Expr: expr, Pos: pos, Detail: fmt.Sprintf(format, args...), Wrapped: wrapped}
}
