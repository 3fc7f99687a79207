package signal

import (
	"strconv"
	"strings"
)

// denyList holds tokens that would allow code execution, imports, attribute
// traversal, name binding, or control flow if they ever reached an evaluator.
// The parser's closed grammar rejects them anyway; the validator is the outer
// gate so they never get that far.
var denyList = []string{
	"import", "exec", "eval", "compile", "open", "file", "input",
	"lambda", "def", "class", "global", "getattr", "setattr",
	"while", "for", "__", "=", ";",
}

// Validate is the security and syntax gate for raw expression text. No text
// reaches Compile or ParseSequence without passing here first.
func Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return exprErr(text, -1, ErrEmpty, "expression is empty")
	}

	if isListLiteral(trimmed) {
		if _, err := parseListLiteral(trimmed); err != nil {
			return err
		}
		return nil
	}

	lower := strings.ToLower(trimmed)
	for _, tok := range denyList {
		if strings.Contains(lower, tok) {
			return exprErr(text, -1, ErrUnsafeToken, "contains %q", tok)
		}
	}

	if strings.Count(trimmed, "(") != strings.Count(trimmed, ")") {
		return exprErr(text, -1, ErrUnbalanced, "unbalanced parentheses")
	}
	if strings.Count(trimmed, "[") != strings.Count(trimmed, "]") {
		return exprErr(text, -1, ErrUnbalanced, "unbalanced brackets")
	}

	return nil
}

// isListLiteral reports whether trimmed text is a bracketed literal list
// like "[1, 2, 1]".
func isListLiteral(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// parseListLiteral parses every comma-separated element as a real number.
func parseListLiteral(s string) ([]float64, error) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, exprErr(s, -1, ErrMalformedList, "list has no elements")
	}
	parts := strings.Split(inner, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, exprErr(s, -1, ErrMalformedList, "element %q is not a number", strings.TrimSpace(part))
		}
		values = append(values, v)
	}
	return values, nil
}
