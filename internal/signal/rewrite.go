package signal

import (
	"regexp"
	"strings"
)

var (
	heavisideRe = regexp.MustCompile(`\bheaviside\s*\(`)
	stepRe      = regexp.MustCompile(`\bstep\s*\(`)
	deltaRe     = regexp.MustCompile(`\bdelta\s*\[\s*n\s*(?:([+-])\s*(\d+)\s*)?\]`)
)

// Rewrite converts domain notation into canonical expression text understood
// by the parser. The rules form a fixed, ordered table; each rule is a no-op
// on its own output and no rule reintroduces a pattern consumed by an earlier
// one, so Rewrite is idempotent.
//
// The step, pulse, and impulse notations (u, rect, tri, sinc, delta) are
// themselves canonical grammar primitives; their numeric conventions are
// defined by the evaluator. Rewrite only normalizes spelling variants.
func Rewrite(text string, d Domain) string {
	s := strings.TrimSpace(text)
	if isListLiteral(s) {
		return s
	}

	// Python-style exponent to caret.
	s = strings.ReplaceAll(s, "**", "^")

	// Namespace prefixes from copied textbook snippets.
	s = strings.ReplaceAll(s, "np.", "")
	s = strings.ReplaceAll(s, "math.", "")

	// Step-function aliases.
	s = heavisideRe.ReplaceAllString(s, "u(")
	s = stepRe.ReplaceAllString(s, "u(")

	if d == Discrete {
		// Unicode delta first so the marker rule sees one spelling.
		s = strings.ReplaceAll(s, "δ", "delta")
		s = deltaRe.ReplaceAllString(s, "delta[n$1$2]")
	}

	return s
}
