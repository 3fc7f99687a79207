package signal

// probePoints is the sample grid used to smoke-test a freshly compiled
// expression before it is handed to the convolution kernel.
var probePoints = []float64{-2, -1, -0.5, 0, 0.5, 1, 2}

// Signal is a compiled, pure, deterministic mapping from a domain value to an
// amplitude. The zero value is not usable; construct with Compile.
type Signal struct {
	source   string
	domain   Domain
	root     node
	constant bool
}

// Compile validates, rewrites, and parses expression text into a Signal.
// A constant expression (no free variable) compiles to a signal broadcast
// over any input.
func Compile(text string, d Domain) (*Signal, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	canonical := Rewrite(text, d)
	if isListLiteral(canonical) {
		return nil, exprErr(text, -1, ErrShapeMismatch, "literal list is a finite sequence, not a function of %s", d.Variable())
	}

	root, err := parse(canonical, d.Variable())
	if err != nil {
		return nil, err
	}

	s := &Signal{
		source:   text,
		domain:   d,
		root:     root,
		constant: !root.usesVar(),
	}
	if err := s.probe(); err != nil {
		return nil, err
	}
	return s, nil
}

// probe evaluates the signal over a small fixed grid. The evaluator is total
// by construction, so this guards against faults slipping in through future
// function-table entries rather than against the grammar itself.
func (s *Signal) probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = exprErr(s.source, -1, ErrProbeFailed, "panic during probe: %v", r)
		}
	}()
	for _, p := range probePoints {
		_ = s.root.eval(p)
	}
	return nil
}

// At evaluates the signal at a single domain value. Non-finite results are
// substituted with 0.
func (s *Signal) At(x float64) float64 {
	return finite(s.root.eval(x))
}

// Sample evaluates the signal over a grid.
func (s *Signal) Sample(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = finite(s.root.eval(x))
	}
	return out
}

// Domain returns the signal's domain.
func (s *Signal) Domain() Domain { return s.domain }

// Constant reports whether the signal has no dependence on its variable.
func (s *Signal) Constant() bool { return s.constant }

// Canonical renders the parsed expression back to canonical text.
func (s *Signal) Canonical() string { return s.root.String() }
