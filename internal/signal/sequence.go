package signal

import (
	"regexp"
	"strconv"
)

// supportEpsilon is the magnitude below which a sample counts as zero when
// trimming a sequence to its support window.
const supportEpsilon = 1e-12

// IndexRange is an inclusive window of integer indices.
type IndexRange struct {
	Min, Max int
}

func (r IndexRange) Len() int {
	return r.Max - r.Min + 1
}

// Indices expands the range into a slice of indices.
func (r IndexRange) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Min; i <= r.Max; i++ {
		out = append(out, i)
	}
	return out
}

// Contains reports whether idx lies inside the range.
func (r IndexRange) Contains(idx int) bool {
	return idx >= r.Min && idx <= r.Max
}

// Sequence is a finite discrete signal: ordered amplitudes plus the integer
// index of the first sample. Index arithmetic between sequences stays in
// exact integers.
type Sequence struct {
	Values []float64
	Start  int
}

func (s Sequence) Len() int { return len(s.Values) }

// End returns the index of the last sample.
func (s Sequence) End() int { return s.Start + len(s.Values) - 1 }

// PlaceOn maps the sequence onto a finite working window. Samples whose index
// falls outside the window are dropped; truncated reports whether any were.
func (s Sequence) PlaceOn(rng IndexRange) (values []float64, truncated bool) {
	values = make([]float64, rng.Len())
	for i, v := range s.Values {
		idx := s.Start + i
		if !rng.Contains(idx) {
			if v != 0 {
				truncated = true
			}
			continue
		}
		values[idx-rng.Min] = v
	}
	return values, truncated
}

// seqForm tags the three mutually exclusive shapes a canonical discrete
// expression can take. The tag is decided once, at parse time.
type seqForm int

const (
	formLiteral seqForm = iota
	formDelta
	formExpr
)

type seqSpec struct {
	form      seqForm
	canonical string
	values    []float64 // formLiteral
	shift     int       // formDelta: delta[n-shift]
}

var deltaMarkerRe = regexp.MustCompile(`^delta\[n(?:([+-])(\d+))?\]$`)

// classify inspects canonical text once and resolves its shape.
func classify(canonical string) (seqSpec, error) {
	if isListLiteral(canonical) {
		values, err := parseListLiteral(canonical)
		if err != nil {
			return seqSpec{}, err
		}
		return seqSpec{form: formLiteral, canonical: canonical, values: values}, nil
	}

	if m := deltaMarkerRe.FindStringSubmatch(canonical); m != nil {
		shift := 0
		if m[2] != "" {
			k, err := strconv.Atoi(m[2])
			if err != nil {
				return seqSpec{}, exprErr(canonical, -1, ErrSyntax, "malformed impulse shift %q", m[2])
			}
			// delta[n-k] lives at index k, delta[n+k] at index -k.
			if m[1] == "-" {
				shift = k
			} else {
				shift = -k
			}
		}
		return seqSpec{form: formDelta, canonical: canonical, shift: shift}, nil
	}

	return seqSpec{form: formExpr, canonical: canonical}, nil
}

// ParseSequence produces a finite amplitude sequence from discrete expression
// text. Literal lists are taken verbatim with start index 0; impulse markers
// become one-hot sequences at the marker's index; general expressions are
// evaluated over rng and trimmed to their support window. An expression that
// is zero everywhere yields a single zero sample at index 0.
func ParseSequence(text string, rng IndexRange) (Sequence, error) {
	if err := Validate(text); err != nil {
		return Sequence{}, err
	}

	canonical := Rewrite(text, Discrete)
	spec, err := classify(canonical)
	if err != nil {
		return Sequence{}, err
	}

	switch spec.form {
	case formLiteral:
		return Sequence{Values: spec.values, Start: 0}, nil

	case formDelta:
		return Sequence{Values: []float64{1}, Start: spec.shift}, nil

	default:
		root, err := parse(spec.canonical, Discrete.Variable())
		if err != nil {
			return Sequence{}, err
		}

		raw := make([]float64, 0, rng.Len())
		for idx := rng.Min; idx <= rng.Max; idx++ {
			raw = append(raw, finite(root.eval(float64(idx))))
		}

		first, last := -1, -1
		for i, v := range raw {
			if v > supportEpsilon || v < -supportEpsilon {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first < 0 {
			return Sequence{Values: []float64{0}, Start: 0}, nil
		}
		return Sequence{Values: raw[first : last+1], Start: rng.Min + first}, nil
	}
}
