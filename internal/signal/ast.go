package signal

import (
	"fmt"
	"math"
	"strconv"
)

// node is a typed expression tree over a single free variable. Evaluation is
// total: numeric faults inside a user expression become the sentinel 0 at the
// signal boundary rather than propagating as errors.
type node interface {
	eval(x float64) float64
	// usesVar reports whether the subtree references the free variable.
	usesVar() bool
	// String renders the subtree back to canonical text for display.
	String() string
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }
func (n numNode) usesVar() bool        { return false }
func (n numNode) String() string       { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

type varNode struct {
	name string
}

func (v varNode) eval(x float64) float64 { return x }
func (v varNode) usesVar() bool          { return true }
func (v varNode) String() string         { return v.name }

type unaryNode struct {
	op      byte // '-' only; unary '+' is dropped during parsing
	operand node
}

func (u unaryNode) eval(x float64) float64 { return -u.operand.eval(x) }
func (u unaryNode) usesVar() bool          { return u.operand.usesVar() }
func (u unaryNode) String() string         { return "-" + u.operand.String() }

type binaryNode struct {
	op          byte
	left, right node
}

func (b binaryNode) eval(x float64) float64 {
	l := b.left.eval(x)
	r := b.right.eval(x)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		if r == 0 {
			return 0
		}
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return 0
}

func (b binaryNode) usesVar() bool { return b.left.usesVar() || b.right.usesVar() }

func (b binaryNode) String() string {
	return fmt.Sprintf("(%s %c %s)", b.left, b.op, b.right)
}

type callNode struct {
	fn  string
	f   func(float64) float64
	arg node
}

func (c callNode) eval(x float64) float64 { return c.f(c.arg.eval(x)) }
func (c callNode) usesVar() bool          { return c.arg.usesVar() }
func (c callNode) String() string         { return c.fn + "(" + c.arg.String() + ")" }

// constants usable in any expression.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// functions is the closed set of named functions the grammar admits.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"u":    unitStep,
	"rect": rectPulse,
	"tri":  triPulse,
	"sinc": sincNorm,
}

// unitStep is the Heaviside step with u(0) = 0.5.
func unitStep(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 0:
		return 1
	default:
		return 0.5
	}
}

// rectPulse is the unit pulse, inclusive at |x| = 0.5.
func rectPulse(x float64) float64 {
	if math.Abs(x) <= 0.5 {
		return 1
	}
	return 0
}

func triPulse(x float64) float64 {
	if a := math.Abs(x); a <= 1 {
		return 1 - a
	}
	return 0
}

// sincNorm is the normalized sinc sin(pi*x)/(pi*x) with sinc(0) = 1.
func sincNorm(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// finite substitutes the sentinel 0 for NaN and infinities.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
