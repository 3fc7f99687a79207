package signal

import (
	"errors"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	exprs := []string{
		"exp(-t)*u(t)",
		"rect(t)",
		"sin(2*pi*t)",
		"[1, 2, 1]",
		"[0.5,-0.5]",
		"delta[n-3]",
		"0.9^n * u(n)",
		"tri(t/2) + sinc(t)",
	}
	for _, expr := range exprs {
		if err := Validate(expr); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", expr, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"whitespace", "   ", ErrEmpty},
		{"import", "import os", ErrUnsafeToken},
		{"eval", "eval(t)", ErrUnsafeToken},
		{"exec", "exec(t)", ErrUnsafeToken},
		{"dunder", "t.__class__", ErrUnsafeToken},
		{"open", "open(t)", ErrUnsafeToken},
		{"assignment", "t = 1", ErrUnsafeToken},
		{"lambda", "lambda t: t", ErrUnsafeToken},
		{"unbalanced paren", "u(t", ErrUnbalanced},
		{"unbalanced bracket", "delta[n", ErrUnbalanced},
		{"extra close", "sin(t))", ErrUnbalanced},
		{"bad list element", "[1, two, 3]", ErrMalformedList},
		{"empty list", "[]", ErrMalformedList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want %v", tt.expr, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate(%q) = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}
}

func TestValidateDeterministic(t *testing.T) {
	exprs := []string{"u(t)", "", "import os", "[1,2]", "sin(t"}
	for _, expr := range exprs {
		first := Validate(expr)
		for i := 0; i < 3; i++ {
			again := Validate(expr)
			if (first == nil) != (again == nil) {
				t.Fatalf("Validate(%q) not deterministic", expr)
			}
			if first != nil && !errors.Is(again, errors.Unwrap(first.(*ExprError))) {
				t.Fatalf("Validate(%q) changed error kind between calls", expr)
			}
		}
	}
}

func TestUnsafeTokenNeverCompiles(t *testing.T) {
	// Anything the validator rejects must never reach the parser.
	for _, expr := range []string{"eval(t)", "__import__", "open(t)", "exec(n)"} {
		if _, err := Compile(expr, Continuous); !errors.Is(err, ErrUnsafeToken) {
			t.Errorf("Compile(%q) = %v, want ErrUnsafeToken", expr, err)
		}
	}
}
