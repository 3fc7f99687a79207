package conv

import (
	"math"

	"github.com/san-kum/convsim/internal/signal"
)

// DefaultIndexWindow is the fixed working and output window for discrete
// sequences.
var DefaultIndexWindow = signal.IndexRange{Min: -20, Max: 20}

// DiscreteKernel convolves two finite sequences over a fixed index window.
type DiscreteKernel struct {
	x, h   signal.Sequence
	window signal.IndexRange

	grid      []float64
	xGrid     []float64
	hGrid     []float64
	truncated bool
}

// NewDiscrete places both sequences onto the working window. Samples outside
// the window are dropped; the kernel remembers whether any were.
func NewDiscrete(x, h signal.Sequence, window signal.IndexRange) *DiscreteKernel {
	xGrid, xTrunc := x.PlaceOn(window)
	hGrid, hTrunc := h.PlaceOn(window)

	grid := make([]float64, window.Len())
	for i, idx := range window.Indices() {
		grid[i] = float64(idx)
	}

	return &DiscreteKernel{
		x:         x,
		h:         h,
		window:    window,
		grid:      grid,
		xGrid:     xGrid,
		hGrid:     hGrid,
		truncated: xTrunc || hTrunc,
	}
}

// FrameAt computes x[k]*h[n0-k] over the window; the shift is rounded to the
// nearest integer index.
func (k *DiscreteKernel) FrameAt(shift float64) Frame {
	n0 := int(math.Round(shift))

	hShifted := make([]float64, k.window.Len())
	product := make([]float64, k.window.Len())
	sum := 0.0
	for i := range hShifted {
		kIdx := k.window.Min + i
		src := n0 - kIdx
		if k.window.Contains(src) {
			hShifted[i] = k.hGrid[src-k.window.Min]
		}
		product[i] = k.xGrid[i] * hShifted[i]
		sum += product[i]
	}

	return Frame{
		Shift:    float64(n0),
		Grid:     k.grid,
		X:        k.xGrid,
		HShifted: hShifted,
		Product:  product,
		Value:    sum,
	}
}

// Convolve computes the closed-form discrete convolution of two sequences.
// The output start index is the exact sum of the input start indices.
func Convolve(x, h signal.Sequence) signal.Sequence {
	if x.Len() == 0 || h.Len() == 0 {
		return signal.Sequence{Values: []float64{0}, Start: 0}
	}
	out := make([]float64, x.Len()+h.Len()-1)
	for i, xv := range x.Values {
		if xv == 0 {
			continue
		}
		for j, hv := range h.Values {
			out[i+j] += xv * hv
		}
	}
	return signal.Sequence{Values: out, Start: x.Start + h.Start}
}

// Full computes the whole convolution curve placed onto the output window.
// Values outside the window are not computed.
func (k *DiscreteKernel) Full() Result {
	y := Convolve(k.x, k.h)
	values, truncated := y.PlaceOn(k.window)
	return Result{
		Grid:      k.grid,
		Values:    values,
		Truncated: k.truncated || truncated,
	}
}

// Bounds returns the admissible shift range.
func (k *DiscreteKernel) Bounds() (float64, float64) {
	return float64(k.window.Min), float64(k.window.Max)
}

// StepSize is one index per playback step.
func (k *DiscreteKernel) StepSize() float64 { return 1 }

// Truncated reports whether placing the inputs on the window dropped samples.
func (k *DiscreteKernel) Truncated() bool { return k.truncated }

// Info summarizes the kernel's sequences for display layers.
func (k *DiscreteKernel) Info() (xLen, xStart, hLen, hStart, outStart int) {
	return k.x.Len(), k.x.Start, k.h.Len(), k.h.Start, k.x.Start + k.h.Start
}
