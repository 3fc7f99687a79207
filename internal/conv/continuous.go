package conv

import "github.com/san-kum/convsim/internal/signal"

// playbackSteps is the number of animation steps across the output span.
const playbackSteps = 100

// ContinuousKernel convolves two compiled continuous-time signals on fixed
// grids. x is sampled once on the tau grid at construction; h is re-sampled
// flipped and shifted per frame.
type ContinuousKernel struct {
	x, h *signal.Signal
	tau  Grid
	out  Grid

	tauPts []float64
	xTau   []float64
}

// NewContinuous builds a kernel over the given integration and output grids.
func NewContinuous(x, h *signal.Signal, tau, out Grid) *ContinuousKernel {
	pts := tau.Points()
	return &ContinuousKernel{
		x:      x,
		h:      h,
		tau:    tau,
		out:    out,
		tauPts: pts,
		xTau:   x.Sample(pts),
	}
}

// FrameAt computes the flip/shift/multiply/integrate artifacts at t0.
func (k *ContinuousKernel) FrameAt(t0 float64) Frame {
	hShifted := make([]float64, len(k.tauPts))
	product := make([]float64, len(k.tauPts))
	for i, tau := range k.tauPts {
		hShifted[i] = k.h.At(t0 - tau)
		product[i] = k.xTau[i] * hShifted[i]
	}
	return Frame{
		Shift:    t0,
		Grid:     k.tauPts,
		X:        k.xTau,
		HShifted: hShifted,
		Product:  product,
		Value:    trapezoid(product, k.tau.Step()),
	}
}

// valueAt is FrameAt reduced to the scalar, without per-frame allocations.
func (k *ContinuousKernel) valueAt(t0 float64) float64 {
	dtau := k.tau.Step()
	n := len(k.tauPts)
	sum := 0.0
	for i, tau := range k.tauPts {
		p := k.xTau[i] * k.h.At(t0-tau)
		if i == 0 || i == n-1 {
			p /= 2
		}
		sum += p
	}
	return sum * dtau
}

// Full repeats the point computation at each point of the output grid.
func (k *ContinuousKernel) Full() Result {
	grid := k.out.Points()
	values := make([]float64, len(grid))
	for i, t0 := range grid {
		values[i] = k.valueAt(t0)
	}
	return Result{Grid: grid, Values: values}
}

// Bounds returns the admissible shift range.
func (k *ContinuousKernel) Bounds() (float64, float64) { return k.out.Min, k.out.Max }

// StepSize is one playback step: a fixed fraction of the output span.
func (k *ContinuousKernel) StepSize() float64 { return k.out.Span() / playbackSteps }
