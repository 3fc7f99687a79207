package conv

// Frame holds one instant's visualization artifacts: the tau/k grid, x
// sampled on it, h flipped and shifted to the current shift, their pointwise
// product, and the scalar convolution value at the shift.
type Frame struct {
	Shift    float64
	Grid     []float64
	X        []float64
	HShifted []float64
	Product  []float64
	Value    float64
}

// Result is the sampled full convolution curve, independent of any shift.
// Truncated reports that sequence samples fell outside the output window and
// were dropped.
type Result struct {
	Grid      []float64
	Values    []float64
	Truncated bool
}

// ValueAt linearly interpolates the curve at x. Positions outside the grid
// evaluate to 0. On-grid positions (including every integer index of a
// discrete result) return the exact sample.
func (r Result) ValueAt(x float64) float64 {
	if len(r.Grid) == 0 || x < r.Grid[0] || x > r.Grid[len(r.Grid)-1] {
		return 0
	}
	for i := 1; i < len(r.Grid); i++ {
		if x > r.Grid[i] {
			continue
		}
		x0, x1 := r.Grid[i-1], r.Grid[i]
		y0, y1 := r.Values[i-1], r.Values[i]
		if x1 == x0 {
			return y1
		}
		return y0 + (y1-y0)*(x-x0)/(x1-x0)
	}
	return r.Values[len(r.Values)-1]
}

// Kernel is the mode-independent surface the session and playback layers
// drive: a frame at one shift, the full curve, and the playback geometry.
type Kernel interface {
	FrameAt(shift float64) Frame
	Full() Result
	Bounds() (min, max float64)
	StepSize() float64
}
