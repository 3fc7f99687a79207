package conv

// Grid is a fixed uniform sampling grid over [Min, Max] with N points.
type Grid struct {
	Min, Max float64
	N        int
}

// Default grids match the interactive simulator's fixed windows.
var (
	// DefaultTauGrid is the integration grid for continuous frames.
	DefaultTauGrid = Grid{Min: -15, Max: 15, N: 3001}

	// DefaultOutputGrid is the coarser grid the full continuous curve is
	// computed on; it also bounds the playback time shift.
	DefaultOutputGrid = Grid{Min: -10, Max: 10, N: 201}
)

// Step returns the spacing between adjacent grid points.
func (g Grid) Step() float64 {
	if g.N < 2 {
		return 0
	}
	return (g.Max - g.Min) / float64(g.N-1)
}

// Points expands the grid into a slice of sample positions.
func (g Grid) Points() []float64 {
	pts := make([]float64, g.N)
	step := g.Step()
	for i := range pts {
		pts[i] = g.Min + float64(i)*step
	}
	if g.N > 1 {
		pts[g.N-1] = g.Max // avoid accumulated rounding at the far edge
	}
	return pts
}

// Span returns the width of the grid.
func (g Grid) Span() float64 { return g.Max - g.Min }

// trapezoid integrates uniformly spaced samples with the trapezoidal rule.
func trapezoid(y []float64, dx float64) float64 {
	if len(y) < 2 {
		return 0
	}
	sum := (y[0] + y[len(y)-1]) / 2
	for _, v := range y[1 : len(y)-1] {
		sum += v
	}
	return sum * dx
}
