package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/convsim/internal/conv"
	"github.com/san-kum/convsim/internal/session"
)

// FramePlot renders one convolution frame: the fixed signal, the flipped and
// shifted signal, and their pointwise product on a shared chart.
func FramePlot(frame conv.Frame, style session.Style, width, height int) string {
	series := [][]float64{
		shaped(frame.X, style),
		shaped(frame.HShifted, style),
		shaped(frame.Product, style),
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends("x", "h (flipped, shifted)", "product"),
		asciigraph.Caption(fmt.Sprintf("shift %.2f  value %.4f", frame.Shift, frame.Value)),
	)
}

// CurvePlot renders the full convolution curve.
func CurvePlot(res conv.Result, style session.Style, width, height int) string {
	caption := "full convolution"
	if res.Truncated {
		caption += " (window truncated)"
	}
	return asciigraph.Plot(shaped(res.Values, style),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// TracePlot renders the values visited so far during playback.
func TracePlot(history []session.TracePoint, width, height int) string {
	if len(history) < 2 {
		return ""
	}
	values := make([]float64, len(history))
	for i, pt := range history {
		values[i] = pt.Value
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("trace"),
	)
}

// shaped applies the rendering style: block-step holds every sample flat for
// a few columns so discrete sequences read as steps rather than a polyline.
func shaped(values []float64, style session.Style) []float64 {
	if style != session.StyleBlockStep {
		return values
	}
	const hold = 4
	out := make([]float64, 0, len(values)*hold)
	for _, v := range values {
		for i := 0; i < hold; i++ {
			out = append(out, v)
		}
	}
	return out
}
