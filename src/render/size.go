package render

import (
	"math"

	"github.com/paul-breen/xcsv-plot/src/plot"
)

// DefaultDPI converts figure inches to pixels when no DPI is configured.
const DefaultDPI = 100

const (
	minFigureWidth  = 160
	minFigureHeight = 120
	maxFigurePixels = 10000
)

// figurePixels converts a figure size in inches to pixels, clamped to sane bounds.
func figurePixels(size plot.FigSize, dpi float64) (int, int) {
	if size.IsZero() {
		size = plot.DefaultFigSize
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return clampPixels(size.Width*dpi, minFigureWidth), clampPixels(size.Height*dpi, minFigureHeight)
}

func clampPixels(v float64, min int) int {
	p := int(math.Round(v))
	if p < min {
		p = min
	}
	if p > maxFigurePixels {
		p = maxFigurePixels
	}
	return p
}
