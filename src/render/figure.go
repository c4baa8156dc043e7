// Package render draws plot figures with go-chart and serializes them as
// PNG, JPEG or SVG.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/paul-breen/xcsv-plot/src/logging"
	"github.com/paul-breen/xcsv-plot/src/plot"
)

// ErrNothingToDraw is returned when no series has a drawable point.
var ErrNothingToDraw = errors.New("no series has a finite point to draw")

// DefaultBackgroundAlpha is the opacity of an underlaid background image.
const DefaultBackgroundAlpha = 0.5

// Renderer creates go-chart figures.
type Renderer struct {
	// DPI converts figure inches to pixels; zero means DefaultDPI.
	DPI float64
	// BackgroundAlpha is the background image opacity in [0,1]; zero means
	// DefaultBackgroundAlpha.
	BackgroundAlpha float64
}

// NewFigure returns an empty *Figure of the given size.
func (r Renderer) NewFigure(size plot.FigSize) (plot.Figure, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	alpha := r.BackgroundAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultBackgroundAlpha
	}
	w, h := figurePixels(size, dpi)
	return &Figure{width: w, height: h, dpi: dpi, bgAlpha: alpha}, nil
}

// Figure collects series and decorations and renders them on demand.
type Figure struct {
	width, height int
	dpi           float64

	series  []chart.ContinuousSeries
	points  []plot.Series
	added   int
	xLabel  string
	yLabel  string
	invertX bool
	invertY bool
	title   string
	caption string
	legend  bool

	background image.Image
	bgAlpha    float64
}

// Size returns the figure size in pixels.
func (f *Figure) Size() (int, int) { return f.width, f.height }

// Title returns the figure title, if any.
func (f *Figure) Title() string { return f.title }

// AddSeries draws s with style. Points with a non-finite coordinate are
// dropped; a series left with no points is skipped but still consumes a
// palette colour so colours stay tied to dataset order.
func (f *Figure) AddSeries(s plot.Series, style plot.Style) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %s has %d x values and %d y values", s.Source, len(s.X), len(s.Y))
	}
	index := f.added
	f.added++

	xs := make([]float64, 0, len(s.X))
	ys := make([]float64, 0, len(s.Y))
	for i := range s.X {
		if isFinite(s.X[i]) && isFinite(s.Y[i]) {
			xs = append(xs, s.X[i])
			ys = append(ys, s.Y[i])
		}
	}
	if len(xs) == 0 {
		logging.Warnf("series %s has no finite points; skipping", s.Source)
		return nil
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}
	f.series = append(f.series, chart.ContinuousSeries{
		Name:    s.Label,
		XValues: xs,
		YValues: ys,
		Style:   seriesStyle(style, index),
	})
	f.points = append(f.points, plot.Series{Source: s.Source, X: xs, Y: ys, Label: s.Label})
	return nil
}

func (f *Figure) SetXLabel(label string)        { f.xLabel = label }
func (f *Figure) SetYLabel(label string)        { f.yLabel = label }
func (f *Figure) InvertX()                      { f.invertX = true }
func (f *Figure) InvertY()                      { f.invertY = true }
func (f *Figure) SetTitle(title string)         { f.title = title }
func (f *Figure) SetCaption(caption string)     { f.caption = caption }
func (f *Figure) ShowLegend()                   { f.legend = true }
func (f *Figure) SetBackground(img image.Image) { f.background = img }

// transparentWhite keeps go-chart from painting over an underlaid image;
// the zero colour would be replaced by go-chart's white default.
var transparentWhite = drawing.Color{R: 255, G: 255, B: 255, A: 0}

const (
	captionLineHeight = 16
	captionMargin     = 10
)

// build assembles the go-chart chart. The returned box is filled in with
// the data area during rendering.
func (f *Figure) build() (*chart.Chart, *chart.Box, []string) {
	ext, ok := plot.DataExtent(f.points)
	if !ok {
		ext = plot.Extent{Left: 0, Right: 1, Bottom: 0, Top: 1}
	}
	xRange, xTicks := axisRange(ext.Left, ext.Right, f.invertX)
	yRange, yTicks := axisRange(ext.Bottom, ext.Top, f.invertY)

	captionLines := wrapText(f.caption, int(float64(f.width)*0.8))
	padTop := 20
	if f.title != "" {
		padTop = 50
	}
	padBottom := 20
	if len(captionLines) > 0 {
		padBottom += len(captionLines)*captionLineHeight + captionMargin
	}

	series := make([]chart.Series, len(f.series))
	for i, s := range f.series {
		series[i] = s
	}
	ch := &chart.Chart{
		Title:      f.title,
		Width:      f.width,
		Height:     f.height,
		DPI:        f.dpi,
		Background: chart.Style{Padding: chart.Box{Top: padTop, Left: 20, Right: 20, Bottom: padBottom}},
		XAxis:      chart.XAxis{Name: f.xLabel, Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: f.yLabel, Range: yRange, Ticks: yTicks},
		Series:     series,
	}
	if f.background != nil {
		ch.Background.FillColor = transparentWhite
		ch.Canvas.FillColor = transparentWhite
	}

	canvas := &chart.Box{}
	ch.Elements = append(ch.Elements, func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		*canvas = cb
	})
	if f.legend {
		ch.Elements = append(ch.Elements, chart.Legend(f.legendChart()))
	}
	return ch, canvas, captionLines
}

// legendChart holds only the labelled series, so unlabelled ones get no entry.
func (f *Figure) legendChart() *chart.Chart {
	lc := &chart.Chart{}
	for _, s := range f.series {
		if s.Name == "" {
			continue
		}
		s.Style = legendStyle(s.Style)
		lc.Series = append(lc.Series, s)
	}
	return lc
}

// Image renders the figure to a raster image, including the background
// underlay and the caption.
func (f *Figure) Image() (image.Image, error) {
	if len(f.series) == 0 {
		return nil, ErrNothingToDraw
	}
	ch, canvas, captionLines := f.build()
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	out := composite(img, f.background, boxRect(*canvas), f.bgAlpha)
	if len(captionLines) > 0 {
		drawCaption(out, captionLines, captionX(f.width))
	}
	return out, nil
}

// SVG renders the figure as an SVG document.
func (f *Figure) SVG() ([]byte, error) {
	if len(f.series) == 0 {
		return nil, ErrNothingToDraw
	}
	ch, canvas, captionLines := f.build()
	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	doc := buf.Bytes()
	if f.background != nil {
		var err error
		doc, err = svgUnderlay(doc, f.background, boxRect(*canvas), f.bgAlpha, f.width, f.height)
		if err != nil {
			return nil, err
		}
	}
	if len(captionLines) > 0 {
		doc = svgCaption(doc, captionLines, captionX(f.width), f.height)
	}
	return doc, nil
}

func boxRect(b chart.Box) image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

func captionX(width int) int { return int(float64(width) * 0.1) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
