// Package plot turns one or more datasets and a sparse set of user options
// into a single, fully specified overlaid chart.
//
// The package decides which columns go on which axis, what the axes and
// legend entries are called, and which style every series is drawn with.
// Drawing and serialization are delegated to a Renderer and an Output.
package plot

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/paul-breen/xcsv-plot/src/dataset"
	"github.com/paul-breen/xcsv-plot/src/logging"
)

// Figure is one chart being built by a Renderer.
type Figure interface {
	AddSeries(s Series, style Style) error
	SetXLabel(label string)
	SetYLabel(label string)
	InvertX()
	InvertY()
	SetTitle(title string)
	SetCaption(caption string)
	ShowLegend()
	// SetBackground underlays img across the data area of the figure.
	SetBackground(img image.Image)
}

// Renderer creates figures.
type Renderer interface {
	NewFigure(size FigSize) (Figure, error)
}

// Output delivers a finished figure.
type Output interface {
	// Save serializes fig to path, choosing the format from the extension.
	Save(fig Figure, path string) error
	// Show displays fig interactively.
	Show(fig Figure) error
}

// ImageLoader reads an image file.
type ImageLoader func(path string) (image.Image, error)

// LoadImageFile decodes an image file in any format registered with the
// image package.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Plotter draws datasets with the given collaborators.
type Plotter struct {
	Renderer Renderer
	Output   Output
	// LoadImage defaults to LoadImageFile.
	LoadImage ImageLoader
}

// Result describes a finished run.
type Result struct {
	Figure Figure
	Series []Series
	Style  Style

	// Axis labels; empty when absent.
	XLabel string
	YLabel string
	Legend bool

	// Warnings holds non-fatal failures such as a *BackgroundError.
	Warnings []error
}

// PlotDatasets draws every dataset onto one figure and hands it to the
// output: saved to opts.OutFile when set, displayed otherwise, or neither
// when opts.Defer is set. Axis labels come from the first dataset's
// columns; later datasets are not checked against them. Any error other
// than a missing background image aborts the run.
func (p *Plotter) PlotDatasets(datasets []*dataset.Dataset, opts Options) (res *Result, err error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}

	overrides, err := ParseStyle(opts.PlotOptions)
	if err != nil {
		return nil, err
	}
	style := Compose(opts.Scatter, overrides)
	logging.Debugf("effective style %s", style)

	fig, err := p.Renderer.NewFigure(opts.figSize())
	if err != nil {
		return nil, fmt.Errorf("create figure: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if c, ok := fig.(io.Closer); ok {
			c.Close()
		}
	}()

	res = &Result{Figure: fig, Style: style}

	if opts.BackgroundImage != "" {
		if img, berr := p.loadImage(opts.BackgroundImage); berr != nil {
			bgErr := &BackgroundError{Path: opts.BackgroundImage, Err: berr}
			logging.Warnf("%v; continuing without background", bgErr)
			res.Warnings = append(res.Warnings, bgErr)
		} else {
			fig.SetBackground(img)
		}
	}

	var firstX, firstY ResolvedAxis
	for i, ds := range datasets {
		x, err := ResolveAxis(ds, opts.X, AxisX)
		if err != nil {
			return nil, err
		}
		y, err := ResolveAxis(ds, opts.Y, AxisY)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			firstX, firstY = x, y
		}
		label, labelled := SeriesLabel(ds, opts.LabelKey)
		if labelled {
			res.Legend = true
		}
		s := Series{Source: ds.Source, X: x.Values, Y: y.Values, Label: label}
		logging.Debugf("series %d (%s): x=%s y=%s points=%d label=%q", i, ds.Source, axisName(x), axisName(y), len(s.Y), label)
		if err := fig.AddSeries(s, style); err != nil {
			return nil, fmt.Errorf("draw %s: %w", ds.Source, err)
		}
		res.Series = append(res.Series, s)
	}

	if l, ok := AxisLabel(firstX, opts.XLabel); ok {
		fig.SetXLabel(l)
		res.XLabel = l
	}
	if l, ok := AxisLabel(firstY, opts.YLabel); ok {
		fig.SetYLabel(l)
		res.YLabel = l
	}

	if opts.InvertX {
		fig.InvertX()
	}
	if opts.InvertY {
		fig.InvertY()
	}

	if t := headerText(datasets[0], opts.Title, opts.TitleKey); t != "" {
		fig.SetTitle(t)
	}
	if c := headerText(datasets[0], opts.Caption, opts.CaptionKey); c != "" {
		fig.SetCaption(c)
	}

	if res.Legend {
		fig.ShowLegend()
	}

	if opts.Defer {
		return res, nil
	}
	if err := p.deliver(fig, opts.OutFile); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Plotter) loadImage(path string) (image.Image, error) {
	if p.LoadImage != nil {
		return p.LoadImage(path)
	}
	return LoadImageFile(path)
}

func (p *Plotter) deliver(fig Figure, path string) error {
	if p.Output == nil {
		return &OutputError{Path: path, Err: fmt.Errorf("no output configured")}
	}
	var err error
	if path != "" {
		err = p.Output.Save(fig, path)
	} else {
		err = p.Output.Show(fig)
	}
	if err == nil {
		return nil
	}
	var oerr *OutputError
	if errors.As(err, &oerr) {
		return err
	}
	return &OutputError{Path: path, Err: err}
}

// headerText returns explicit when set, else the value of key in the
// dataset header, else "".
func headerText(ds *dataset.Dataset, explicit, key string) string {
	if explicit != "" || key == "" {
		return explicit
	}
	v, _ := ds.Lookup(key)
	return v
}

func axisName(r ResolvedAxis) string {
	if r.Implicit {
		return "(row position)"
	}
	return fmt.Sprintf("%q", r.Name)
}
