package plot

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paul-breen/xcsv-plot/src/dataset"
)

type drawnSeries struct {
	series Series
	style  Style
}

// recordingFigure captures every call made by the orchestrator.
type recordingFigure struct {
	size       FigSize
	series     []drawnSeries
	xLabel     *string
	yLabel     *string
	invertX    bool
	invertY    bool
	title      string
	caption    string
	legend     bool
	background image.Image
	closed     bool
}

func (f *recordingFigure) AddSeries(s Series, st Style) error {
	f.series = append(f.series, drawnSeries{series: s, style: st})
	return nil
}
func (f *recordingFigure) SetXLabel(l string)            { f.xLabel = &l }
func (f *recordingFigure) SetYLabel(l string)            { f.yLabel = &l }
func (f *recordingFigure) InvertX()                      { f.invertX = true }
func (f *recordingFigure) InvertY()                      { f.invertY = true }
func (f *recordingFigure) SetTitle(t string)             { f.title = t }
func (f *recordingFigure) SetCaption(c string)           { f.caption = c }
func (f *recordingFigure) ShowLegend()                   { f.legend = true }
func (f *recordingFigure) SetBackground(img image.Image) { f.background = img }

func (f *recordingFigure) Close() error {
	f.closed = true
	return nil
}

type recordingRenderer struct {
	figures []*recordingFigure
}

func (r *recordingRenderer) NewFigure(size FigSize) (Figure, error) {
	f := &recordingFigure{size: size}
	r.figures = append(r.figures, f)
	return f, nil
}

type countingOutput struct {
	saved   []string
	shown   int
	saveErr error
}

func (o *countingOutput) Save(fig Figure, path string) error {
	o.saved = append(o.saved, path)
	return o.saveErr
}

func (o *countingOutput) Show(fig Figure) error {
	o.shown++
	return nil
}

func newTestPlotter() (*Plotter, *recordingRenderer, *countingOutput) {
	r := &recordingRenderer{}
	o := &countingOutput{}
	return &Plotter{
		Renderer: r,
		Output:   o,
		LoadImage: func(path string) (image.Image, error) {
			if path == "bg.png" {
				return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
			}
			return nil, errors.New("no such file")
		},
	}, r, o
}

func mustDataset(t *testing.T, source string, names []string, rows [][]string, meta map[string]string) *dataset.Dataset {
	t.Helper()
	m := dataset.NewMetadata()
	for k, v := range meta {
		m.Set(k, v)
	}
	ds, err := dataset.New(source, names, rows, m)
	require.NoError(t, err)
	return ds
}

func twoColumnDataset(t *testing.T, meta map[string]string) *dataset.Dataset {
	return mustDataset(t, "two.csv", []string{"time (year) [a]", "depth (m)"},
		[][]string{{"2012", "0.575"}, {"2011", "1.125"}, {"2010", "2.225"}}, meta)
}

func singleColumnDataset(t *testing.T) *dataset.Dataset {
	return mustDataset(t, "single.csv", []string{"depth (m)"},
		[][]string{{"0.575"}, {"1.125"}, {"2.225"}}, nil)
}
