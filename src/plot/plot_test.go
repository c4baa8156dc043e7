package plot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-breen/xcsv-plot/src/dataset"
)

func TestPlotDatasetsExplicitColumns(t *testing.T) {
	p, r, _ := newTestPlotter()
	res, err := p.PlotDatasets([]*dataset.Dataset{twoColumnDataset(t, nil)}, Options{
		X: ByIndex(0), Y: ByIndex(1), Defer: true,
	})
	require.NoError(t, err)

	require.Len(t, r.figures, 1)
	fig := r.figures[0]
	require.Len(t, fig.series, 1)
	assert.Equal(t, []float64{2012, 2011, 2010}, fig.series[0].series.X)
	assert.Equal(t, []float64{0.575, 1.125, 2.225}, fig.series[0].series.Y)
	require.NotNil(t, fig.xLabel)
	require.NotNil(t, fig.yLabel)
	assert.Equal(t, "time (year) [a]", *fig.xLabel)
	assert.Equal(t, "depth (m)", *fig.yLabel)
	assert.Equal(t, "time (year) [a]", res.XLabel)
	assert.Equal(t, "depth (m)", res.YLabel)
	assert.Equal(t, DefaultFigSize, fig.size)
	assert.False(t, fig.legend)
}

func TestPlotDatasetsSingleColumnDefaults(t *testing.T) {
	p, r, _ := newTestPlotter()
	res, err := p.PlotDatasets([]*dataset.Dataset{singleColumnDataset(t)}, Options{Defer: true})
	require.NoError(t, err)

	fig := r.figures[0]
	assert.Equal(t, []float64{0, 1, 2}, fig.series[0].series.X)
	assert.Equal(t, []float64{0.575, 1.125, 2.225}, fig.series[0].series.Y)
	assert.Nil(t, fig.xLabel, "implicit x has no label")
	require.NotNil(t, fig.yLabel)
	assert.Equal(t, "depth (m)", *fig.yLabel)
	assert.Empty(t, res.XLabel)
}

func TestPlotDatasetsLegendWithPartialLabels(t *testing.T) {
	p, r, _ := newTestPlotter()
	a := twoColumnDataset(t, map[string]string{"id": "1"})
	b := twoColumnDataset(t, map[string]string{"title": "B"})
	res, err := p.PlotDatasets([]*dataset.Dataset{a, b}, Options{LabelKey: "id", Defer: true})
	require.NoError(t, err)

	fig := r.figures[0]
	require.Len(t, fig.series, 2)
	assert.Equal(t, "1", fig.series[0].series.Label)
	assert.Empty(t, fig.series[1].series.Label, "B is drawn unlabelled")
	assert.True(t, fig.legend)
	assert.True(t, res.Legend)
}

func TestPlotDatasetsNoLabelKeyNoLegend(t *testing.T) {
	p, r, _ := newTestPlotter()
	a := twoColumnDataset(t, map[string]string{"id": "1"})
	_, err := p.PlotDatasets([]*dataset.Dataset{a, a}, Options{Defer: true})
	require.NoError(t, err)
	assert.False(t, r.figures[0].legend)
	for _, s := range r.figures[0].series {
		assert.Empty(t, s.series.Label)
	}
}

func TestPlotDatasetsAxisLabelsFromFirstDataset(t *testing.T) {
	p, r, _ := newTestPlotter()
	a := twoColumnDataset(t, nil)
	b := mustDataset(t, "other.csv", []string{"age (ka)", "thickness (cm)"},
		[][]string{{"1", "2"}}, nil)
	_, err := p.PlotDatasets([]*dataset.Dataset{a, b}, Options{X: ByIndex(0), Y: ByIndex(1), Defer: true})
	require.NoError(t, err)
	assert.Equal(t, "time (year) [a]", *r.figures[0].xLabel)
	assert.Equal(t, "depth (m)", *r.figures[0].yLabel)
	assert.Equal(t, "other.csv", r.figures[0].series[1].series.Source, "input order is preserved")
}

func TestPlotDatasetsDecorations(t *testing.T) {
	p, r, _ := newTestPlotter()
	ds := twoColumnDataset(t, map[string]string{"title": "Header title", "citation": "Cite me"})
	_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{
		XLabel: "Year", YLabel: "Depth", InvertY: true,
		TitleKey: "title", CaptionKey: "citation",
		FigSize: FigSize{Width: 10, Height: 4}, Defer: true,
	})
	require.NoError(t, err)

	fig := r.figures[0]
	assert.Equal(t, "Year", *fig.xLabel)
	assert.Equal(t, "Depth", *fig.yLabel)
	assert.False(t, fig.invertX)
	assert.True(t, fig.invertY)
	assert.Equal(t, "Header title", fig.title)
	assert.Equal(t, "Cite me", fig.caption)
	assert.Equal(t, FigSize{Width: 10, Height: 4}, fig.size)

	_, err = p.PlotDatasets([]*dataset.Dataset{ds}, Options{
		Title: "Explicit", Caption: "Explicit caption", TitleKey: "title", InvertX: true, Defer: true,
	})
	require.NoError(t, err)
	fig = r.figures[1]
	assert.Equal(t, "Explicit", fig.title)
	assert.Equal(t, "Explicit caption", fig.caption)
	assert.True(t, fig.invertX)

	_, err = p.PlotDatasets([]*dataset.Dataset{ds}, Options{Defer: true})
	require.NoError(t, err)
	assert.Empty(t, r.figures[2].title, "no title key means no derived title")
}

func TestPlotDatasetsStyleApplied(t *testing.T) {
	p, r, _ := newTestPlotter()
	_, err := p.PlotDatasets([]*dataset.Dataset{singleColumnDataset(t)}, Options{
		Scatter: true, PlotOptions: `{"color": "C2", "ls": "-"}`, Defer: true,
	})
	require.NoError(t, err)
	st := r.figures[0].series[0].style
	assert.Equal(t, String("-"), st["linestyle"])
	assert.Equal(t, String("."), st["marker"])
	assert.Equal(t, String("C2"), st["color"])
}

func TestPlotDatasetsErrors(t *testing.T) {
	ds := twoColumnDataset(t, nil)

	t.Run("no datasets", func(t *testing.T) {
		p, r, o := newTestPlotter()
		_, err := p.PlotDatasets(nil, Options{OutFile: "plot.png"})
		require.ErrorIs(t, err, ErrNoDatasets)
		assert.Empty(t, r.figures)
		assert.Empty(t, o.saved)
	})

	t.Run("malformed plot options", func(t *testing.T) {
		p, r, o := newTestPlotter()
		_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{PlotOptions: "not json", OutFile: "plot.png"})
		require.ErrorIs(t, err, ErrStyleParse)
		assert.Empty(t, r.figures, "no figure is started")
		assert.Empty(t, o.saved, "no output is written")
	})

	t.Run("x index out of range", func(t *testing.T) {
		p, r, o := newTestPlotter()
		_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{X: ByIndex(10), Y: ByIndex(1), OutFile: "plot.png"})
		require.ErrorIs(t, err, ErrAxisOutOfRange)
		require.Len(t, r.figures, 1)
		assert.True(t, r.figures[0].closed, "figure released on abort")
		assert.Empty(t, o.saved)
	})

	t.Run("x label not found", func(t *testing.T) {
		p, _, o := newTestPlotter()
		_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{X: ByLabel("dummy"), Y: ByIndex(1), OutFile: "plot.png"})
		require.ErrorIs(t, err, ErrAxisLabelNotFound)
		assert.Empty(t, o.saved)
	})

	t.Run("output failure", func(t *testing.T) {
		p, _, o := newTestPlotter()
		o.saveErr = errors.New("disk full")
		_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{OutFile: "plot.png"})
		require.ErrorIs(t, err, ErrOutputWrite)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestPlotDatasetsBackgroundImage(t *testing.T) {
	ds := singleColumnDataset(t)

	p, r, o := newTestPlotter()
	res, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{BackgroundImage: "bg.png", OutFile: "plot.png"})
	require.NoError(t, err)
	assert.NotNil(t, r.figures[0].background)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"plot.png"}, o.saved)

	p, r, o = newTestPlotter()
	res, err = p.PlotDatasets([]*dataset.Dataset{ds}, Options{BackgroundImage: "missing.png", OutFile: "plot.png"})
	require.NoError(t, err, "a missing background is not fatal")
	assert.Nil(t, r.figures[0].background)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], ErrBackgroundImage)
	assert.Len(t, r.figures[0].series, 1, "plot still drawn")
	assert.Equal(t, []string{"plot.png"}, o.saved)
}

func TestPlotDatasetsOutputTarget(t *testing.T) {
	ds := singleColumnDataset(t)

	p, _, o := newTestPlotter()
	_, err := p.PlotDatasets([]*dataset.Dataset{ds}, Options{})
	require.NoError(t, err)
	assert.Empty(t, o.saved, "no file written without an out file")
	assert.Equal(t, 1, o.shown)

	p, _, o = newTestPlotter()
	_, err = p.PlotDatasets([]*dataset.Dataset{ds}, Options{OutFile: "plot.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"plot.png"}, o.saved, "exactly one write")
	assert.Zero(t, o.shown)

	p, _, o = newTestPlotter()
	_, err = p.PlotDatasets([]*dataset.Dataset{ds}, Options{OutFile: "plot.png", Defer: true})
	require.NoError(t, err)
	assert.Empty(t, o.saved)
	assert.Zero(t, o.shown)
}

func TestPlotDatasetsWithoutOutput(t *testing.T) {
	p := &Plotter{Renderer: &recordingRenderer{}}
	_, err := p.PlotDatasets([]*dataset.Dataset{singleColumnDataset(t)}, Options{OutFile: "x.png"})
	require.ErrorIs(t, err, ErrOutputWrite)
}
