package plot

// FigSize is a figure size in inches.
type FigSize struct {
	Width  float64
	Height float64
}

// DefaultFigSize is used when Options.FigSize is zero.
var DefaultFigSize = FigSize{Width: 8, Height: 6}

// IsZero reports whether no size was given.
func (f FigSize) IsZero() bool { return f.Width <= 0 || f.Height <= 0 }

// Options configures one PlotDatasets call. Empty strings mean "not set".
type Options struct {
	X AxisSelector
	Y AxisSelector

	XLabel string
	YLabel string

	InvertX bool
	InvertY bool

	Title   string
	Caption string
	// TitleKey and CaptionKey name header items of the first dataset used
	// when Title or Caption is empty.
	TitleKey   string
	CaptionKey string

	// LabelKey names the header item holding each dataset's legend label.
	LabelKey string

	FigSize         FigSize
	BackgroundImage string
	OutFile         string

	// PlotOptions is a JSON object of style overrides.
	PlotOptions string
	Scatter     bool

	// Defer skips the output step so the caller can keep editing the figure.
	Defer bool
}

func (o Options) figSize() FigSize {
	if o.FigSize.IsZero() {
		return DefaultFigSize
	}
	return o.FigSize
}
