// Command xcsvplot plots one or more extended CSV files on a single chart.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paul-breen/xcsv-plot/src/config"
	"github.com/paul-breen/xcsv-plot/src/logging"
	"github.com/paul-breen/xcsv-plot/src/plot"
	"github.com/paul-breen/xcsv-plot/src/render"
	"github.com/paul-breen/xcsv-plot/src/xcsv"
)

var version = "0.4.0"

type cliFlags struct {
	xIdx    int
	xColumn string
	yIdx    int
	yColumn string

	xLabel  string
	yLabel  string
	invertX bool
	invertY bool

	title    string
	caption  string
	labelKey string

	figsize     []float64
	background  string
	outFile     string
	plotOptions string
	scatter     bool

	configPath string
	logLevel   string
}

func main() {
	cmd := newRootCmd(&cliFlags{})
	cmd.SetArgs(joinFigsizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xcsvplot in_file [in_file ...]",
		Short: "Plot extended CSV files",
		Long: `xcsvplot draws the given columns of one or more extended CSV files
(and .xlsx workbooks) as overlaid series on a single chart. Without
--out-file the chart is shown in a window.`,
		Example: `  xcsvplot -x 0 -y 1 -o depth.png site-a.csv site-b.csv
  xcsvplot -S -P '{"color": "red"}' -s 10 4 data.csv`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.xIdx, "x-idx", "x", 0, "column index of the x-axis data")
	fl.StringVarP(&f.xColumn, "x-column", "X", "", "column label of the x-axis data")
	fl.IntVarP(&f.yIdx, "y-idx", "y", 0, "column index of the y-axis data (default: last column)")
	fl.StringVarP(&f.yColumn, "y-column", "Y", "", "column label of the y-axis data")
	fl.StringVar(&f.xLabel, "x-label", "", "x-axis label (default: the x column name)")
	fl.StringVar(&f.yLabel, "y-label", "", "y-axis label (default: the y column name)")
	fl.BoolVar(&f.invertX, "invert-x-axis", false, "invert the x-axis")
	fl.BoolVar(&f.invertY, "invert-y-axis", false, "invert the y-axis")
	fl.StringVar(&f.title, "title", "", "plot title (default: the first file's title header item)")
	fl.StringVar(&f.caption, "caption", "", "plot caption (default: the first file's citation header item)")
	fl.StringVar(&f.labelKey, "label-key", "", "header item used as each file's legend label")
	fl.Float64SliceVarP(&f.figsize, "figsize", "s", nil, "figure width and height in inches")
	fl.StringVarP(&f.background, "background-image", "b", "", "image drawn behind the data area")
	fl.StringVarP(&f.outFile, "out-file", "o", "", "write the plot to this .png, .svg or .jpg file")
	fl.StringVarP(&f.plotOptions, "plot-options", "P", "", "JSON object of style options, e.g. '{\"color\": \"red\"}'")
	fl.BoolVarP(&f.scatter, "scatter-plot", "S", false, "draw points instead of lines")
	// cobra prints Version when this flag is set.
	fl.BoolP("version", "V", false, "print the version and exit")
	fl.StringVar(&f.configPath, "config", "", "configuration file (default: "+config.DefaultPath()+")")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.MarkFlagsMutuallyExclusive("x-idx", "x-column")
	cmd.MarkFlagsMutuallyExclusive("y-idx", "y-column")
	return cmd
}

func run(cmd *cobra.Command, f *cliFlags, args []string) error {
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		if _, ok := logging.ParseLevel(f.logLevel); !ok {
			return fmt.Errorf("unknown log level %q", f.logLevel)
		}
		level = f.logLevel
	}
	logging.SetLogLevel(level)

	opts, err := f.options(cmd, cfg)
	if err != nil {
		return err
	}
	datasets, err := xcsv.ReadFiles(args)
	if err != nil {
		return err
	}

	p := &plot.Plotter{
		Renderer: render.Renderer{DPI: cfg.DPI, BackgroundAlpha: cfg.BackgroundAlpha},
		Output:   render.FileOutput{Viewer: showWindow},
	}
	_, err = p.PlotDatasets(datasets, opts)
	return err
}

// options turns the parsed flags into plot options. Flags left unset fall
// back to cfg.
func (f *cliFlags) options(cmd *cobra.Command, cfg *config.Config) (plot.Options, error) {
	changed := cmd.Flags().Changed
	opts := plot.Options{
		XLabel:          f.xLabel,
		YLabel:          f.yLabel,
		InvertX:         f.invertX,
		InvertY:         f.invertY,
		Title:           f.title,
		Caption:         f.caption,
		TitleKey:        cfg.TitleKey,
		CaptionKey:      cfg.CaptionKey,
		LabelKey:        cfg.LabelKey,
		BackgroundImage: f.background,
		OutFile:         f.outFile,
		PlotOptions:     f.plotOptions,
		Scatter:         f.scatter,
	}
	switch {
	case changed("x-idx"):
		opts.X = plot.ByIndex(f.xIdx)
	case changed("x-column"):
		opts.X = plot.ByLabel(f.xColumn)
	}
	switch {
	case changed("y-idx"):
		opts.Y = plot.ByIndex(f.yIdx)
	case changed("y-column"):
		opts.Y = plot.ByLabel(f.yColumn)
	}
	if changed("label-key") {
		opts.LabelKey = f.labelKey
	}

	size := cfg.FigSize
	if changed("figsize") {
		size = f.figsize
	}
	if len(size) != 2 || size[0] <= 0 || size[1] <= 0 {
		return opts, fmt.Errorf("figsize needs a positive width and height, got %v", size)
	}
	opts.FigSize = plot.FigSize{Width: size[0], Height: size[1]}
	return opts, nil
}

// joinFigsizeArgs rewrites "-s W H" as "-s W,H" so the two values reach
// the figsize flag as one list.
func joinFigsizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if (a == "-s" || a == "--figsize") && i+2 < len(args) && isNumber(args[i+1]) && isNumber(args[i+2]) {
			out = append(out, a, args[i+1]+","+args[i+2])
			i += 2
			continue
		}
		out = append(out, a)
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
