package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/paul-breen/xcsv-plot/src/logging"
	"github.com/paul-breen/xcsv-plot/src/plot"
)

// Format is an output file format.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	case FormatJPEG:
		return "jpeg"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

const jpegQuality = 90

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case "":
		return 0, fmt.Errorf("output file %q has no extension; use .png, .svg or .jpg", path)
	default:
		return 0, fmt.Errorf("unsupported output format %q; use .png, .svg or .jpg", ext)
	}
}

// Encode writes the figure to w in the given format.
func (f *Figure) Encode(w io.Writer, format Format) error {
	if format == FormatSVG {
		doc, err := f.SVG()
		if err != nil {
			return err
		}
		_, err = w.Write(doc)
		return err
	}
	img, err := f.Image()
	if err != nil {
		return err
	}
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}
	return fmt.Errorf("unsupported output format %s", format)
}

// Viewer shows a rendered figure interactively.
type Viewer func(img image.Image, title string) error

// FileOutput saves figures to disk and shows them with Viewer.
type FileOutput struct {
	Viewer Viewer
}

func asFigure(fig plot.Figure) (*Figure, error) {
	f, ok := fig.(*Figure)
	if !ok {
		return nil, fmt.Errorf("figure %T was not created by this renderer", fig)
	}
	return f, nil
}

// Save writes fig to path in the format named by its extension.
func (o FileOutput) Save(fig plot.Figure, path string) error {
	f, err := asFigure(fig)
	if err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logging.Infof("wrote %s (%s, %s)", path, format, humanize.Bytes(uint64(buf.Len())))
	return nil
}

// Show renders fig and hands it to the viewer.
func (o FileOutput) Show(fig plot.Figure) error {
	if o.Viewer == nil {
		return fmt.Errorf("no viewer available; use an output file")
	}
	f, err := asFigure(fig)
	if err != nil {
		return err
	}
	img, err := f.Image()
	if err != nil {
		return err
	}
	return o.Viewer(img, f.Title())
}
