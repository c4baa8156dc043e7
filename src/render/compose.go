package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	// Extra background image formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// captionCharWidth is the advance of basicfont.Face7x13.
const captionCharWidth = 7

// composite lays chart over a white page, with bg scaled into area and
// blended at the given opacity underneath it.
func composite(chartImg, bg image.Image, area image.Rectangle, alpha float64) *image.RGBA {
	b := chartImg.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	if bg != nil {
		if area.Empty() {
			area = b
		}
		scaled := image.NewRGBA(area)
		draw.CatmullRom.Scale(scaled, area, bg, bg.Bounds(), draw.Src, nil)
		mask := image.NewUniform(color.Alpha{A: uint8(alpha * 255)})
		draw.DrawMask(out, area, scaled, area.Min, mask, image.Point{}, draw.Over)
	}
	draw.Draw(out, b, chartImg, b.Min, draw.Over)
	return out
}

// wrapText splits text into lines no wider than maxWidth pixels of the
// caption face. Existing line breaks are kept.
func wrapText(text string, maxWidth int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	maxChars := maxWidth / captionCharWidth
	if maxChars < 10 {
		maxChars = 10
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > maxChars {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// captionBaseline is the baseline of the first caption line.
func captionBaseline(height, n int) int {
	return height - n*captionLineHeight - captionMargin + basicfont.Face7x13.Ascent
}

func drawCaption(img *image.RGBA, lines []string, x int) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	y := captionBaseline(img.Bounds().Dy(), len(lines))
	for _, line := range lines {
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		dr.DrawString(line)
		y += captionLineHeight
	}
}

// svgOpenEnd returns the offset just past the root <svg ...> tag.
func svgOpenEnd(doc []byte) (int, error) {
	start := bytes.Index(doc, []byte("<svg"))
	if start < 0 {
		return 0, fmt.Errorf("svg document has no root element")
	}
	end := bytes.IndexByte(doc[start:], '>')
	if end < 0 {
		return 0, fmt.Errorf("svg root element is not closed")
	}
	return start + end + 1, nil
}

// svgUnderlay inserts a white page and bg, embedded as PNG, beneath
// everything go-chart drew.
func svgUnderlay(doc []byte, bg image.Image, area image.Rectangle, alpha float64, width, height int) ([]byte, error) {
	at, err := svgOpenEnd(doc)
	if err != nil {
		return nil, err
	}
	if area.Empty() {
		area = image.Rect(0, 0, width, height)
	}
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, bg); err != nil {
		return nil, fmt.Errorf("encode background: %w", err)
	}
	var under bytes.Buffer
	fmt.Fprintf(&under, `<rect x="0" y="0" width="%d" height="%d" style="fill:rgb(255,255,255)"/>`, width, height)
	fmt.Fprintf(&under, `<image x="%d" y="%d" width="%d" height="%d" preserveAspectRatio="none" opacity="%.2f" href="data:image/png;base64,%s"/>`,
		area.Min.X, area.Min.Y, area.Dx(), area.Dy(), alpha, base64.StdEncoding.EncodeToString(encoded.Bytes()))

	out := make([]byte, 0, len(doc)+under.Len())
	out = append(out, doc[:at]...)
	out = append(out, under.Bytes()...)
	out = append(out, doc[at:]...)
	return out, nil
}

// svgCaption appends caption lines before the closing </svg> tag.
func svgCaption(doc []byte, lines []string, x, height int) []byte {
	at := bytes.LastIndex(doc, []byte("</svg>"))
	if at < 0 {
		return doc
	}
	var text bytes.Buffer
	y := captionBaseline(height, len(lines))
	for _, line := range lines {
		fmt.Fprintf(&text, `<text x="%d" y="%d" style="font-family:monospace;font-size:12px;fill:rgb(0,0,0)">%s</text>`,
			x, y, html.EscapeString(line))
		y += captionLineHeight
	}
	out := make([]byte, 0, len(doc)+text.Len())
	out = append(out, doc[:at]...)
	out = append(out, text.Bytes()...)
	out = append(out, doc[at:]...)
	return out
}
