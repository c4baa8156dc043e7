package render

import (
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/paul-breen/xcsv-plot/src/logging"
	"github.com/paul-breen/xcsv-plot/src/plot"
)

const (
	defaultLineWidth  = 1.5
	defaultMarkerSize = 6.0
	pointMarkerSize   = 4.0
)

var namedColors = map[string]drawing.Color{
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 214, G: 39, B: 40, A: 255},
	"green":   {R: 44, G: 160, B: 44, A: 255},
	"blue":    {R: 31, G: 119, B: 180, A: 255},
	"orange":  {R: 255, G: 127, B: 14, A: 255},
	"purple":  {R: 148, G: 103, B: 189, A: 255},
	"brown":   {R: 140, G: 86, B: 75, A: 255},
	"pink":    {R: 227, G: 119, B: 194, A: 255},
	"gray":    {R: 127, G: 127, B: 127, A: 255},
	"grey":    {R: 127, G: 127, B: 127, A: 255},
	"olive":   {R: 188, G: 189, B: 34, A: 255},
	"cyan":    {R: 23, G: 190, B: 207, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 215, B: 0, A: 255},
}

var shortColors = map[string]string{
	"k": "black", "w": "white", "r": "red", "g": "green", "b": "blue",
	"c": "cyan", "m": "magenta", "y": "yellow",
}

// parseColor understands colour names (and their one-letter forms),
// #rgb / #rrggbb hex and the palette references C0..C9.
func parseColor(s string) (drawing.Color, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	// One-letter codes are case sensitive; "C" alone is a bad palette reference.
	if long, ok := shortColors[s]; ok {
		lower = long
	}
	if c, ok := namedColors[lower]; ok {
		return c, true
	}
	if len(s) >= 2 && (s[0] == 'C' || s[0] == 'c') {
		if n, err := strconv.Atoi(s[1:]); err == nil && n >= 0 {
			return chart.GetDefaultColor(n), true
		}
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return drawing.Color{}, false
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return drawing.Color{}, false
	}
	return drawing.ColorFromHex(hex), true
}

func dashArray(ls string) ([]float64, bool) {
	switch ls {
	case "-", "solid":
		return nil, true
	case "--", "dashed":
		return []float64{6, 4}, true
	case ":", "dotted":
		return []float64{1.5, 3}, true
	case "-.", "dashdot":
		return []float64{6, 3, 1.5, 3}, true
	}
	return nil, false
}

func isNone(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "none":
		return true
	}
	return false
}

// seriesStyle turns an effective style into a go-chart style for the
// index'th series. Without a color property the series takes palette entry
// index, so colours follow dataset order.
func seriesStyle(st plot.Style, index int) chart.Style {
	col := chart.GetDefaultColor(index)
	if v, ok := st.Get("color"); ok {
		if s, isText := v.Text(); isText {
			if c, ok := parseColor(s); ok {
				col = c
			} else {
				logging.Warnf("unknown color %q; using palette colour %d", s, index)
			}
		} else {
			logging.Warnf("color %s is not a string; using palette colour %d", v, index)
		}
	}
	if v, ok := st.Get("alpha"); ok {
		if a, isNum := v.Float(); isNum && a >= 0 && a <= 1 {
			col = col.WithAlpha(uint8(a * 255))
		}
	}

	out := chart.Style{
		StrokeColor: col,
		StrokeWidth: defaultLineWidth,
		DotColor:    col,
	}

	if v, ok := st.Get("linestyle"); ok {
		ls, isText := v.Text()
		if !isText {
			logging.Warnf("linestyle %s is not a string; drawing a solid line", v)
		} else if isNone(ls) {
			out.StrokeWidth = chart.Disabled
		} else if dashes, known := dashArray(ls); known {
			out.StrokeDashArray = dashes
		} else {
			logging.Warnf("unknown linestyle %q; drawing a solid line", ls)
		}
	}
	if v, ok := st.Get("linewidth"); ok && out.StrokeWidth != chart.Disabled {
		if w, isNum := v.Float(); isNum && w > 0 {
			out.StrokeWidth = w
		}
	}

	if v, ok := st.Get("marker"); ok {
		m, isText := v.Text()
		if !isText {
			logging.Warnf("marker %s is not a string; drawing point markers", v)
			m = "."
		}
		if !isNone(m) {
			size := defaultMarkerSize
			if m == "." || m == "," {
				size = pointMarkerSize
			}
			if ms, ok := st.Get("markersize"); ok {
				if f, isNum := ms.Float(); isNum && f > 0 {
					size = f
				}
			}
			// markersize is a diameter; go-chart dots take a radius.
			out.DotWidth = size / 2
		}
	}

	for k := range st {
		if !knownProperty(k) {
			logging.Debugf("style property %q is not used by the chart renderer", k)
		}
	}
	return out
}

func knownProperty(k string) bool {
	switch plot.CanonicalKey(k) {
	case "color", "alpha", "linestyle", "linewidth", "marker", "markersize":
		return true
	}
	return false
}

// legendStyle is the swatch drawn for a series in the legend; point-only
// series still need a visible stroke there.
func legendStyle(s chart.Style) chart.Style {
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = defaultLineWidth
		s.StrokeColor = s.DotColor
	}
	return s
}
