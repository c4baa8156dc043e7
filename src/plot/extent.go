package plot

import "math"

// Series is one dataset's resolved points and legend label.
type Series struct {
	Source string
	X      []float64
	Y      []float64
	// Label is empty for an unlabelled series.
	Label string
}

// Extent is the data range covered by a set of series.
type Extent struct {
	Left, Right, Bottom, Top float64
}

// DataExtent returns the range spanned by every point of series whose x and
// y are both finite. It reports false when there is no such point.
func DataExtent(series []Series) (Extent, bool) {
	e := Extent{Left: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(1), Top: math.Inf(-1)}
	found := false
	for _, s := range series {
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		for i := 0; i < n; i++ {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			found = true
			e.Left = math.Min(e.Left, x)
			e.Right = math.Max(e.Right, x)
			e.Bottom = math.Min(e.Bottom, y)
			e.Top = math.Max(e.Top, y)
		}
	}
	if !found {
		return Extent{}, false
	}
	return e, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
