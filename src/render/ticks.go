package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// desiredTicks is the tick count an axis aims for.
const desiredTicks = 6

// maxTicks bounds the ticks generated for one axis.
const maxTicks = 50

// niceStep picks a 1, 2, 2.5 or 5 times a power of ten step that splits
// span into about n-1 intervals.
func niceStep(span float64, n int) float64 {
	if span <= 0 || n < 2 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		score := math.Abs(math.Ceil(span/step) - float64(n-1))
		if score < bestScore {
			bestScore = score
			best = step
		}
	}
	return best
}

// niceAxisBounds widens [min,max] outwards to whole multiples of a nice
// step and returns the bounds and the step. A zero-width range is opened
// up around its value first.
func niceAxisBounds(min, max float64, n int) (float64, float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max, 0
	}
	if max < min {
		min, max = max, min
	}
	if max == min {
		pad := math.Abs(min) * 0.05
		if pad == 0 {
			pad = 0.5
		}
		min, max = min-pad, max+pad
	}
	step := niceStep(max-min, n)
	return math.Floor(min/step) * step, math.Ceil(max/step) * step, step
}

// niceTicks places a tick at every multiple of step from lo to hi.
func niceTicks(lo, hi, step float64) []chart.Tick {
	if step <= 0 || math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
		return nil
	}
	n := int(math.Round((hi - lo) / step))
	if n > maxTicks {
		return nil
	}
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		// Multiply rather than accumulate so long runs do not drift.
		v := lo + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, step)})
	}
	return ticks
}

// formatTick prints v with as many decimals as the tick step needs.
func formatTick(v, step float64) string {
	if math.Abs(v) < step*1e-9 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', stepDecimals(step), 64)
}

// stepDecimals is the number of decimals in the fractional part of step.
func stepDecimals(step float64) int {
	if step <= 0 {
		return 0
	}
	frac := step - math.Floor(step)
	if frac < 1e-9 || frac > 1-1e-9 {
		return 0
	}
	for d := 1; d < 10; d++ {
		scaled := frac * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6 {
			return d
		}
	}
	return 10
}

// axisRange builds the range and ticks covering [min,max]. The range spans
// the ticks exactly since go-chart widens a range to its ticks anyway.
func axisRange(min, max float64, descending bool) (*chart.ContinuousRange, []chart.Tick) {
	lo, hi, step := niceAxisBounds(min, max, desiredTicks)
	ticks := niceTicks(lo, hi, step)
	return &chart.ContinuousRange{Min: lo, Max: hi, Descending: descending}, ticks
}
