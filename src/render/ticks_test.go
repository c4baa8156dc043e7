package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceAxisBoundsDegenerate(t *testing.T) {
	min, max, step := niceAxisBounds(10, 10, desiredTicks)
	if min >= max {
		t.Fatalf("expected widened range; got %v >= %v", min, max)
	}
	if !(min < 10 && max > 10) {
		t.Fatalf("expected range to include the value: [%v,%v]", min, max)
	}
	assert.Greater(t, step, 0.0)
}

func TestNiceAxisBoundsSnapToStep(t *testing.T) {
	min, max, step := niceAxisBounds(0.575, 6.725, desiredTicks)
	assert.Equal(t, 2.0, step)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 8.0, max)
}

func TestNiceAxisBoundsStayCloseToData(t *testing.T) {
	min, max, step := niceAxisBounds(0, 14, desiredTicks)
	assert.Equal(t, 2.5, step)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 15.0, max, "no more than one step past the data")
}

func TestNiceTicksCoverRange(t *testing.T) {
	rng, ticks := axisRange(2009, 2013, false)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.LessOrEqual(t, ticks[0].Value, 2009.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 2013.0)
	for i, tk := range ticks {
		if tk.Label == "" {
			t.Fatalf("empty label at index %d", i)
		}
		if i > 0 && tk.Value <= ticks[i-1].Value {
			t.Fatalf("ticks not increasing at %d: %v <= %v", i, tk.Value, ticks[i-1].Value)
		}
	}
	assert.Equal(t, "2009", ticks[0].Label)
	assert.Equal(t, 2013.0, rng.Max)
}

func TestNiceTicksLabelHalfSteps(t *testing.T) {
	_, ticks := axisRange(1, 14, false)
	labels := make(map[float64]string, len(ticks))
	for _, tk := range ticks {
		labels[tk.Value] = tk.Label
	}
	assert.Equal(t, "2.5", labels[2.5])
	assert.Equal(t, "7.5", labels[7.5])
	assert.Equal(t, "10.0", labels[10])
	assert.Equal(t, "12.5", labels[12.5])
}

func TestNiceTicksRejectsBadInput(t *testing.T) {
	assert.Nil(t, niceTicks(0, 1, 0))
	assert.Nil(t, niceTicks(math.NaN(), 1, 0.5))
	assert.Nil(t, niceTicks(1, 0, 0.5))
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0", formatTick(0, 1))
	assert.Equal(t, "2012", formatTick(2012, 1))
	assert.Equal(t, "12.5", formatTick(12.5, 2.5))
	assert.Equal(t, "25", formatTick(25, 25))
	assert.Equal(t, "0.50", formatTick(0.5, 0.25))
	assert.Equal(t, "0.0005", formatTick(0.0005, 0.0001))
	assert.Equal(t, "-3", formatTick(-3, 1))
}

func TestAxisRangeSpansTicks(t *testing.T) {
	rng, ticks := axisRange(0.575, 6.725, true)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.Equal(t, ticks[0].Value, rng.Min)
	assert.Equal(t, ticks[len(ticks)-1].Value, rng.Max)
	assert.True(t, rng.Descending)
	assert.LessOrEqual(t, rng.Min, 0.575)
	assert.GreaterOrEqual(t, rng.Max, 6.725)
}
