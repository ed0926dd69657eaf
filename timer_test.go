package metriki

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	t.Run("update_records_both_halves", func(t *testing.T) {
		tm := NewTimer()
		tm.Update(100 * time.Millisecond)
		tm.Update(300 * time.Millisecond)

		assert.Equal(t, int64(2), tm.Count())
		assert.Equal(t, int64(2), tm.Meter().Count())

		s := tm.Histogram().Snapshot()
		assert.Equal(t, float64(100*time.Millisecond), s.Min)
		assert.Equal(t, float64(300*time.Millisecond), s.Max)
	})

	t.Run("time_fn", func(t *testing.T) {
		tm := NewTimer()
		ran := false
		tm.Time(func() { ran = true })
		require.True(t, ran)
		assert.Equal(t, int64(1), tm.Count())
	})

	t.Run("start_stop", func(t *testing.T) {
		tm := NewTimer()
		ctx := tm.Start()
		d := ctx.Stop()
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Equal(t, int64(1), tm.Count())
	})
}

func TestGauge(t *testing.T) {
	g := NewGauge(func() float64 { return 4.5 })
	assert.Equal(t, 4.5, g.Value())
}
