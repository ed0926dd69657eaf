package metriki

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMarshalJSON(t *testing.T) {
	t.Run("counter", func(t *testing.T) {
		c := NewCounter()
		c.Incr(7)
		b, err := json.Marshal(WrapCounter(c))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"counter","count":7}`, string(b))
	})

	t.Run("gauge_invoked_during_marshal", func(t *testing.T) {
		b, err := json.Marshal(WrapGauge(NewGauge(func() float64 { return 1.5 })))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"gauge","value":1.5}`, string(b))
	})

	t.Run("meter_fields", func(t *testing.T) {
		m := NewMeter()
		m.Mark(2)
		b, err := json.Marshal(WrapMeter(m))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, "meter", got["type"])
		assert.Equal(t, 2.0, got["count"])
		for _, k := range []string{"m1_rate", "m5_rate", "m15_rate", "mean_rate"} {
			assert.Contains(t, got, k)
		}
	})

	t.Run("histogram_fields", func(t *testing.T) {
		h := NewHistogram()
		h.Update(1)
		h.Update(3)
		b, err := json.Marshal(WrapHistogram(h))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, "histogram", got["type"])
		assert.Equal(t, 2.0, got["count"])
		assert.Equal(t, 1.0, got["min"])
		assert.Equal(t, 3.0, got["max"])
		assert.Equal(t, 2.0, got["mean"])
		for _, k := range []string{"stddev", "p50", "p75", "p90", "p99", "p999"} {
			assert.Contains(t, got, k)
		}
	})

	t.Run("timer_merges_rate_and_latency", func(t *testing.T) {
		tm := NewTimer()
		tm.Update(1000)
		b, err := json.Marshal(WrapTimer(tm))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, "timer", got["type"])
		assert.Contains(t, got, "m1_rate")
		assert.Contains(t, got, "p99")
	})
}

func TestSnapshotMarshalJSON(t *testing.T) {
	reg := NewRegistry()
	reg.Counter("c").Incr(1)
	reg.RegisterGauge("g", func() float64 { return 2 })

	b, err := json.Marshal(reg.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":{"type":"counter","count":1},"g":{"type":"gauge","value":2}}`, string(b))
}
