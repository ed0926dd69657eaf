package metriki

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeter(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		m := NewMeter()
		m.Mark(1)
		m.Mark(2)
		assert.Equal(t, int64(3), m.Count())
	})

	t.Run("rates_before_first_tick", func(t *testing.T) {
		m := NewMeter()
		m.Mark(10)
		// moving averages only advance on 5-second ticks
		assert.Zero(t, m.M1Rate())
		assert.Zero(t, m.M5Rate())
		assert.Zero(t, m.M15Rate())
		assert.Positive(t, m.MeanRate())
	})

	t.Run("mean_rate_zero_without_events", func(t *testing.T) {
		m := NewMeter()
		assert.Zero(t, m.MeanRate())
	})

	t.Run("concurrent_marks", func(t *testing.T) {
		m := NewMeter()
		var wg sync.WaitGroup
		const workers, per = 8, 500
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				for j := 0; j < per; j++ {
					m.Mark(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(workers*per), m.Count())
	})
}
