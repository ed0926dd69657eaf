package metriki

import (
	"math"
	"sync"
	"sync/atomic"
)

// ewmaInterval is how often meter averages are ticked forward. Ticks are
// applied lazily from Mark and the rate accessors; there is no background
// goroutine.
const ewmaInterval = 5 // seconds

// ewma is an exponentially weighted moving average over a fixed window,
// updated in 5-second ticks. Uncounted events accumulate in an atomic between
// ticks so Mark stays lock-free.
type ewma struct {
	uncounted atomic.Int64
	alpha     float64

	mu          sync.Mutex
	rate        float64 // events per second
	initialized bool
}

// newEWMA returns an average smoothed over the given window in minutes.
func newEWMA(minutes float64) *ewma {
	return &ewma{alpha: 1 - math.Exp(-ewmaInterval/60.0/minutes)}
}

// update records n events since the last tick.
func (e *ewma) update(n int64) { e.uncounted.Add(n) }

// tick folds the uncounted events into the moving average. Called once per
// elapsed 5-second interval.
func (e *ewma) tick() {
	count := e.uncounted.Swap(0)
	instant := float64(count) / ewmaInterval

	e.mu.Lock()
	if e.initialized {
		e.rate += e.alpha * (instant - e.rate)
	} else {
		e.rate = instant
		e.initialized = true
	}
	e.mu.Unlock()
}

// snapshot returns the current rate in events per second.
func (e *ewma) snapshot() float64 {
	e.mu.Lock()
	r := e.rate
	e.mu.Unlock()
	return r
}
