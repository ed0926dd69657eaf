package metriki

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Histogram measures the distribution of a series of values. Count, min, max,
// mean and standard deviation are tracked exactly over all updates; quantiles
// are estimated from an exponentially decaying reservoir that favors recent
// data.
// All methods are safe for concurrent use.
type Histogram struct {
	mu        sync.Mutex
	reservoir *expDecayReservoir
	count     int64
	min       float64
	max       float64
	sum       float64
	m2        float64 // running sum of squared deviations (Welford)
	mean      float64
}

// NewHistogram constructs an empty Histogram.
func NewHistogram() *Histogram {
	return &Histogram{reservoir: newExpDecayReservoir(time.Now())}
}

// Update records one measurement.
func (h *Histogram) Update(v float64) {
	now := time.Now()

	h.mu.Lock()
	h.reservoir.update(v, now)
	h.count++
	if h.count == 1 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.sum += v
	delta := v - h.mean
	h.mean += delta / float64(h.count)
	h.m2 += delta * (v - h.mean)
	h.mu.Unlock()
}

// Count returns the total number of recorded values.
func (h *Histogram) Count() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Snapshot returns an immutable view of the distribution at the time of call.
func (h *Histogram) Snapshot() HistogramSnapshot {
	h.mu.Lock()
	snap := HistogramSnapshot{
		Count:  h.count,
		Sum:    h.sum,
		Min:    h.min,
		Max:    h.max,
		Mean:   h.mean,
		values: h.reservoir.values(),
	}
	if h.count > 1 {
		snap.StdDev = math.Sqrt(h.m2 / float64(h.count-1))
	}
	h.mu.Unlock()

	sort.Float64s(snap.values)
	return snap
}

// HistogramSnapshot is a point-in-time view of a Histogram. The zero value
// reports zeroes for every statistic.
type HistogramSnapshot struct {
	Count  int64
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64

	values []float64 // sorted reservoir sample
}

// Quantile estimates the value at quantile q in [0, 1], e.g. 0.99 for p99.
func (s HistogramSnapshot) Quantile(q float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	if q <= 0 {
		return s.values[0]
	}
	if q >= 1 {
		return s.values[len(s.values)-1]
	}
	pos := q * float64(len(s.values)+1)
	idx := int(pos)
	switch {
	case idx < 1:
		return s.values[0]
	case idx >= len(s.values):
		return s.values[len(s.values)-1]
	default:
		lower := s.values[idx-1]
		upper := s.values[idx]
		return lower + (pos-float64(idx))*(upper-lower)
	}
}
