package metriki

import (
	"sync"
	"sync/atomic"
	"time"
)

// Meter measures the rate of an event. It reports moving-average rates over
// 1, 5 and 15 minutes, similar to Linux load averages, plus the mean rate
// since the meter was created.
// All methods are safe for concurrent use.
type Meter struct {
	count atomic.Int64
	a1    *ewma
	a5    *ewma
	a15   *ewma

	start    time.Time
	lastTick atomic.Int64 // unix nanos of the last applied tick

	tickMu sync.Mutex // serializes catch-up ticking
}

// NewMeter constructs a Meter with zero observed events.
func NewMeter() *Meter {
	m := &Meter{
		a1:    newEWMA(1),
		a5:    newEWMA(5),
		a15:   newEWMA(15),
		start: time.Now(),
	}
	m.lastTick.Store(m.start.UnixNano())
	return m
}

// Mark records n occurrences of the event.
func (m *Meter) Mark(n int64) {
	m.tickIfStale()
	m.count.Add(n)
	m.a1.update(n)
	m.a5.update(n)
	m.a15.update(n)
}

// Count returns the total number of events marked.
func (m *Meter) Count() int64 { return m.count.Load() }

// M1Rate returns the one-minute moving-average rate in events per second.
func (m *Meter) M1Rate() float64 {
	m.tickIfStale()
	return m.a1.snapshot()
}

// M5Rate returns the five-minute moving-average rate in events per second.
func (m *Meter) M5Rate() float64 {
	m.tickIfStale()
	return m.a5.snapshot()
}

// M15Rate returns the fifteen-minute moving-average rate in events per second.
func (m *Meter) M15Rate() float64 {
	m.tickIfStale()
	return m.a15.snapshot()
}

// MeanRate returns the mean rate in events per second since the meter was created.
func (m *Meter) MeanRate() float64 {
	elapsed := time.Since(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.count.Load()) / elapsed
}

// tickIfStale applies any 5-second ticks that have elapsed since the last
// access. Cheap when the meter is hot: a single atomic load on the fast path.
func (m *Meter) tickIfStale() {
	const interval = ewmaInterval * int64(time.Second)
	now := time.Now().UnixNano()
	if now-m.lastTick.Load() < interval {
		return
	}

	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	last := m.lastTick.Load()
	missed := (now - last) / interval
	if missed <= 0 {
		return
	}
	m.lastTick.Store(last + missed*interval)
	for i := int64(0); i < missed; i++ {
		m.a1.tick()
		m.a5.tick()
		m.a15.tick()
	}
}
