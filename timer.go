package metriki

import "time"

// Timer is a combination of a meter and a histogram: the meter tracks the
// rate of an event, the histogram the distribution of time spent in it.
// Durations are recorded in nanoseconds.
// All methods are safe for concurrent use.
type Timer struct {
	meter     *Meter
	histogram *Histogram
}

// NewTimer constructs a Timer with zero observed events.
func NewTimer() *Timer {
	return &Timer{meter: NewMeter(), histogram: NewHistogram()}
}

// Update records one event that took d.
func (t *Timer) Update(d time.Duration) {
	t.meter.Mark(1)
	t.histogram.Update(float64(d.Nanoseconds()))
}

// Time measures and records the execution of fn.
func (t *Timer) Time(fn func()) {
	start := time.Now()
	fn()
	t.Update(time.Since(start))
}

// Start begins a timing context. Call Stop on the result to record.
func (t *Timer) Start() *TimerContext {
	return &TimerContext{timer: t, start: time.Now()}
}

// Count returns the total number of recorded events.
func (t *Timer) Count() int64 { return t.meter.Count() }

// Meter returns the rate half of the timer.
func (t *Timer) Meter() *Meter { return t.meter }

// Histogram returns the latency half of the timer.
func (t *Timer) Histogram() *Histogram { return t.histogram }

// TimerContext is one in-flight timed event.
type TimerContext struct {
	timer *Timer
	start time.Time
}

// Stop records the elapsed time since Start and returns it.
func (c *TimerContext) Stop() time.Duration {
	d := time.Since(c.start)
	c.timer.Update(d)
	return d
}
