package metriki

// GaugeFn produces the current value of a gauge. It is invoked lazily,
// whenever a snapshot or a direct read of the gauge occurs, and must be safe
// for concurrent use.
type GaugeFn func() float64

// Gauge reports an instantaneous value computed by a user-supplied function.
// The registry replaces a gauge wholesale on re-registration instead of
// merging with a prior entry.
type Gauge struct {
	fn GaugeFn
}

// NewGauge constructs a Gauge around fn.
func NewGauge(fn GaugeFn) *Gauge { return &Gauge{fn: fn} }

// Value invokes the gauge function and returns its result.
func (g *Gauge) Value() float64 { return g.fn() }
