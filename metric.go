package metriki

// MetricKind identifies which instrument a Metric wraps.
type MetricKind string

const (
	KindCounter   MetricKind = "counter"
	KindMeter     MetricKind = "meter"
	KindHistogram MetricKind = "histogram"
	KindTimer     MetricKind = "timer"
	KindGauge     MetricKind = "gauge"
)

func (k MetricKind) String() string { return string(k) }

// Metric is a tagged union over the five instrument kinds. It is a small value
// type: copying a Metric copies a pointer to the underlying instrument, never
// the instrument state, so handles obtained from the registry and from
// snapshots all refer to the same live instrument.
//
// The set of kinds is closed. Code that consumes metrics (reporters,
// serializers) can switch on Kind and handle every case exhaustively.
type Metric struct {
	kind      MetricKind
	counter   *Counter
	meter     *Meter
	histogram *Histogram
	timer     *Timer
	gauge     *Gauge
}

// WrapCounter wraps an existing Counter into a Metric.
func WrapCounter(c *Counter) Metric { return Metric{kind: KindCounter, counter: c} }

// WrapMeter wraps an existing Meter into a Metric.
func WrapMeter(m *Meter) Metric { return Metric{kind: KindMeter, meter: m} }

// WrapHistogram wraps an existing Histogram into a Metric.
func WrapHistogram(h *Histogram) Metric { return Metric{kind: KindHistogram, histogram: h} }

// WrapTimer wraps an existing Timer into a Metric.
func WrapTimer(t *Timer) Metric { return Metric{kind: KindTimer, timer: t} }

// WrapGauge wraps an existing Gauge into a Metric.
func WrapGauge(g *Gauge) Metric { return Metric{kind: KindGauge, gauge: g} }

// Kind reports which instrument this Metric wraps. The zero Metric has kind "".
func (m Metric) Kind() MetricKind { return m.kind }

// Counter returns the wrapped Counter, or false if the Metric holds another kind.
func (m Metric) Counter() (*Counter, bool) { return m.counter, m.kind == KindCounter }

// Meter returns the wrapped Meter, or false if the Metric holds another kind.
func (m Metric) Meter() (*Meter, bool) { return m.meter, m.kind == KindMeter }

// Histogram returns the wrapped Histogram, or false if the Metric holds another kind.
func (m Metric) Histogram() (*Histogram, bool) { return m.histogram, m.kind == KindHistogram }

// Timer returns the wrapped Timer, or false if the Metric holds another kind.
func (m Metric) Timer() (*Timer, bool) { return m.timer, m.kind == KindTimer }

// Gauge returns the wrapped Gauge, or false if the Metric holds another kind.
func (m Metric) Gauge() (*Gauge, bool) { return m.gauge, m.kind == KindGauge }
