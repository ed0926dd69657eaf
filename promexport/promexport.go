// Package promexport exposes a metriki.Registry to Prometheus. Collector
// takes a fresh registry snapshot on every scrape and renders each metric as
// const metrics, so no state is mirrored between the two systems.
package promexport

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/killme2008/metriki"
)

var summaryQuantiles = []float64{0.5, 0.75, 0.9, 0.99, 0.999}

// Collector adapts a metriki.Registry to the prometheus.Collector interface.
//
// It is an unchecked collector: Describe sends no descriptors because the set
// of metrics is dynamic (metrics sets may come and go between scrapes).
// Counters are exported as prometheus gauges since metriki counters may
// decrease; meters emit a monotonic _count plus rate gauges; histograms and
// timers emit const summaries, timer latencies converted to seconds.
type Collector struct {
	registry  *metriki.Registry
	namespace string
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithNamespace prefixes every exported metric name with ns.
func WithNamespace(ns string) CollectorOption {
	return func(c *Collector) { c.namespace = ns }
}

// NewCollector wraps reg for registration with a prometheus registry.
func NewCollector(reg *metriki.Registry, opts ...CollectorOption) *Collector {
	c := &Collector{registry: reg}
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	return c
}

// Describe implements prometheus.Collector. It intentionally sends nothing.
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, m := range c.registry.Snapshot() {
		base := prometheus.BuildFQName(c.namespace, "", sanitizeName(name))
		switch m.Kind() {
		case metriki.KindCounter:
			counter, _ := m.Counter()
			ch <- constGauge(base, "Current count of "+name, float64(counter.Count()))
		case metriki.KindGauge:
			gauge, _ := m.Gauge()
			ch <- constGauge(base, "Current value of "+name, gauge.Value())
		case metriki.KindMeter:
			meter, _ := m.Meter()
			c.collectMeter(ch, base, name, meter)
		case metriki.KindHistogram:
			histogram, _ := m.Histogram()
			c.collectSummary(ch, base, name, histogram.Snapshot(), 1)
		case metriki.KindTimer:
			timer, _ := m.Timer()
			c.collectMeter(ch, base, name, timer.Meter())
			// recorded in nanoseconds; prometheus convention is seconds
			c.collectSummary(ch, base+"_seconds", name, timer.Histogram().Snapshot(), 1e-9)
		}
	}
}

func (c *Collector) collectMeter(ch chan<- prometheus.Metric, base, name string, m *metriki.Meter) {
	ch <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(base+"_count", "Total events observed by "+name, nil, nil),
		prometheus.CounterValue, float64(m.Count()))
	ch <- constGauge(base+"_m1_rate", "One-minute rate of "+name, m.M1Rate())
	ch <- constGauge(base+"_m5_rate", "Five-minute rate of "+name, m.M5Rate())
	ch <- constGauge(base+"_m15_rate", "Fifteen-minute rate of "+name, m.M15Rate())
	ch <- constGauge(base+"_mean_rate", "Mean rate of "+name, m.MeanRate())
}

func (c *Collector) collectSummary(ch chan<- prometheus.Metric, base, name string, s metriki.HistogramSnapshot, scale float64) {
	quantiles := make(map[float64]float64, len(summaryQuantiles))
	for _, q := range summaryQuantiles {
		quantiles[q] = s.Quantile(q) * scale
	}
	ch <- prometheus.MustNewConstSummary(
		prometheus.NewDesc(base, "Distribution observed by "+name, nil, nil),
		uint64(s.Count), s.Sum*scale, quantiles)
}

func constGauge(fqName, help string, v float64) prometheus.Metric {
	return prometheus.MustNewConstMetric(
		prometheus.NewDesc(fqName, help, nil, nil), prometheus.GaugeValue, v)
}

// Handler returns an http.Handler serving reg in the Prometheus text
// exposition format, backed by a dedicated prometheus registry.
func Handler(reg *metriki.Registry, opts ...CollectorOption) http.Handler {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewCollector(reg, opts...))
	return promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})
}

// sanitizeName maps a dotted metric name to a valid prometheus metric name.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
