package metriki

import "encoding/json"

// jsonFields renders a metric to the flat key-value form used by MarshalJSON.
// Histogram and timer quantiles come from the reservoir snapshot; timer
// durations are in nanoseconds, as recorded.
func (m Metric) jsonFields() map[string]any {
	switch m.kind {
	case KindCounter:
		return map[string]any{
			"type":  KindCounter,
			"count": m.counter.Count(),
		}
	case KindGauge:
		return map[string]any{
			"type":  KindGauge,
			"value": m.gauge.Value(),
		}
	case KindMeter:
		return map[string]any{
			"type":      KindMeter,
			"count":     m.meter.Count(),
			"m1_rate":   m.meter.M1Rate(),
			"m5_rate":   m.meter.M5Rate(),
			"m15_rate":  m.meter.M15Rate(),
			"mean_rate": m.meter.MeanRate(),
		}
	case KindHistogram:
		return histogramFields(KindHistogram, m.histogram.Snapshot())
	case KindTimer:
		fields := histogramFields(KindTimer, m.timer.Histogram().Snapshot())
		mt := m.timer.Meter()
		fields["count"] = mt.Count()
		fields["m1_rate"] = mt.M1Rate()
		fields["m5_rate"] = mt.M5Rate()
		fields["m15_rate"] = mt.M15Rate()
		fields["mean_rate"] = mt.MeanRate()
		return fields
	default:
		return map[string]any{"type": "unknown"}
	}
}

func histogramFields(kind MetricKind, s HistogramSnapshot) map[string]any {
	return map[string]any{
		"type":   kind,
		"count":  s.Count,
		"min":    s.Min,
		"max":    s.Max,
		"mean":   s.Mean,
		"stddev": s.StdDev,
		"p50":    s.Quantile(0.5),
		"p75":    s.Quantile(0.75),
		"p90":    s.Quantile(0.9),
		"p99":    s.Quantile(0.99),
		"p999":   s.Quantile(0.999),
	}
}

// MarshalJSON renders the metric as a flat object of its current readings.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.jsonFields())
}

// MarshalJSON renders the snapshot as an object keyed by metric name, each
// value the flat key-value reading of that metric. Gauge functions are
// invoked during marshaling.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s))
	for name, m := range s {
		b, err := m.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out[name] = b
	}
	return json.Marshal(out)
}
