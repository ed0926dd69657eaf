package metriki

import (
	"container/heap"
	"math"
	"math/rand"
	"time"
)

const (
	reservoirSize   = 1028
	reservoirAlpha  = 0.015
	rescaleInterval = time.Hour
)

// weightedSample is one reservoir entry: a value and the priority that decides
// whether it survives eviction. Priorities decay as the sample ages.
type weightedSample struct {
	value    float64
	priority float64
}

// sampleHeap is a min-heap of weightedSample ordered by priority, so the entry
// with the lowest priority is always the eviction candidate.
type sampleHeap []weightedSample

func (h sampleHeap) Len() int            { return len(h) }
func (h sampleHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h sampleHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sampleHeap) Push(x interface{}) { *h = append(*h, x.(weightedSample)) }
func (h *sampleHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

// expDecayReservoir keeps a fixed-size, exponentially decaying random sample
// of a stream, favoring recent values. Quantiles estimated from it reflect
// roughly the last five minutes of data under the default alpha.
//
// Not safe for concurrent use on its own; Histogram serializes access.
type expDecayReservoir struct {
	samples sampleHeap
	start   time.Time // landmark for weight computation
	next    time.Time // next scheduled rescale
}

func newExpDecayReservoir(now time.Time) *expDecayReservoir {
	return &expDecayReservoir{
		samples: make(sampleHeap, 0, reservoirSize),
		start:   now,
		next:    now.Add(rescaleInterval),
	}
}

func (r *expDecayReservoir) update(v float64, now time.Time) {
	if now.After(r.next) {
		r.rescale(now)
	}
	w := math.Exp(reservoirAlpha * now.Sub(r.start).Seconds())
	s := weightedSample{value: v, priority: w / rand.Float64()}
	if len(r.samples) < reservoirSize {
		heap.Push(&r.samples, s)
		return
	}
	if s.priority > r.samples[0].priority {
		r.samples[0] = s
		heap.Fix(&r.samples, 0)
	}
}

// rescale moves the landmark forward and decays stored priorities accordingly.
// Without this, weights grow without bound and eventually overflow.
func (r *expDecayReservoir) rescale(now time.Time) {
	factor := math.Exp(-reservoirAlpha * now.Sub(r.start).Seconds())
	for i := range r.samples {
		r.samples[i].priority *= factor
	}
	heap.Init(&r.samples)
	r.start = now
	r.next = now.Add(rescaleInterval)
}

// values returns a copy of the sampled values, unordered.
func (r *expDecayReservoir) values() []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.value
	}
	return out
}
