package status

import "sync/atomic"

// Registry is the central metrics facade.
// The simulation caches pointers once; the render path reads the atomics every frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Count returns total metrics across all types
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count()
}
