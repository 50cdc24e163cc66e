// Package status holds process-wide counters and gauges for the game loop
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Owners cache pointers at construction; the loop writes directly to atomics
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

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key=value", counters first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.4f", key, v.Get()))
	})
	return lines
}
