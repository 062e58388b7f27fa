package types

import (
	"fmt"
	"sync/atomic"
)

// SerialPrefix starts every container serial number.
const SerialPrefix = "KON"

// Registry issues containers. It owns the serial counter shared by all
// container kinds, the hazard notifier handed to each container, and the
// temperature table consulted by refrigerated containers.
//
// Serial numbers have the form KON-<code>-<n>, where code is Kind.Code and n
// starts at 1 and grows by one per container across all kinds.
type Registry struct {
	seq          atomic.Uint64
	notifier     HazardNotifier
	temperatures TemperatureTable
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithNotifier sets the hazard notifier. A nil notifier discards hazards.
func WithNotifier(n HazardNotifier) RegistryOption {
	return func(r *Registry) {
		if n != nil {
			r.notifier = n
		}
	}
}

// WithTemperatures replaces the refrigerated cargo table. The table is
// copied; later changes to t do not reach the registry.
func WithTemperatures(t TemperatureTable) RegistryOption {
	return func(r *Registry) {
		r.temperatures = t.Clone()
	}
}

// NewRegistry returns a registry with the default temperature table and a
// notifier that discards hazards, adjusted by opts.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		notifier:     nopNotifier{},
		temperatures: DefaultTemperatures(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewLiquid issues a liquid container.
func (r *Registry) NewLiquid(dims Dimensions, hazardous bool) *Container {
	c := r.issue(KindLiquid, dims)
	c.hazardous = hazardous
	return c
}

// NewGas issues a gas container.
func (r *Registry) NewGas(dims Dimensions) *Container {
	return r.issue(KindGas, dims)
}

// NewRefrigerated issues a refrigerated container with the given set point.
func (r *Registry) NewRefrigerated(dims Dimensions, temperature float64) *Container {
	c := r.issue(KindRefrigerated, dims)
	c.temperature = temperature
	c.temperatures = r.temperatures
	return c
}

// Issued returns how many serial numbers the registry has handed out.
func (r *Registry) Issued() uint64 {
	return r.seq.Load()
}

// Temperatures returns a copy of the registry's cargo table.
func (r *Registry) Temperatures() TemperatureTable {
	return r.temperatures.Clone()
}

func (r *Registry) issue(kind Kind, dims Dimensions) *Container {
	n := r.seq.Add(1)
	serial := fmt.Sprintf("%s-%s-%d", SerialPrefix, kind.Code(), n)
	return newContainer(kind, serial, dims, r.notifier)
}
