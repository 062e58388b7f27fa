package types

// HazardReason says why a container raised a hazard notification.
type HazardReason string

// Hazard reasons.
const (
	// HazardUnsafeCapacity: a liquid load would pass the category-restricted
	// capacity. The load is rejected with ErrOverfill.
	HazardUnsafeCapacity HazardReason = "unsafe_capacity"

	// HazardTemperature: a refrigerated container's set point is below the
	// cargo's minimum temperature. The load is rejected with ErrTemperature.
	HazardTemperature HazardReason = "temperature"

	// HazardGasResidue: a gas unload left the mandatory residue behind.
	// The unload itself succeeds.
	HazardGasResidue HazardReason = "gas_residue"
)

// Hazard describes one unsafe operation attempt.
type Hazard struct {
	Serial   string
	Kind     Kind
	Reason   HazardReason
	Mass     float64 // Requested load mass, or residue left after a gas unload.
	Contents string
}

// HazardNotifier receives hazard notifications. Notify is called exactly once
// per unsafe operation, before the operation reports its result.
type HazardNotifier interface {
	Notify(h Hazard)
}

// NotifierFunc adapts a plain function to HazardNotifier.
type NotifierFunc func(h Hazard)

// Notify calls f(h).
func (f NotifierFunc) Notify(h Hazard) {
	f(h)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Hazard) {}
