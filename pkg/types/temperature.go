package types

import (
	"maps"
	"slices"
)

// TemperatureTable maps recognized refrigerated cargo names to their
// required minimum storage temperature in degrees Celsius. A container whose
// set point is below the value may not take the cargo.
type TemperatureTable map[string]float64

// DefaultTemperatures returns a fresh copy of the standard cargo table.
func DefaultTemperatures() TemperatureTable {
	return TemperatureTable{
		"Bananas":      13.3,
		"Chocolate":    18,
		"Fish":         2,
		"Meat":         -15,
		"Ice cream":    -18,
		"Frozen pizza": -30,
		"Cheese":       7.2,
		"Sausages":     5,
		"Butter":       20.5,
		"Eggs":         19,
	}
}

// Required returns the minimum temperature for cargo. The second result
// is false when the cargo is not recognized.
func (t TemperatureTable) Required(cargo string) (float64, bool) {
	v, ok := t[cargo]
	return v, ok
}

// Names returns the recognized cargo names in sorted order.
func (t TemperatureTable) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Merge returns a new table holding t's entries overlaid with other's.
// Neither input is modified.
func (t TemperatureTable) Merge(other TemperatureTable) TemperatureTable {
	out := make(TemperatureTable, len(t)+len(other))
	maps.Copy(out, t)
	maps.Copy(out, other)
	return out
}

// Clone returns a copy of t. A nil table clones to an empty one.
func (t TemperatureTable) Clone() TemperatureTable {
	return t.Merge(nil)
}
