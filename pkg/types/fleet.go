package types

import "fmt"

// Fleet is a set of ships addressed by name, kept in launch order.
type Fleet struct {
	ships  []*Ship
	byName map[string]*Ship
}

// NewFleet returns an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{byName: make(map[string]*Ship)}
}

// Launch adds s to the fleet.
// Returns ErrDuplicateShip if a ship with the same name is already present.
func (f *Fleet) Launch(s *Ship) error {
	if s == nil {
		return ErrNilShip
	}
	if _, ok := f.byName[s.Name]; ok {
		return fmt.Errorf("launch %q: %w", s.Name, ErrDuplicateShip)
	}
	f.byName[s.Name] = s
	f.ships = append(f.ships, s)
	return nil
}

// Ship returns the ship with the given name.
// Returns ErrShipNotFound if no ship has that name.
func (f *Fleet) Ship(name string) (*Ship, error) {
	s, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("ship %q: %w", name, ErrShipNotFound)
	}
	return s, nil
}

// Ships returns the ships in launch order.
func (f *Fleet) Ships() []*Ship {
	out := make([]*Ship, len(f.ships))
	copy(out, f.ships)
	return out
}

// Locate finds the ship carrying the container with the given serial.
// Returns ErrContainerNotFound if no ship in the fleet carries it.
func (f *Fleet) Locate(serial string) (*Ship, *Container, error) {
	for _, s := range f.ships {
		if c, ok := s.Find(serial); ok {
			return s, c, nil
		}
	}
	return nil, nil, fmt.Errorf("container %s: %w", serial, ErrContainerNotFound)
}

// TotalWeight returns the gross weight carried by the whole fleet.
func (f *Fleet) TotalWeight() float64 {
	var total float64
	for _, s := range f.ships {
		total += s.TotalWeight()
	}
	return total
}
