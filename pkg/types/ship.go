package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Ship carries containers up to a total gross weight and a container count.
// The ship owns the containers in its collection: a container is aboard at
// most one ship, and only Ship methods move it. Every method either applies
// fully or leaves both the ship and the containers unchanged.
type Ship struct {
	ShipID        string  // UUID v7, generated on construction.
	Name          string  // Human-readable name.
	MaxSpeed      float64 // Knots; descriptive only.
	MaxContainers int     // Container count ceiling.
	MaxWeight     float64 // Gross weight ceiling in kilograms.

	containers []*Container
}

// NewShip returns an empty ship with a fresh ShipID.
func NewShip(name string, maxSpeed float64, maxContainers int, maxWeight float64) *Ship {
	return &Ship{
		ShipID:        newShipID(),
		Name:          name,
		MaxSpeed:      maxSpeed,
		MaxContainers: maxContainers,
		MaxWeight:     maxWeight,
	}
}

func newShipID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// TotalWeight returns the gross weight of every container aboard. It is
// computed on each call and reflects loads made after boarding.
func (s *Ship) TotalWeight() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.GrossWeight()
	}
	return total
}

// Len returns the number of containers aboard.
func (s *Ship) Len() int {
	return len(s.containers)
}

// Containers returns the containers aboard in boarding order. The slice is
// a copy; the containers are not.
func (s *Ship) Containers() []*Container {
	out := make([]*Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// Find returns the container aboard with the given serial number.
func (s *Ship) Find(serial string) (*Container, bool) {
	for _, c := range s.containers {
		if c.serial == serial {
			return c, true
		}
	}
	return nil, false
}

// Add puts c aboard. The weight limit is checked before the count limit and
// the first failure is reported: ErrWeightLimit when the projected gross
// weight passes MaxWeight, ErrCountLimit when the count would pass
// MaxContainers. Both match ErrOverfill.
// Returns ErrAlreadyAboard if c is aboard any ship, this one included.
func (s *Ship) Add(c *Container) error {
	if c == nil {
		return ErrNilContainer
	}
	if c.carrier != nil {
		return fmt.Errorf("add %s to %s: %w", c.serial, s.label(), ErrAlreadyAboard)
	}
	if err := s.admit(c, s.TotalWeight(), len(s.containers)); err != nil {
		return err
	}
	s.attach(c, len(s.containers))
	return nil
}

// AddAll puts every container aboard in order. Limits are checked against
// the running totals of the batch; if any container is rejected none are
// added. Returns ErrAlreadyAboard if a container is aboard a ship or listed
// twice.
func (s *Ship) AddAll(cs ...*Container) error {
	weight := s.TotalWeight()
	count := len(s.containers)
	seen := make(map[*Container]bool, len(cs))
	for _, c := range cs {
		if c == nil {
			return ErrNilContainer
		}
		if c.carrier != nil || seen[c] {
			return fmt.Errorf("add %s to %s: %w", c.serial, s.label(), ErrAlreadyAboard)
		}
		seen[c] = true
		if err := s.admit(c, weight, count); err != nil {
			return err
		}
		weight += c.GrossWeight()
		count++
	}
	for _, c := range cs {
		s.attach(c, len(s.containers))
	}
	return nil
}

// Remove takes c off the ship. It returns OutcomeNotFound, changing
// nothing, when c is not aboard.
func (s *Ship) Remove(c *Container) Outcome {
	i := s.indexOf(c)
	if i < 0 {
		return OutcomeNotFound
	}
	s.detach(i)
	return OutcomeApplied
}

// Transfer moves c from this ship to dst. The destination validates c as in
// Add; when it refuses, c goes back to its original position here and the
// destination's error is returned. Returns OutcomeNotFound when c is not
// aboard this ship. Transferring to the same ship is a no-op.
func (s *Ship) Transfer(c *Container, dst *Ship) (Outcome, error) {
	if c == nil {
		return OutcomeRejected, ErrNilContainer
	}
	if dst == nil {
		return OutcomeRejected, ErrNilShip
	}
	i := s.indexOf(c)
	if i < 0 {
		return OutcomeNotFound, nil
	}
	if dst == s {
		return OutcomeApplied, nil
	}

	s.detach(i)
	if err := dst.Add(c); err != nil {
		s.attach(c, i)
		return OutcomeRejected, fmt.Errorf("transfer %s from %s: %w", c.serial, s.label(), err)
	}
	return OutcomeApplied, nil
}

// Replace swaps the container aboard with the given serial number for c,
// keeping its position. c is validated as if the old container had already
// left. Returns OutcomeNotFound when no container has that serial, and
// ErrAlreadyAboard when c is aboard a ship.
func (s *Ship) Replace(serial string, c *Container) (Outcome, error) {
	if c == nil {
		return OutcomeRejected, ErrNilContainer
	}
	i := slices.IndexFunc(s.containers, func(aboard *Container) bool { return aboard.serial == serial })
	if i < 0 {
		return OutcomeNotFound, nil
	}
	old := s.containers[i]
	if old == c {
		return OutcomeApplied, nil
	}
	if c.carrier != nil {
		return OutcomeRejected, fmt.Errorf("replace %s with %s on %s: %w", serial, c.serial, s.label(), ErrAlreadyAboard)
	}
	if err := s.admit(c, s.TotalWeight()-old.GrossWeight(), len(s.containers)-1); err != nil {
		return OutcomeRejected, err
	}

	old.carrier = nil
	s.containers[i] = c
	c.carrier = s
	return OutcomeApplied, nil
}

// String lists the serial numbers aboard and the maximum speed.
func (s *Ship) String() string {
	serials := make([]string, len(s.containers))
	for i, c := range s.containers {
		serials[i] = c.serial
	}
	return fmt.Sprintf("%s, max speed: %g kn, containers: [%s]", s.label(), s.MaxSpeed, strings.Join(serials, ", "))
}

// admit checks c against the limits given the weight and count already
// aboard.
func (s *Ship) admit(c *Container, weight float64, count int) error {
	if projected := weight + c.GrossWeight(); projected > s.MaxWeight {
		return fmt.Errorf("add %s to %s: %g of %g kg: %w", c.serial, s.label(), projected, s.MaxWeight, ErrWeightLimit)
	}
	if count+1 > s.MaxContainers {
		return fmt.Errorf("add %s to %s: %d of %d containers: %w", c.serial, s.label(), count+1, s.MaxContainers, ErrCountLimit)
	}
	return nil
}

func (s *Ship) attach(c *Container, i int) {
	s.containers = slices.Insert(s.containers, i, c)
	c.carrier = s
}

func (s *Ship) detach(i int) {
	c := s.containers[i]
	s.containers = slices.Delete(s.containers, i, i+1)
	c.carrier = nil
}

func (s *Ship) indexOf(c *Container) int {
	return slices.Index(s.containers, c)
}

func (s *Ship) label() string {
	if s.Name != "" {
		return "ship " + s.Name
	}
	return "ship " + s.ShipID
}
