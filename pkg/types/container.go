package types

import "fmt"

// EmptyContents is the contents tag of a container holding no cargo.
const EmptyContents = "empty"

// Category capacity rules.
const (
	hazardousLiquidShare = 0.5
	liquidShare          = 0.9
	gasUnloadShare       = 0.95
)

// Dimensions holds the immutable physical attributes of a container.
// Weights and capacities are in kilograms, lengths in centimetres.
type Dimensions struct {
	OwnWeight   float64 `json:"own_weight" yaml:"own_weight"`
	Height      float64 `json:"height" yaml:"height"`
	Depth       float64 `json:"depth" yaml:"depth"`
	MaxCapacity float64 `json:"max_capacity" yaml:"max_capacity"`
}

// Container is a cargo container of one Kind. Containers are built by a
// Registry, which assigns the serial number and supplies the hazard notifier
// and, for refrigerated containers, the temperature table.
//
// Invariants:
//   - LoadMass is never negative and never above AllowedCapacity.
//   - Load sets mass and contents together; Unload clears both together,
//     except that a gas unload leaves a residue under the "empty" tag.
//   - A container is aboard at most one Ship.
type Container struct {
	serial string
	kind   Kind
	dims   Dimensions

	loadMass float64
	contents string

	hazardous    bool             // liquid only
	temperature  float64          // refrigerated only
	temperatures TemperatureTable // refrigerated only

	notifier HazardNotifier
	carrier  *Ship
}

func newContainer(kind Kind, serial string, dims Dimensions, notifier HazardNotifier) *Container {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Container{
		serial:   serial,
		kind:     kind,
		dims:     dims,
		contents: EmptyContents,
		notifier: notifier,
	}
}

// Serial returns the container's serial number.
func (c *Container) Serial() string { return c.serial }

// Kind returns the container's category.
func (c *Container) Kind() Kind { return c.kind }

// Dimensions returns the container's immutable attributes.
func (c *Container) Dimensions() Dimensions { return c.dims }

// OwnWeight returns the tare weight.
func (c *Container) OwnWeight() float64 { return c.dims.OwnWeight }

// MaxCapacity returns the absolute cargo ceiling.
func (c *Container) MaxCapacity() float64 { return c.dims.MaxCapacity }

// LoadMass returns the current cargo mass.
func (c *Container) LoadMass() float64 { return c.loadMass }

// Contents returns the cargo tag, EmptyContents when unloaded.
func (c *Container) Contents() string { return c.contents }

// Hazardous reports whether a liquid container carries hazardous cargo.
// Always false for other kinds.
func (c *Container) Hazardous() bool { return c.hazardous }

// Temperature returns the set point of a refrigerated container.
func (c *Container) Temperature() float64 { return c.temperature }

// SetTemperature changes the set point of a refrigerated container. It has
// no effect on other kinds. Cargo already loaded is not re-checked.
func (c *Container) SetTemperature(t float64) {
	if c.kind == KindRefrigerated {
		c.temperature = t
	}
}

// Carrier returns the ship the container is aboard, or nil.
func (c *Container) Carrier() *Ship { return c.carrier }

// GrossWeight returns the tare weight plus the cargo mass.
func (c *Container) GrossWeight() float64 {
	return c.dims.OwnWeight + c.loadMass
}

// AllowedCapacity returns the category-adjusted cargo ceiling: half of
// MaxCapacity for hazardous liquid, 90% for other liquid, MaxCapacity
// otherwise.
func (c *Container) AllowedCapacity() float64 {
	if c.kind != KindLiquid {
		return c.dims.MaxCapacity
	}
	if c.hazardous {
		return c.dims.MaxCapacity * hazardousLiquidShare
	}
	return c.dims.MaxCapacity * liquidShare
}

// Load adds mass kilograms of contents to the container.
//
// Category policy runs first. A liquid load past AllowedCapacity raises a
// hazard and fails with ErrOverfill. A refrigerated load of cargo missing
// from the temperature table returns OutcomeUnrecognizedContents and a nil
// error; cargo whose minimum temperature is above the set point raises a
// hazard and fails with ErrTemperature. The shared rules then apply:
// ErrOverfill past MaxCapacity, ErrWrongContents when mixing with different
// cargo already aboard.
//
// Returns ErrInvalidMass unless mass is positive and ErrInvalidContents for
// an empty name or the EmptyContents tag. State is unchanged unless the
// outcome is OutcomeApplied.
func (c *Container) Load(mass float64, contents string) (Outcome, error) {
	if !(mass > 0) {
		return OutcomeRejected, fmt.Errorf("load %g kg into %s: %w", mass, c.serial, ErrInvalidMass)
	}
	if contents == "" || contents == EmptyContents {
		return OutcomeRejected, fmt.Errorf("load %q into %s: %w", contents, c.serial, ErrInvalidContents)
	}

	switch c.kind {
	case KindLiquid:
		allowed := c.AllowedCapacity()
		if c.loadMass+mass > allowed {
			c.notify(HazardUnsafeCapacity, mass, contents)
			return OutcomeRejected, fmt.Errorf("load %g kg of %s into %s: safe capacity is %g kg: %w",
				mass, contents, c.serial, allowed, ErrOverfill)
		}
	case KindRefrigerated:
		required, ok := c.temperatures.Required(contents)
		if !ok {
			return OutcomeUnrecognizedContents, nil
		}
		if required > c.temperature {
			c.notify(HazardTemperature, mass, contents)
			return OutcomeRejected, fmt.Errorf("load %s into %s: needs %g °C, set point is %g °C: %w",
				contents, c.serial, required, c.temperature, ErrTemperature)
		}
	}

	if c.loadMass+mass > c.dims.MaxCapacity {
		return OutcomeRejected, fmt.Errorf("load %g kg into %s: max capacity is %g kg: %w",
			mass, c.serial, c.dims.MaxCapacity, ErrOverfill)
	}
	if c.contents != EmptyContents && c.contents != contents {
		return OutcomeRejected, fmt.Errorf("load %s into %s holding %s: %w",
			contents, c.serial, c.contents, ErrWrongContents)
	}

	c.loadMass += mass
	c.contents = contents
	return OutcomeApplied, nil
}

// Unload empties the container and resets the contents tag. A gas container
// only releases 95% of its mass; the residue stays and a hazard is raised
// whenever there was cargo to release.
func (c *Container) Unload() {
	if c.kind == KindGas {
		prev := c.contents
		hadCargo := c.loadMass > 0
		c.loadMass -= c.loadMass * gasUnloadShare
		c.contents = EmptyContents
		if hadCargo {
			c.notify(HazardGasResidue, c.loadMass, prev)
		}
		return
	}
	c.loadMass = 0
	c.contents = EmptyContents
}

// String returns a one-line human-readable summary.
func (c *Container) String() string {
	s := fmt.Sprintf("%s (%s) contents: %s, load: %g/%g kg, own weight: %g kg, dimensions: %gx%g cm",
		c.serial, c.kind, c.contents, c.loadMass, c.dims.MaxCapacity, c.dims.OwnWeight, c.dims.Height, c.dims.Depth)
	switch c.kind {
	case KindLiquid:
		if c.hazardous {
			s += ", hazardous"
		}
	case KindRefrigerated:
		s += fmt.Sprintf(", set point: %g °C", c.temperature)
	}
	return s
}

func (c *Container) notify(reason HazardReason, mass float64, contents string) {
	if !c.kind.notifies() {
		return
	}
	c.notifier.Notify(Hazard{
		Serial:   c.serial,
		Kind:     c.kind,
		Reason:   reason,
		Mass:     mass,
		Contents: contents,
	})
}
