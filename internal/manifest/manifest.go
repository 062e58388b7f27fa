// Package manifest reads fleet manifests: the ships to launch, the
// containers to build, and a script of steps to run against them.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/harbor/pkg/types"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidManifest wraps every validation failure.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrNotRefrigerated is returned by set_temperature on a container of
	// another kind.
	ErrNotRefrigerated = errors.New("container is not refrigerated")
)

// Op names a step operation.
type Op string

// Step operations.
const (
	OpLoad           Op = "load"
	OpUnload         Op = "unload"
	OpAdd            Op = "add"
	OpRemove         Op = "remove"
	OpTransfer       Op = "transfer"
	OpReplace        Op = "replace"
	OpSetTemperature Op = "set_temperature"
)

// Expectation values a step may declare.
const (
	ExpectOK            = "ok"
	ExpectOverfill      = "overfill"
	ExpectWrongContents = "wrong_contents"
	ExpectTemperature   = "temperature"
	ExpectUnrecognized  = "unrecognized"
	ExpectNotFound      = "not_found"
	ExpectAlreadyAboard = "already_aboard"
	ExpectInvalid       = "invalid"
)

var expectations = map[string]bool{
	ExpectOK: true, ExpectOverfill: true, ExpectWrongContents: true,
	ExpectTemperature: true, ExpectUnrecognized: true, ExpectNotFound: true,
	ExpectAlreadyAboard: true, ExpectInvalid: true,
}

// Manifest is the decoded manifest file.
type Manifest struct {
	Name       string          `yaml:"name,omitempty"`
	Ships      []ShipSpec      `yaml:"ships"`
	Containers []ContainerSpec `yaml:"containers"`
	Steps      []Step          `yaml:"steps"`
}

// ShipSpec describes a ship to launch.
type ShipSpec struct {
	Name          string  `yaml:"name"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxContainers int     `yaml:"max_containers"`
	MaxWeight     float64 `yaml:"max_weight"`
}

// ContainerSpec describes a container to build. ID is a handle local to the
// manifest; the serial number is issued at run time.
type ContainerSpec struct {
	ID          string           `yaml:"id"`
	Kind        string           `yaml:"kind"`
	Dimensions  types.Dimensions `yaml:",inline"`
	Hazardous   bool             `yaml:"hazardous,omitempty"`
	Temperature float64          `yaml:"temperature,omitempty"`
}

// Step is one scripted operation.
//
//	load            container, mass, contents
//	unload          container
//	add, remove     ship, container
//	transfer        ship (source), to, container
//	replace         ship, container (aboard), with
//	set_temperature container, temperature
type Step struct {
	Op          Op       `yaml:"op"`
	Ship        string   `yaml:"ship,omitempty"`
	To          string   `yaml:"to,omitempty"`
	Container   string   `yaml:"container,omitempty"`
	With        string   `yaml:"with,omitempty"`
	Mass        float64  `yaml:"mass,omitempty"`
	Contents    string   `yaml:"contents,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	Expect      string   `yaml:"expect,omitempty"`
}

// Want returns the declared expectation, defaulting to ok.
func (s Step) Want() string {
	if s.Expect == "" {
		return ExpectOK
	}
	return s.Expect
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks names, references and the fields each step needs. All
// problems are reported together.
func (m *Manifest) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidManifest, fmt.Sprintf(format, args...)))
	}

	ships := make(map[string]bool, len(m.Ships))
	for i, s := range m.Ships {
		switch {
		case s.Name == "":
			fail("ships[%d]: name is required", i)
		case ships[s.Name]:
			fail("ships[%d]: duplicate name %q", i, s.Name)
		}
		if s.MaxContainers < 0 || s.MaxWeight < 0 || s.MaxSpeed < 0 {
			fail("ships[%d]: limits must not be negative", i)
		}
		ships[s.Name] = true
	}

	containers := make(map[string]bool, len(m.Containers))
	for i, c := range m.Containers {
		switch {
		case c.ID == "":
			fail("containers[%d]: id is required", i)
		case containers[c.ID]:
			fail("containers[%d]: duplicate id %q", i, c.ID)
		}
		if _, ok := types.ParseKind(c.Kind); !ok {
			fail("containers[%d]: unknown kind %q", i, c.Kind)
		}
		if c.Dimensions.MaxCapacity < 0 || c.Dimensions.OwnWeight < 0 {
			fail("containers[%d]: weights must not be negative", i)
		}
		containers[c.ID] = true
	}

	needShip := func(i int, field, name string) {
		if name == "" {
			fail("steps[%d]: %s is required", i, field)
		} else if !ships[name] {
			fail("steps[%d]: unknown ship %q", i, name)
		}
	}
	needContainer := func(i int, field, id string) {
		if id == "" {
			fail("steps[%d]: %s is required", i, field)
		} else if !containers[id] {
			fail("steps[%d]: unknown container %q", i, id)
		}
	}

	for i, st := range m.Steps {
		if st.Expect != "" && !expectations[st.Expect] {
			fail("steps[%d]: unknown expectation %q", i, st.Expect)
		}
		switch st.Op {
		case OpLoad:
			needContainer(i, "container", st.Container)
		case OpUnload:
			needContainer(i, "container", st.Container)
		case OpAdd, OpRemove:
			needShip(i, "ship", st.Ship)
			needContainer(i, "container", st.Container)
		case OpTransfer:
			needShip(i, "ship", st.Ship)
			needShip(i, "to", st.To)
			needContainer(i, "container", st.Container)
		case OpReplace:
			needShip(i, "ship", st.Ship)
			needContainer(i, "container", st.Container)
			needContainer(i, "with", st.With)
		case OpSetTemperature:
			needContainer(i, "container", st.Container)
			if st.Temperature == nil {
				fail("steps[%d]: temperature is required", i)
			}
		default:
			fail("steps[%d]: unknown op %q", i, st.Op)
		}
	}

	return errors.Join(errs...)
}
