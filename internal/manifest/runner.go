package manifest

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/harbor/internal/notify"
	"github.com/mesh-intelligence/harbor/pkg/types"
	"go.uber.org/zap"
)

// Result is the record of one executed step.
type Result struct {
	Index   int // 1-based
	Step    Step
	Outcome types.Outcome
	Err     error
	Hazards []types.Hazard
	Got     string // classification compared against Step.Want
}

// Expected reports whether the step ended the way the manifest declared.
func (r Result) Expected() bool {
	return r.Got == r.Step.Want()
}

// Option configures a Runner.
type Option func(*Runner)

// WithNotifier adds a hazard notifier alongside the runner's own recorder.
func WithNotifier(n types.HazardNotifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithTemperatures sets the refrigerated cargo table.
func WithTemperatures(t types.TemperatureTable) Option {
	return func(r *Runner) { r.temperatures = t }
}

// WithLogger sets the logger steps are reported to.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// Runner owns the registry, fleet and containers built from a manifest and
// executes its steps in order.
type Runner struct {
	manifest     *Manifest
	notifier     types.HazardNotifier
	temperatures types.TemperatureTable
	log          *zap.Logger

	recorder   *notify.Recorder
	registry   *types.Registry
	fleet      *types.Fleet
	containers map[string]*types.Container
	next       int
}

// NewRunner launches the manifest's ships and builds its containers.
func NewRunner(m *Manifest, opts ...Option) (*Runner, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		manifest:   m,
		log:        zap.NewNop(),
		recorder:   &notify.Recorder{},
		fleet:      types.NewFleet(),
		containers: make(map[string]*types.Container, len(m.Containers)),
	}
	for _, opt := range opts {
		opt(r)
	}

	regOpts := []types.RegistryOption{types.WithNotifier(notify.Multi(r.notifier, r.recorder))}
	if r.temperatures != nil {
		regOpts = append(regOpts, types.WithTemperatures(r.temperatures))
	}
	r.registry = types.NewRegistry(regOpts...)

	for _, s := range m.Ships {
		if err := r.fleet.Launch(types.NewShip(s.Name, s.MaxSpeed, s.MaxContainers, s.MaxWeight)); err != nil {
			return nil, err
		}
	}
	for _, cs := range m.Containers {
		c := r.build(cs)
		r.containers[cs.ID] = c
		r.log.Debug("container built", zap.String("id", cs.ID), zap.String("serial", c.Serial()))
	}
	return r, nil
}

func (r *Runner) build(cs ContainerSpec) *types.Container {
	kind, _ := types.ParseKind(cs.Kind)
	switch kind {
	case types.KindLiquid:
		return r.registry.NewLiquid(cs.Dimensions, cs.Hazardous)
	case types.KindGas:
		return r.registry.NewGas(cs.Dimensions)
	default:
		return r.registry.NewRefrigerated(cs.Dimensions, cs.Temperature)
	}
}

// Fleet returns the launched ships.
func (r *Runner) Fleet() *types.Fleet { return r.fleet }

// Registry returns the registry that issued the containers.
func (r *Runner) Registry() *types.Registry { return r.registry }

// Container returns the container built for the manifest handle id.
func (r *Runner) Container(id string) (*types.Container, bool) {
	c, ok := r.containers[id]
	return c, ok
}

// Containers returns the built containers in manifest order.
func (r *Runner) Containers() []*types.Container {
	out := make([]*types.Container, 0, len(r.manifest.Containers))
	for _, cs := range r.manifest.Containers {
		out = append(out, r.containers[cs.ID])
	}
	return out
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.next >= len(r.manifest.Steps)
}

// Next runs the next step. It returns false once the script is exhausted.
func (r *Runner) Next() (Result, bool) {
	if r.Done() {
		return Result{}, false
	}
	st := r.manifest.Steps[r.next]
	r.next++

	outcome, err := r.apply(st)
	res := Result{
		Index:   r.next,
		Step:    st,
		Outcome: outcome,
		Err:     err,
		Hazards: r.recorder.Drain(),
		Got:     Classify(outcome, err),
	}

	fields := []zap.Field{
		zap.Int("step", res.Index),
		zap.String("op", string(st.Op)),
		zap.Stringer("outcome", outcome),
		zap.String("got", res.Got),
	}
	switch {
	case !res.Expected():
		r.log.Error("step did not match expectation", append(fields, zap.String("want", st.Want()), zap.Error(err))...)
	case err != nil || !outcome.Applied():
		r.log.Info("step refused as expected", append(fields, zap.Error(err))...)
	default:
		r.log.Debug("step applied", fields...)
	}
	return res, true
}

// Run executes the remaining steps and returns their results.
func (r *Runner) Run() []Result {
	var results []Result
	for {
		res, ok := r.Next()
		if !ok {
			return results
		}
		results = append(results, res)
	}
}

func (r *Runner) apply(st Step) (types.Outcome, error) {
	c := r.containers[st.Container]
	switch st.Op {
	case OpLoad:
		return c.Load(st.Mass, st.Contents)
	case OpUnload:
		c.Unload()
		return types.OutcomeApplied, nil
	case OpSetTemperature:
		if c.Kind() != types.KindRefrigerated {
			return types.OutcomeRejected, fmt.Errorf("set temperature on %s: %w", c.Serial(), ErrNotRefrigerated)
		}
		c.SetTemperature(*st.Temperature)
		return types.OutcomeApplied, nil
	}

	ship, err := r.fleet.Ship(st.Ship)
	if err != nil {
		return types.OutcomeRejected, err
	}
	switch st.Op {
	case OpAdd:
		if err := ship.Add(c); err != nil {
			return types.OutcomeRejected, err
		}
		return types.OutcomeApplied, nil
	case OpRemove:
		return ship.Remove(c), nil
	case OpTransfer:
		dst, err := r.fleet.Ship(st.To)
		if err != nil {
			return types.OutcomeRejected, err
		}
		return ship.Transfer(c, dst)
	case OpReplace:
		return ship.Replace(c.Serial(), r.containers[st.With])
	}
	return types.OutcomeRejected, fmt.Errorf("%w: unknown op %q", ErrInvalidManifest, st.Op)
}

// Classify maps an outcome and error onto an expectation value.
func Classify(outcome types.Outcome, err error) string {
	switch {
	case err == nil && outcome == types.OutcomeApplied:
		return ExpectOK
	case err == nil && outcome == types.OutcomeUnrecognizedContents:
		return ExpectUnrecognized
	case err == nil && outcome == types.OutcomeNotFound:
		return ExpectNotFound
	case errors.Is(err, types.ErrOverfill):
		return ExpectOverfill
	case errors.Is(err, types.ErrWrongContents):
		return ExpectWrongContents
	case errors.Is(err, types.ErrTemperature):
		return ExpectTemperature
	case errors.Is(err, types.ErrAlreadyAboard):
		return ExpectAlreadyAboard
	}
	return ExpectInvalid
}

// Summary counts results.
type Summary struct {
	Steps      int
	Applied    int
	Refused    int
	Hazards    int
	Unexpected int
}

// Tally summarises results.
func Tally(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Steps++
		if r.Err == nil && r.Outcome.Applied() {
			s.Applied++
		} else {
			s.Refused++
		}
		s.Hazards += len(r.Hazards)
		if !r.Expected() {
			s.Unexpected++
		}
	}
	return s
}
