package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/mesh-intelligence/harbor/internal/notify"
	"github.com/mesh-intelligence/harbor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunnerDemo(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	extra := &notify.Recorder{}
	r, err := NewRunner(Demo(), WithNotifier(extra), WithLogger(zap.New(core)))
	require.NoError(t, err)

	results := r.Run()

	require.True(t, r.Done())
	for _, res := range results {
		assert.True(t, res.Expected(), "step %d (%s): want %s, got %s, err %v",
			res.Index, res.Step.Op, res.Step.Want(), res.Got, res.Err)
	}
	sum := Tally(results)
	assert.Equal(t, len(results), sum.Steps)
	assert.Zero(t, sum.Unexpected)
	assert.Equal(t, 4, sum.Hazards)
	assert.Len(t, extra.Drain(), 4, "user notifier sees every hazard")
	assert.Zero(t, logs.FilterMessage("step did not match expectation").Len())

	helium, ok := r.Container("helium")
	require.True(t, ok)
	assert.Equal(t, 10.0, helium.LoadMass())
	assert.Equal(t, types.EmptyContents, helium.Contents())
	assert.Nil(t, helium.Carrier(), "replaced containers leave the ship")

	aurora, err := r.Fleet().Ship("Aurora")
	require.NoError(t, err)
	assert.Equal(t, 2, aurora.Len())
	borealis, err := r.Fleet().Ship("Borealis")
	require.NoError(t, err)
	milk, _ := r.Container("milk")
	assert.Same(t, borealis, milk.Carrier())

	assert.Equal(t, uint64(4), r.Registry().Issued())
	serials := make([]string, 0, 4)
	for _, c := range r.Containers() {
		serials = append(serials, c.Serial())
	}
	assert.Equal(t, []string{"KON-C-1", "KON-G-2", "KON-L-3", "KON-L-4"}, serials)
}

func TestRunnerStepHazards(t *testing.T) {
	r, err := NewRunner(Demo())
	require.NoError(t, err)

	var overfill Result
	for {
		res, ok := r.Next()
		require.True(t, ok)
		if res.Step.Op == OpLoad && res.Step.Mass == 1900 {
			overfill = res
			break
		}
	}

	assert.ErrorIs(t, overfill.Err, types.ErrOverfill)
	require.Len(t, overfill.Hazards, 1)
	assert.Equal(t, types.HazardUnsafeCapacity, overfill.Hazards[0].Reason)
	assert.Equal(t, "KON-L-3", overfill.Hazards[0].Serial)
}

func TestRunnerUnexpected(t *testing.T) {
	m, err := Parse(strings.NewReader(`
ships:
  - name: Tug
    max_speed: 5
    max_containers: 1
    max_weight: 100
containers:
  - id: crate
    kind: refrigerated
    own_weight: 200
    height: 1
    depth: 1
    max_capacity: 500
    temperature: 0
steps:
  - op: add
    ship: Tug
    container: crate
  - op: load
    container: crate
    mass: 10
    contents: Gravel
  - op: set_temperature
    container: crate
    temperature: -40
`))
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)
	r, err := NewRunner(m, WithLogger(zap.New(core)))
	require.NoError(t, err)

	results := r.Run()

	require.Len(t, results, 3)
	assert.Equal(t, ExpectOverfill, results[0].Got)
	assert.False(t, results[0].Expected())
	assert.Equal(t, ExpectUnrecognized, results[1].Got)
	assert.Equal(t, ExpectOK, results[2].Got)
	assert.Equal(t, 2, Tally(results).Unexpected)
	assert.Equal(t, 2, logs.FilterMessage("step did not match expectation").Len())
}

func TestRunnerWithTemperatures(t *testing.T) {
	m, err := Parse(strings.NewReader(`
containers:
  - id: box
    kind: refrigerated
    max_capacity: 100
    temperature: 4
steps:
  - op: load
    container: box
    mass: 10
    contents: Tofu
`))
	require.NoError(t, err)
	table := types.DefaultTemperatures().Merge(types.TemperatureTable{"Tofu": 3})
	r, err := NewRunner(m, WithTemperatures(table))
	require.NoError(t, err)

	results := r.Run()

	require.Len(t, results, 1)
	assert.Equal(t, ExpectOK, results[0].Got)
}

func TestSetTemperatureOnOtherKind(t *testing.T) {
	m, err := Parse(strings.NewReader(`
containers:
  - id: tank
    kind: gas
steps:
  - op: set_temperature
    container: tank
    temperature: 3
    expect: invalid
`))
	require.NoError(t, err)
	r, err := NewRunner(m)
	require.NoError(t, err)

	res, ok := r.Next()

	require.True(t, ok)
	assert.ErrorIs(t, res.Err, ErrNotRefrigerated)
	assert.True(t, res.Expected())
	_, ok = r.Next()
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		outcome types.Outcome
		err     error
		want    string
	}{
		{"applied", types.OutcomeApplied, nil, ExpectOK},
		{"unrecognized", types.OutcomeUnrecognizedContents, nil, ExpectUnrecognized},
		{"not found", types.OutcomeNotFound, nil, ExpectNotFound},
		{"overfill", types.OutcomeRejected, types.ErrOverfill, ExpectOverfill},
		{"count limit", types.OutcomeRejected, types.ErrCountLimit, ExpectOverfill},
		{"weight limit", types.OutcomeRejected, types.ErrWeightLimit, ExpectOverfill},
		{"wrong contents", types.OutcomeRejected, types.ErrWrongContents, ExpectWrongContents},
		{"temperature", types.OutcomeRejected, types.ErrTemperature, ExpectTemperature},
		{"already aboard", types.OutcomeRejected, types.ErrAlreadyAboard, ExpectAlreadyAboard},
		{"invalid mass", types.OutcomeRejected, types.ErrInvalidMass, ExpectInvalid},
		{"other", types.OutcomeRejected, errors.New("boom"), ExpectInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.outcome, tt.err))
		})
	}
}
