package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mesh-intelligence/harbor/internal/manifest"
	"github.com/mesh-intelligence/harbor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	temp := 4.0
	tests := []struct {
		name   string
		result manifest.Result
		want   []string
	}{
		{
			name: "applied load",
			result: manifest.Result{
				Index:   1,
				Step:    manifest.Step{Op: manifest.OpLoad, Container: "tank", Mass: 900, Contents: "Fuel"},
				Outcome: types.OutcomeApplied,
				Got:     manifest.ExpectOK,
			},
			want: []string{"  1  load", "tank <- 900 kg Fuel", "applied"},
		},
		{
			name: "expected refusal with hazard",
			result: manifest.Result{
				Index:   2,
				Step:    manifest.Step{Op: manifest.OpLoad, Container: "tank", Mass: 200, Contents: "Fuel", Expect: manifest.ExpectOverfill},
				Err:     types.ErrOverfill,
				Got:     manifest.ExpectOverfill,
				Hazards: []types.Hazard{{Serial: "KON-L-1", Kind: types.KindLiquid, Reason: types.HazardUnsafeCapacity, Mass: 200, Contents: "Fuel"}},
			},
			want: []string{"refused: ", "! hazard KON-L-1 (liquid): unsafe_capacity, 200 kg Fuel"},
		},
		{
			name: "unexpected",
			result: manifest.Result{
				Index: 3,
				Step:  manifest.Step{Op: manifest.OpAdd, Container: "tank", Ship: "Aurora"},
				Err:   errors.New("ship weight limit"),
				Got:   manifest.ExpectOverfill,
			},
			want: []string{"tank -> Aurora", "UNEXPECTED overfill, want ok: ship weight limit"},
		},
		{
			name: "not found",
			result: manifest.Result{
				Index:   4,
				Step:    manifest.Step{Op: manifest.OpRemove, Container: "tank", Ship: "Aurora", Expect: manifest.ExpectNotFound},
				Outcome: types.OutcomeNotFound,
				Got:     manifest.ExpectNotFound,
			},
			want: []string{"tank <- Aurora", "not found"},
		},
		{
			name: "set temperature",
			result: manifest.Result{
				Index:   5,
				Step:    manifest.Step{Op: manifest.OpSetTemperature, Container: "box", Temperature: &temp},
				Outcome: types.OutcomeApplied,
				Got:     manifest.ExpectOK,
			},
			want: []string{"box at 4 °C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, false).Step(tt.result)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestFleet(t *testing.T) {
	reg := types.NewRegistry()
	fleet := types.NewFleet()
	ship := types.NewShip("Aurora", 20, 3, 9000)
	require.NoError(t, fleet.Launch(ship))
	gas := reg.NewGas(types.Dimensions{OwnWeight: 100, Height: 150, Depth: 150, MaxCapacity: 500})
	_, err := gas.Load(200, "Helium")
	require.NoError(t, err)
	require.NoError(t, ship.Add(gas))

	var buf bytes.Buffer
	New(&buf, false).Fleet(fleet)

	out := buf.String()
	assert.Contains(t, out, "Aurora  1/3 containers, 300/")
	assert.Contains(t, out, "max speed 20 kn")
	assert.Contains(t, out, "KON-G-1 (gas)")
	assert.Contains(t, out, "aboard Aurora")
	assert.Contains(t, out, "fleet weight: 300 kg")
}

func TestContainerAshore(t *testing.T) {
	c := types.NewRegistry().NewLiquid(types.Dimensions{MaxCapacity: 100}, false)

	var buf bytes.Buffer
	New(&buf, false).Container(c)

	assert.Contains(t, buf.String(), "ashore")
}

func TestTemperatures(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Temperatures(types.TemperatureTable{"Fish": 2, "Bananas": 13.3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Cargo")
	assert.True(t, strings.HasPrefix(lines[1], "Bananas"))
	assert.Contains(t, lines[1], "13.3")
	assert.True(t, strings.HasPrefix(lines[2], "Fish"))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Summary(manifest.Summary{Steps: 5, Applied: 3, Refused: 2, Hazards: 1, Unexpected: 0})

	assert.Equal(t, "5 steps: 3 applied, 2 refused, 1 hazards, 0 unexpected\n", buf.String())
}

func TestColorOffIsPlain(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Heading("Fleet")

	assert.Equal(t, "Fleet\n", buf.String())
}

func TestColorOn(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Heading("Fleet")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Fleet")
}
