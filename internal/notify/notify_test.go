package notify

import (
	"testing"

	"github.com/mesh-intelligence/harbor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var dims = types.Dimensions{OwnWeight: 100, Height: 150, Depth: 150, MaxCapacity: 2000}

func TestLoggerNotify(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	reg := types.NewRegistry(types.WithNotifier(NewLogger(zap.New(core))))
	c := reg.NewLiquid(dims, true)

	_, err := c.Load(1900, "Fuel")
	require.ErrorIs(t, err, types.ErrOverfill)

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "hazard", e.LoggerName)
	assert.Equal(t, "load exceeds safe capacity", e.Message)
	fields := e.ContextMap()
	assert.Equal(t, c.Serial(), fields["serial"])
	assert.Equal(t, "liquid", fields["kind"])
	assert.Equal(t, "unsafe_capacity", fields["reason"])
	assert.Equal(t, 1900.0, fields["mass"])
	assert.Equal(t, "Fuel", fields["contents"])
}

func TestLoggerNil(t *testing.T) {
	n := NewLogger(nil)
	assert.NotPanics(t, func() {
		n.Notify(types.Hazard{Reason: types.HazardGasResidue})
	})
}

func TestRecorderDrain(t *testing.T) {
	rec := &Recorder{}
	reg := types.NewRegistry(types.WithNotifier(rec))
	gas := reg.NewGas(dims)
	_, err := gas.Load(200, "Helium")
	require.NoError(t, err)

	gas.Unload()

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, types.HazardGasResidue, got[0].Reason)
	assert.Empty(t, rec.Drain(), "drain forgets recorded hazards")
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	n := Multi(a, nil, b)

	n.Notify(types.Hazard{Serial: "KON-G-1", Reason: types.HazardGasResidue})

	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}
