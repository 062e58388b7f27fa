// Package notify provides hazard notifiers for container registries.
package notify

import (
	"github.com/mesh-intelligence/harbor/pkg/types"
	"go.uber.org/zap"
)

var messages = map[types.HazardReason]string{
	types.HazardUnsafeCapacity: "load exceeds safe capacity",
	types.HazardTemperature:    "set point below cargo minimum temperature",
	types.HazardGasResidue:     "gas residue left in container",
}

// Logger reports hazards as zap warnings.
type Logger struct {
	log *zap.Logger
}

// NewLogger returns a notifier writing to log. A nil logger discards.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("hazard")}
}

// Notify logs h at warn level.
func (l *Logger) Notify(h types.Hazard) {
	msg, ok := messages[h.Reason]
	if !ok {
		msg = "container hazard"
	}
	l.log.Warn(msg,
		zap.String("serial", h.Serial),
		zap.Stringer("kind", h.Kind),
		zap.String("reason", string(h.Reason)),
		zap.Float64("mass", h.Mass),
		zap.String("contents", h.Contents),
	)
}

// Recorder keeps hazards in memory until drained.
type Recorder struct {
	hazards []types.Hazard
}

// Notify appends h.
func (r *Recorder) Notify(h types.Hazard) {
	r.hazards = append(r.hazards, h)
}

// Drain returns the hazards recorded since the last call and forgets them.
func (r *Recorder) Drain() []types.Hazard {
	out := r.hazards
	r.hazards = nil
	return out
}

// Multi fans each hazard out to every non-nil notifier in order.
func Multi(notifiers ...types.HazardNotifier) types.HazardNotifier {
	var live []types.HazardNotifier
	for _, n := range notifiers {
		if n != nil {
			live = append(live, n)
		}
	}
	return types.NotifierFunc(func(h types.Hazard) {
		for _, n := range live {
			n.Notify(h)
		}
	})
}
