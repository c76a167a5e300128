package rheostat

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/mikesmitty/breezy-boy/pkg/turbine"
)

// Rheostat models the variable resistor regulating output voltage.
// Settings are clamped to the physical range and ignored while disabled.
type Rheostat struct {
	resistance float64
	enabled    bool
	mu         sync.Mutex
}

func New() *Rheostat {
	return &Rheostat{
		resistance: turbine.RheostatMax,
	}
}

// Set applies a resistance in ohms, clamped to the rheostat's range.
func (r *Rheostat) Set(ohms float64) {
	if !r.GetEnable() {
		slog.Debug("set sent when rheostat not enabled", "ohms", ohms)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(ohms)
}

func (r *Rheostat) Resistance() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resistance
}

func (r *Rheostat) GetEnable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

func (r *Rheostat) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = true
	slog.Info("rheostat enabled")
}

func (r *Rheostat) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
	slog.Info("rheostat disabled")
}

// HardStop disables the rheostat and parks it at maximum resistance,
// dropping the load to its minimum.
func (r *Rheostat) HardStop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(turbine.RheostatMax)
	r.enabled = false
	slog.Info("rheostat hard stop")
	return nil
}

func (r *Rheostat) set(ohms float64) {
	if ohms < turbine.RheostatMin {
		ohms = turbine.RheostatMin
	}
	if ohms > turbine.RheostatMax {
		ohms = turbine.RheostatMax
	}
	r.resistance = ohms
	slog.Debug("rheostat set", "ohms", strconv.FormatFloat(ohms, 'f', 2, 64))
}
