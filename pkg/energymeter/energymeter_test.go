package energymeter

import (
	"testing"

	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/stretchr/testify/require"
)

func TestRunningTotal(t *testing.T) {
	input := make(chan turbine.Result, 3)
	out, run := NewEnergyMeter(input)

	input <- turbine.Result{EnergyKWh: 1.5}
	input <- turbine.Result{EnergyKWh: 2.5}
	input <- turbine.Result{EnergyKWh: -1.0}
	close(input)

	done := make(chan error, 1)
	go func() { done <- run() }()

	require.InDelta(t, 1.5, <-out, 1e-12)
	require.InDelta(t, 4.0, <-out, 1e-12)
	require.InDelta(t, 3.0, <-out, 1e-12)
	require.NoError(t, <-done)
}
