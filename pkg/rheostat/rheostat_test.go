package rheostat

import (
	"testing"

	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/stretchr/testify/require"
)

func TestSetClamped(t *testing.T) {
	r := New()
	r.Enable()

	r.Set(73.6)
	require.Equal(t, 73.6, r.Resistance())

	r.Set(-50)
	require.Equal(t, turbine.RheostatMin, r.Resistance())

	r.Set(1e30)
	require.Equal(t, turbine.RheostatMax, r.Resistance())
}

func TestSetIgnoredWhenDisabled(t *testing.T) {
	r := New()
	r.Enable()
	r.Set(100)
	r.Disable()

	r.Set(200)
	require.Equal(t, 100.0, r.Resistance())
}

func TestHardStop(t *testing.T) {
	r := New()
	r.Enable()
	r.Set(100)

	require.NoError(t, r.HardStop())
	require.False(t, r.GetEnable())
	require.Equal(t, turbine.RheostatMax, r.Resistance())
}
