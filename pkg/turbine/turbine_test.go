package turbine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectiveWindSpeed(t *testing.T) {
	// cos(0) is exactly 1, so the projection is exact
	require.Equal(t, 60.0, EffectiveWindSpeed(60, 0))
	require.Equal(t, -12.5, EffectiveWindSpeed(-12.5, 0))

	// perpendicular wind projects to (nearly) nothing
	require.InDelta(t, 0, EffectiveWindSpeed(60, 90), 1e-9)
}

func TestAngularSpeed(t *testing.T) {
	require.InDelta(t, 0.145, AngularSpeed(60, 600), 1e-12)

	// temperature zero is deliberately unguarded and divides to Inf/NaN
	require.True(t, math.IsInf(AngularSpeed(60, 0), 1))
	require.True(t, math.IsNaN(AngularSpeed(0, 0)))
}

func TestBladeAngleSingularities(t *testing.T) {
	require.True(t, math.IsInf(BladeAngle(90), 1))
	require.True(t, math.IsInf(BladeAngle(270), 1))
	// 450 wraps to 90
	require.True(t, math.IsInf(BladeAngle(450), 1))
	// -90 wraps up to 270
	require.True(t, math.IsInf(BladeAngle(-90), 1))
}

func TestBladeAngleNearSingularity(t *testing.T) {
	// The singularity check is exact equality only. A hair off 90 degrees
	// slips past it and lands on the tangent's asymptote instead.
	got := BladeAngle(90.0000001)
	require.False(t, math.IsInf(got, 0))
	require.Greater(t, math.Abs(got), 1e6)
}

func TestBladeAngleZeroCrossings(t *testing.T) {
	// 0 degrees rides through tan(-180°), which is floating-point noise
	// snapped to zero by the tolerance
	require.Equal(t, 0.0, BladeAngle(0))
	// 180 degrees hits tan(0) head on, zero without snapping
	require.Equal(t, 0.0, BladeAngle(180))
}

func TestAdjustRheostatZeroCurrent(t *testing.T) {
	require.Equal(t, RheostatMax, AdjustRheostat(230, 0, 60))
	require.Equal(t, RheostatMax, AdjustRheostat(230, 0, -1e9))
}

func TestAdjustRheostatMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for ws := -200.0; ws <= 200.0; ws += 12.5 {
		r := AdjustRheostat(230, 5, ws)
		require.GreaterOrEqual(t, r, prev, "wind speed %v", ws)
		prev = r
	}
}

func TestAdjustRheostatClamped(t *testing.T) {
	// scaling factor goes negative below -100 m/s effective wind
	require.Equal(t, RheostatMin, AdjustRheostat(230, 5, -300))
	// huge base resistance clamps at the top
	require.Equal(t, RheostatMax, AdjustRheostat(230, 1e-300, 60))

	for _, ws := range []float64{-150, -100, 0, 42.42, 99.9, 1e6} {
		r := AdjustRheostat(230, 0.5, ws)
		require.GreaterOrEqual(t, r, RheostatMin)
		require.LessOrEqual(t, r, RheostatMax)
	}
}

func TestOptimizeBaseline(t *testing.T) {
	res := Optimize(60, 0, 600.0, 5.0, 1.0)

	require.Equal(t, 0.0, res.BladeAngle)
	require.InDelta(t, 73.6, res.RheostatResistance, 1e-9)
	require.InDelta(t, 870.0, res.EnergyKWh, 1e-9)
	require.Equal(t, 60.0, res.EffectiveWindSpeed)
	require.InDelta(t, 0.145, res.AngularSpeed, 1e-12)
}

func TestOptimizeIdempotent(t *testing.T) {
	a := Optimize(17.3, 42.0, 288.15, 3.1, 0.5)
	b := Optimize(17.3, 42.0, 288.15, 3.1, 0.5)
	require.Equal(t, a, b)
}
