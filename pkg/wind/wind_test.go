package wind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromVector(t *testing.T) {
	r := FromVector(0, 10, 288)
	require.InDelta(t, 10, r.Speed, 1e-12)
	require.InDelta(t, 0, r.Angle, 1e-12)

	r = FromVector(10, 0, 288)
	require.InDelta(t, 90, r.Angle, 1e-12)

	r = FromVector(0, -10, 288)
	require.InDelta(t, 180, r.Angle, 1e-12)

	r = FromVector(-10, 0, 288)
	require.InDelta(t, 270, r.Angle, 1e-12)

	r = FromVector(3, 4, 288)
	require.InDelta(t, 5, r.Speed, 1e-12)
}

func TestAngleRange(t *testing.T) {
	for _, v := range [][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {0.001, -5}} {
		r := FromVector(v[0], v[1], 288)
		require.GreaterOrEqual(t, r.Angle, 0.0)
		require.Less(t, r.Angle, 360.0)
	}
}
