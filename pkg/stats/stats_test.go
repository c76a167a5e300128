package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearRegression(t *testing.T) {
	s := NewStats(10)
	for i := 1; i <= 10; i++ {
		s.Add(float64(i))
	}
	b, m := s.LinearRegression()
	require.InDelta(t, 1.0, m, 1e-12)
	require.InDelta(t, 0.0, b, 1e-12)
}

func TestMeanStdDev(t *testing.T) {
	s := NewStats(4)
	for _, v := range []float64{2, 4, 4, 6} {
		s.Add(v)
	}
	require.InDelta(t, 4.0, s.Mean(), 1e-12)
	require.Greater(t, s.StdDev(), 0.0)
}
