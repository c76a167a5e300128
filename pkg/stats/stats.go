package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Stats keeps a rolling sample of wind speeds for trend and volatility
// estimation.
type Stats struct {
	size   int
	values []float64
	x      []float64
}

func NewStats(size int) *Stats {
	x := make([]float64, size)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return &Stats{
		size:   size,
		values: make([]float64, size),
		x:      x,
	}
}

func (s *Stats) Add(value float64) {
	s.values = append(s.values[1:], value)
}

// LinearRegression returns the intercept and slope of the sample over
// time. The slope is the wind trend in units per cycle.
func (s *Stats) LinearRegression() (float64, float64) {
	return stat.LinearRegression(s.x, s.values, nil, false)
}

func (s *Stats) Mean() float64 {
	return stat.Mean(s.values, nil)
}

func (s *Stats) StdDev() float64 {
	return stat.StdDev(s.values, nil)
}
