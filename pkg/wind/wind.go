package wind

import (
	"math"
)

// Reading is a single anemometer/thermometer sample. Angle is degrees in
// [0, 360), Temperature is Kelvin.
type Reading struct {
	Speed       float64
	Angle       float64
	Temperature float64
}

func New(speed, angle, temp float64) Reading {
	return Reading{
		Speed:       speed,
		Angle:       angle,
		Temperature: temp,
	}
}

// FromVector builds a reading from east/north velocity components.
func FromVector(u, v, temp float64) Reading {
	return Reading{
		Speed:       math.Hypot(u, v),
		Angle:       direction(u, v),
		Temperature: temp,
	}
}

func direction(u, v float64) float64 {
	deg := math.Atan2(u, v) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
