// Package windsim stands in for a physical anemometer, emitting wind
// readings on a channel at a fixed interval.
package windsim

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/mikesmitty/breezy-boy/pkg/wind"
)

type Config struct {
	MeanSpeed     float64 // m/s
	GustAmplitude float64 // m/s
	Temperature   float64 // Kelvin
}

// ReadingChannel returns a channel of simulated wind readings and the
// loop that feeds it. The wind is modeled as east/north velocity
// components: a mean flow plus a sinusoidal gust cycle and random noise,
// with the direction wandering slowly. Ambient temperature drifts around
// the configured baseline.
func ReadingChannel(ctx context.Context, cfg Config, interval time.Duration) (<-chan wind.Reading, func() error) {
	c := make(chan wind.Reading, 1)
	ctx, cancelFunc := context.WithCancel(ctx)
	return c, func() error {
		defer cancelFunc()
		done := ctx.Done()
		ticker := time.NewTicker(interval)

		heading := rand.Float64() * 2 * math.Pi
		phase := 0.0
		temp := cfg.Temperature

		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				phase += 2 * math.Pi * interval.Seconds() / 600
				heading += (rand.Float64() - 0.5) * 0.02
				temp += (rand.Float64() - 0.5) * 0.1

				speed := cfg.MeanSpeed + cfg.GustAmplitude*math.Sin(phase) + rand.NormFloat64()*cfg.GustAmplitude/4
				u := speed * math.Sin(heading)
				v := speed * math.Cos(heading)

				r := wind.FromVector(u, v, temp)
				slog.Debug("publishing reading", "speed", r.Speed, "angle", r.Angle, "temp", r.Temperature, "module", "windsim")
				c <- r
			}
		}
	}
}
