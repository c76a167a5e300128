package gust

import (
	"log/slog"

	"github.com/mikesmitty/breezy-boy/pkg/swma"
	"github.com/mikesmitty/breezy-boy/pkg/wind"
)

// NewGustFilter smooths the wind speed stream over a sliding window,
// emitting the running average for each reading.
func NewGustFilter(windChan <-chan wind.Reading) (<-chan float64, func() error) {
	c := make(chan float64, 1)
	w := swma.NewSlidingWindow(60)
	return c, func() error {
		for r := range windChan {
			avg := w.Add(r.Speed)
			slog.Debug("gust filter", "speed", r.Speed, "average", avg, "peak", w.Max())
			c <- avg
		}
		return nil
	}
}
