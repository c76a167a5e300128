package energymeter

import (
	"log/slog"

	"github.com/mikesmitty/breezy-boy/pkg/turbine"
)

// NewEnergyMeter accumulates delivered energy over the result stream and
// emits the running total in kWh.
func NewEnergyMeter(input <-chan turbine.Result) (<-chan float64, func() error) {
	c := make(chan float64, 1)
	return c, func() error {
		total := 0.0
		count := 0
		for r := range input {
			total += r.EnergyKWh
			count++
			if count%60 == 0 {
				slog.Info("energy delivered", "totalKWh", total)
			}
			c <- total
		}
		return nil
	}
}
