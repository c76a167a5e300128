package turbine

import (
	"log/slog"
	"time"

	"github.com/mikesmitty/breezy-boy/pkg/wind"
)

// Model runs the pipeline continuously against a stream of wind readings,
// holding the load current fixed and integrating energy per tick.
type Model struct {
	current  float64
	interval time.Duration
}

func NewModel(current float64, interval time.Duration) *Model {
	return &Model{
		current:  current,
		interval: interval,
	}
}

// ResultChannel returns a channel of per-reading results and the loop
// that feeds it. Each tick delivers energy over one interval.
func (m *Model) ResultChannel(windChan <-chan wind.Reading) (<-chan Result, func() error) {
	c := make(chan Result, 1)
	period := m.interval.Hours()
	return c, func() error {
		for r := range windChan {
			res := Optimize(r.Speed, r.Angle, r.Temperature, m.current, period)
			slog.Debug("model cycle", "vEff", res.EffectiveWindSpeed, "omega", res.AngularSpeed, "module", "turbine")
			c <- res
		}
		return nil
	}
}
