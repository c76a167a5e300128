package pitch

import (
	"log/slog"
	"math"
	"time"

	"github.com/mikesmitty/breezy-boy/pkg/stats"
	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/mikesmitty/breezy-boy/pkg/wind"
	"go.einride.tech/pid"
)

// featherAngle is the pitch the servo holds through a crosswind
// singularity, where the commanded target is infinite.
const featherAngle = 90.0

// Controller slews the blade actuator toward the commanded pitch angle.
type Controller struct {
	c         pid.AntiWindupController
	angle     float64
	interval  time.Duration
	slewLimit float64
	trendGain float64
}

type State struct {
	Target float64
	Actual float64
	Trend  float64

	ControlError           float64
	ControlErrorIntegral   float64
	ControlErrorDerivative float64
	ControlSignal          float64
}

func NewController(kp, ki, kd, awg, slewLimit, trendGain float64, lp, interval time.Duration) *Controller {
	return &Controller{
		c: pid.AntiWindupController{
			Config: pid.AntiWindupControllerConfig{
				ProportionalGain:    kp,
				IntegralGain:        ki,
				DerivativeGain:      kd,
				AntiWindUpGain:      awg,
				LowPassTimeConstant: lp,
				MaxOutput:           slewLimit,
				MinOutput:           -slewLimit,
			},
		},
		interval:  interval,
		slewLimit: slewLimit,
		trendGain: trendGain,
	}
}

// GetController returns the state output channel, a reset func, and the
// servo loop. Targets come from the tangent pitch curve over the wind
// direction; a trend feed-forward from recent wind speeds lets the servo
// lead sustained shifts.
func (c *Controller) GetController(windChan <-chan wind.Reading) (<-chan State, func(), func() error) {
	stateOutput := make(chan State, 1)

	reset := func() {
		c.c.Reset()
	}

	return stateOutput, reset, func() error {
		lastTime := time.Now()
		windStats := stats.NewStats(c.period(90 * time.Second))

		slog.Info("starting pitch servo loop", "kp", c.c.Config.ProportionalGain, "ki", c.c.Config.IntegralGain, "kd", c.c.Config.DerivativeGain, "module", "pitch")
		for r := range windChan {
			now := time.Now()
			elapsed := now.Sub(lastTime)
			lastTime = now

			windStats.Add(r.Speed)
			_, slope := windStats.LinearRegression()
			trend := c.trendGain * slope

			target := turbine.BladeAngle(r.Angle)
			servoTarget := target
			if math.IsInf(servoTarget, 0) {
				slog.Warn("crosswind singularity, feathering", "windAngle", r.Angle, "module", "pitch")
				servoTarget = featherAngle
			}

			c.c.Update(pid.AntiWindupControllerInput{
				ReferenceSignal:   servoTarget,
				ActualSignal:      c.angle,
				FeedForwardSignal: trend,
				SamplingInterval:  elapsed,
			})

			signal := c.c.State.ControlSignal
			signal = math.Max(-c.slewLimit, math.Min(c.slewLimit, signal))
			c.angle += signal

			slog.Debug("pitch control signal", "target", servoTarget, "actual", c.angle, "signal", signal, "module", "pitch")
			stateOutput <- State{
				Target:                 target,
				Actual:                 c.angle,
				Trend:                  trend,
				ControlError:           c.c.State.ControlError,
				ControlErrorIntegral:   c.c.State.ControlErrorIntegral,
				ControlErrorDerivative: c.c.State.ControlErrorDerivative,
				ControlSignal:          signal,
			}
		}
		return nil
	}
}

func (c *Controller) SetIntegral(integral float64) {
	c.c.State.ControlErrorIntegral = integral
}

func (c *Controller) Angle() float64 {
	return c.angle
}

func (c *Controller) period(d time.Duration) int {
	return int(d / c.interval)
}
