// Package turbine models a wind turbine control pipeline: effective wind
// speed, shaft angular speed, blade pitch angle, rheostat resistance, and
// delivered energy. Every function is a pure transform over its inputs.
package turbine

import "math"

const (
	RheostatMin    = 0.0  // minimum rheostat resistance in ohms
	RheostatMax    = 1e21 // maximum rheostat resistance in ohms
	DesiredVoltage = 230.0

	BladeAngleLimit = 360.0

	// Shaft speed scales with effective wind and inversely with temperature
	angularConstant = 1.45

	// Pitch values this close to a tangent zero crossing snap to 0.0
	pitchTolerance = 1e-14
)

// Result is the output record of a single model run.
type Result struct {
	BladeAngle         float64
	RheostatResistance float64
	EnergyKWh          float64

	// Intermediate values, kept for telemetry
	EffectiveWindSpeed float64
	AngularSpeed       float64
	Power              float64
}

// EffectiveWindSpeed returns the component of the wind blowing
// perpendicular to the blades. Negative speeds pass through as a signed
// projection.
func EffectiveWindSpeed(speed, angle float64) float64 {
	return speed * math.Cos(radians(angle))
}

// AngularSpeed returns the shaft speed for a given effective wind speed.
// A temperature of zero divides to Inf/NaN and propagates downstream.
func AngularSpeed(effective, temperature float64) float64 {
	return angularConstant * effective / temperature
}

// BladeAngle maps wind direction to a commanded pitch angle via a scaled
// tangent. Crosswind orientations at exactly 90 and 270 degrees return
// +Inf; nearby angles do not trigger the check and produce very large
// finite values instead.
func BladeAngle(windAngle float64) float64 {
	normalized := math.Mod(windAngle, BladeAngleLimit)
	if normalized < 0 {
		normalized += BladeAngleLimit
	}

	if normalized == 90 || normalized == 270 {
		return math.Inf(1)
	}

	adjusted := 180 * math.Tan(radians(normalized-180)) / 10
	if math.Abs(adjusted) < pitchTolerance {
		adjusted = 0.0
	}
	return adjusted
}

// AdjustRheostat returns the rheostat resistance holding the target
// voltage at the given load current, scaled up with effective wind speed
// and clamped to the rheostat's physical range. A zero current parks the
// rheostat at its maximum resistance.
func AdjustRheostat(voltage, current, effectiveSpeed float64) float64 {
	if current == 0 {
		return RheostatMax
	}

	resistance := voltage / current
	adjusted := resistance * (1 + effectiveSpeed/100)

	return math.Max(RheostatMin, math.Min(RheostatMax, adjusted))
}

// Energy returns the energy delivered over the period in watt-hours.
// Power depends only on shaft speed and effective wind; the wind-scaled
// voltage and current of the source model never fed the power term and
// are dropped here.
func Energy(voltage, current, period, effectiveSpeed, omega float64) float64 {
	power := omega * effectiveSpeed * 1e5
	return power * period
}

// Optimize runs the full pipeline with the fixed target voltage and
// returns the result record with energy converted to kWh.
func Optimize(windSpeed, windAngle, temperature, current, timePeriod float64) Result {
	vEff := EffectiveWindSpeed(windSpeed, windAngle)
	omega := AngularSpeed(vEff, temperature)

	energy := Energy(DesiredVoltage, current, timePeriod, vEff, omega)

	return Result{
		BladeAngle:         BladeAngle(windAngle),
		RheostatResistance: AdjustRheostat(DesiredVoltage, current, vEff),
		EnergyKWh:          energy / 1000,
		EffectiveWindSpeed: vEff,
		AngularSpeed:       omega,
		Power:              omega * vEff * 1e5,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
