package breezyboy

import (
	"fmt"

	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Optimize runs the model once with the configured inputs and prints the
// three-key result record, one key per line.
func Optimize() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		res := turbine.Optimize(
			viper.GetFloat64("wind-speed"),
			viper.GetFloat64("wind-angle"),
			viper.GetFloat64("ambient-temp"),
			viper.GetFloat64("load-current"),
			viper.GetFloat64("time-period"),
		)

		fmt.Printf("Blade Pitch Angle (degrees): %v\n", res.BladeAngle)
		fmt.Printf("Rheostat Resistance (ohms): %v\n", res.RheostatResistance)
		fmt.Printf("Energy Delivered (kWh): %v\n", res.EnergyKWh)
	}
}
