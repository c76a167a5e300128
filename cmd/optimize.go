/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/mikesmitty/breezy-boy/pkg/breezyboy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// optimizeCmd runs the model once with fixed inputs and prints the result record
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the turbine model once and print the result",
	Run:   breezyboy.Optimize(),
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().Float64("wind-speed", 60.0, "wind speed in m/s")
	optimizeCmd.Flags().Float64("wind-angle", 0.0, "wind angle in degrees")
	optimizeCmd.Flags().Float64("ambient-temp", 600.0, "ambient temperature in Kelvin")
	optimizeCmd.Flags().Float64("load-current", 5.0, "load current in amperes")
	optimizeCmd.Flags().Float64("time-period", 1.0, "delivery period in hours")

	viper.BindPFlags(optimizeCmd.Flags())
}
