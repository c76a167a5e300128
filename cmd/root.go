/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mikesmitty/breezy-boy/pkg/breezyboy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "breezy-boy",
	Short: "Wind turbine control model daemon",
	Long: `breezy-boy runs a simulated wind turbine control loop: a modeled
anemometer feeds a pitch/rheostat/energy pipeline, and the resulting
telemetry is published over MQTT with Home Assistant discovery.

Run the optimize subcommand for a one-shot computation without the daemon.`,
	Run: breezyboy.Root(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.breezy-boy.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("mqtt-broker", "", "mqtt broker url")
	rootCmd.PersistentFlags().Int("mqtt-sample-interval", 10, "publish every Nth reading")
	rootCmd.PersistentFlags().Duration("sim-interval", 1*time.Second, "wind sampling/model loop interval")
	rootCmd.PersistentFlags().Duration("watchdog-timeout", 10*time.Second, "rheostat shutdown timeout without wind readings")
	rootCmd.PersistentFlags().Float64("wind-mean", 12.0, "mean simulated wind speed in m/s")
	rootCmd.PersistentFlags().Float64("wind-gust", 4.0, "simulated gust amplitude in m/s")
	rootCmd.PersistentFlags().Float64("temperature", 288.0, "simulated ambient temperature in Kelvin")
	rootCmd.PersistentFlags().Float64("current", 5.0, "load current in amperes")
	rootCmd.PersistentFlags().Duration("pid-lp", 1*time.Second, "pitch PID low-pass time constant")
	rootCmd.PersistentFlags().Float64("pid-kp", 0.0, "pitch PID Kp")
	rootCmd.PersistentFlags().Float64("pid-ki", 0.0, "pitch PID Ki")
	rootCmd.PersistentFlags().Float64("pid-kd", 0.0, "pitch PID Kd")
	rootCmd.PersistentFlags().Float64("pid-awg", 0.0, "pitch PID anti-windup gain")
	rootCmd.PersistentFlags().Float64("pid-ku", 0.0, "ultimate gain for PID tuning rules")
	rootCmd.PersistentFlags().Duration("pid-tu", 0, "ultimate period for PID tuning rules")
	rootCmd.PersistentFlags().String("pid-algorithm", "ziegler-nichols", "PID tuning rule")
	rootCmd.PersistentFlags().Float64("pitch-slew-limit", 15.0, "max pitch change per cycle in degrees")
	rootCmd.PersistentFlags().Float64("pitch-trend-gain", 0.0, "wind trend feed-forward gain")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".breezy-boy" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".breezy-boy")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
