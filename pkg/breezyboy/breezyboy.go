package breezyboy

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikesmitty/breezy-boy/pkg/energymeter"
	"github.com/mikesmitty/breezy-boy/pkg/gust"
	"github.com/mikesmitty/breezy-boy/pkg/mqtt"
	"github.com/mikesmitty/breezy-boy/pkg/pitch"
	"github.com/mikesmitty/breezy-boy/pkg/rheostat"
	"github.com/mikesmitty/breezy-boy/pkg/router"
	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/mikesmitty/breezy-boy/pkg/watchdog"
	"github.com/mikesmitty/breezy-boy/pkg/wind"
	"github.com/mikesmitty/breezy-boy/pkg/windsim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func Root() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		slogOpts := slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		if viper.GetBool("debug") {
			slogOpts.Level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slogOpts))
		slog.SetDefault(log)

		simInterval := viper.GetDuration("sim-interval")

		ctx, cancelFunc := context.WithCancel(context.Background())
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(-1)

		// Rheostat
		rheo := rheostat.New()
		rheo.Enable()

		// Wind source
		simCfg := windsim.Config{
			MeanSpeed:     viper.GetFloat64("wind-mean"),
			GustAmplitude: viper.GetFloat64("wind-gust"),
			Temperature:   viper.GetFloat64("temperature"),
		}
		windCh, windFn := windsim.ReadingChannel(ctx, simCfg, simInterval)
		slog.Debug("starting wind source")
		g.Go(windFn)
		windFan := router.NewFan[wind.Reading]("wind", windCh)
		g.Go(windFan.Run)

		gustCh, gustFn := gust.NewGustFilter(windFan.Subscribe("gust"))
		slog.Debug("starting gust filter")
		g.Go(gustFn)
		gustFan := router.NewFan[float64]("gust", gustCh)
		g.Go(gustFan.Run)

		// Turbine model
		model := turbine.NewModel(viper.GetFloat64("current"), simInterval)
		resultCh, modelFn := model.ResultChannel(windFan.Subscribe("turbine"))
		slog.Debug("starting turbine model")
		g.Go(modelFn)
		resultFan := router.NewFan[turbine.Result]("turbine", resultCh)
		g.Go(resultFan.Run)

		// Pitch servo
		kp := viper.GetFloat64("pid-kp")
		ki := viper.GetFloat64("pid-ki")
		kd := viper.GetFloat64("pid-kd")
		if ku := viper.GetFloat64("pid-ku"); ku != 0 {
			tu := viper.GetDuration("pid-tu").Seconds()
			algorithm := viper.GetString("pid-algorithm")
			var err error
			kp, ki, kd, err = pitch.CalculatePID(ku, tu, kp, ki, kd, algorithm)
			errChk(err)
		}

		pitchCtrl := pitch.NewController(
			kp,
			ki,
			kd,
			viper.GetFloat64("pid-awg"),
			viper.GetFloat64("pitch-slew-limit"),
			viper.GetFloat64("pitch-trend-gain"),
			viper.GetDuration("pid-lp"),
			simInterval,
		)
		pitchCh, pitchReset, servo := pitchCtrl.GetController(windFan.Subscribe("pitch"))
		pitchReset()
		slog.Debug("starting pitch servo")
		g.Go(servo)
		pitchFan := router.NewFan[pitch.State]("pitch", pitchCh)
		g.Go(pitchFan.Run)

		slog.Debug("starting rheostat control loop")
		go rheostatLoop(ctx, rheo, resultFan)

		// Energy meter
		energyCh, meterFn := energymeter.NewEnergyMeter(resultFan.Subscribe("energymeter"))
		energyFan := router.NewFan[float64]("energy", energyCh)
		g.Go(meterFn)
		g.Go(energyFan.Run)

		// MQTT
		if broker := viper.GetString("mqtt-broker"); broker != "" {
			mqttUrl, err := url.Parse(broker)
			errChk(err)
			mc := mqtt.NewClient(mqttUrl, viper.GetInt("mqtt-sample-interval"))
			errChk(mc.Connect())
			g.Go(mc.GetPublisher(windFan.Subscribe("mqtt"), gustFan.Subscribe("mqtt"), resultFan.Subscribe("mqtt"), pitchFan.Subscribe("mqtt"), energyFan.Subscribe("mqtt")))
			errChk(mc.HomeAssistant())
			// Publish/handle the turbine-enable switch
			g.Go(mc.SwitchFn("turbine-enable", rheo.Enable, rheo.Disable, rheo.GetEnable))
		}

		// Watchdog
		watchdogTimeout := viper.GetDuration("watchdog-timeout")
		g.Go(watchdog.NewWatchdog(watchdogTimeout, rheo.HardStop, windFan.Subscribe("watchdog")))

		// Signal handling
		chanSignal := make(chan os.Signal, 1)
		signal.Notify(chanSignal, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

		g.Go(func() error {
			defer cancelFunc()
			select {
			case <-ctx.Done():
			case <-chanSignal:
			}
			slog.Info("shutting down...")
			slog.Info("parking rheostat...")
			rheo.HardStop()
			os.Exit(0)
			return nil
		})

		slog.Debug("waiting for goroutines to finish")
		err := g.Wait()
		errChk(err)
	}
}

func errChk(err error) {
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func rheostatLoop(ctx context.Context, rheo *rheostat.Rheostat, resultFan *router.Fan[turbine.Result]) {
	resultCh := resultFan.Subscribe("rheostat")
	defer resultFan.Unsubscribe("rheostat")
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-resultCh:
			rheo.Set(res.RheostatResistance)
		}
	}
}
