package mqtt

import (
	"crypto/md5"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mikesmitty/breezy-boy/pkg/pitch"
	"github.com/mikesmitty/breezy-boy/pkg/turbine"
	"github.com/mikesmitty/breezy-boy/pkg/wind"
)

type Client struct {
	client      paho.Client
	clientID    string
	topicPrefix string
	qos         byte
	retained    bool
	sampleRate  int
	hassSensors map[string]HassSensor
	mu          sync.Mutex
}

func NewClient(broker *url.URL, sampleRate int) *Client {
	c := &Client{}

	var urls []*url.URL
	urls = append(urls, broker)

	hostname, _ := os.Hostname()
	hostname = strings.Split(hostname, ".")[0]
	clientID := hostname
	if clientID == "" {
		now := time.Now().UnixNano()
		sum := md5.New().Sum([]byte(strconv.FormatInt(now, 10)))
		clientID = string(sum)
	}

	c.qos = 1
	c.topicPrefix = "breezy-boy/" + hostname
	c.clientID = clientID
	c.hassSensors = make(map[string]HassSensor)

	slog.Info("connecting to mqtt", "url", broker, "clientid", clientID)
	c.client = paho.NewClient(&paho.ClientOptions{
		Servers:        urls,
		ClientID:       clientID,
		ConnectRetry:   true,
		ConnectTimeout: 30 * time.Second,
	})

	c.sampleRate = sampleRate

	return c
}

func (c *Client) Connect() error {
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		slog.Error("mqtt connection failed", "error", token.Error())
		return token.Error()
	}
	return nil
}

func (c *Client) Subscribe(topic string, handler paho.MessageHandler) error {
	if token := c.client.Subscribe(topic, c.qos, handler); token.Wait() && token.Error() != nil {
		slog.Error("mqtt subscription failed", "error", token.Error())
		return token.Error()
	}
	return nil
}

func (c *Client) GetPublisher(windChan <-chan wind.Reading, gustChan <-chan float64, resultChan <-chan turbine.Result, pitchChan <-chan pitch.State, energyChan <-chan float64) func() error {
	windSpeedSensor := c.RegisterHassSensor(c.NewHassSensor("Wind Speed", HassSensorWindSpeed))
	windAngleSensor := c.RegisterHassSensor(c.NewHassSensor("Wind Direction", HassSensorAngle))
	ambientSensor := c.RegisterHassSensor(c.NewHassSensor("Ambient Temperature", HassSensorTemperature))
	gustSensor := c.RegisterHassSensor(c.NewHassSensor("Average Wind Speed", HassSensorWindSpeed))
	effWindSensor := c.RegisterHassSensor(c.NewHassSensor("Effective Wind Speed", HassSensorWindSpeed))
	omegaSensor := c.RegisterHassSensor(c.NewHassSensor("Angular Speed", HassSensorGeneric))
	bladeAngleSensor := c.RegisterHassSensor(c.NewHassSensor("Blade Pitch Angle", HassSensorAngle))
	resistanceSensor := c.RegisterHassSensor(c.NewHassSensor("Rheostat Resistance", HassSensorResistance))
	powerSensor := c.RegisterHassSensor(c.NewHassSensor("Power", HassSensorPower))
	pitchTarget := c.RegisterHassSensor(c.NewHassSensor("Pitch Target", HassSensorAngle))
	pitchActual := c.RegisterHassSensor(c.NewHassSensor("Pitch Actual", HassSensorAngle))
	pitchError := c.RegisterHassSensor(c.NewHassSensor("Pitch Error", HassSensorGeneric))
	pitchIntegral := c.RegisterHassSensor(c.NewHassSensor("Pitch Integral", HassSensorGeneric))
	pitchDerivative := c.RegisterHassSensor(c.NewHassSensor("Pitch Derivative", HassSensorGeneric))
	pitchSignal := c.RegisterHassSensor(c.NewHassSensor("Pitch Signal", HassSensorGeneric))
	pitchTrend := c.RegisterHassSensor(c.NewHassSensor("Pitch Trend", HassSensorGeneric))
	energySensor := c.RegisterHassSensor(c.NewHassSensor("Energy Delivered", HassSensorEnergy))

	windSample := NewSample(c.sampleRate)
	gustSample := NewSample(c.sampleRate)
	resultSample := NewSample(c.sampleRate)
	pitchSample := NewSample(c.sampleRate)
	energySample := NewSample(c.sampleRate)

	return func() error {
		for {
			select {
			case w := <-windChan:
				if !windSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "wind", "value", w.Speed)
				c.HassPublishSensor(windSpeedSensor, strconv.FormatFloat(w.Speed, 'f', 2, 64))
				c.HassPublishSensor(windAngleSensor, strconv.FormatFloat(w.Angle, 'f', 1, 64))
				c.HassPublishSensor(ambientSensor, strconv.FormatFloat(w.Temperature, 'f', 2, 64))
			case g := <-gustChan:
				if !gustSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "gust", "value", g)
				c.HassPublishSensor(gustSensor, strconv.FormatFloat(g, 'f', 2, 64))
			case r := <-resultChan:
				if !resultSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "result", "value", r)
				c.HassPublishSensor(effWindSensor, strconv.FormatFloat(r.EffectiveWindSpeed, 'f', 2, 64))
				c.HassPublishSensor(omegaSensor, strconv.FormatFloat(r.AngularSpeed, 'f', 5, 64))
				c.HassPublishSensor(bladeAngleSensor, strconv.FormatFloat(r.BladeAngle, 'f', 2, 64))
				c.HassPublishSensor(resistanceSensor, strconv.FormatFloat(r.RheostatResistance, 'f', 2, 64))
				c.HassPublishSensor(powerSensor, strconv.FormatFloat(r.Power, 'f', 0, 64))
			case p := <-pitchChan:
				if !pitchSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "pitch state", "value", p)
				c.HassPublishSensor(pitchTarget, strconv.FormatFloat(p.Target, 'f', 2, 64))
				c.HassPublishSensor(pitchActual, strconv.FormatFloat(p.Actual, 'f', 2, 64))
				c.HassPublishSensor(pitchError, strconv.FormatFloat(p.ControlError, 'f', 2, 64))
				c.HassPublishSensor(pitchIntegral, strconv.FormatFloat(p.ControlErrorIntegral, 'f', 2, 64))
				c.HassPublishSensor(pitchDerivative, strconv.FormatFloat(p.ControlErrorDerivative, 'f', 2, 64))
				c.HassPublishSensor(pitchSignal, strconv.FormatFloat(p.ControlSignal, 'f', 2, 64))
				c.HassPublishSensor(pitchTrend, strconv.FormatFloat(p.Trend, 'f', 4, 64))
			case e := <-energyChan:
				if !energySample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "energy", "value", e)
				c.HassPublishSensor(energySensor, strconv.FormatFloat(e, 'f', 3, 64))
			}
		}
	}
}

func (p *Client) Publish(topic string, msg string) {
	t := p.client.Publish(topic, p.qos, p.retained, msg)
	go func() {
		_ = t.WaitTimeout(5 * time.Second)
		if t.Error() != nil {
			slog.Error("mqtt message publish failed", "error", t.Error())
		}
	}()
}
