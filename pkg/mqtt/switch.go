package mqtt

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// SwitchFn publishes the switch state every few seconds and applies
// ON/OFF commands arriving on the command topic.
func (c *Client) SwitchFn(name string, onFn func(), offFn func(), stateFn func() bool) func() error {
	prefix := fmt.Sprintf("%s/switch/%s/", c.topicPrefix, name)
	commandTopic := prefix + "command"
	stateTopic := prefix + "state"

	publishState := func() {
		if !c.client.IsConnected() {
			slog.Error("mqtt client not connected", "switch", name)
			return
		}
		state := "OFF"
		if stateFn() {
			state = "ON"
		}
		c.Publish(stateTopic, state)
	}

	return func() error {
		for !c.client.IsConnected() {
			time.Sleep(1 * time.Second)
		}
		publishState()

		go func() {
			t := time.NewTicker(5 * time.Second)
			for range t.C {
				publishState()
			}
		}()

		slog.Debug("subscribing to mqtt switch", "switch", name, "topic", commandTopic)
		if token := c.client.Subscribe(commandTopic, c.qos, func(client paho.Client, msg paho.Message) {
			slog.Debug("mqtt switch command received", "switch", name, "command", msg.Payload(), "topic", commandTopic)
			if bytes.Equal(msg.Payload(), []byte("ON")) {
				onFn()
			} else {
				offFn()
			}
			publishState()
		}); token.Wait() && token.Error() != nil {
			slog.Error("mqtt subscription failed", "switch", name, "error", token.Error())
		}
		return nil
	}
}
