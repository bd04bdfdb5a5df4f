package mqtt

import (
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"

	"github.com/barnybug/gorfxcom/pubsub"
)

const publishTimeout = 5 * time.Second

type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) MQTT.Token
	Disconnect(quiesce uint)
}

// Publisher for mqtt
type Publisher struct {
	broker   string
	client   client
	prefix   string
	retained bool
}

// ID of Publisher
func (pub *Publisher) ID() string {
	return "mqtt: " + pub.broker
}

// Topic maps a message topic under the configured prefix.
func (pub *Publisher) Topic(msg *pubsub.Message) string {
	if pub.prefix == "" {
		return msg.Topic
	}
	return pub.prefix + "/" + msg.Topic
}

// Emit a message
func (pub *Publisher) Emit(msg *pubsub.Message) {
	topic := pub.Topic(msg)
	token := pub.client.Publish(topic, 1, pub.retained, msg.Bytes())
	if !token.WaitTimeout(publishTimeout) {
		log.Errorln("Timed out publishing to", topic)
		return
	}
	if err := token.Error(); err != nil {
		log.Errorf("Error publishing to %s: %s", topic, err)
	}
}

func (pub *Publisher) Close() {
	pub.client.Disconnect(250)
}
