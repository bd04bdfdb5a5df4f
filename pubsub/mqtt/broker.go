package mqtt

import (
	"fmt"
	"os"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "mqtt")

type Broker struct {
	broker string
	client MQTT.Client
}

// ClientID generates a unique client id for this process.
func ClientID() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("rfxcom/%s-%s", hostname, uuid.NewString())
}

func NewBroker(broker string) (*Broker, error) {
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(ClientID())
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ MQTT.Client, err error) {
		log.Warnln("Connection lost:", err)
	})

	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.Wrapf(token.Error(), "connecting to %s", broker)
	}
	log.Infoln("Connected to", broker)
	return &Broker{broker, client}, nil
}

func (self *Broker) ID() string {
	return "mqtt: " + self.broker
}

func (self *Broker) Publisher(prefix string, retained bool) *Publisher {
	return &Publisher{broker: self.broker, client: self.client, prefix: prefix, retained: retained}
}
