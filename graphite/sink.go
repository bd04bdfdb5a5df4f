package graphite

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/barnybug/gorfxcom/pubsub"
)

var log = logrus.WithField("component", "graphite")

var ignoredFields = map[string]bool{
	"source":      true,
	"device":      true,
	"device_name": true,
	"group":       true,
	"address":     true,
}

// Sink is a publisher sending each numeric field of a message as
// <prefix>.<topic>.<name>.<field>, where name is the device name if one is
// configured and the source otherwise.
type Sink struct {
	gr     *Graphite
	prefix string
}

func NewSink(host, prefix string) *Sink {
	return &Sink{gr: New(host), prefix: prefix}
}

func (self *Sink) ID() string {
	return "graphite"
}

// metricValue reads a field as a number. Booleans and on/off commands map
// to 1 and 0.
func metricValue(msg *pubsub.Message, field string) (float64, bool) {
	if v, ok := msg.FloatField(field); ok {
		return v, true
	}
	switch v := msg.Fields[field].(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		switch v {
		case "on":
			return 1, true
		case "off":
			return 0, true
		}
	}
	return 0, false
}

func (self *Sink) name(msg *pubsub.Message) string {
	name := msg.StringField("device_name")
	if name == "" {
		name = msg.Source()
	}
	return strings.Replace(name, " ", "_", -1)
}

func (self *Sink) Emit(msg *pubsub.Message) {
	timestamp := msg.Timestamp.UTC().Unix()
	name := self.name(msg)
	for _, field := range msg.Keys() {
		if ignoredFields[field] {
			continue
		}
		value, ok := metricValue(msg, field)
		if !ok {
			continue
		}
		path := fmt.Sprintf("%s.%s.%s.%s", self.prefix, msg.Topic, name, field)
		if err := self.gr.Add(path, timestamp, value); err != nil {
			log.Errorln("Add failed:", err)
		}
	}
	if err := self.gr.Flush(); err != nil {
		log.Errorln("Flush failed:", err)
	}
}

func (self *Sink) Close() {
	if err := self.gr.Flush(); err != nil {
		log.Errorln("Flush failed:", err)
	}
}
