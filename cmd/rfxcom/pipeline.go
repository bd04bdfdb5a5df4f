package main

import (
	"fmt"
	"io"

	"github.com/barnybug/gorfxcom/config"
	"github.com/barnybug/gorfxcom/graphite"
	"github.com/barnybug/gorfxcom/pubsub"
	"github.com/barnybug/gorfxcom/pubsub/mqtt"
	"github.com/barnybug/gorfxcom/rules"
)

// pipeline applies drop rules and device naming to each decoded message
// before publishing it.
type pipeline struct {
	config    *config.Config
	rules     rules.Rules
	publisher pubsub.Publishers
}

func newPipeline(c *config.Config, extra ...pubsub.Publisher) (*pipeline, error) {
	rs, err := rules.CompileAll(c.Rules)
	if err != nil {
		return nil, err
	}
	pubs := pubsub.Publishers(extra)
	if c.Mqtt.Broker != "" {
		broker, err := mqtt.NewBroker(c.Mqtt.Broker)
		if err != nil {
			return nil, err
		}
		pub := broker.Publisher(c.Mqtt.Prefix, c.Mqtt.Retained)
		pubs = append(pubs, pubsub.NewFilteredPublisher(pub, pubsub.ParseTopics(c.Mqtt.Topics)...))
	}
	if c.Graphite.Host != "" {
		pubs = append(pubs, graphite.NewSink(c.Graphite.Host, c.Graphite.Prefix))
	}
	for _, p := range pubs {
		log.Infoln("Publishing to", p.ID())
	}
	return &pipeline{config: c, rules: rs, publisher: pubs}, nil
}

func (self *pipeline) Handle(msg *pubsub.Message) {
	if rule := self.rules.Drop(msg); rule != nil {
		log.Infof("Dropped %s by rule %q", msg, rule.Source)
		return
	}
	self.publisher.Emit(self.config.AddDeviceName(msg))
}

func (self *pipeline) Close() {
	self.publisher.Close()
}

// printer writes each message as a JSON line.
type printer struct {
	w io.Writer
}

func (self printer) ID() string {
	return "stdout"
}

func (self printer) Emit(msg *pubsub.Message) {
	fmt.Fprintln(self.w, msg)
}

func (self printer) Close() {}
