package dummy

import "github.com/barnybug/gorfxcom/pubsub"

// Dummy Publisher for testing
type Publisher struct {
	Messages []*pubsub.Message
	Closed   bool
}

func (self *Publisher) ID() string {
	return "dummy"
}

func (self *Publisher) Emit(msg *pubsub.Message) {
	self.Messages = append(self.Messages, msg)
}

func (self *Publisher) Close() {
	self.Closed = true
}

// Topics lists the topics of the emitted messages, in order.
func (self *Publisher) Topics() []string {
	var ret []string
	for _, msg := range self.Messages {
		ret = append(ret, msg.Topic)
	}
	return ret
}
