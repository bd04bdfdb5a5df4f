package pubsub

// FilteredPublisher forwards only messages whose topic matches one of its
// topics. With no topics everything is forwarded.
type FilteredPublisher struct {
	Publisher
	topics []Topic
}

func NewFilteredPublisher(pub Publisher, topics ...Topic) *FilteredPublisher {
	return &FilteredPublisher{Publisher: pub, topics: topics}
}

func (self *FilteredPublisher) Match(msg *Message) bool {
	if len(self.topics) == 0 {
		return true
	}
	for _, t := range self.topics {
		if t.Match(msg.Topic) {
			return true
		}
	}
	return false
}

func (self *FilteredPublisher) Emit(msg *Message) {
	if self.Match(msg) {
		self.Publisher.Emit(msg)
	}
}

// Publishers fans a message out to several publishers in order.
type Publishers []Publisher

func (ps Publishers) ID() string {
	return "multi"
}

func (ps Publishers) Emit(msg *Message) {
	for _, p := range ps {
		p.Emit(msg)
	}
}

func (ps Publishers) Close() {
	for _, p := range ps {
		p.Close()
	}
}
