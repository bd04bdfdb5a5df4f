package pubsub

// Publisher receives messages that survived decoding and deduplication.
type Publisher interface {
	ID() string
	Emit(msg *Message)
	Close()
}

type Topic interface {
	Match(topic string) bool
}
