package pubsub

import (
	"encoding/json"
	"sort"
	"time"
)

// Fields holds message attributes. Values are ints, float64s or strings.
type Fields map[string]interface{}

// Message is a decoded event. It is not modified once a parser has built it.
type Message struct {
	Topic     string
	Timestamp time.Time
	Fields    Fields
}

func NewMessage(topic string, fields Fields) *Message {
	if fields == nil {
		fields = Fields{}
	}
	return &Message{Topic: topic, Timestamp: time.Now().UTC(), Fields: fields}
}

const TimeFormat = "2006-01-02 15:04:05.000000"

// Equal compares topic and fields. The timestamp is ignored. Field values
// must be comparable and are compared by type as well as value, so int 0
// and float64 0 differ.
func (msg *Message) Equal(other *Message) bool {
	if msg == nil || other == nil {
		return msg == other
	}
	if msg.Topic != other.Topic || len(msg.Fields) != len(other.Fields) {
		return false
	}
	for k, v := range msg.Fields {
		ov, ok := other.Fields[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Keys returns the field names in sorted order.
func (msg *Message) Keys() []string {
	keys := make([]string, 0, len(msg.Fields))
	for k := range msg.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (msg *Message) Map() map[string]interface{} {
	data := make(map[string]interface{})
	data["topic"] = msg.Topic
	data["timestamp"] = msg.Timestamp.Format(TimeFormat)
	for k, v := range msg.Fields {
		data[k] = v
	}
	return data
}

func (msg *Message) Bytes() []byte {
	v, _ := json.Marshal(msg.Map())
	return v
}

func (msg *Message) String() string {
	return string(msg.Bytes())
}

// With returns a copy of the message with an extra field set.
func (msg *Message) With(name string, value interface{}) *Message {
	fields := make(Fields, len(msg.Fields)+1)
	for k, v := range msg.Fields {
		fields[k] = v
	}
	fields[name] = value
	return &Message{Topic: msg.Topic, Timestamp: msg.Timestamp, Fields: fields}
}

func (msg *Message) StringField(name string) string {
	ret, _ := msg.Fields[name].(string)
	return ret
}

func (msg *Message) FloatField(name string) (float64, bool) {
	switch v := msg.Fields[name].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func (msg *Message) Source() string {
	return msg.StringField("source")
}
