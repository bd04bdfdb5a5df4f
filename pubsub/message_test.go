package pubsub

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExampleMessage_String() {
	msg := NewMessage("x10", Fields{"source": "a11", "command": "on", "group": "a", "device": "11"})
	msg.Timestamp = time.Date(2014, 1, 2, 3, 4, 5, 987654321, time.UTC)
	fmt.Println(msg)
	// Output:
	// {"command":"on","device":"11","group":"a","source":"a11","timestamp":"2014-01-02 03:04:05.987654","topic":"x10"}
}

func TestEqual(t *testing.T) {
	a := NewMessage("a", Fields{"b": 1})
	assert.True(t, a.Equal(NewMessage("a", Fields{"b": 1})))
	assert.False(t, a.Equal(NewMessage("a", Fields{"b": 2})))
	assert.False(t, a.Equal(NewMessage("b", Fields{"b": 1})))
	assert.False(t, a.Equal(NewMessage("a", Fields{"b": 1, "c": 2})))
	assert.False(t, a.Equal(NewMessage("a", Fields{"c": 1})))
	assert.False(t, a.Equal(nil))
}

func TestEqualIgnoresTimestamp(t *testing.T) {
	a := NewMessage("temp", Fields{"temp": 2.3})
	b := NewMessage("temp", Fields{"temp": 2.3})
	b.Timestamp = a.Timestamp.Add(time.Hour)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqualNoTolerance(t *testing.T) {
	a := NewMessage("temp", Fields{"temp": 2.3})
	assert.False(t, a.Equal(NewMessage("temp", Fields{"temp": 2.3000001})))
	assert.False(t, a.Equal(NewMessage("temp", Fields{"temp": "2.3"})))
}

func TestKeys(t *testing.T) {
	msg := NewMessage("owl", Fields{"source": "a6", "current2": 0.0, "current1": 6.6})
	assert.Equal(t, []string{"current1", "current2", "source"}, msg.Keys())
}

func TestWith(t *testing.T) {
	msg := NewMessage("x10", Fields{"source": "a11"})
	named := msg.With("device_name", "light.hall")
	assert.Equal(t, "light.hall", named.StringField("device_name"))
	assert.Equal(t, msg.Timestamp, named.Timestamp)
	_, ok := msg.Fields["device_name"]
	assert.False(t, ok)
}

func TestFieldGetters(t *testing.T) {
	msg := NewMessage("temp", Fields{"source": "thgr810.62", "humidity": 59, "temp": 2.3})
	assert.Equal(t, "thgr810.62", msg.Source())
	h, ok := msg.FloatField("humidity")
	assert.True(t, ok)
	assert.Equal(t, 59.0, h)
	v, ok := msg.FloatField("temp")
	assert.True(t, ok)
	assert.Equal(t, 2.3, v)
	_, ok = msg.FloatField("source")
	assert.False(t, ok)
	_, ok = msg.FloatField("missing")
	assert.False(t, ok)
}

func TestEqualTyped(t *testing.T) {
	a := NewMessage("homeeasy", Fields{"level": 0})
	b := NewMessage("homeeasy", Fields{"level": 0.0})
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(NewMessage("homeeasy", Fields{"level": 0})))
}
