package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnybug/gorfxcom/pubsub"
)

func owl(current1 float64) *pubsub.Message {
	return pubsub.NewMessage("owl", pubsub.Fields{
		"source":   "13",
		"current1": current1,
		"current2": 0.0,
		"current3": 0.0,
	})
}

func ExampleRules_Drop() {
	rules, _ := CompileAll([]string{`topic == "owl" && current1 > 100`})
	fmt.Println(rules.Drop(owl(1.5)))
	fmt.Println(rules.Drop(owl(102.3)).Source)
	// Output:
	// <nil>
	// topic == "owl" && current1 > 100
}

func TestCompileError(t *testing.T) {
	_, err := CompileAll([]string{"temp >", "temp > 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "temp >"`)
}

func TestMissingField(t *testing.T) {
	rule, err := Compile("humidity > 100")
	require.NoError(t, err)
	msg := pubsub.NewMessage("temp", pubsub.Fields{"source": "thn132n.a3", "temp": 21.5})
	assert.False(t, rule.Match(msg))
}

func TestNonBoolean(t *testing.T) {
	rule, err := Compile("temp + 1")
	require.NoError(t, err)
	msg := pubsub.NewMessage("temp", pubsub.Fields{"temp": 21.5})
	assert.False(t, rule.Match(msg))
}

func TestStringFields(t *testing.T) {
	rules, err := CompileAll([]string{`source == "thn132n.a3"`, `level > 10`})
	require.NoError(t, err)
	msg := pubsub.NewMessage("temp", pubsub.Fields{"source": "thn132n.a3", "temp": 21.5})
	assert.Equal(t, rules[0], rules.Drop(msg))

	msg = pubsub.NewMessage("homeeasy", pubsub.Fields{"source": "31F8177A", "level": 12})
	assert.Equal(t, rules[1], rules.Drop(msg))
	msg = pubsub.NewMessage("homeeasy", pubsub.Fields{"source": "31F8177A", "level": 7})
	assert.Nil(t, rules.Drop(msg))
}

func TestEmpty(t *testing.T) {
	var rules Rules
	assert.Nil(t, rules.Drop(owl(1000)))
}
