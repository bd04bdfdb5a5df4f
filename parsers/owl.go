package parsers

import (
	"fmt"

	"github.com/barnybug/gorfxcom/pubsub"
)

// Owl CM113 electricity monitor. Three 10 bit current readings in tenths
// of an amp.
type Owl struct{}

func (Owl) Name() string {
	return "owl"
}

func (Owl) Valid(bits byte, p []byte) bool {
	return bits == 120 && len(p) >= 15 && p[0] == 0xea && p[9] == 0xff && p[10] == 0x5f
}

func (o Owl) Parse(bits byte, p []byte) *pubsub.Message {
	if !o.Valid(bits, p) {
		return nil
	}

	current1 := int(p[3]) | int(p[4]&0x03)<<8
	current2 := int(p[4]&0xfc)>>2 | int(p[5]&0x0f)<<6
	current3 := int(p[5]&0xf0)>>4 | int(p[6]&0x3f)<<4

	fields := pubsub.Fields{
		"source":   fmt.Sprintf("%02x", p[2]),
		"current1": float64(current1) / 10.0,
		"current2": float64(current2) / 10.0,
		"current3": float64(current3) / 10.0,
	}
	return pubsub.NewMessage("owl", fields)
}
