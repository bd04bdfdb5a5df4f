package parsers

import (
	"fmt"

	"github.com/barnybug/gorfxcom/pubsub"
)

const x10Groups = "mnopcdabefghklij"

var x10Units = map[byte]int{
	0x00: 0, 0x10: 1, 0x08: 2, 0x18: 3,
	0x40: 4, 0x50: 5, 0x48: 6, 0x58: 7,
}

var x10Commands = map[byte]string{
	0x98: "dim",
	0x88: "bright",
	0x90: "all_lights_on",
	0x80: "all_lights_off",
	0x00: "on",
	0x20: "off",
}

// X10 remote controls. Each of the two byte pairs is sent followed by its
// complement.
type X10 struct{}

func (X10) Name() string {
	return "x10"
}

func (X10) Valid(bits byte, p []byte) bool {
	return bits == 32 && len(p) >= 4 && p[0]^p[1] == 0xff && p[2]^p[3] == 0xff
}

func (x X10) Parse(bits byte, p []byte) *pubsub.Message {
	if !x.Valid(bits, p) {
		return nil
	}

	group := x10Groups[hiNibble(p[0]) : hiNibble(p[0])+1]
	mask := byte(0x98)
	device := ""
	if p[2]&0x80 == 0 {
		unit := x10Units[p[2]&0x58]
		if p[0]&0x4 != 0 {
			unit += 8
		}
		device = fmt.Sprintf("%02d", unit+1)
		mask = 0x20
	}

	fields := pubsub.Fields{
		"group":   group,
		"device":  device,
		"command": x10Commands[p[2]&mask],
		"source":  group + device,
	}
	return pubsub.NewMessage("x10", fields)
}
