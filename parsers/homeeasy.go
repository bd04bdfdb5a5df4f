package parsers

import (
	"fmt"
	"strings"

	"github.com/barnybug/gorfxcom/pubsub"
)

// HomeEasy remotes and PIRs: a 26 bit address, a group flag, on/off and a
// unit number. 36 bit frames carry a dim level instead of on/off.
type HomeEasy struct{}

func (HomeEasy) Name() string {
	return "homeeasy"
}

func (HomeEasy) Valid(bits byte, p []byte) bool {
	return (bits == 34 || bits == 36) && len(p) >= PacketBytes(bits)
}

func (h HomeEasy) Parse(bits byte, p []byte) *pubsub.Message {
	if !h.Valid(bits, p) {
		return nil
	}

	address := uint32(p[0])<<18 | uint32(p[1])<<10 | uint32(p[2])<<2 | uint32(p[3])>>6
	addr := fmt.Sprintf("%07x", address)
	command := (p[3] >> 4) & 0x3
	unit := p[3] & 0xf

	var device, source string
	if command&0x2 != 0 {
		device = "group"
		source = strings.ToUpper(addr) + "G"
	} else {
		device = fmt.Sprintf("%02d", unit)
		source = fmt.Sprintf("%s%1X", strings.ToUpper(addr), unit)
	}

	fields := pubsub.Fields{
		"address": addr,
		"device":  device,
		"source":  source,
	}
	if bits == 36 {
		fields["level"] = hiNibble(p[4])
		fields["command"] = "preset"
	} else if command&0x1 != 0 {
		fields["command"] = "on"
	} else {
		fields["command"] = "off"
	}
	return pubsub.NewMessage("homeeasy", fields)
}
