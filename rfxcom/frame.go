package rfxcom

import (
	"fmt"

	"github.com/barnybug/gorfxcom/parsers"
)

// ShortReadError is returned when a frame's payload did not arrive within
// the payload timeout. The frame is dropped.
type ShortReadError struct {
	Bits     byte
	Expected int
	Received int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("Read short - expected %d, received %d bytes", e.Expected, e.Received)
}

// ReadFrame waits for a length byte then reads the payload it announces. It
// returns a nil packet if a stop was requested while waiting.
func (r *Receiver) ReadFrame() (byte, []byte, error) {
	var length []byte
	for !r.stopped() {
		b, err := r.transport.Read(1, r.opts.WaitTimeout)
		if err != nil {
			return 0, nil, err
		}
		if len(b) == 1 {
			length = b
			break
		}
	}
	if length == nil {
		return 0, nil, nil
	}

	bits := length[0]
	n := parsers.PacketBytes(bits)
	if n == 0 {
		return bits, []byte{}, nil
	}
	packet, err := r.transport.Read(n, r.opts.PayloadTimeout)
	if err != nil {
		return 0, nil, err
	}
	if len(packet) < n {
		return 0, nil, &ShortReadError{Bits: bits, Expected: n, Received: len(packet)}
	}
	return bits, packet, nil
}
