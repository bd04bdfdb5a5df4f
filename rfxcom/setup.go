package rfxcom

import (
	"context"

	"github.com/pkg/errors"

	"github.com/barnybug/gorfxcom/util"
)

// ErrHandshake is returned when the device does not acknowledge setup.
var ErrHandshake = errors.New("handshake failed")

var (
	cmdVariableLength = []byte{0xf0, 0x2c}
	cmdAllModes       = []byte{0xf0, 0x2a}
)

// Both setup commands are acknowledged with 0x2c; the device does not echo
// 0x2a for the second.
const ack = 0x2c

// Setup switches the device into variable length mode with all receivers
// enabled, retrying a failed handshake. At least one attempt is made
// whatever Retries is set to.
func (r *Receiver) Setup(ctx context.Context) error {
	r.setState(Handshaking)
	log.Infoln("Connecting...")

	attempts := r.opts.Retries
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = r.handshake(); err == nil {
			log.Infoln("Initialised successfully")
			r.setState(Streaming)
			return nil
		}
		if attempt == attempts {
			break
		}
		log.Warnf("Setup failed: %s, retrying (%d more attempts)", err, attempts-attempt)
		select {
		case <-ctx.Done():
			r.setState(Disconnected)
			return ctx.Err()
		case <-r.after(r.opts.RetryDelay):
		}
	}

	r.setState(Disconnected)
	return errors.Wrapf(err, "setup failed after %d attempts", attempts)
}

func (r *Receiver) handshake() error {
	if err := r.transport.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if err := r.command(cmdVariableLength); err != nil {
		return err
	}
	return r.command(cmdAllModes)
}

func (r *Receiver) command(cmd []byte) error {
	if err := r.transport.Write(cmd); err != nil {
		return errors.Wrapf(err, "writing [%s]", util.Hex(cmd))
	}
	return r.expect(ack)
}

func (r *Receiver) expect(expected byte) error {
	data, err := r.transport.Read(1, r.opts.AckTimeout)
	if err != nil {
		return errors.Wrap(err, "reading ack")
	}
	if len(data) != 1 || data[0] != expected {
		return errors.Wrapf(ErrHandshake, "expected [%02x] got [%s]", expected, util.Hex(data))
	}
	return nil
}
