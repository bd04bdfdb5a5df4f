// Package rfxcom drives an RFXCOM receiver in variable length mode: it
// initialises the device, reads length prefixed frames, decodes them and
// suppresses duplicate transmissions.
package rfxcom

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barnybug/gorfxcom/dedup"
	"github.com/barnybug/gorfxcom/parsers"
	"github.com/barnybug/gorfxcom/pubsub"
	"github.com/barnybug/gorfxcom/transport"
	"github.com/barnybug/gorfxcom/util"
)

var log = logrus.WithField("component", "rfxcom")

type State int32

const (
	Disconnected State = iota
	Handshaking
	Streaming
	Stopped
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Handshaking:
		return "handshaking"
	case Streaming:
		return "streaming"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

type Options struct {
	// Dedup is the window within which identical messages are suppressed.
	Dedup      time.Duration
	Retries    int
	RetryDelay time.Duration
	// AckTimeout bounds the wait for each setup acknowledgement.
	AckTimeout time.Duration
	// PayloadTimeout bounds the read of a frame after its length byte.
	PayloadTimeout time.Duration
	// WaitTimeout bounds each wait for a length byte, and so how long a
	// stop request can go unnoticed.
	WaitTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		Dedup:          dedup.DefaultWindow,
		Retries:        5,
		RetryDelay:     time.Second,
		AckTimeout:     500 * time.Millisecond,
		PayloadTimeout: 30 * time.Millisecond,
		WaitTimeout:    time.Second,
	}
}

// Consumer receives each message that survives deduplication.
type Consumer func(msg *pubsub.Message)

type Stats struct {
	Frames     int
	Messages   int
	Duplicates int
	Unhandled  int
	ShortReads int
}

func (s Stats) String() string {
	return fmt.Sprintf("frames: %d messages: %d duplicates: %d unhandled: %d short reads: %d",
		s.Frames, s.Messages, s.Duplicates, s.Unhandled, s.ShortReads)
}

// Receiver owns the transport and the deduplication cache. Apart from
// Stop and State, its methods must be called from a single goroutine.
type Receiver struct {
	transport transport.Transport
	opts      Options
	cache     *dedup.Cache
	state     int32
	stopping  int32
	stats     Stats
	now       func() time.Time
	after     func(time.Duration) <-chan time.Time
}

func New(t transport.Transport, opts Options) *Receiver {
	return &Receiver{
		transport: t,
		opts:      opts,
		cache:     dedup.New(opts.Dedup),
		now:       time.Now,
		after:     time.After,
	}
}

func (r *Receiver) State() State {
	return State(atomic.LoadInt32(&r.state))
}

func (r *Receiver) setState(s State) {
	old := State(atomic.SwapInt32(&r.state, int32(s)))
	if old != s {
		log.Debugf("State %s -> %s", old, s)
	}
}

func (r *Receiver) Stats() Stats {
	return r.stats
}

// Stop asks the receive loop to finish. It returns immediately; the loop
// notices within one wait timeout.
func (r *Receiver) Stop() {
	atomic.StoreInt32(&r.stopping, 1)
}

func (r *Receiver) stopped() bool {
	return atomic.LoadInt32(&r.stopping) == 1
}

// Close releases the transport.
func (r *Receiver) Close() error {
	return r.transport.Close()
}

// Decode parses a frame and applies deduplication. It returns nil for
// unhandled frames and duplicates.
func (r *Receiver) Decode(bits byte, packet []byte) *pubsub.Message {
	r.stats.Frames++
	msg, err := parsers.Parse(bits, packet)
	if err != nil {
		r.stats.Unhandled++
		log.Warnf("Unhandled data: [%s]", util.Hex(packet))
		return nil
	}

	if !r.cache.Filter(msg, r.now()) {
		r.stats.Duplicates++
		log.Debugln("Suppressed duplicate message", msg)
		return nil
	}

	r.stats.Messages++
	log.Infoln("Message:", msg)
	return msg
}

// RunOnce reads and decodes one frame. It returns (nil, nil) when the frame
// was short, unhandled or a duplicate, or when a stop was requested.
func (r *Receiver) RunOnce() (*pubsub.Message, error) {
	bits, packet, err := r.ReadFrame()
	if short, ok := err.(*ShortReadError); ok {
		r.stats.ShortReads++
		log.Warnln(short)
		return nil, nil
	}
	if err != nil || packet == nil {
		return nil, err
	}
	return r.Decode(bits, packet), nil
}

// Run sets up the device if necessary then delivers messages to consumer
// until Stop is called, ctx is cancelled or the transport fails.
func (r *Receiver) Run(ctx context.Context, consumer Consumer) error {
	release := context.AfterFunc(ctx, r.Stop)
	defer release()

	if r.State() != Streaming && !r.stopped() {
		if err := r.Setup(ctx); err != nil {
			return err
		}
	}

	for !r.stopped() {
		msg, err := r.RunOnce()
		if err != nil {
			r.setState(Disconnected)
			return errors.Wrap(err, "reading")
		}
		if msg != nil {
			consumer(msg)
		}
	}

	r.cache.Reset()
	r.setState(Stopped)
	log.Infoln("Stopped,", r.stats)
	return nil
}
