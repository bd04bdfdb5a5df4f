// Package dedup suppresses repeated transmissions of the same event.
//
// Radio devices repeat each transmission several times, and some (PIRs)
// keep transmitting for as long as they are triggered. A message equal to
// one seen within the window is suppressed and its timestamp refreshed, so
// a continuous burst is reported once.
package dedup

import (
	"time"

	"github.com/barnybug/gorfxcom/pubsub"
)

const DefaultWindow = 2500 * time.Millisecond

type entry struct {
	msg *pubsub.Message
	at  time.Time
}

// Cache holds recently emitted messages, oldest first. It is not safe for
// concurrent use.
type Cache struct {
	Window  time.Duration
	entries []entry
}

func New(window time.Duration) *Cache {
	return &Cache{Window: window}
}

func (c *Cache) expire(now time.Time) {
	before := now.Add(-c.Window)
	i := 0
	for i < len(c.entries) && c.entries[i].at.Before(before) {
		i++
	}
	if i > 0 {
		c.entries = append(c.entries[:0], c.entries[i:]...)
	}
}

// Filter returns true if msg should be emitted, false if it duplicates a
// message seen within the window.
func (c *Cache) Filter(msg *pubsub.Message, now time.Time) bool {
	c.expire(now)
	for i, e := range c.entries {
		if e.msg.Equal(msg) {
			// move to the back with a fresh timestamp
			copy(c.entries[i:], c.entries[i+1:])
			c.entries[len(c.entries)-1] = entry{e.msg, now}
			return false
		}
	}
	c.entries = append(c.entries, entry{msg, now})
	return true
}

func (c *Cache) Len() int {
	return len(c.entries)
}

// Reset forgets all messages.
func (c *Cache) Reset() {
	c.entries = nil
}
