package transport

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Frame is a length byte and the payload sent after it. A payload shorter
// than the length implies simulates a frame cut off mid-transmission.
type Frame struct {
	Bits   byte
	Packet []byte
}

// DefaultResponses are the replies of a receiver to its setup commands.
var DefaultResponses = map[string][]byte{
	"f02c": {0x2c}, // variable length mode
	"f02a": {0x2c}, // all receive modes, acked with 2c not 2a
	"f020": {0x4d, 0x18, 0x53, 0x30},
}

// Mock is a scripted receiver for tests. Frames are delivered one at a time
// once earlier input has been consumed.
type Mock struct {
	Frames    []Frame
	Responses map[string][]byte
	// FailSetup answers the first FailSetup variable length mode commands
	// with a bad ack.
	FailSetup int
	// Drained is called each time a read finds no input left.
	Drained func()

	Written  [][]byte
	Timeouts []time.Duration
	Flushes  int
	Closed   bool

	mu     sync.Mutex
	buffer []byte
}

func NewMock(frames ...Frame) *Mock {
	responses := map[string][]byte{}
	for k, v := range DefaultResponses {
		responses[k] = v
	}
	return &Mock{Frames: frames, Responses: responses}
}

func (m *Mock) Read(n int, timeout time.Duration) ([]byte, error) {
	m.mu.Lock()
	m.Timeouts = append(m.Timeouts, timeout)
	if len(m.buffer) == 0 && len(m.Frames) > 0 {
		f := m.Frames[0]
		m.Frames = m.Frames[1:]
		m.buffer = append(append(m.buffer, f.Bits), f.Packet...)
	}
	if len(m.buffer) == 0 {
		drained := m.Drained
		m.mu.Unlock()
		if drained != nil {
			drained()
		}
		return nil, nil
	}
	if n > len(m.buffer) {
		n = len(m.buffer)
	}
	ret := append([]byte(nil), m.buffer[:n]...)
	m.buffer = m.buffer[n:]
	m.mu.Unlock()
	return ret, nil
}

func (m *Mock) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Written = append(m.Written, append([]byte(nil), data...))
	cmd := hex.EncodeToString(data)
	resp, ok := m.Responses[cmd]
	if !ok {
		return errors.Errorf("command not understood: %s", cmd)
	}
	if cmd == "f02c" && m.FailSetup > 0 {
		m.FailSetup--
		resp = []byte{0x00}
	}
	m.buffer = append(m.buffer, resp...)
	return nil
}

func (m *Mock) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
	m.buffer = nil
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
