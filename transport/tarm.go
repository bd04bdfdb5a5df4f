package transport

import (
	"time"

	"github.com/tarm/serial"
)

// tarm/serial fixes the read timeout when the port is opened (in tenths of a
// second on posix), so reads poll at this interval until their deadline.
const tarmPoll = 100 * time.Millisecond

// Tarm drives the port through github.com/tarm/serial.
type Tarm struct {
	port *serial.Port
}

func OpenTarm(path string, baud int) (*Tarm, error) {
	c := &serial.Config{Name: path, Baud: baud, ReadTimeout: tarmPoll}
	port, err := serial.OpenPort(c)
	if err != nil {
		return nil, err
	}
	return &Tarm{port}, nil
}

func (t *Tarm) Read(n int, timeout time.Duration) ([]byte, error) {
	return readWithin(n, timeout, func(p []byte, _ time.Duration) (int, error) {
		return t.port.Read(p)
	})
}

func (t *Tarm) Write(data []byte) error {
	_, err := t.port.Write(data)
	return err
}

func (t *Tarm) Flush() error {
	return t.port.Flush()
}

func (t *Tarm) Close() error {
	return t.port.Close()
}
