package transport

import (
	"time"

	"go.bug.st/serial"
)

// Bugst drives the port through go.bug.st/serial, which supports changing
// the read timeout per call.
type Bugst struct {
	port serial.Port
}

func OpenBugst(path string, baud int) (*Bugst, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	return &Bugst{port}, nil
}

func (b *Bugst) Read(n int, timeout time.Duration) ([]byte, error) {
	return readWithin(n, timeout, func(p []byte, remaining time.Duration) (int, error) {
		if err := b.port.SetReadTimeout(remaining); err != nil {
			return 0, err
		}
		return b.port.Read(p)
	})
}

func (b *Bugst) Write(data []byte) error {
	_, err := b.port.Write(data)
	return err
}

func (b *Bugst) Flush() error {
	return b.port.ResetInputBuffer()
}

func (b *Bugst) Close() error {
	return b.port.Close()
}
