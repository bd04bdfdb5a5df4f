// Package transport provides the byte stream to an RFXCOM receiver.
package transport

import (
	"io"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barnybug/gorfxcom/util"
)

var log = logrus.WithField("component", "transport")

// ErrNoDevice is returned when no serial port matches the device pattern.
var ErrNoDevice = errors.New("no USB serial ports found")

// Transport is a serial link with per-read timeouts.
type Transport interface {
	// Read returns up to n bytes, fewer if the timeout elapses first. A
	// timeout is not an error.
	Read(n int, timeout time.Duration) ([]byte, error)
	Write(data []byte) error
	// Flush discards buffered input.
	Flush() error
	Close() error
}

const (
	DriverBugst = "bugst"
	DriverTarm  = "tarm"
)

type Options struct {
	Driver string
	// Device path, or a glob matching it.
	Device string
	Baud   int
	// Wire logs every byte read and written at debug level.
	Wire bool
}

// Find resolves a device glob to the first matching path.
func Find(pattern string) (string, error) {
	matches, err := filepath.Glob(util.ExpandUser(pattern))
	if err != nil {
		return "", errors.Wrapf(err, "bad device pattern %q", pattern)
	}
	if len(matches) == 0 {
		return "", errors.Wrap(ErrNoDevice, pattern)
	}
	return matches[0], nil
}

// Open finds and opens the device with the configured driver.
func Open(opts Options) (Transport, error) {
	path, err := Find(opts.Device)
	if err != nil {
		return nil, err
	}

	var t Transport
	switch opts.Driver {
	case DriverBugst, "":
		t, err = OpenBugst(path, opts.Baud)
	case DriverTarm:
		t, err = OpenTarm(path, opts.Baud)
	default:
		return nil, errors.Errorf("unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	log.Infof("Opened %s (%s, %d baud)", path, opts.Driver, opts.Baud)

	if opts.Wire {
		t = &Logging{t}
	}
	return t, nil
}

// readWithin calls read until n bytes have arrived or the timeout elapses.
// read is given the time remaining and may return (0, nil) or (0, io.EOF)
// when nothing arrived.
func readWithin(n int, timeout time.Duration, read func(p []byte, remaining time.Duration) (int, error)) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	deadline := time.Now().Add(timeout)
	for got < n {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		c, err := read(buf[got:], remaining)
		got += c
		if err != nil && err != io.EOF {
			return buf[:got], err
		}
	}
	return buf[:got], nil
}
