// Package graphite writes numeric readings to a carbon server using the
// plaintext protocol.
package graphite

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/pkg/errors"
)

const BatchSize = 4096

const DefaultPort = "2003"

type Graphite struct {
	address string
	buffer  string
}

var dailer = func(network, address string) (io.ReadWriteCloser, error) {
	return net.Dial(network, address)
}

// New returns a client for host, which may include a port.
func New(host string) *Graphite {
	address := host
	if !strings.Contains(host, ":") {
		address = net.JoinHostPort(host, DefaultPort)
	}
	return &Graphite{address: address}
}

func (graphite *Graphite) Add(path string, timestamp int64, value float64) error {
	line := fmt.Sprintf("%s %v %d\n", path, value, timestamp)
	graphite.buffer += line
	if len(graphite.buffer) > BatchSize {
		return graphite.Flush()
	}
	return nil
}

func (graphite *Graphite) Flush() error {
	if graphite.buffer == "" {
		return nil
	}
	conn, err := dailer("tcp", graphite.address)
	if err != nil {
		return errors.Wrap(err, "connecting to graphite")
	}
	defer conn.Close()
	_, err = conn.Write([]byte(graphite.buffer))
	graphite.buffer = ""
	return errors.Wrap(err, "writing to graphite")
}
