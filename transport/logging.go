package transport

import (
	"time"

	"github.com/barnybug/gorfxcom/util"
)

var wire = log.WithField("component", "wire")

// Logging wraps a Transport, logging traffic in hex.
type Logging struct {
	Transport
}

func (l *Logging) Read(n int, timeout time.Duration) ([]byte, error) {
	data, err := l.Transport.Read(n, timeout)
	if len(data) > 0 {
		wire.Debugf("<-- [%s]", util.Hex(data))
	}
	return data, err
}

func (l *Logging) Write(data []byte) error {
	wire.Debugf("--> [%s]", util.Hex(data))
	return l.Transport.Write(data)
}
