// Package parsers decodes the variable length frames received by an RFXCOM
// receiver into messages.
package parsers

import (
	"fmt"

	"github.com/barnybug/gorfxcom/pubsub"
	"github.com/barnybug/gorfxcom/util"
)

// Parser recognises and decodes one radio protocol.
type Parser interface {
	Name() string
	// Valid reports whether the frame belongs to this protocol and passes
	// its integrity checks.
	Valid(bits byte, packet []byte) bool
	// Parse decodes the frame, returning nil when Valid is false.
	Parse(bits byte, packet []byte) *pubsub.Message
}

// Parsers in the order they are tried.
var Parsers = []Parser{X10{}, HomeEasy{}, Oregon{}, Owl{}}

// UnhandledError is returned when no parser accepts a frame.
type UnhandledError struct {
	Bits   byte
	Packet []byte
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled data (%d bits): [%s]", e.Bits, util.Hex(e.Packet))
}

// Parse decodes a frame with the first parser that accepts it.
func Parse(bits byte, packet []byte) (*pubsub.Message, error) {
	p := Match(bits, packet)
	if p == nil {
		return nil, &UnhandledError{Bits: bits, Packet: packet}
	}
	return p.Parse(bits, packet), nil
}

// Match returns the parser that accepts a frame, or nil.
func Match(bits byte, packet []byte) Parser {
	for _, p := range Parsers {
		if p.Valid(bits, packet) {
			return p
		}
	}
	return nil
}
