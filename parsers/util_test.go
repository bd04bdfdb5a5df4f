package parsers

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func h(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestNibbles(t *testing.T) {
	assert.Equal(t, 0xa, hiNibble(0xa5))
	assert.Equal(t, 0x5, loNibble(0xa5))
}

func TestNibbleSum(t *testing.T) {
	p := h("12349f")
	assert.Equal(t, 0, nibbleSum(0, p))
	assert.Equal(t, 1+2+3+4, nibbleSum(2, p))
	assert.Equal(t, 1+2+3+4+9+15, nibbleSum(3, p))
}

func TestDecByte(t *testing.T) {
	assert.Equal(t, 59, decByte(h("0059"), 1))
	assert.Equal(t, 0, decByte(h("00"), 0))
}

func TestPacketBytes(t *testing.T) {
	assert.Equal(t, 0, PacketBytes(0))
	assert.Equal(t, 1, PacketBytes(1))
	assert.Equal(t, 2, PacketBytes(12))
	assert.Equal(t, 4, PacketBytes(32))
	assert.Equal(t, 5, PacketBytes(34))
	assert.Equal(t, 15, PacketBytes(120))
	// top bit is not part of the length
	assert.Equal(t, 4, PacketBytes(0x80|32))
}
