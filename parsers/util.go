package parsers

func hiNibble(b byte) int {
	return int(b >> 4)
}

func loNibble(b byte) int {
	return int(b & 0xf)
}

// nibbleSum adds the high and low nibbles of p[0:n].
func nibbleSum(n int, p []byte) int {
	s := 0
	for i := 0; i < n; i++ {
		s += hiNibble(p[i]) + loNibble(p[i])
	}
	return s
}

// decByte reads p[n] as two BCD digits.
func decByte(p []byte, n int) int {
	return hiNibble(p[n])*10 + loNibble(p[n])
}

// PacketBytes returns the number of payload bytes following a length byte.
// Only the low 7 bits of the length byte count.
func PacketBytes(bits byte) int {
	return (int(bits&0x7f) + 7) / 8
}
