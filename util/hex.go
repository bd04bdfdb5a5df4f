package util

import (
	"fmt"
	"strings"
)

// Hex formats bytes as space separated hex pairs, eg "12 30".
func Hex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}
