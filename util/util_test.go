package util

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleHex() {
	fmt.Println(Hex([]byte{0x12, 0x30}))
	fmt.Printf("%q\n", Hex(nil))
	// Output:
	// 12 30
	// ""
}

func TestExpandUser(t *testing.T) {
	assert.Equal(t, os.ExpandEnv("$HOME/abc"), ExpandUser("~/abc"))
	assert.Equal(t, "/dev/ttyUSB0", ExpandUser("/dev/ttyUSB0"))
	assert.Equal(t, "~abc", ExpandUser("~abc"))
}
