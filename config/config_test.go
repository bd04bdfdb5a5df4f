package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnybug/gorfxcom/pubsub"
)

var yml = `
device: /dev/ttyUSB*
driver: tarm
dedup: 5s
timeouts:
  payload: 50ms
mqtt:
  broker: tcp://localhost:1883
  topics: [temp, wind]
rules:
  - topic == "owl" && current1 > 100
protocols:
  x10:
    a01: light.hall
  homeeasy:
    31F8177A: light.glowworm
  owl:
    "13": power.house
`

func ExampleOpenRaw() {
	config, _ := OpenRaw([]byte(yml))
	fmt.Println(config.Device, config.Driver, config.Baud)
	fmt.Println(config.Dedup, config.Timeouts.Payload, config.Timeouts.Ack)
	// Output:
	// /dev/ttyUSB* tarm 4800
	// 5s 50ms 500ms
}

func ExampleConfig_AddDeviceName() {
	config, _ := OpenRaw([]byte(yml))
	msg := pubsub.NewMessage("x10", pubsub.Fields{"source": "a01", "command": "on"})
	fmt.Println(config.AddDeviceName(msg).Fields)
	// Output:
	// map[command:on device_name:light.hall source:a01]
}

func TestDefaults(t *testing.T) {
	config, err := OpenRaw([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultDevice, config.Device)
	assert.Equal(t, "bugst", config.Driver)
	assert.Equal(t, "rfxcom", config.Mqtt.Prefix)
	opts := config.ReceiverOptions()
	assert.Equal(t, 2500*time.Millisecond, opts.Dedup)
	assert.Equal(t, 5, opts.Retries)
	assert.Equal(t, time.Second, opts.RetryDelay)
	assert.Equal(t, 500*time.Millisecond, opts.AckTimeout)
	assert.Equal(t, 30*time.Millisecond, opts.PayloadTimeout)
	assert.Equal(t, time.Second, opts.WaitTimeout)
}

func TestTransportOptions(t *testing.T) {
	config, err := OpenRaw([]byte("log:\n  wire: true\n"))
	require.NoError(t, err)
	opts := config.TransportOptions()
	assert.Equal(t, DefaultDevice, opts.Device)
	assert.Equal(t, 4800, opts.Baud)
	assert.True(t, opts.Wire)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		yml string
		err string
	}{
		{"driver: usb", `unknown driver "usb"`},
		{"retries: 0", "retries must be positive"},
		{"baud: -1", "baud must be positive"},
		{"dedup: 0s", "dedup must be positive"},
		{"timeouts:\n  wait: -1s", "timeouts.wait must be positive"},
		{"dedup: soon", "parsing config"},
		{"unknown: 1", "parsing config"},
	}
	for _, test := range tests {
		_, err := OpenRaw([]byte(test.yml))
		if assert.Error(t, err, test.yml) {
			assert.Contains(t, err.Error(), test.err)
		}
	}
}

func TestLookupDeviceName(t *testing.T) {
	config, _ := OpenRaw([]byte(yml))
	msg := pubsub.NewMessage("homeeasy", pubsub.Fields{"source": "31F8177A"})
	assert.Equal(t, "light.glowworm", config.LookupDeviceName(msg))
	msg = pubsub.NewMessage("x10", pubsub.Fields{"source": "a02"})
	assert.Equal(t, "", config.LookupDeviceName(msg))
	assert.Equal(t, msg, config.AddDeviceName(msg))
	_, ok := msg.Fields["device_name"]
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	dir, err := os.MkdirTemp("", "rfxcom")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	config, err := Open(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), config)

	filename := filepath.Join(dir, "rfxcom.yml")
	require.NoError(t, os.WriteFile(filename, []byte(yml), 0644))
	config, err = Open(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"temp", "wind"}, config.Mqtt.Topics)
}

func TestOpenReader(t *testing.T) {
	config, err := OpenReader(strings.NewReader("baud: 9600"))
	require.NoError(t, err)
	assert.Equal(t, 9600, config.Baud)
}

func TestConfigPath(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	defer os.Unsetenv("XDG_CONFIG_HOME")
	assert.Equal(t, "/etc/xdg/rfxcom/rfxcom.yml", ConfigPath("rfxcom.yml"))
}
