package config

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/barnybug/gorfxcom/pubsub"
	"github.com/barnybug/gorfxcom/rfxcom"
	"github.com/barnybug/gorfxcom/transport"
)

const DefaultDevice = "/dev/serial/by-id/usb-FTDI_FT232R_USB_UART_*-if00-port0"

type Duration struct {
	time.Duration
}

func (self *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	self.Duration = d
	return nil
}

func (self Duration) MarshalYAML() (interface{}, error) {
	return self.Duration.String(), nil
}

type TimeoutsConf struct {
	Ack     Duration
	Payload Duration
	Wait    Duration
}

type LogConf struct {
	Level  string
	Format string
	Wire   bool
}

type MqttConf struct {
	Broker   string
	Prefix   string
	Topics   []string
	Retained bool
}

type GraphiteConf struct {
	Host   string
	Prefix string
}

// Configuration structure
type Config struct {
	Device      string
	Driver      string
	Baud        int
	Dedup       Duration
	Retries     int
	Retry_Delay Duration
	Timeouts    TimeoutsConf
	Log         LogConf
	Mqtt        MqttConf
	Graphite    GraphiteConf
	Rules       []string
	// protocol -> id -> device name
	Protocols map[string]map[string]string
}

func Defaults() *Config {
	return &Config{
		Device:      DefaultDevice,
		Driver:      transport.DriverBugst,
		Baud:        4800,
		Dedup:       Duration{2500 * time.Millisecond},
		Retries:     5,
		Retry_Delay: Duration{time.Second},
		Timeouts: TimeoutsConf{
			Ack:     Duration{500 * time.Millisecond},
			Payload: Duration{30 * time.Millisecond},
			Wait:    Duration{time.Second},
		},
		Log:      LogConf{Level: "info", Format: "text"},
		Mqtt:     MqttConf{Prefix: "rfxcom"},
		Graphite: GraphiteConf{Prefix: "sensor"},
	}
}

// Open configuration from disk. A missing file gives the defaults.
func Open(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	self := Defaults()
	if err := yaml.UnmarshalStrict(data, self); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := self.Validate(); err != nil {
		return nil, err
	}
	return self, nil
}

func (self *Config) Validate() error {
	switch self.Driver {
	case transport.DriverBugst, transport.DriverTarm:
	default:
		return errors.Errorf("unknown driver %q", self.Driver)
	}
	if self.Device == "" {
		return errors.New("device must be set")
	}
	if self.Baud <= 0 {
		return errors.Errorf("baud must be positive, got %d", self.Baud)
	}
	if self.Retries <= 0 {
		return errors.Errorf("retries must be positive, got %d", self.Retries)
	}
	durations := []struct {
		name  string
		value Duration
	}{
		{"dedup", self.Dedup},
		{"retry_delay", self.Retry_Delay},
		{"timeouts.ack", self.Timeouts.Ack},
		{"timeouts.payload", self.Timeouts.Payload},
		{"timeouts.wait", self.Timeouts.Wait},
	}
	for _, d := range durations {
		if d.value.Duration <= 0 {
			return errors.Errorf("%s must be positive, got %s", d.name, d.value.Duration)
		}
	}
	return nil
}

func (self *Config) ReceiverOptions() rfxcom.Options {
	return rfxcom.Options{
		Dedup:          self.Dedup.Duration,
		Retries:        self.Retries,
		RetryDelay:     self.Retry_Delay.Duration,
		AckTimeout:     self.Timeouts.Ack.Duration,
		PayloadTimeout: self.Timeouts.Payload.Duration,
		WaitTimeout:    self.Timeouts.Wait.Duration,
	}
}

func (self *Config) TransportOptions() transport.Options {
	return transport.Options{
		Driver: self.Driver,
		Device: self.Device,
		Baud:   self.Baud,
		Wire:   self.Log.Wire,
	}
}

// LookupDeviceName returns the configured name for a message's source, or
// "" if there is none.
func (self *Config) LookupDeviceName(msg *pubsub.Message) string {
	return self.Protocols[msg.Topic][msg.Source()]
}

// AddDeviceName returns msg with a device_name field when its source is
// named in the protocols section.
func (self *Config) AddDeviceName(msg *pubsub.Message) *pubsub.Message {
	if name := self.LookupDeviceName(msg); name != "" {
		return msg.With("device_name", name)
	}
	return msg
}

// helpers

// Resolve a configuration file under .config/rfxcom
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "rfxcom", p)
}
