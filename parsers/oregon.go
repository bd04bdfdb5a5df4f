package parsers

import (
	"fmt"

	"github.com/barnybug/gorfxcom/pubsub"
)

// checksum selects one of the Oregon Scientific checksum layouts. Each sums
// the nibbles of a prefix of the packet, subtracts 0xa and compares the low
// 8 bits against the check byte.
type checksum int

const (
	checksum1 checksum = iota + 1
	checksum2
	checksum3
	checksum4
	checksum5
	checksum6
	checksum7
	checksum8
)

func oregonSum(s int) int {
	return (s - 0xa) & 0xff
}

// splitCheck reads a check byte stored as the high nibble of p[n] and the
// low nibble of p[n+1].
func splitCheck(p []byte, n int) int {
	return hiNibble(p[n]) + loNibble(p[n+1])<<4
}

func (c checksum) valid(p []byte) bool {
	switch c {
	case checksum1:
		return oregonSum(nibbleSum(6, p)+loNibble(p[6])) == splitCheck(p, 6)
	case checksum2:
		return int(p[8]) == oregonSum(nibbleSum(8, p))
	case checksum3:
		return int(p[11]) == oregonSum(nibbleSum(11, p))
	case checksum4:
		return int(p[9]) == oregonSum(nibbleSum(9, p))
	case checksum5:
		return int(p[10]) == oregonSum(nibbleSum(10, p))
	case checksum6:
		return oregonSum(nibbleSum(8, p)) == splitCheck(p, 8)
	case checksum7:
		return int(p[7]) == oregonSum(nibbleSum(7, p))
	case checksum8:
		return oregonSum(nibbleSum(9, p)) == splitCheck(p, 9)
	}
	panic(fmt.Sprintf("unknown checksum %d", c))
}

// extractor selects how fields are read from a sensor packet.
type extractor int

const (
	commonTemp extractor = iota
	commonTempHydro
	altTempHydro
	anemometer
	rainGauge
)

var windDirections = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func temperature(p []byte) float64 {
	sign := 1.0
	if p[6]&0x8 != 0 {
		sign = -1.0
	}
	return sign * (float64(hiNibble(p[5]))*10.0 + float64(loNibble(p[5])) + float64(hiNibble(p[4]))/10.0)
}

func humidity(p []byte) int {
	return loNibble(p[7])*10 + hiNibble(p[6])
}

func simpleBattery(p []byte) int {
	if p[4]&0x4 != 0 {
		return 10
	}
	return 90
}

func percentageBattery(p []byte) int {
	return 100 - 10*loNibble(p[4])
}

// inchesToMM converts rainfall in inches to millimetres.
const inchesToMM = 25.4

func (e extractor) extract(part string, p []byte, fields pubsub.Fields) {
	id := fmt.Sprintf("%s.%02x", part, p[3])
	switch e {
	case commonTemp:
		fields["temp"] = temperature(p)
		fields["battery"] = simpleBattery(p)
	case commonTempHydro:
		fields["temp"] = temperature(p)
		fields["humidity"] = humidity(p)
		fields["battery"] = simpleBattery(p)
	case altTempHydro:
		fields["temp"] = temperature(p)
		fields["humidity"] = humidity(p)
		fields["battery"] = percentageBattery(p)
	case anemometer:
		// one anemometer per station, no rolling address
		id = part
		fields["dir"] = windDirections[hiNibble(p[4])]
		fields["speed"] = float64(loNibble(p[7])*10+hiNibble(p[6])) + float64(loNibble(p[6]))/10.0
		fields["avgspeed"] = float64(hiNibble(p[8])*10+loNibble(p[8])) + float64(hiNibble(p[7]))/10.0
	case rainGauge:
		rate := float64(loNibble(p[6])*10+hiNibble(p[5])) + float64(loNibble(p[5]))/10.0 + float64(hiNibble(p[4]))/100.0
		total := float64(loNibble(p[9])*100+decByte(p, 8)) + float64(decByte(p, 7))/100.0 + float64(hiNibble(p[6]))/1000.0
		fields["speed"] = rate * inchesToMM
		fields["total"] = total * inchesToMM
		fields["battery"] = simpleBattery(p)
	default:
		panic(fmt.Sprintf("unknown extractor %d", e))
	}
	fields["sensor"] = id
	fields["source"] = id
}

type sensorKey struct {
	code uint16
	bits byte
}

type sensor struct {
	part     string
	topic    string
	checksum checksum
	extract  extractor
}

var oregonSensors = map[sensorKey]sensor{
	{0xfa28, 80}: {"thgr810", "temp", checksum2, commonTempHydro},
	{0xfab8, 80}: {"wtgr800", "temp", checksum2, altTempHydro},
	{0x1a99, 88}: {"wtgr800", "wind", checksum4, anemometer},
	{0xea4c, 80}: {"thwr288a", "temp", checksum1, commonTemp},
	{0xea4c, 68}: {"thn132n", "temp", checksum1, commonTemp},
	{0x2a19, 92}: {"pcr800", "rain", checksum8, rainGauge},
}

// Oregon Scientific v2/v3 weather sensors, identified by a 16 bit type code
// and the frame length.
type Oregon struct{}

func (Oregon) Name() string {
	return "oregon"
}

func lookupSensor(bits byte, p []byte) (sensor, bool) {
	if bits < 2 || len(p) < PacketBytes(bits) {
		return sensor{}, false
	}
	code := uint16(p[0])<<8 | uint16(p[1])
	s, ok := oregonSensors[sensorKey{code, bits}]
	return s, ok
}

func (Oregon) Valid(bits byte, p []byte) bool {
	s, ok := lookupSensor(bits, p)
	return ok && s.checksum.valid(p)
}

func (o Oregon) Parse(bits byte, p []byte) *pubsub.Message {
	if !o.Valid(bits, p) {
		return nil
	}
	s, _ := lookupSensor(bits, p)
	fields := pubsub.Fields{}
	s.extract.extract(s.part, p, fields)
	return pubsub.NewMessage(s.topic, fields)
}
