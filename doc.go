// The gorfxcom RFXCOM receiver
//
// Features
//
// - Receives 433MHz transmissions via an RFXCOM USB receiver in variable length mode
//
// - Suppresses the repeated transmissions most remotes and sensors send
//
// - Configurable drop rules for implausible readings
//
// - Friendly device names per protocol address
//
// - Publishes to MQTT (JSON, one topic per protocol) and graphite
//
// - Offline decoding of captured frames
//
// Devices supported
//
// - X10 remote controls and motion sensors
//
// - HomeEasy remote control sockets/lights (http://homeeasy.eu/)
//
// - Oregon Scientific THGR810, THN132N, THWR288A, WTGR800 and PCR800 sensors
//
// - Owl CM113 electricity monitor
package gorfxcom
