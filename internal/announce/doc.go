// Package announce publishes registry events onto the MQTT bus.
//
// The announcer is the write side of SpecWave's announcement contract:
// discovery run summaries, individual spec registration and removal
// events, and retained registry statistics. It also serves rediscovery
// requests, so a fleet controller can publish one message and receive a
// fresh discovery report in return.
//
// The package depends on the bus through a narrow interface, so the
// registry core never links against paho directly.
package announce
