package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event carries its scheduled virtual time and an Execute method that
// advances simulation state when invoked. The event set is closed: every
// state transition in the protocol is one of the five variants below, each
// with its own typed payload.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent deposits a new packet at a uniformly-chosen station and
// reschedules itself after an exponential interarrival time.
type ArrivalEvent struct {
	time float64
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute creates the packet and, if its station's buffer was empty,
// books a reservation attempt at the next mini-slot boundary.
func (e *ArrivalEvent) Execute(s *Simulator) {
	logrus.Debugf("[t=%.4f] packet arrival", e.time)
	s.handleArrival(e.time)
}

// ReservationStartEvent begins one station's mini-slot reservation attempt.
type ReservationStartEvent struct {
	time   float64
	Packet *Packet
}

// Timestamp returns the scheduled time of the ReservationStartEvent.
func (e *ReservationStartEvent) Timestamp() float64 {
	return e.time
}

// Execute joins the reservation channel and schedules the attempt's end at
// the next mini-slot boundary.
func (e *ReservationStartEvent) Execute(s *Simulator) {
	logrus.Debugf("[t=%.4f] reservation start, station %d", e.time, e.Packet.StationID)
	s.handleReservationStart(e.time, e.Packet)
}

// ReservationEndEvent resolves a reservation attempt as success or
// collision.
type ReservationEndEvent struct {
	time   float64
	Packet *Packet
}

// Timestamp returns the scheduled time of the ReservationEndEvent.
func (e *ReservationEndEvent) Timestamp() float64 {
	return e.time
}

// Execute either forwards the packet to the data channel or backs it off
// for a retry.
func (e *ReservationEndEvent) Execute(s *Simulator) {
	logrus.Debugf("[t=%.4f] reservation end, station %d", e.time, e.Packet.StationID)
	s.handleReservationEnd(e.time, e.Packet)
}

// DataStartEvent begins an exclusive data transmission for a packet whose
// reservation succeeded.
type DataStartEvent struct {
	time   float64
	Packet *Packet
}

// Timestamp returns the scheduled time of the DataStartEvent.
func (e *DataStartEvent) Timestamp() float64 {
	return e.time
}

// Execute marks the packet transmitting and schedules its completion after
// its service time.
func (e *DataStartEvent) Execute(s *Simulator) {
	logrus.Debugf("[t=%.4f] data start, station %d", e.time, e.Packet.StationID)
	s.handleDataStart(e.time, e.Packet)
}

// DataEndEvent completes a data transmission, records statistics, and
// retires the packet.
type DataEndEvent struct {
	time   float64
	Packet *Packet
}

// Timestamp returns the scheduled time of the DataEndEvent.
func (e *DataEndEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the server, records delay statistics, and starts the
// next queued packet at the same instant if one is waiting.
func (e *DataEndEvent) Execute(s *Simulator) {
	logrus.Debugf("[t=%.4f] data end, station %d", e.time, e.Packet.StationID)
	s.handleDataEnd(e.time, e.Packet)
}
