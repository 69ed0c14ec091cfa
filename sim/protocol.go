// The five protocol state transitions, invoked by their events: packet
// arrival, reservation start and end, data start and end.

package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// handleArrival creates a packet at a uniformly-chosen station. If the
// station's buffer was empty the packet is immediately booked for a
// reservation attempt at the next mini-slot boundary; otherwise it waits
// its turn behind the current head-of-line packet. The arrival process
// reschedules itself after an exponential interarrival time.
func (s *Simulator) handleArrival(now float64) {
	s.Metrics.ArrivalCount++

	id := int(math.Floor(s.rng.Uniform() * float64(s.Config.Stations)))
	station := s.station(id)

	pkt := &Packet{
		ArriveTime:  now,
		ServiceTime: s.rng.Exponential(s.Config.MeanPacketDuration),
		Status:      StatusWaiting,
		StationID:   id,
	}
	station.Buffer.Enqueue(pkt)

	if station.Buffer.Len() == 1 {
		s.scheduleReservation(station, NextSlotBoundary(now, s.Config.ReservationSlot))
	}

	s.Schedule(&ArrivalEvent{time: now + s.rng.Exponential(1.0/s.Config.ArrivalRate)})
}

// handleReservationStart joins the reservation channel for one mini-slot.
// The channel state observed here is provisional: a later start in the same
// window retroactively collides this attempt.
func (s *Simulator) handleReservationStart(now float64, pkt *Packet) {
	pkt.Status = StatusTransmitting
	s.Reservation.StartAttempt()

	s.Schedule(&ReservationEndEvent{
		time:   NextSlotBoundary(now, s.Config.ReservationSlot),
		Packet: pkt,
	})
}

// handleReservationEnd resolves an attempt against the channel state at
// this instant. A collision backs the packet off for a re-sampled
// binary-exponential delay; a success hands the packet to the data channel
// and frees the station to contend for its next queued packet. State
// updates follow a fixed order: decrement before outcome check, buffer
// removal before rescheduling, channel settle last.
func (s *Simulator) handleReservationEnd(now float64, pkt *Packet) {
	outcome := s.Reservation.EndAttempt()
	station := s.station(pkt.StationID)
	station.attemptPending = false

	if outcome == ChannelCollision {
		pkt.CollisionCount++
		pkt.Status = StatusWaiting
		s.Metrics.Collisions++

		retry := s.Config.Backoff.RetryTime(
			now, s.Config.ReservationSlot, s.Config.GuardTime, pkt.CollisionCount, s.rng.Uniform())
		logrus.Debugf("[t=%.4f] station %d collision #%d, retry at %.4f",
			now, pkt.StationID, pkt.CollisionCount, retry)

		// The packet stays at the buffer front and retries.
		s.scheduleReservation(station, retry)
	} else {
		// The attempt owned the whole mini-slot: the reservation is won.
		station.Buffer.Dequeue()
		pkt.Status = StatusWaiting
		s.Data.Queue.Enqueue(pkt)
		s.dispatchData(now)

		if station.Buffer.Len() > 0 {
			s.scheduleReservation(station, NextSlotBoundary(now, s.Config.ReservationSlot))
		}
	}

	s.Reservation.Settle()
}

// handleDataStart begins the exclusive data transmission of a packet.
func (s *Simulator) handleDataStart(now float64, pkt *Packet) {
	pkt.Status = StatusTransmitting
	s.Schedule(&DataEndEvent{time: now + pkt.ServiceTime, Packet: pkt})
}

// handleDataEnd completes a data transmission: the server goes idle, the
// delivery is recorded against the originating station and the run totals,
// the packet is retired, and the next queued packet, if any, starts at this
// same instant.
func (s *Simulator) handleDataEnd(now float64, pkt *Packet) {
	s.Data.busy = false

	station := s.station(pkt.StationID)
	delay := now - pkt.ArriveTime
	station.PacketCount++
	station.AccumulatedDelay += delay

	s.Metrics.ProcessedCount++
	s.Metrics.AccumulatedDelay += delay
	s.Metrics.DeliveredCollisions += pkt.CollisionCount
	s.blip()

	s.dispatchData(now)
}

// scheduleReservation books a reservation-start for the station's
// head-of-line packet, unless an attempt is already outstanding. At most
// one attempt per station exists at any time.
func (s *Simulator) scheduleReservation(station *Station, at float64) {
	if station.attemptPending {
		return
	}
	station.attemptPending = true
	s.Schedule(&ReservationStartEvent{time: at, Packet: station.Buffer.Peek()})
}

// dispatchData claims the data server for the queue front. The claim is
// made here, when the packet is popped, rather than in the start handler:
// a reservation success and a data completion can share an instant, and
// neither may observe a server that is idle but already promised.
func (s *Simulator) dispatchData(now float64) {
	if s.Data.busy || s.Data.Queue.Len() == 0 {
		return
	}
	s.Data.busy = true
	next := s.Data.Queue.Dequeue()
	s.Schedule(&DataStartEvent{time: now, Packet: next})
}

// station returns the station with the given id. Ids outside [0, N) cannot
// be produced by the arrival draw; hitting this panic means a programming
// error, not a recoverable condition.
func (s *Simulator) station(id int) *Station {
	if id < 0 || id >= len(s.Stations) {
		panic(fmt.Sprintf("station id %d outside [0, %d)", id, len(s.Stations)))
	}
	return s.Stations[id]
}

// blip logs a progress notice every BlipRate completed packets.
func (s *Simulator) blip() {
	if s.Config.BlipRate <= 0 {
		return
	}
	if s.Metrics.ProcessedCount%s.Config.BlipRate == 0 {
		logrus.Infof("[t=%.2f] processed=%d collisions=%d mean_delay=%.4f",
			s.Clock, s.Metrics.ProcessedCount, s.Metrics.Collisions, s.Metrics.MeanDelay())
	}
}
