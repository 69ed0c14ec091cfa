// Defines the Packet struct that models one unit of traffic from arrival at
// a station through reservation contention to completed data transmission.

package sim

import "fmt"

// PacketStatus represents where a packet is in its transmission lifecycle.
type PacketStatus string

const (
	// StatusWaiting covers a packet queued at its station, backing off after
	// a collision, or queued for the data channel.
	StatusWaiting PacketStatus = "waiting"
	// StatusTransmitting covers an in-flight reservation attempt or an
	// active data transmission.
	StatusTransmitting PacketStatus = "transmitting"
)

// Packet models a single packet's lifecycle in the simulation.
// ArriveTime, ServiceTime and StationID are fixed at creation;
// CollisionCount grows by one each time a reservation attempt of this
// packet resolves as a collision.
type Packet struct {
	ArriveTime     float64      // virtual time the packet was created
	ServiceTime    float64      // data transmission duration, drawn once at creation
	Status         PacketStatus // waiting or transmitting
	CollisionCount int          // reservation collisions experienced so far
	StationID      int          // owning station, index into Simulator.Stations
}

func (p Packet) String() string {
	return fmt.Sprintf("Packet(station=%d, status=%s, arrive=%.4f, collisions=%d)",
		p.StationID, p.Status, p.ArriveTime, p.CollisionCount)
}
