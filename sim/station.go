package sim

// Station is one node on the shared medium: an ordered outgoing buffer of
// packets plus the delivery statistics accumulated for packets that
// originated here. Only the buffer's front packet may contend on the
// reservation channel; everything behind it waits.
type Station struct {
	ID     int
	Buffer *PacketQueue

	// Updated only when a packet born at this station completes its data
	// transmission.
	PacketCount      int
	AccumulatedDelay float64

	// attemptPending is true while a reservation-start event for this
	// station's head-of-line packet is scheduled or in flight. It keeps the
	// invariant of at most one outstanding attempt per station.
	attemptPending bool
}

// NewStation creates an empty station with the given id.
func NewStation(id int) *Station {
	return &Station{ID: id, Buffer: &PacketQueue{}}
}
