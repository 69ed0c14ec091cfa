// Implements the two channel state machines: the contended mini-slot
// reservation channel and the exclusive FCFS data channel.

package sim

// ChannelState is the observable condition of the reservation channel
// during the current mini-slot.
type ChannelState string

const (
	ChannelIdle      ChannelState = "idle"      // no station transmitting
	ChannelSuccess   ChannelState = "success"   // exactly one attempt, so far unopposed
	ChannelCollision ChannelState = "collision" // two or more attempts overlapped
)

// ReservationChannel tracks how many stations are transmitting a reservation
// attempt and whether the current attempt window is clean or colliding.
//
// An attempt is judged against the channel state at the instant it resolves,
// not the instant it started: an attempt that observed Success at start
// becomes a collision if another attempt starts before it ends.
type ReservationChannel struct {
	transmitting int
	state        ChannelState
}

// NewReservationChannel creates an idle channel.
func NewReservationChannel() *ReservationChannel {
	return &ReservationChannel{state: ChannelIdle}
}

// StartAttempt registers one more transmitting station and returns the
// resulting state. A start onto a non-idle channel collides every attempt
// currently in the window.
func (c *ReservationChannel) StartAttempt() ChannelState {
	c.transmitting++
	if c.state != ChannelIdle {
		c.state = ChannelCollision
	} else {
		c.state = ChannelSuccess
	}
	return c.state
}

// EndAttempt removes one transmitting station and returns the state the
// ending attempt is judged by. The caller must invoke Settle once its
// handling of the outcome is complete.
func (c *ReservationChannel) EndAttempt() ChannelState {
	c.transmitting--
	return c.state
}

// Settle recomputes the state from the transmitter count after an attempt
// has been resolved: idle if the window drained, otherwise collision, since
// any attempt still outstanding has been overlapped.
func (c *ReservationChannel) Settle() {
	if c.transmitting > 0 {
		c.state = ChannelCollision
	} else {
		c.state = ChannelIdle
	}
}

// State returns the current channel state.
func (c *ReservationChannel) State() ChannelState {
	return c.state
}

// Transmitting returns the number of stations currently attempting a
// reservation.
func (c *ReservationChannel) Transmitting() int {
	return c.transmitting
}

// DataChannel is the exclusive single-server channel that drains
// reservation winners first-come-first-served. It never collides;
// admission is already serialized by the reservation protocol.
type DataChannel struct {
	Queue *PacketQueue

	// busy is set the moment a packet is claimed for transmission and
	// cleared when its transmission ends. At most one packet transmits at a
	// time.
	busy bool
}

// NewDataChannel creates an idle data channel with an empty queue.
func NewDataChannel() *DataChannel {
	return &DataChannel{Queue: &PacketQueue{}}
}

// Busy reports whether a data transmission is claimed or in progress.
func (d *DataChannel) Busy() bool {
	return d.busy
}
