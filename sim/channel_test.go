package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationChannel_SingleAttemptSucceeds(t *testing.T) {
	c := NewReservationChannel()
	assert.Equal(t, ChannelIdle, c.State())
	assert.Equal(t, 0, c.Transmitting())

	state := c.StartAttempt()
	assert.Equal(t, ChannelSuccess, state)
	assert.Equal(t, 1, c.Transmitting())

	outcome := c.EndAttempt()
	assert.Equal(t, ChannelSuccess, outcome)
	c.Settle()
	assert.Equal(t, ChannelIdle, c.State())
	assert.Equal(t, 0, c.Transmitting())
}

func TestReservationChannel_SecondStartCollidesBoth(t *testing.T) {
	// GIVEN one attempt already in the window
	c := NewReservationChannel()
	c.StartAttempt()

	// WHEN a second attempt starts before the first ends
	state := c.StartAttempt()

	// THEN the window is colliding and both ends resolve as collisions
	assert.Equal(t, ChannelCollision, state)
	assert.Equal(t, 2, c.Transmitting())

	first := c.EndAttempt()
	assert.Equal(t, ChannelCollision, first)
	c.Settle()
	// The survivor has been overlapped, so the window stays colliding.
	assert.Equal(t, ChannelCollision, c.State())
	assert.Equal(t, 1, c.Transmitting())

	second := c.EndAttempt()
	assert.Equal(t, ChannelCollision, second)
	c.Settle()
	assert.Equal(t, ChannelIdle, c.State())
	assert.Equal(t, 0, c.Transmitting())
}

func TestReservationChannel_StatePredicates(t *testing.T) {
	// Success implies exactly one transmitter; idle implies zero; three
	// overlapping starts are a collision throughout.
	c := NewReservationChannel()
	for i := 0; i < 3; i++ {
		c.StartAttempt()
		switch c.Transmitting() {
		case 1:
			assert.Equal(t, ChannelSuccess, c.State())
		default:
			assert.Equal(t, ChannelCollision, c.State())
		}
	}
	for i := 0; i < 3; i++ {
		c.EndAttempt()
		c.Settle()
	}
	assert.Equal(t, ChannelIdle, c.State())
}

func TestDataChannel_StartsIdle(t *testing.T) {
	d := NewDataChannel()
	assert.False(t, d.Busy())
	assert.Equal(t, 0, d.Queue.Len())
}
