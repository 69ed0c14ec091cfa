// Implements the PacketQueue, the FIFO primitive behind both the per-station
// buffers and the data channel's queue of reservation winners.

package sim

import (
	"fmt"
	"strings"
)

// PacketQueue is a strict FIFO queue of packets: insertion order is
// preserved and packets leave only from the front.
type PacketQueue struct {
	queue []*Packet
}

// Enqueue adds a packet to the back of the queue.
func (q *PacketQueue) Enqueue(p *Packet) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the packet at the front of the queue.
// Returns nil if the queue is empty.
func (q *PacketQueue) Dequeue() *Packet {
	if len(q.queue) == 0 {
		return nil
	}
	front := q.queue[0]
	q.queue = q.queue[1:]
	return front
}

// Peek returns the packet at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *PacketQueue) Peek() *Packet {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of packets in the queue.
func (q *PacketQueue) Len() int {
	return len(q.queue)
}

func (q *PacketQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(fmt.Sprint(p))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
