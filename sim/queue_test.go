package sim

import (
	"testing"
)

func TestPacketQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with packets [A, B, C]
	q := &PacketQueue{}
	pktA := &Packet{StationID: 0}
	pktB := &Packet{StationID: 1}
	pktC := &Packet{StationID: 2}
	q.Enqueue(pktA)
	q.Enqueue(pktB)
	q.Enqueue(pktC)

	// WHEN all packets are dequeued
	got := []*Packet{q.Dequeue(), q.Dequeue(), q.Dequeue()}

	// THEN they come out in insertion order
	want := []*Packet{pktA, pktB, pktC}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dequeue order[%d]: got station %d, want station %d",
				i, got[i].StationID, want[i].StationID)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after draining: Len() = %d", q.Len())
	}
}

func TestPacketQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with packets [A, B]
	q := &PacketQueue{}
	pktA := &Packet{StationID: 0}
	pktB := &Packet{StationID: 1}
	q.Enqueue(pktA)
	q.Enqueue(pktB)

	// WHEN Peek() is called
	got := q.Peek()

	// THEN it returns the front element without removing it
	if got != pktA {
		t.Errorf("Peek: got %v, want %v", got, pktA)
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
}

func TestPacketQueue_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	q := &PacketQueue{}

	// WHEN Peek() and Dequeue() are called
	// THEN both return nil
	if got := q.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
	if got := q.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}
