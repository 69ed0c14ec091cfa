// Tracks run-wide and per-station statistics: packets processed, reservation
// collisions, and accumulated queueing-plus-transmission delay.

package sim

import "fmt"

// Metrics aggregates the global counters of one run. All counters are
// cumulative; delay statistics are updated only at data-transmission
// completion.
type Metrics struct {
	ArrivalCount   int // packets created
	ProcessedCount int // packets that completed data transmission

	// Collisions counts resolved reservation collisions (one per colliding
	// attempt, at the instant it resolves). DeliveredCollisions is the sum
	// of final per-packet collision counts over delivered packets; the two
	// differ only by packets still in flight.
	Collisions          int
	DeliveredCollisions int

	AccumulatedDelay float64 // sum of (completion time - arrival time) over delivered packets
}

// MeanDelay returns the average delay per delivered packet, or 0 before any
// packet has been delivered.
func (m *Metrics) MeanDelay() float64 {
	if m.ProcessedCount == 0 {
		return 0
	}
	return m.AccumulatedDelay / float64(m.ProcessedCount)
}

// StationStats is the per-station portion of a snapshot.
type StationStats struct {
	PacketCount      int
	AccumulatedDelay float64
}

// Snapshot is a read-only copy of all statistics at one observation point.
// Taking or mutating a snapshot never changes simulation state.
type Snapshot struct {
	Metrics
	Stations []StationStats
}

// Print displays the aggregated metrics at the end of a run.
func (s Snapshot) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Arrivals               : %d\n", s.ArrivalCount)
	fmt.Printf("Processed Packets      : %d\n", s.ProcessedCount)
	fmt.Printf("Reservation Collisions : %d\n", s.Collisions)
	if s.ProcessedCount > 0 {
		fmt.Printf("Mean Delay             : %.4f\n", s.MeanDelay())
		fmt.Printf("Collisions per Packet  : %.4f\n",
			float64(s.DeliveredCollisions)/float64(s.ProcessedCount))
	}
}
