// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// eventEntry pairs an event with its insertion sequence number. Events at
// equal virtual time execute in insertion order; collisions are detected by
// attempts sharing a slot boundary, so this tie-break is load-bearing, not
// cosmetic.
type eventEntry struct {
	event Event
	seq   int64
}

// EventQueue implements heap.Interface and orders events by
// (timestamp, insertion sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	entries []eventEntry
	nextSeq int64
}

func (eq *EventQueue) Len() int { return len(eq.entries) }

func (eq *EventQueue) Less(i, j int) bool {
	ti, tj := eq.entries[i].event.Timestamp(), eq.entries[j].event.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return eq.entries[i].seq < eq.entries[j].seq
}

func (eq *EventQueue) Swap(i, j int) {
	eq.entries[i], eq.entries[j] = eq.entries[j], eq.entries[i]
}

func (eq *EventQueue) Push(x any) {
	eq.entries = append(eq.entries, x.(eventEntry))
}

func (eq *EventQueue) Pop() any {
	old := eq.entries
	n := len(old)
	item := old[n-1]
	eq.entries = old[0 : n-1]
	return item
}

// Simulator is the core object that holds the virtual clock, the event
// queue, and all protocol state for one run. Runs are fully independent;
// nothing is shared between simulators.
type Simulator struct {
	Config Config
	Clock  float64

	Stations    []*Station
	Reservation *ReservationChannel
	Data        *DataChannel
	Metrics     Metrics

	queue EventQueue
	rng   *RNG
}

// NewSimulator builds a simulator for one run of cfg seeded with seed.
// cfg is assumed validated.
func NewSimulator(cfg Config, seed int64) *Simulator {
	stations := make([]*Station, cfg.Stations)
	for i := range stations {
		stations[i] = NewStation(i)
	}
	return &Simulator{
		Config:      cfg,
		Stations:    stations,
		Reservation: NewReservationChannel(),
		Data:        NewDataChannel(),
		rng:         NewRNG(seed),
	}
}

// Schedule pushes an event into the simulator's event queue.
func (s *Simulator) Schedule(ev Event) {
	s.queue.nextSeq++
	heap.Push(&s.queue, eventEntry{event: ev, seq: s.queue.nextSeq})
}

// Step executes the single next event, advancing the clock to its
// timestamp. It returns false when no events remain.
func (s *Simulator) Step() bool {
	if s.queue.Len() == 0 {
		return false
	}
	ev := heap.Pop(&s.queue).(eventEntry).event
	s.Clock = ev.Timestamp()
	ev.Execute(s)
	return true
}

// Run schedules the first arrival at time zero and drives the event loop
// until the configured number of packets has completed data transmission.
// It returns the final statistics snapshot.
func (s *Simulator) Run() Snapshot {
	s.Schedule(&ArrivalEvent{time: 0.0})
	for s.Step() {
		if s.Metrics.ProcessedCount >= s.Config.RunLength {
			break
		}
	}
	logrus.Infof("[t=%.4f] run complete (seed %d): %d processed, %d collisions, mean delay %.4f",
		s.Clock, s.rng.Seed(), s.Metrics.ProcessedCount, s.Metrics.Collisions, s.Metrics.MeanDelay())
	return s.Snapshot()
}

// Snapshot returns a read-only copy of the global and per-station
// statistics. It can be taken at any observation point without mutating
// simulation state.
func (s *Simulator) Snapshot() Snapshot {
	stations := make([]StationStats, len(s.Stations))
	for i, stn := range s.Stations {
		stations[i] = StationStats{
			PacketCount:      stn.PacketCount,
			AccumulatedDelay: stn.AccumulatedDelay,
		}
	}
	return Snapshot{Metrics: s.Metrics, Stations: stations}
}
