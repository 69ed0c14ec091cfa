package sim

import "fmt"

// Default parameter values for a standard run. These mirror the canonical
// operating point studied with this model: ten stations offering Poisson
// traffic at half a packet per transmission time, a 0.1 mini-slot, and a
// 1.6 mean data packet duration.
const (
	DefaultStations           = 10
	DefaultArrivalRate        = 0.5
	DefaultMeanPacketDuration = 1.6
	DefaultReservationSlot    = 0.1
	DefaultGuardTime          = 0.01
	DefaultRunLength          = 500000
	DefaultBlipRate           = 50000
)

// DefaultSeeds is the stock seed list; each seed is one fully independent
// replication.
var DefaultSeeds = []int64{400474322, 400430923, 12345678, 987654321, 45671234}

// Config carries every parameter of a simulation run. It is constructed
// once, validated, and passed by value into the simulator; event handlers
// never consult ambient state.
type Config struct {
	Stations           int           // number of contending stations
	ArrivalRate        float64       // packet arrivals per unit time, summed over all stations
	ReservationSlot    float64       // mini-slot duration on the reservation channel
	MeanPacketDuration float64       // mean of the exponential data service duration
	GuardTime          float64       // guard interval used by the round-up backoff policy
	RunLength          int           // stop once this many packets complete data transmission
	BlipRate           int           // progress notice cadence in completed packets; 0 disables
	Backoff            BackoffPolicy // collision retry formula
	Seeds              []int64       // one independent run per seed
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Stations:           DefaultStations,
		ArrivalRate:        DefaultArrivalRate,
		ReservationSlot:    DefaultReservationSlot,
		MeanPacketDuration: DefaultMeanPacketDuration,
		GuardTime:          DefaultGuardTime,
		RunLength:          DefaultRunLength,
		BlipRate:           DefaultBlipRate,
		Backoff:            BackoffRoundDown,
		Seeds:              DefaultSeeds,
	}
}

// Validate rejects configurations that cannot produce a terminating,
// well-defined run. In particular a zero arrival rate is refused here:
// it would make the run wait forever rather than fail at runtime.
func (c Config) Validate() error {
	if c.Stations <= 0 {
		return fmt.Errorf("stations must be positive, got %d", c.Stations)
	}
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate must be positive, got %g: a run with no arrivals never terminates", c.ArrivalRate)
	}
	if c.ReservationSlot <= 0 {
		return fmt.Errorf("reservation slot duration must be positive, got %g", c.ReservationSlot)
	}
	if c.MeanPacketDuration <= 0 {
		return fmt.Errorf("mean packet duration must be positive, got %g", c.MeanPacketDuration)
	}
	if c.GuardTime < 0 || c.GuardTime >= c.ReservationSlot {
		return fmt.Errorf("guard time must be in [0, reservation slot), got %g", c.GuardTime)
	}
	if c.RunLength <= 0 {
		return fmt.Errorf("run length must be positive, got %d", c.RunLength)
	}
	if c.BlipRate < 0 {
		return fmt.Errorf("blip rate must be non-negative, got %d", c.BlipRate)
	}
	switch c.Backoff {
	case BackoffRoundDown, BackoffRoundUpGuard:
	default:
		return fmt.Errorf("unknown backoff policy %q", c.Backoff)
	}
	if len(c.Seeds) == 0 {
		return fmt.Errorf("at least one random seed is required")
	}
	return nil
}
