// Slot-boundary arithmetic and the binary exponential backoff policies.
//
// Two retry formulas exist in the protocol family this simulator descends
// from: one rounds the random slot multiple up and re-aligns to a boundary
// plus a guard time, the other rounds the multiple down and re-aligns to the
// next boundary with no guard term. They produce different contention
// behavior, so both are kept as named, independently selectable policies.

package sim

import "math"

// BackoffPolicy names one of the retry-delay formulas applied after a
// reservation collision.
type BackoffPolicy string

const (
	// BackoffRoundDown draws backoff = slot * floor(U * 2^c) and retries at
	// the next slot boundary after now + backoff.
	BackoffRoundDown BackoffPolicy = "round-down"

	// BackoffRoundUpGuard draws backoff = slot * ceil(U * 2^c) and retries
	// at the boundary at-or-after now + backoff, plus the guard time.
	BackoffRoundUpGuard BackoffPolicy = "round-up-guard"
)

// NextSlotBoundary returns the smallest multiple of slot strictly greater
// than now. Reservation attempts must align to these boundaries.
func NextSlotBoundary(now, slot float64) float64 {
	return slot * (math.Floor(now/slot) + 1.0)
}

// RetryTime draws one backoff delay for a packet that has collided
// collisions times and returns the instant of its next reservation attempt.
// u must be a fresh uniform deviate in [0,1); every collision re-samples.
// The result is strictly greater than now.
func (p BackoffPolicy) RetryTime(now, slot, guard float64, collisions int, u float64) float64 {
	window := u * math.Pow(2.0, float64(collisions))
	if p == BackoffRoundUpGuard {
		backoff := slot * math.Ceil(window)
		return slot*math.Ceil((now+backoff)/slot) + guard
	}
	backoff := slot * math.Floor(window)
	return NextSlotBoundary(now+backoff, slot)
}
