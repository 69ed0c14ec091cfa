package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanDelay_ZeroBeforeFirstDelivery(t *testing.T) {
	m := &Metrics{}
	assert.Equal(t, 0.0, m.MeanDelay())
}

func TestMeanDelay_AveragesOverDeliveries(t *testing.T) {
	m := &Metrics{ProcessedCount: 4, AccumulatedDelay: 10.0}
	assert.InDelta(t, 2.5, m.MeanDelay(), 1e-12)
}

func TestSnapshot_IsReadOnlyObservation(t *testing.T) {
	// GIVEN a simulator mid-run
	cfg := DefaultConfig()
	cfg.RunLength = 30
	cfg.BlipRate = 0
	s := NewSimulator(cfg, 12345678)
	s.Run()

	// WHEN two snapshots are taken back to back
	first := s.Snapshot()
	second := s.Snapshot()

	// THEN observation did not mutate simulation state
	assert.Equal(t, first, second)
}
