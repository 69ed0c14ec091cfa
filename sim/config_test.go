package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stations", func(c *Config) { c.Stations = 0 }},
		{"negative stations", func(c *Config) { c.Stations = -3 }},
		// A zero arrival rate would make the run wait forever; it must be
		// refused at configuration time, not discovered at runtime.
		{"zero arrival rate", func(c *Config) { c.ArrivalRate = 0 }},
		{"negative arrival rate", func(c *Config) { c.ArrivalRate = -1 }},
		{"zero reservation slot", func(c *Config) { c.ReservationSlot = 0 }},
		{"zero mean packet duration", func(c *Config) { c.MeanPacketDuration = 0 }},
		{"negative guard time", func(c *Config) { c.GuardTime = -0.01 }},
		{"guard time at slot duration", func(c *Config) { c.GuardTime = c.ReservationSlot }},
		{"zero run length", func(c *Config) { c.RunLength = 0 }},
		{"negative blip rate", func(c *Config) { c.BlipRate = -1 }},
		{"unknown backoff policy", func(c *Config) { c.Backoff = "fibonacci" }},
		{"no seeds", func(c *Config) { c.Seeds = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidate_BothBackoffPoliciesAccepted(t *testing.T) {
	for _, p := range []BackoffPolicy{BackoffRoundDown, BackoffRoundUpGuard} {
		cfg := DefaultConfig()
		cfg.Backoff = p
		assert.NoError(t, cfg.Validate(), "policy %s", p)
	}
}
