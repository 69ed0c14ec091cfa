package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/elchalom/4DK4-Labs/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario overrides a subset of simulation parameters. Absent fields keep
// their flag values.
type Scenario struct {
	Stations           *int     `yaml:"stations"`
	ArrivalRate        *float64 `yaml:"arrival_rate"`
	ReservationSlot    *float64 `yaml:"reservation_slot"`
	MeanPacketDuration *float64 `yaml:"mean_packet_duration"`
	GuardTime          *float64 `yaml:"guard_time"`
	RunLength          *int     `yaml:"run_length"`
	BlipRate           *int     `yaml:"blip_rate"`
	Backoff            *string  `yaml:"backoff"`
	Seeds              []int64  `yaml:"seeds"`
}

// ApplyScenario loads the named preset from a YAML scenario file and
// overlays it on cfg.
func ApplyScenario(path, name string, cfg *sim.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}

	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parsing scenario file: %w", err)
	}

	scenario, ok := sc.Scenarios[name]
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", name, path)
	}
	logrus.Infof("Using scenario preset %v", name)

	if scenario.Stations != nil {
		cfg.Stations = *scenario.Stations
	}
	if scenario.ArrivalRate != nil {
		cfg.ArrivalRate = *scenario.ArrivalRate
	}
	if scenario.ReservationSlot != nil {
		cfg.ReservationSlot = *scenario.ReservationSlot
	}
	if scenario.MeanPacketDuration != nil {
		cfg.MeanPacketDuration = *scenario.MeanPacketDuration
	}
	if scenario.GuardTime != nil {
		cfg.GuardTime = *scenario.GuardTime
	}
	if scenario.RunLength != nil {
		cfg.RunLength = *scenario.RunLength
	}
	if scenario.BlipRate != nil {
		cfg.BlipRate = *scenario.BlipRate
	}
	if scenario.Backoff != nil {
		cfg.Backoff = sim.BackoffPolicy(*scenario.Backoff)
	}
	if len(scenario.Seeds) > 0 {
		cfg.Seeds = scenario.Seeds
	}
	return nil
}
