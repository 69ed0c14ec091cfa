package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elchalom/4DK4-Labs/sim"
)

var (
	// CLI flags for the simulation parameters
	logLevel           string  // Log verbosity level
	stations           int     // Number of contending stations
	arrivalRate        float64 // Packet arrivals per unit time, all stations combined
	reservationSlot    float64 // Reservation mini-slot duration
	meanPacketDuration float64 // Mean data packet duration
	guardTime          float64 // Guard time used by the round-up backoff policy
	runLength          int     // Packets to process before a run stops
	blipRate           int     // Progress notice cadence in processed packets
	backoffPolicy      string  // Collision retry formula
	seeds              []int64 // Random seeds, one independent run each
	scenarioFile       string  // YAML file with named scenario presets
	scenarioName       string  // Preset name to apply from the scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "resaloha",
	Short: "Discrete-event simulator for reservation-based multiple access",
}

// buildConfig assembles the simulation configuration from flags, overlays
// the selected scenario preset if any, and validates the result.
func buildConfig() (sim.Config, error) {
	cfg := sim.Config{
		Stations:           stations,
		ArrivalRate:        arrivalRate,
		ReservationSlot:    reservationSlot,
		MeanPacketDuration: meanPacketDuration,
		GuardTime:          guardTime,
		RunLength:          runLength,
		BlipRate:           blipRate,
		Backoff:            sim.BackoffPolicy(backoffPolicy),
		Seeds:              seeds,
	}
	if scenarioFile != "" {
		if err := ApplyScenario(scenarioFile, scenarioName, &cfg); err != nil {
			return sim.Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes one independent simulation per configured seed.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation per configured seed",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting: %d stations, arrival rate %g, mini-slot %g, backoff %s, %d seeds",
			cfg.Stations, cfg.ArrivalRate, cfg.ReservationSlot, cfg.Backoff, len(cfg.Seeds))

		for _, seed := range cfg.Seeds {
			snap := sim.NewSimulator(cfg, seed).Run()
			fmt.Printf("\n--- seed %d ---\n", seed)
			snap.Print()
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, sweepCmd} {
		c.Flags().IntVar(&stations, "stations", sim.DefaultStations, "Number of contending stations")
		c.Flags().Float64Var(&arrivalRate, "arrival-rate", sim.DefaultArrivalRate, "Packet arrivals per unit time")
		c.Flags().Float64Var(&reservationSlot, "reservation-slot", sim.DefaultReservationSlot, "Reservation mini-slot duration")
		c.Flags().Float64Var(&meanPacketDuration, "mean-packet-duration", sim.DefaultMeanPacketDuration, "Mean data packet duration")
		c.Flags().Float64Var(&guardTime, "guard-time", sim.DefaultGuardTime, "Guard time for the round-up-guard backoff policy")
		c.Flags().IntVar(&runLength, "run-length", sim.DefaultRunLength, "Packets to process before stopping")
		c.Flags().IntVar(&blipRate, "blip-rate", sim.DefaultBlipRate, "Progress notice cadence in processed packets (0 disables)")
		c.Flags().StringVar(&backoffPolicy, "backoff", string(sim.BackoffRoundDown), "Backoff policy (round-down, round-up-guard)")
		c.Flags().Int64SliceVar(&seeds, "seeds", sim.DefaultSeeds, "Comma-separated random seeds, one independent run each")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file with named scenario presets")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Scenario preset to apply from the scenario file")
	}

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
