package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elchalom/4DK4-Labs/sim"
)

func TestRunSweep_WritesOneRowPerRateAndSeed(t *testing.T) {
	// GIVEN a tiny sweep: 3 rates x 2 seeds
	rateMin, rateMax, rateStep = 0.2, 0.4, 0.1
	csvPath = filepath.Join(t.TempDir(), "results.csv")

	cfg := sim.DefaultConfig()
	cfg.RunLength = 50
	cfg.BlipRate = 0
	cfg.Seeds = []int64{12345678, 87654321}

	// WHEN the sweep runs
	require.NoError(t, runSweep(cfg))

	// THEN the CSV holds a header plus 6 data rows
	file, err := os.Open(csvPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+3*2)
	assert.Equal(t, []string{"arrival_rate", "seed", "processed", "collisions", "mean_delay"}, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, 5)
	}
}

func TestRunSweep_RejectsInvalidSweptRate(t *testing.T) {
	// A sweep that steps into a zero arrival rate must fail validation.
	rateMin, rateMax, rateStep = 0.0, 0.2, 0.1
	csvPath = filepath.Join(t.TempDir(), "results.csv")

	cfg := sim.DefaultConfig()
	cfg.RunLength = 10
	cfg.BlipRate = 0

	assert.Error(t, runSweep(cfg))
}
