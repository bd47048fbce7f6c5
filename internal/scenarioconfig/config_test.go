package scenarioconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sentimentfolio/internal/domain"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	defs, err := cfg.Definitions()
	require.NoError(t, err)
	require.Len(t, defs, 6)
	require.Equal(t, domain.CurveConstant, defs[domain.ScenarioSpyOnly].Curve)
	require.Equal(t, "SPY", defs[domain.ScenarioSpyOnly].BenchmarkSymbol)
	require.Equal(t, []string{"XLU", "XLP", "XLV", "XLRE", "XLF"}, defs[domain.ScenarioDefensive].BaseSectors)
	require.Equal(t, 0.15, defs[domain.ScenarioDefensive].BaseWeight)

	require.Len(t, cfg.Sectors, 13)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
feedback:
  evaluation_horizon: 24h
  start_threshold: 0.7
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, cfg.Feedback.EvaluationHorizon)
	require.Equal(t, 0.7, cfg.Feedback.StartThreshold)
	// untouched sections keep defaults
	require.Equal(t, 0.05, cfg.Feedback.LearningRate)
	require.Len(t, cfg.Scenarios, 6)
}

func TestValidateRejectsBadThresholdBounds(t *testing.T) {
	cfg := Default()
	cfg.Feedback.MinThreshold = 0.9
	cfg.Feedback.MaxThreshold = 0.4
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Feedback.StartThreshold = 0.95
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Scenarios = append(cfg.Scenarios, cfg.Scenarios[0])
	require.ErrorContains(t, cfg.Validate(), "duplicate scenario")
}

func TestEvaluationSymbol(t *testing.T) {
	cfg := Default()
	require.Equal(t, "XLK", cfg.EvaluationSymbol("XLK"))
	require.Equal(t, "BTC-USD", cfg.EvaluationSymbol("CRYPTO"))
	require.Equal(t, "XXX", cfg.EvaluationSymbol("XXX"))
}
