package scenarioconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"sentimentfolio/internal/domain"
)

// Config is the full tunable surface of the system. Everything here has a
// working default; a YAML file and a handful of env vars can override it.
type Config struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
	Sectors   []SectorConfig   `yaml:"sectors"`
	Feedback  FeedbackConfig   `yaml:"feedback"`
	Evolution EvolutionConfig  `yaml:"evolution"`
}

type ScenarioConfig struct {
	Name            string  `yaml:"name"`
	Curve           string  `yaml:"curve"`
	StartCapital    float64 `yaml:"start_capital"`
	MinMagnitude    float64 `yaml:"min_magnitude"`
	Multiplier      float64 `yaml:"multiplier"`
	StepThreshold   float64 `yaml:"step_threshold"`
	SectorCap       float64 `yaml:"sector_cap"`
	BenchmarkSymbol string  `yaml:"benchmark_symbol"`
	MinTradeSize    float64 `yaml:"min_trade_size"`
	StopLossPct     float64 `yaml:"stop_loss_pct"`
	// BaseSectors start the curve from BaseWeight instead of the uniform
	// equal-weight base. Defensive anchors its staple sectors this way.
	BaseSectors []string `yaml:"base_sectors"`
	BaseWeight  float64  `yaml:"base_weight"`
	Description string   `yaml:"description"`
}

type SectorConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// EvaluationSymbol is the ticker whose realized move scores this
	// sector's predictions. Defaults to the sector id, which is the
	// sector ETF for every sector except CRYPTO.
	EvaluationSymbol string        `yaml:"evaluation_symbol"`
	Assets           []AssetConfig `yaml:"assets"`
}

type AssetConfig struct {
	Symbol string `yaml:"symbol"`
	Class  string `yaml:"class"`
}

type FeedbackConfig struct {
	// EvaluationHorizon is how long after a decision its realized outcome
	// is measured.
	EvaluationHorizon time.Duration `yaml:"evaluation_horizon"`
	StartThreshold    float64       `yaml:"start_threshold"`
	LearningRate      float64       `yaml:"learning_rate"`
	MinThreshold      float64       `yaml:"min_threshold"`
	MaxThreshold      float64       `yaml:"max_threshold"`
	// LowerWinRate and RaiseWinRate bound the band in which the learned
	// threshold is left alone.
	LowerWinRate   float64 `yaml:"lower_win_rate"`
	RaiseWinRate   float64 `yaml:"raise_win_rate"`
	WindowSize     int     `yaml:"window_size"`
	MinEvaluations int     `yaml:"min_evaluations"`
}

type EvolutionConfig struct {
	MinPredictions    int     `yaml:"min_predictions"`
	AccuracyThreshold float64 `yaml:"accuracy_threshold"`
	MaxIncorrectCited int     `yaml:"max_incorrect_cited"`
}

func Default() Config {
	return Config{
		Scenarios: []ScenarioConfig{
			{
				Name:         "benchmark",
				Curve:        "linear",
				StartCapital: 50000,
				MinMagnitude: 0.1,
				Multiplier:   0,
				MinTradeSize: 100,
				Description:  "equal weight across sectors, sentiment ignored",
			},
			{
				Name:         "momentum",
				Curve:        "linear",
				StartCapital: 50000,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
				Description:  "tilt toward sectors with strong positive sentiment",
			},
			{
				Name:          "aggressive",
				Curve:         "step",
				StartCapital:  50000,
				MinMagnitude:  0.1,
				Multiplier:    0.30,
				StepThreshold: 0.5,
				MinTradeSize:  100,
				StopLossPct:   0.08,
				Description:   "concentrate on high-conviction sectors only",
			},
			{
				Name:         "defensive",
				Curve:        "capped_linear",
				StartCapital: 50000,
				MinMagnitude: 0.2,
				Multiplier:   0.25,
				SectorCap:    0.15,
				MinTradeSize: 100,
				BaseSectors:  []string{"XLU", "XLP", "XLV", "XLRE", "XLF"},
				BaseWeight:   0.15,
				Description:  "capped tilts anchored on the staple sectors",
			},
			{
				Name:         "contrarian",
				Curve:        "inverted",
				StartCapital: 50000,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
				Description:  "lean against the crowd, buy what sentiment hates",
			},
			{
				Name:            "spy_only",
				Curve:           "constant",
				StartCapital:    50000,
				BenchmarkSymbol: "SPY",
				MinTradeSize:    100,
				Description:     "hold the index, the control group",
			},
		},
		Sectors: []SectorConfig{
			{ID: "XLK", Name: "Technology", Assets: equities("AAPL", "MSFT", "NVDA", "AVGO")},
			{ID: "XLV", Name: "Healthcare", Assets: equities("UNH", "JNJ", "LLY", "ABBV")},
			{ID: "XLF", Name: "Financials", Assets: equities("JPM", "BAC", "WFC", "GS")},
			{ID: "XLY", Name: "Consumer Discretionary", Assets: equities("AMZN", "TSLA", "HD", "MCD")},
			{ID: "XLP", Name: "Consumer Staples", Assets: equities("PG", "KO", "PEP", "COST")},
			{ID: "XLE", Name: "Energy", Assets: equities("XOM", "CVX", "SLB", "COP")},
			{ID: "ICLN", Name: "Clean Energy", Assets: equities("ENPH", "FSLR", "SEDG", "PLUG")},
			{ID: "XLI", Name: "Industrials", Assets: equities("CAT", "HON", "UNP", "GE")},
			{ID: "XLB", Name: "Materials", Assets: equities("LIN", "APD", "FCX", "NUE")},
			{ID: "XLU", Name: "Utilities", Assets: equities("NEE", "DUK", "SO", "D")},
			{ID: "XLRE", Name: "Real Estate", Assets: equities("PLD", "AMT", "EQIX", "SPG")},
			{ID: "XLC", Name: "Communication", Assets: equities("GOOGL", "META", "NFLX", "DIS")},
			{
				ID:               "CRYPTO",
				Name:             "Crypto",
				EvaluationSymbol: "BTC-USD",
				Assets: []AssetConfig{
					{Symbol: "BTC-USD", Class: "crypto"},
					{Symbol: "ETH-USD", Class: "crypto"},
					{Symbol: "COIN", Class: "equity"},
				},
			},
		},
		Feedback: FeedbackConfig{
			EvaluationHorizon: 72 * time.Hour,
			StartThreshold:    0.6,
			LearningRate:      0.05,
			MinThreshold:      0.4,
			MaxThreshold:      0.9,
			LowerWinRate:      0.6,
			RaiseWinRate:      0.4,
			WindowSize:        20,
			MinEvaluations:    10,
		},
		Evolution: EvolutionConfig{
			MinPredictions:    10,
			AccuracyThreshold: 0.5,
			MaxIncorrectCited: 5,
		},
	}
}

func equities(symbols ...string) []AssetConfig {
	out := make([]AssetConfig, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, AssetConfig{Symbol: s, Class: "equity"})
	}
	return out
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load returns defaults overlaid with SENTIFOLIO_CONFIG when that file is
// set, and env overrides on top.
func Load() (Config, error) {
	if path := os.Getenv("SENTIFOLIO_CONFIG"); path != "" {
		return LoadFile(path)
	}
	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	if v := os.Getenv("SENTIFOLIO_EVALUATION_HORIZON"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Feedback.EvaluationHorizon = d
		}
	}
	if v := os.Getenv("SENTIFOLIO_START_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Feedback.StartThreshold = f
		}
	}
}

func (c Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("no scenarios configured")
	}
	seen := map[string]bool{}
	for _, s := range c.Scenarios {
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario %s", s.Name)
		}
		seen[s.Name] = true
		def, err := s.ToDefinition()
		if err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return err
		}
	}
	if len(c.Sectors) == 0 {
		return fmt.Errorf("no sectors configured")
	}
	for _, s := range c.Sectors {
		if s.ID == "" {
			return fmt.Errorf("sector with empty id")
		}
		if len(s.Assets) == 0 {
			return fmt.Errorf("sector %s has no assets", s.ID)
		}
	}
	fb := c.Feedback
	if fb.MinThreshold <= 0 || fb.MaxThreshold > 1 || fb.MinThreshold >= fb.MaxThreshold {
		return fmt.Errorf("threshold bounds [%f, %f] invalid", fb.MinThreshold, fb.MaxThreshold)
	}
	if fb.StartThreshold < fb.MinThreshold || fb.StartThreshold > fb.MaxThreshold {
		return fmt.Errorf("start threshold %f outside bounds", fb.StartThreshold)
	}
	if fb.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive")
	}
	if fb.EvaluationHorizon <= 0 {
		return fmt.Errorf("evaluation horizon must be positive")
	}
	if c.Evolution.MinPredictions <= 0 {
		return fmt.Errorf("evolution min predictions must be positive")
	}
	if c.Evolution.AccuracyThreshold <= 0 || c.Evolution.AccuracyThreshold >= 1 {
		return fmt.Errorf("evolution accuracy threshold %f outside (0, 1)", c.Evolution.AccuracyThreshold)
	}
	return nil
}

func (s ScenarioConfig) ToDefinition() (domain.ScenarioDefinition, error) {
	name, err := domain.ParseScenarioName(s.Name)
	if err != nil {
		return domain.ScenarioDefinition{}, err
	}
	return domain.ScenarioDefinition{
		Name:            name,
		Curve:           domain.CurveShape(s.Curve),
		StartCapital:    s.StartCapital,
		MinMagnitude:    s.MinMagnitude,
		Multiplier:      s.Multiplier,
		StepThreshold:   s.StepThreshold,
		SectorCap:       s.SectorCap,
		BenchmarkSymbol: s.BenchmarkSymbol,
		MinTradeSize:    s.MinTradeSize,
		StopLossPct:     s.StopLossPct,
		BaseSectors:     s.BaseSectors,
		BaseWeight:      s.BaseWeight,
		Description:     s.Description,
	}, nil
}

// Definitions returns scenario definitions keyed by name.
func (c Config) Definitions() (map[domain.ScenarioName]domain.ScenarioDefinition, error) {
	out := make(map[domain.ScenarioName]domain.ScenarioDefinition, len(c.Scenarios))
	for _, s := range c.Scenarios {
		def, err := s.ToDefinition()
		if err != nil {
			return nil, err
		}
		out[def.Name] = def
	}
	return out, nil
}

// EvaluationSymbol resolves the ticker used to score a sector's predictions.
func (c Config) EvaluationSymbol(sectorID string) string {
	for _, s := range c.Sectors {
		if s.ID == sectorID {
			if s.EvaluationSymbol != "" {
				return s.EvaluationSymbol
			}
			return s.ID
		}
	}
	return sectorID
}
