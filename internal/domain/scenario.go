package domain

import "fmt"

// ScenarioName enumerates the six simulated portfolios. The set is fixed;
// parameters for each come from configuration.
type ScenarioName string

const (
	ScenarioBenchmark  ScenarioName = "benchmark"
	ScenarioMomentum   ScenarioName = "momentum"
	ScenarioAggressive ScenarioName = "aggressive"
	ScenarioDefensive  ScenarioName = "defensive"
	ScenarioContrarian ScenarioName = "contrarian"
	ScenarioSpyOnly    ScenarioName = "spy_only"
)

func AllScenarios() []ScenarioName {
	return []ScenarioName{
		ScenarioBenchmark,
		ScenarioMomentum,
		ScenarioAggressive,
		ScenarioDefensive,
		ScenarioContrarian,
		ScenarioSpyOnly,
	}
}

func ParseScenarioName(s string) (ScenarioName, error) {
	for _, name := range AllScenarios() {
		if string(name) == s {
			return name, nil
		}
	}
	return "", ScenarioNotFoundError{Scenario: s}
}

// CurveShape selects how a sector's sentiment maps to its target weight.
type CurveShape string

const (
	CurveLinear       CurveShape = "linear"
	CurveStep         CurveShape = "step"
	CurveInverted     CurveShape = "inverted"
	CurveCappedLinear CurveShape = "capped_linear"
	CurveConstant     CurveShape = "constant"
)

// ScenarioDefinition holds one scenario's strategy parameters. Immutable at
// run time; changes happen through configuration only.
type ScenarioDefinition struct {
	Name         ScenarioName
	Curve        CurveShape
	StartCapital float64
	// MinMagnitude is the scenario's own dead-zone floor. The effective
	// floor is max(MinMagnitude, the learned confidence threshold).
	MinMagnitude float64
	// Multiplier scales the sentiment tilt for linear curves, and is the
	// fixed step weight applied above StepThreshold for step curves.
	Multiplier    float64
	StepThreshold float64
	SectorCap     float64
	// BenchmarkSymbol is the single asset a constant-curve scenario holds.
	BenchmarkSymbol string
	MinTradeSize    float64
	StopLossPct     float64
	// BaseSectors anchor a scenario: they start the curve from BaseWeight
	// instead of the uniform equal-weight base.
	BaseSectors []string
	BaseWeight  float64
	Description string
}

func (d ScenarioDefinition) IsBaseSector(sectorID string) bool {
	for _, s := range d.BaseSectors {
		if s == sectorID {
			return true
		}
	}
	return false
}

func (d ScenarioDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("scenario definition missing name")
	}
	if d.StartCapital <= 0 {
		return fmt.Errorf("scenario %s: start capital must be positive", d.Name)
	}
	if d.MinMagnitude < 0 || d.MinMagnitude > 1 {
		return fmt.Errorf("scenario %s: min magnitude %f outside [0, 1]", d.Name, d.MinMagnitude)
	}
	if d.SectorCap < 0 || d.SectorCap > 1 {
		return fmt.Errorf("scenario %s: sector cap %f outside [0, 1]", d.Name, d.SectorCap)
	}
	if d.Curve == CurveConstant && d.BenchmarkSymbol == "" {
		return fmt.Errorf("scenario %s: constant curve requires a benchmark symbol", d.Name)
	}
	if len(d.BaseSectors) > 0 && (d.BaseWeight <= 0 || d.BaseWeight > 1) {
		return fmt.Errorf("scenario %s: base sectors require a base weight in (0, 1]", d.Name)
	}
	return nil
}
