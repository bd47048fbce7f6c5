package domain

import "fmt"

// the core surfaces structured error kinds rather than prose so that
// callers can branch with errors.Is/errors.As through wrapped chains

// OutOfRangeInputError indicates the upstream scorer returned a value
// outside the canonical sentiment range plus tolerance. It is a rejection,
// not something to clamp away.
type OutOfRangeInputError struct {
	SectorID string
	Raw      float64
}

func (e OutOfRangeInputError) Error() string {
	return fmt.Sprintf("sentiment %f for sector %s is outside [-1, 1] tolerance", e.Raw, e.SectorID)
}

// ScenarioNotFoundError indicates a request referenced a scenario that is
// not part of the configured set.
type ScenarioNotFoundError struct {
	Scenario string
}

func (e ScenarioNotFoundError) Error() string {
	return fmt.Sprintf("scenario %q not found", e.Scenario)
}

// SectorUniverseEmptyError is a fatal misconfiguration: a sector with no
// tradable assets cannot be allocated to.
type SectorUniverseEmptyError struct {
	SectorID string
}

func (e SectorUniverseEmptyError) Error() string {
	return fmt.Sprintf("sector %s has an empty asset universe", e.SectorID)
}

// InsufficientCapitalError means a trade batch would have driven scenario
// cash negative. The allocation engine sizes trades within capital, so this
// indicates an engine defect and is fatal for the invocation.
type InsufficientCapitalError struct {
	Scenario  string
	Cash      string
	Required  string
	NumTrades int
}

func (e InsufficientCapitalError) Error() string {
	return fmt.Sprintf("scenario %s: batch of %d trades requires %s but only %s cash available",
		e.Scenario, e.NumTrades, e.Required, e.Cash)
}
