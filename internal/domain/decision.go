package domain

import (
	"time"

	"github.com/google/uuid"
)

// Direction is the sign of a predicted or realized move. Magnitude is
// deliberately not scored; direction-only keeps the correctness claim small.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

func DirectionOf(v float64) Direction {
	switch {
	case v > 0:
		return DirectionUp
	case v < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// Decision is a logged prediction awaiting delayed evaluation. It is closed
// exactly once by the feedback pass.
type Decision struct {
	DecisionID         uuid.UUID
	UnitID             string
	PromptVersionID    uuid.UUID
	Version            int32
	Scenario           ScenarioName
	SectorID           string
	Predicted          Direction
	Magnitude          float64
	SentimentReadingID uuid.UUID
	DecidedAt          time.Time
	EvaluationDue      time.Time
	Evaluated          bool
	Realized           *Direction
}

// Correct reports whether the realized direction confirms the prediction.
// Sign match only.
func (d Decision) Correct(realized Direction) bool {
	return d.Predicted == realized
}
