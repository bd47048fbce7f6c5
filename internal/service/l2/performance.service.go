package l2_service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// PerformanceService records predictions against prompt versions and closes
// them when realized outcomes arrive. Counters only ever move forward;
// closing the same decision twice is a no-op.
type PerformanceService interface {
	RecordPrediction(ctx context.Context, tx *sql.Tx, in RecordPredictionInput) (*model.Decision, error)
	RecordOutcome(ctx context.Context, tx *sql.Tx, decisionID uuid.UUID, realized domain.Direction) (*OutcomeResult, error)
	ActiveRecord(unitID string) (*model.PerformanceRecord, error)
}

type RecordPredictionInput struct {
	Scenario      model.ScenarioName
	SectorID      string
	Reading       model.SentimentReading
	PromptVersion model.PromptVersion
	DecidedAt     time.Time
	Horizon       time.Duration
}

type OutcomeResult struct {
	Decision model.Decision
	Correct  bool
	// AlreadyEvaluated means another pass closed the decision first and
	// no counter moved.
	AlreadyEvaluated bool
	// RecordFrozen means the decision's version was superseded after the
	// prediction; the outcome is stored on the decision but not counted.
	RecordFrozen bool
}

type performanceServiceHandler struct {
	DecisionRepository          repository.DecisionRepository
	PerformanceRecordRepository repository.PerformanceRecordRepository
	PromptVersionRepository     repository.PromptVersionRepository
}

func NewPerformanceService(
	decisionRepository repository.DecisionRepository,
	performanceRecordRepository repository.PerformanceRecordRepository,
	promptVersionRepository repository.PromptVersionRepository,
) PerformanceService {
	return performanceServiceHandler{
		DecisionRepository:          decisionRepository,
		PerformanceRecordRepository: performanceRecordRepository,
		PromptVersionRepository:     promptVersionRepository,
	}
}

func (h performanceServiceHandler) RecordPrediction(ctx context.Context, tx *sql.Tx, in RecordPredictionInput) (*model.Decision, error) {
	decision, err := h.DecisionRepository.Add(tx, model.Decision{
		UnitID:             in.PromptVersion.UnitID,
		PromptVersionID:    in.PromptVersion.PromptVersionID,
		Version:            in.PromptVersion.Version,
		Scenario:           in.Scenario,
		SectorID:           in.SectorID,
		Predicted:          model.Direction(domain.DirectionOf(in.Reading.NormalizedValue)),
		Magnitude:          math.Abs(in.Reading.NormalizedValue),
		SentimentReadingID: in.Reading.SentimentReadingID,
		DecidedAt:          in.DecidedAt,
		EvaluationDue:      in.DecidedAt.Add(in.Horizon),
	})
	if err != nil {
		return nil, err
	}

	// make sure a counter row exists for this version before outcomes
	// start arriving; concurrent scenario goroutines hit the same unit
	err = h.PerformanceRecordRepository.Ensure(tx, in.PromptVersion.UnitID, in.PromptVersion.Version)
	if err != nil {
		return nil, err
	}

	return decision, nil
}

func (h performanceServiceHandler) RecordOutcome(ctx context.Context, tx *sql.Tx, decisionID uuid.UUID, realized domain.Direction) (*OutcomeResult, error) {
	log := logger.FromContext(ctx)

	decision, err := h.DecisionRepository.Get(decisionID)
	if err != nil {
		return nil, err
	}

	updated, err := h.DecisionRepository.MarkEvaluated(tx, decisionID, model.Direction(realized), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !updated {
		return &OutcomeResult{Decision: *decision, AlreadyEvaluated: true}, nil
	}

	correct := domain.Direction(decision.Predicted) == realized
	counted, err := h.PerformanceRecordRepository.IncrementOutcome(tx, decision.UnitID, decision.Version, correct)
	if err != nil {
		return nil, err
	}
	if !counted {
		log.Warnf("outcome for decision %s lands on frozen record %s v%d, not counted",
			decisionID, decision.UnitID, decision.Version)
	}

	return &OutcomeResult{
		Decision:     *decision,
		Correct:      correct,
		RecordFrozen: !counted,
	}, nil
}

// ActiveRecord returns the counter row for the unit's newest version.
func (h performanceServiceHandler) ActiveRecord(unitID string) (*model.PerformanceRecord, error) {
	active, err := h.PromptVersionRepository.GetActive(unitID)
	if err != nil {
		return nil, err
	}
	record, err := h.PerformanceRecordRepository.Get(unitID, active.Version)
	if errors.Is(err, qrm.ErrNoRows) {
		// no predictions recorded yet for this version
		return &model.PerformanceRecord{UnitID: unitID, Version: active.Version}, nil
	}
	return record, err
}
