package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"
	l1_service "sentimentfolio/internal/service/l1"
	l2_service "sentimentfolio/internal/service/l2"

	"github.com/go-jet/jet/v2/qrm"
)

// FeedbackService closes the loop on past decisions. Due decisions get a
// realized direction from the price history; outcomes feed the performance
// counters; win rates over a sliding window pull each unit's confidence
// threshold up or down.
type FeedbackService interface {
	RunEvaluationPass(ctx context.Context, tx *sql.Tx, now time.Time) (*EvaluationPassResult, error)
	// CurrentThreshold returns the unit's learned confidence threshold,
	// or the configured starting value when the unit has no history.
	CurrentThreshold(unitID string) (float64, error)
}

type EvaluationPassResult struct {
	Evaluated int
	// Deferred decisions had no usable price data and stay pending for
	// the next pass.
	Deferred int
	// Skipped decisions were already closed by an earlier pass.
	Skipped          int
	ThresholdChanges []model.ThresholdVersion
}

type feedbackServiceHandler struct {
	DecisionRepository         repository.DecisionRepository
	ThresholdVersionRepository repository.ThresholdVersionRepository
	PerformanceService         l2_service.PerformanceService
	PriceService               l1_service.PriceService
	Config                     scenarioconfig.Config
}

func NewFeedbackService(
	decisionRepository repository.DecisionRepository,
	thresholdVersionRepository repository.ThresholdVersionRepository,
	performanceService l2_service.PerformanceService,
	priceService l1_service.PriceService,
	config scenarioconfig.Config,
) FeedbackService {
	return feedbackServiceHandler{
		DecisionRepository:         decisionRepository,
		ThresholdVersionRepository: thresholdVersionRepository,
		PerformanceService:         performanceService,
		PriceService:               priceService,
		Config:                     config,
	}
}

func (h feedbackServiceHandler) RunEvaluationPass(ctx context.Context, tx *sql.Tx, now time.Time) (*EvaluationPassResult, error) {
	log := logger.FromContext(ctx)

	due, err := h.DecisionRepository.ListDue(now)
	if err != nil {
		return nil, err
	}

	result := &EvaluationPassResult{}
	touchedUnits := map[string]bool{}

	for _, decision := range due {
		symbol := h.Config.EvaluationSymbol(decision.SectorID)
		realizedReturn, err := h.PriceService.GetReturn(symbol, decision.DecidedAt, decision.EvaluationDue)
		if err != nil {
			// no price yet; the decision stays pending and the next
			// pass retries
			log.Warnf("deferring decision %s: no realized move for %s: %v",
				decision.DecisionID, symbol, err)
			result.Deferred++
			continue
		}

		realized := domain.DirectionOf(realizedReturn)
		outcome, err := h.PerformanceService.RecordOutcome(ctx, tx, decision.DecisionID, realized)
		if err != nil {
			return result, err
		}
		if outcome.AlreadyEvaluated {
			result.Skipped++
			continue
		}
		result.Evaluated++
		touchedUnits[decision.UnitID] = true
	}

	units := make([]string, 0, len(touchedUnits))
	for unitID := range touchedUnits {
		units = append(units, unitID)
	}
	sort.Strings(units)

	for _, unitID := range units {
		change, err := h.adjustThreshold(ctx, tx, unitID)
		if err != nil {
			return result, err
		}
		if change != nil {
			result.ThresholdChanges = append(result.ThresholdChanges, *change)
		}
	}

	log.Infof("evaluation pass: %d evaluated, %d deferred, %d skipped, %d threshold changes",
		result.Evaluated, result.Deferred, result.Skipped, len(result.ThresholdChanges))

	return result, nil
}

func (h feedbackServiceHandler) CurrentThreshold(unitID string) (float64, error) {
	current, err := h.ThresholdVersionRepository.Current(unitID)
	if errors.Is(err, qrm.ErrNoRows) {
		return h.Config.Feedback.StartThreshold, nil
	}
	if err != nil {
		return 0, err
	}
	return current.Value, nil
}

// adjustThreshold nudges a unit's confidence threshold based on its recent
// win rate. Inside the configured band nothing changes and no row is
// written.
func (h feedbackServiceHandler) adjustThreshold(ctx context.Context, tx *sql.Tx, unitID string) (*model.ThresholdVersion, error) {
	log := logger.FromContext(ctx)
	settings := h.Config.Feedback

	recent, err := h.DecisionRepository.ListRecentEvaluated(unitID, int64(settings.WindowSize))
	if err != nil {
		return nil, err
	}
	if len(recent) < settings.MinEvaluations {
		return nil, nil
	}

	wins := 0
	for _, decision := range recent {
		if decision.Realized != nil && *decision.Realized == decision.Predicted {
			wins++
		}
	}
	winRate := float64(wins) / float64(len(recent))

	// inside the band nothing changes, so skip the version lookup entirely
	if winRate <= settings.LowerWinRate && winRate >= settings.RaiseWinRate {
		return nil, nil
	}

	currentValue := settings.StartThreshold
	currentVersion := int32(0)
	var createdFrom *model.ThresholdVersion
	current, err := h.ThresholdVersionRepository.Current(unitID)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		currentValue = current.Value
		currentVersion = current.Version
		createdFrom = current
	}

	var newValue float64
	var reason string
	if winRate > settings.LowerWinRate {
		// winning consistently, trust weaker signals
		newValue = clamp(currentValue-settings.LearningRate, settings.MinThreshold, settings.MaxThreshold)
		reason = fmt.Sprintf("win rate %.0f%% over last %d evaluations, lowering threshold", winRate*100, len(recent))
	} else {
		newValue = clamp(currentValue+settings.LearningRate, settings.MinThreshold, settings.MaxThreshold)
		reason = fmt.Sprintf("win rate %.0f%% over last %d evaluations, raising threshold", winRate*100, len(recent))
	}
	if newValue == currentValue {
		return nil, nil
	}

	version := model.ThresholdVersion{
		UnitID:        unitID,
		Version:       currentVersion + 1,
		Value:         newValue,
		PreviousValue: &currentValue,
		Reason:        reason,
	}
	if createdFrom != nil {
		version.CreatedFrom = &createdFrom.ThresholdVersionID
	}

	inserted, err := h.ThresholdVersionRepository.Add(tx, version)
	if err != nil {
		return nil, err
	}

	log.Infow("adjusted confidence threshold",
		"unit", unitID,
		"before", currentValue,
		"after", newValue,
		"winRate", winRate,
	)

	return inserted, nil
}
