package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"

	"github.com/go-jet/jet/v2/qrm"
)

// EvolutionService mutates underperforming prompt payloads. A unit evolves
// when its active version has enough evaluated predictions and too few of
// them were right. The old version's record freezes, the new version starts
// a fresh one, and created_from keeps the lineage walkable.
type EvolutionService interface {
	// EvolveUnit evolves one unit if its trigger condition holds. Returns
	// nil when nothing happened: below the trigger, not enough data, or an
	// evolution for the unit is already in flight.
	EvolveUnit(ctx context.Context, tx *sql.Tx, unitID string) (*model.PromptVersion, error)
	EvolveDueUnits(ctx context.Context) ([]model.PromptVersion, error)
}

type evolutionServiceHandler struct {
	Db                          *sql.DB
	PromptVersionRepository     repository.PromptVersionRepository
	PerformanceRecordRepository repository.PerformanceRecordRepository
	DecisionRepository          repository.DecisionRepository
	KnowledgeItemRepository     repository.KnowledgeItemRepository
	GptRepository               repository.GptRepository
	Settings                    scenarioconfig.EvolutionConfig

	inFlightMu sync.Mutex
	inFlight   map[string]bool
}

func NewEvolutionService(
	db *sql.DB,
	promptVersionRepository repository.PromptVersionRepository,
	performanceRecordRepository repository.PerformanceRecordRepository,
	decisionRepository repository.DecisionRepository,
	knowledgeItemRepository repository.KnowledgeItemRepository,
	gptRepository repository.GptRepository,
	settings scenarioconfig.EvolutionConfig,
) EvolutionService {
	return &evolutionServiceHandler{
		Db:                          db,
		PromptVersionRepository:     promptVersionRepository,
		PerformanceRecordRepository: performanceRecordRepository,
		DecisionRepository:          decisionRepository,
		KnowledgeItemRepository:     knowledgeItemRepository,
		GptRepository:               gptRepository,
		Settings:                    settings,
		inFlight:                    map[string]bool{},
	}
}

func (h *evolutionServiceHandler) EvolveUnit(ctx context.Context, tx *sql.Tx, unitID string) (*model.PromptVersion, error) {
	log := logger.FromContext(ctx)

	h.inFlightMu.Lock()
	if h.inFlight[unitID] {
		h.inFlightMu.Unlock()
		log.Warnf("evolution already in flight for %s, skipping", unitID)
		return nil, nil
	}
	h.inFlight[unitID] = true
	h.inFlightMu.Unlock()
	defer func() {
		h.inFlightMu.Lock()
		delete(h.inFlight, unitID)
		h.inFlightMu.Unlock()
	}()

	active, err := h.PromptVersionRepository.GetActive(unitID)
	if err != nil {
		return nil, err
	}

	record, err := h.PerformanceRecordRepository.Get(unitID, active.Version)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !shouldEvolve(*record, h.Settings) {
		return nil, nil
	}
	accuracy := float64(record.Correct) / float64(record.Total)

	mistakes, err := h.recentMistakes(unitID, active.Version)
	if err != nil {
		return nil, err
	}
	knowledge, err := h.recentKnowledge()
	if err != nil {
		return nil, err
	}

	newPayload, err := h.GptRepository.RevisePayload(ctx, repository.RevisePayloadInput{
		UnitID:         unitID,
		CurrentPayload: active.Payload,
		Mistakes:       mistakes,
		Knowledge:      knowledge,
		Accuracy:       accuracy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to revise payload for %s: %w", unitID, err)
	}

	newVersion, err := h.PromptVersionRepository.Add(tx, model.PromptVersion{
		UnitID:      unitID,
		Role:        active.Role,
		Version:     active.Version + 1,
		Payload:     newPayload,
		CreatedFrom: &active.PromptVersionID,
		Reason: fmt.Sprintf("accuracy %.2f over %d predictions, below %.2f",
			accuracy, record.Total, h.Settings.AccuracyThreshold),
	})
	if err != nil {
		return nil, err
	}

	err = h.PerformanceRecordRepository.Freeze(tx, unitID, active.Version)
	if err != nil {
		return nil, err
	}

	_, err = h.PerformanceRecordRepository.Add(tx, model.PerformanceRecord{
		UnitID:  unitID,
		Version: newVersion.Version,
	})
	if err != nil {
		return nil, err
	}

	log.Infof("evolved %s v%d -> v%d (accuracy %.2f over %d predictions)",
		unitID, active.Version, newVersion.Version, accuracy, record.Total)

	return newVersion, nil
}

func (h *evolutionServiceHandler) EvolveDueUnits(ctx context.Context) ([]model.PromptVersion, error) {
	log := logger.FromContext(ctx)

	units, err := h.PromptVersionRepository.ListUnits()
	if err != nil {
		return nil, err
	}

	evolved := []model.PromptVersion{}
	for _, unitID := range units {
		tx, err := h.Db.Begin()
		if err != nil {
			return evolved, err
		}
		newVersion, err := h.EvolveUnit(ctx, tx, unitID)
		if err != nil {
			tx.Rollback()
			// one bad unit should not stall the sweep
			log.Errorf("failed to evolve %s: %v", unitID, err)
			continue
		}
		if newVersion == nil {
			tx.Rollback()
			continue
		}
		err = tx.Commit()
		if err != nil {
			return evolved, err
		}
		evolved = append(evolved, *newVersion)
	}

	return evolved, nil
}

func shouldEvolve(record model.PerformanceRecord, settings scenarioconfig.EvolutionConfig) bool {
	if record.Frozen {
		return false
	}
	if record.Total < int32(settings.MinPredictions) {
		return false
	}
	accuracy := float64(record.Correct) / float64(record.Total)
	return accuracy < settings.AccuracyThreshold
}

func (h *evolutionServiceHandler) recentMistakes(unitID string, version int32) ([]string, error) {
	incorrect, err := h.DecisionRepository.ListIncorrect(unitID, version, int64(h.Settings.MaxIncorrectCited))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(incorrect))
	for _, d := range incorrect {
		realized := "unknown"
		if d.Realized != nil {
			realized = string(*d.Realized)
		}
		out = append(out, fmt.Sprintf("%s: predicted %s (magnitude %.2f), realized %s",
			d.DecidedAt.Format("2006-01-02"), d.Predicted, d.Magnitude, realized))
	}
	return out, nil
}

func (h *evolutionServiceHandler) recentKnowledge() ([]string, error) {
	items, err := h.KnowledgeItemRepository.ListRecent(int64(h.Settings.MaxIncorrectCited))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Payload)
	}
	return out, nil
}
