package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/logger"
	l3_service "sentimentfolio/internal/service/l3"
)

// EvaluationHandler closes out due decisions and evolves any units the
// fresh outcomes pushed below the accuracy trigger. The evaluation pass
// runs in one transaction; evolution manages its own per-unit
// transactions.
type EvaluationHandler struct {
	Db *sql.DB

	FeedbackService  l3_service.FeedbackService
	EvolutionService l3_service.EvolutionService
}

type EvaluationRunResult struct {
	Pass    *l3_service.EvaluationPassResult
	Evolved []model.PromptVersion
}

func (h EvaluationHandler) Run(ctx context.Context) (*EvaluationRunResult, error) {
	log := logger.FromContext(ctx)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin evaluation tx: %w", err)
	}
	defer tx.Rollback()

	pass, err := h.FeedbackService.RunEvaluationPass(ctx, tx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("evaluation pass failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit evaluation pass: %w", err)
	}
	log.Infof(
		"evaluation pass: %d evaluated, %d deferred, %d skipped, %d threshold changes",
		pass.Evaluated, pass.Deferred, pass.Skipped, len(pass.ThresholdChanges),
	)

	evolved, err := h.Evolve(ctx)
	if err != nil {
		return nil, err
	}

	return &EvaluationRunResult{
		Pass:    pass,
		Evolved: evolved,
	}, nil
}

// Evolve runs the evolution check on its own, without settling decisions.
func (h EvaluationHandler) Evolve(ctx context.Context) ([]model.PromptVersion, error) {
	log := logger.FromContext(ctx)

	evolved, err := h.EvolutionService.EvolveDueUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("evolution pass failed: %w", err)
	}
	for _, version := range evolved {
		log.Infof("evolved %s to v%d", version.UnitID, version.Version)
	}
	return evolved, nil
}
