package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
)

// HarvestHandler stores externally gathered context: headlines, analyst
// notes, anything the scoring and evolution prompts should see. Payloads
// are opaque strings; blank ones are dropped.
type HarvestHandler struct {
	Db *sql.DB

	KnowledgeItemRepository repository.KnowledgeItemRepository
}

func (h HarvestHandler) Harvest(ctx context.Context, source string, payloads []string) ([]model.KnowledgeItem, error) {
	log := logger.FromContext(ctx)

	if source == "" {
		return nil, fmt.Errorf("knowledge items require a source")
	}

	kept := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		payload = strings.TrimSpace(payload)
		if payload != "" {
			kept = append(kept, payload)
		}
	}
	if len(kept) == 0 {
		return []model.KnowledgeItem{}, nil
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin harvest tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	items := make([]model.KnowledgeItem, 0, len(kept))
	for _, payload := range kept {
		item, err := h.KnowledgeItemRepository.Add(tx, model.KnowledgeItem{
			Source:      source,
			Payload:     payload,
			HarvestedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store knowledge item: %w", err)
		}
		items = append(items, *item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit harvest: %w", err)
	}
	log.Infof("harvested %d knowledge items from %s", len(items), source)

	return items, nil
}
