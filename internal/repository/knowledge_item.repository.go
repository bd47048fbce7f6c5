package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/google/uuid"
)

// KnowledgeItemRepository stores harvested insight payloads. Payloads are
// opaque: the core never parses them for control flow, only forwards them
// as extra context during evolution.
type KnowledgeItemRepository interface {
	Add(tx *sql.Tx, item model.KnowledgeItem) (*model.KnowledgeItem, error)
	ListRecent(limit int64) ([]model.KnowledgeItem, error)
}

type knowledgeItemRepositoryHandler struct {
	Db *sql.DB
}

func NewKnowledgeItemRepository(db *sql.DB) KnowledgeItemRepository {
	return knowledgeItemRepositoryHandler{Db: db}
}

func (h knowledgeItemRepositoryHandler) Add(tx *sql.Tx, item model.KnowledgeItem) (*model.KnowledgeItem, error) {
	if item.KnowledgeItemID == uuid.Nil {
		item.KnowledgeItemID = uuid.New()
	}
	item.CreatedAt = time.Now().UTC()

	query := table.KnowledgeItem.
		INSERT(table.KnowledgeItem.AllColumns).
		MODEL(item).
		RETURNING(table.KnowledgeItem.AllColumns)

	out := model.KnowledgeItem{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert knowledge item: %w", err)
	}

	return &out, nil
}

func (h knowledgeItemRepositoryHandler) ListRecent(limit int64) ([]model.KnowledgeItem, error) {
	query := table.KnowledgeItem.
		SELECT(table.KnowledgeItem.AllColumns).
		ORDER_BY(table.KnowledgeItem.HarvestedAt.DESC()).
		LIMIT(limit)

	results := []model.KnowledgeItem{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}

	return results, nil
}
