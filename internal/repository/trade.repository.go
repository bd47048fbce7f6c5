package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type TradeListFilter struct {
	Scenario *model.ScenarioName
	SectorID *string
	Since    *time.Time
}

type TradeRepository interface {
	AddMany(tx *sql.Tx, trades []*model.Trade) ([]model.Trade, error)
	List(filter TradeListFilter) ([]model.Trade, error)
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) AddMany(tx *sql.Tx, trades []*model.Trade) ([]model.Trade, error) {
	if len(trades) == 0 {
		return []model.Trade{}, nil
	}

	for _, t := range trades {
		t.CreatedAt = time.Now().UTC()
	}

	query := table.Trade.
		INSERT(table.Trade.AllColumns).
		MODELS(trades).
		RETURNING(table.Trade.AllColumns)

	out := []model.Trade{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trades: %w", err)
	}

	return out, nil
}

func (h tradeRepositoryHandler) List(filter TradeListFilter) ([]model.Trade, error) {
	whereClauses := []postgres.BoolExpression{}
	if filter.Scenario != nil {
		whereClauses = append(whereClauses, table.Trade.Scenario.EQ(postgres.String(filter.Scenario.String())))
	}
	if filter.SectorID != nil {
		whereClauses = append(whereClauses, table.Trade.SectorID.EQ(postgres.String(*filter.SectorID)))
	}
	if filter.Since != nil {
		whereClauses = append(whereClauses, table.Trade.CreatedAt.GT_EQ(postgres.TimestampzT(*filter.Since)))
	}

	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		ORDER_BY(table.Trade.CreatedAt.ASC())
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	results := []model.Trade{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	return results, nil
}
