package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ScenarioPositionRepository interface {
	List(scenario model.ScenarioName) ([]model.ScenarioPosition, error)
	Upsert(tx *sql.Tx, position model.ScenarioPosition) error
	Delete(tx *sql.Tx, scenario model.ScenarioName, symbol string) error
}

type scenarioPositionRepositoryHandler struct {
	Db *sql.DB
}

func NewScenarioPositionRepository(db *sql.DB) ScenarioPositionRepository {
	return scenarioPositionRepositoryHandler{Db: db}
}

func (h scenarioPositionRepositoryHandler) List(scenario model.ScenarioName) ([]model.ScenarioPosition, error) {
	query := table.ScenarioPosition.
		SELECT(table.ScenarioPosition.AllColumns).
		WHERE(table.ScenarioPosition.Scenario.EQ(postgres.String(scenario.String()))).
		ORDER_BY(table.ScenarioPosition.Symbol.ASC())

	results := []model.ScenarioPosition{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions for scenario %s: %w", scenario, err)
	}

	return results, nil
}

func (h scenarioPositionRepositoryHandler) Upsert(tx *sql.Tx, position model.ScenarioPosition) error {
	if position.ScenarioPositionID == uuid.Nil {
		position.ScenarioPositionID = uuid.New()
		position.CreatedAt = time.Now().UTC()
	}
	position.ModifiedAt = time.Now().UTC()

	query := table.ScenarioPosition.
		INSERT(table.ScenarioPosition.AllColumns).
		MODEL(position).
		ON_CONFLICT(table.ScenarioPosition.Scenario, table.ScenarioPosition.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.ScenarioPosition.Quantity.SET(table.ScenarioPosition.EXCLUDED.Quantity),
				table.ScenarioPosition.CostBasis.SET(table.ScenarioPosition.EXCLUDED.CostBasis),
				table.ScenarioPosition.LastTradeAt.SET(table.ScenarioPosition.EXCLUDED.LastTradeAt),
				table.ScenarioPosition.ModifiedAt.SET(table.ScenarioPosition.EXCLUDED.ModifiedAt),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert position %s/%s: %w", position.Scenario, position.Symbol, err)
	}

	return nil
}

func (h scenarioPositionRepositoryHandler) Delete(tx *sql.Tx, scenario model.ScenarioName, symbol string) error {
	query := table.ScenarioPosition.
		DELETE().
		WHERE(
			table.ScenarioPosition.Scenario.EQ(postgres.String(scenario.String())).
				AND(table.ScenarioPosition.Symbol.EQ(postgres.String(symbol))),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete position %s/%s: %w", scenario, symbol, err)
	}

	return nil
}
