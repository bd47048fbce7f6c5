package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type ScenarioAccountRepository interface {
	Get(scenario model.ScenarioName) (*model.ScenarioAccount, error)
	List() ([]model.ScenarioAccount, error)
	Add(tx *sql.Tx, account model.ScenarioAccount) error
	UpdateCash(tx *sql.Tx, scenario model.ScenarioName, cash decimal.Decimal) error
}

type scenarioAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewScenarioAccountRepository(db *sql.DB) ScenarioAccountRepository {
	return scenarioAccountRepositoryHandler{Db: db}
}

func (h scenarioAccountRepositoryHandler) Get(scenario model.ScenarioName) (*model.ScenarioAccount, error) {
	query := table.ScenarioAccount.
		SELECT(table.ScenarioAccount.AllColumns).
		WHERE(table.ScenarioAccount.Scenario.EQ(postgres.String(scenario.String())))

	result := model.ScenarioAccount{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for scenario %s: %w", scenario, err)
	}

	return &result, nil
}

func (h scenarioAccountRepositoryHandler) List() ([]model.ScenarioAccount, error) {
	query := table.ScenarioAccount.
		SELECT(table.ScenarioAccount.AllColumns).
		ORDER_BY(table.ScenarioAccount.Scenario.ASC())

	results := []model.ScenarioAccount{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario accounts: %w", err)
	}

	return results, nil
}

func (h scenarioAccountRepositoryHandler) Add(tx *sql.Tx, account model.ScenarioAccount) error {
	account.CreatedAt = time.Now().UTC()
	account.ModifiedAt = time.Now().UTC()

	query := table.ScenarioAccount.
		INSERT(table.ScenarioAccount.AllColumns).
		MODEL(account).
		ON_CONFLICT(table.ScenarioAccount.Scenario).
		DO_NOTHING()

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert account for scenario %s: %w", account.Scenario, err)
	}

	return nil
}

func (h scenarioAccountRepositoryHandler) UpdateCash(tx *sql.Tx, scenario model.ScenarioName, cash decimal.Decimal) error {
	query := table.ScenarioAccount.
		UPDATE(table.ScenarioAccount.Cash, table.ScenarioAccount.ModifiedAt).
		SET(cash, time.Now().UTC()).
		WHERE(table.ScenarioAccount.Scenario.EQ(postgres.String(scenario.String())))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update cash for scenario %s: %w", scenario, err)
	}

	return nil
}
