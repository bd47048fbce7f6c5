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

type PromptVersionRepository interface {
	// GetActive returns the highest version for a unit. Versions are
	// monotonic per unit, so the head is also the newest.
	GetActive(unitID string) (*model.PromptVersion, error)
	Get(id uuid.UUID) (*model.PromptVersion, error)
	Add(tx *sql.Tx, version model.PromptVersion) (*model.PromptVersion, error)
	// ListLineage returns every version for a unit, oldest first.
	ListLineage(unitID string) ([]model.PromptVersion, error)
	ListUnits() ([]string, error)
}

type promptVersionRepositoryHandler struct {
	Db *sql.DB
}

func NewPromptVersionRepository(db *sql.DB) PromptVersionRepository {
	return promptVersionRepositoryHandler{Db: db}
}

func (h promptVersionRepositoryHandler) GetActive(unitID string) (*model.PromptVersion, error) {
	query := table.PromptVersion.
		SELECT(table.PromptVersion.AllColumns).
		WHERE(table.PromptVersion.UnitID.EQ(postgres.String(unitID))).
		ORDER_BY(table.PromptVersion.Version.DESC()).
		LIMIT(1)

	result := model.PromptVersion{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get active version for unit %s: %w", unitID, err)
	}

	return &result, nil
}

func (h promptVersionRepositoryHandler) Get(id uuid.UUID) (*model.PromptVersion, error) {
	query := table.PromptVersion.
		SELECT(table.PromptVersion.AllColumns).
		WHERE(table.PromptVersion.PromptVersionID.EQ(postgres.UUID(id)))

	result := model.PromptVersion{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt version %s: %w", id, err)
	}

	return &result, nil
}

func (h promptVersionRepositoryHandler) Add(tx *sql.Tx, version model.PromptVersion) (*model.PromptVersion, error) {
	if version.PromptVersionID == uuid.Nil {
		version.PromptVersionID = uuid.New()
	}
	version.CreatedAt = time.Now().UTC()

	query := table.PromptVersion.
		INSERT(table.PromptVersion.AllColumns).
		MODEL(version).
		RETURNING(table.PromptVersion.AllColumns)

	out := model.PromptVersion{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prompt version for unit %s: %w", version.UnitID, err)
	}

	return &out, nil
}

func (h promptVersionRepositoryHandler) ListLineage(unitID string) ([]model.PromptVersion, error) {
	query := table.PromptVersion.
		SELECT(table.PromptVersion.AllColumns).
		WHERE(table.PromptVersion.UnitID.EQ(postgres.String(unitID))).
		ORDER_BY(table.PromptVersion.Version.ASC())

	results := []model.PromptVersion{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineage for unit %s: %w", unitID, err)
	}

	return results, nil
}

func (h promptVersionRepositoryHandler) ListUnits() ([]string, error) {
	query := table.PromptVersion.
		SELECT(table.PromptVersion.UnitID).
		DISTINCT().
		ORDER_BY(table.PromptVersion.UnitID.ASC())

	results := []model.PromptVersion{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	units := make([]string, 0, len(results))
	for _, r := range results {
		units = append(units, r.UnitID)
	}

	return units, nil
}
