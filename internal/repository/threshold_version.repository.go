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

// ThresholdVersionRepository tracks the learned confidence threshold with
// the same lineage discipline as prompt versions: every adjustment is a new
// immutable row pointing back at the one it superseded.
type ThresholdVersionRepository interface {
	Current(unitID string) (*model.ThresholdVersion, error)
	Add(tx *sql.Tx, version model.ThresholdVersion) (*model.ThresholdVersion, error)
	ListLineage(unitID string) ([]model.ThresholdVersion, error)
}

type thresholdVersionRepositoryHandler struct {
	Db *sql.DB
}

func NewThresholdVersionRepository(db *sql.DB) ThresholdVersionRepository {
	return thresholdVersionRepositoryHandler{Db: db}
}

func (h thresholdVersionRepositoryHandler) Current(unitID string) (*model.ThresholdVersion, error) {
	query := table.ThresholdVersion.
		SELECT(table.ThresholdVersion.AllColumns).
		WHERE(table.ThresholdVersion.UnitID.EQ(postgres.String(unitID))).
		ORDER_BY(table.ThresholdVersion.Version.DESC()).
		LIMIT(1)

	result := model.ThresholdVersion{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get current threshold for unit %s: %w", unitID, err)
	}

	return &result, nil
}

func (h thresholdVersionRepositoryHandler) Add(tx *sql.Tx, version model.ThresholdVersion) (*model.ThresholdVersion, error) {
	if version.ThresholdVersionID == uuid.Nil {
		version.ThresholdVersionID = uuid.New()
	}
	version.CreatedAt = time.Now().UTC()

	query := table.ThresholdVersion.
		INSERT(table.ThresholdVersion.AllColumns).
		MODEL(version).
		RETURNING(table.ThresholdVersion.AllColumns)

	out := model.ThresholdVersion{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert threshold version for unit %s: %w", version.UnitID, err)
	}

	return &out, nil
}

func (h thresholdVersionRepositoryHandler) ListLineage(unitID string) ([]model.ThresholdVersion, error) {
	query := table.ThresholdVersion.
		SELECT(table.ThresholdVersion.AllColumns).
		WHERE(table.ThresholdVersion.UnitID.EQ(postgres.String(unitID))).
		ORDER_BY(table.ThresholdVersion.Version.ASC())

	results := []model.ThresholdVersion{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list threshold lineage for unit %s: %w", unitID, err)
	}

	return results, nil
}
