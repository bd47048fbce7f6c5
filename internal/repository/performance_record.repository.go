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

type PerformanceRecordRepository interface {
	Get(unitID string, version int32) (*model.PerformanceRecord, error)
	Add(tx *sql.Tx, record model.PerformanceRecord) (*model.PerformanceRecord, error)
	// Ensure creates the zeroed counter row for a version if it does not
	// exist yet. Safe under concurrent callers.
	Ensure(tx *sql.Tx, unitID string, version int32) error
	// IncrementOutcome bumps the counters for one evaluated decision.
	// Frozen records are never written; returns false when the record was
	// frozen and the increment skipped.
	IncrementOutcome(tx *sql.Tx, unitID string, version int32, correct bool) (bool, error)
	// Freeze permanently closes a superseded version's record.
	Freeze(tx *sql.Tx, unitID string, version int32) error
	List() ([]model.PerformanceRecord, error)
}

type performanceRecordRepositoryHandler struct {
	Db *sql.DB
}

func NewPerformanceRecordRepository(db *sql.DB) PerformanceRecordRepository {
	return performanceRecordRepositoryHandler{Db: db}
}

func (h performanceRecordRepositoryHandler) Get(unitID string, version int32) (*model.PerformanceRecord, error) {
	query := table.PerformanceRecord.
		SELECT(table.PerformanceRecord.AllColumns).
		WHERE(
			table.PerformanceRecord.UnitID.EQ(postgres.String(unitID)).
				AND(table.PerformanceRecord.Version.EQ(postgres.Int32(version))),
		)

	result := model.PerformanceRecord{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance record %s v%d: %w", unitID, version, err)
	}

	return &result, nil
}

func (h performanceRecordRepositoryHandler) Add(tx *sql.Tx, record model.PerformanceRecord) (*model.PerformanceRecord, error) {
	if record.PerformanceRecordID == uuid.Nil {
		record.PerformanceRecordID = uuid.New()
	}
	record.CreatedAt = time.Now().UTC()
	record.ModifiedAt = time.Now().UTC()

	query := table.PerformanceRecord.
		INSERT(table.PerformanceRecord.AllColumns).
		MODEL(record).
		RETURNING(table.PerformanceRecord.AllColumns)

	out := model.PerformanceRecord{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert performance record %s v%d: %w", record.UnitID, record.Version, err)
	}

	return &out, nil
}

func (h performanceRecordRepositoryHandler) Ensure(tx *sql.Tx, unitID string, version int32) error {
	record := model.PerformanceRecord{
		PerformanceRecordID: uuid.New(),
		UnitID:              unitID,
		Version:             version,
		CreatedAt:           time.Now().UTC(),
		ModifiedAt:          time.Now().UTC(),
	}

	query := table.PerformanceRecord.
		INSERT(table.PerformanceRecord.AllColumns).
		MODEL(record).
		ON_CONFLICT(table.PerformanceRecord.UnitID, table.PerformanceRecord.Version).
		DO_NOTHING()

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to ensure performance record %s v%d: %w", unitID, version, err)
	}

	return nil
}

func (h performanceRecordRepositoryHandler) IncrementOutcome(tx *sql.Tx, unitID string, version int32, correct bool) (bool, error) {
	correctDelta := int64(0)
	if correct {
		correctDelta = 1
	}

	query := table.PerformanceRecord.
		UPDATE(table.PerformanceRecord.Correct, table.PerformanceRecord.Total, table.PerformanceRecord.ModifiedAt).
		SET(
			table.PerformanceRecord.Correct.ADD(postgres.Int(correctDelta)),
			table.PerformanceRecord.Total.ADD(postgres.Int(1)),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(
			table.PerformanceRecord.UnitID.EQ(postgres.String(unitID)).
				AND(table.PerformanceRecord.Version.EQ(postgres.Int32(version))).
				AND(table.PerformanceRecord.Frozen.IS_FALSE()),
		)

	result, err := query.Exec(tx)
	if err != nil {
		return false, fmt.Errorf("failed to increment outcome for %s v%d: %w", unitID, version, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (h performanceRecordRepositoryHandler) Freeze(tx *sql.Tx, unitID string, version int32) error {
	query := table.PerformanceRecord.
		UPDATE(table.PerformanceRecord.Frozen, table.PerformanceRecord.ModifiedAt).
		SET(postgres.Bool(true), postgres.TimestampzT(time.Now().UTC())).
		WHERE(
			table.PerformanceRecord.UnitID.EQ(postgres.String(unitID)).
				AND(table.PerformanceRecord.Version.EQ(postgres.Int32(version))),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to freeze performance record %s v%d: %w", unitID, version, err)
	}

	return nil
}

func (h performanceRecordRepositoryHandler) List() ([]model.PerformanceRecord, error) {
	query := table.PerformanceRecord.
		SELECT(table.PerformanceRecord.AllColumns).
		ORDER_BY(table.PerformanceRecord.UnitID.ASC(), table.PerformanceRecord.Version.ASC())

	results := []model.PerformanceRecord{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance records: %w", err)
	}

	return results, nil
}
