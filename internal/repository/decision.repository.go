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

type DecisionRepository interface {
	Add(tx *sql.Tx, decision model.Decision) (*model.Decision, error)
	Get(id uuid.UUID) (*model.Decision, error)
	// ListDue returns unevaluated decisions whose evaluation horizon has
	// elapsed as of now.
	ListDue(now time.Time) ([]model.Decision, error)
	// MarkEvaluated closes a decision exactly once. The update is guarded
	// on evaluated = false; returns false when the decision was already
	// closed, which callers treat as a benign no-op.
	MarkEvaluated(tx *sql.Tx, id uuid.UUID, realized model.Direction, evaluatedAt time.Time) (bool, error)
	// ListRecentEvaluated returns the last limit evaluated decisions for a
	// unit, newest first.
	ListRecentEvaluated(unitID string, limit int64) ([]model.Decision, error)
	// ListIncorrect returns recent evaluated decisions whose prediction
	// did not match the realized direction.
	ListIncorrect(unitID string, version int32, limit int64) ([]model.Decision, error)
}

type decisionRepositoryHandler struct {
	Db *sql.DB
}

func NewDecisionRepository(db *sql.DB) DecisionRepository {
	return decisionRepositoryHandler{Db: db}
}

func (h decisionRepositoryHandler) Add(tx *sql.Tx, decision model.Decision) (*model.Decision, error) {
	if decision.DecisionID == uuid.Nil {
		decision.DecisionID = uuid.New()
	}
	decision.CreatedAt = time.Now().UTC()

	query := table.Decision.
		INSERT(table.Decision.AllColumns).
		MODEL(decision).
		RETURNING(table.Decision.AllColumns)

	out := model.Decision{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert decision: %w", err)
	}

	return &out, nil
}

func (h decisionRepositoryHandler) Get(id uuid.UUID) (*model.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns).
		WHERE(table.Decision.DecisionID.EQ(postgres.UUID(id)))

	result := model.Decision{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision %s: %w", id, err)
	}

	return &result, nil
}

func (h decisionRepositoryHandler) ListDue(now time.Time) ([]model.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns).
		WHERE(
			table.Decision.Evaluated.IS_FALSE().
				AND(table.Decision.EvaluationDue.LT_EQ(postgres.TimestampzT(now))),
		).
		ORDER_BY(table.Decision.EvaluationDue.ASC())

	results := []model.Decision{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list due decisions: %w", err)
	}

	return results, nil
}

func (h decisionRepositoryHandler) MarkEvaluated(tx *sql.Tx, id uuid.UUID, realized model.Direction, evaluatedAt time.Time) (bool, error) {
	query := table.Decision.
		UPDATE(table.Decision.Evaluated, table.Decision.Realized, table.Decision.EvaluatedAt).
		SET(postgres.Bool(true), postgres.String(realized.String()), postgres.TimestampzT(evaluatedAt)).
		WHERE(
			table.Decision.DecisionID.EQ(postgres.UUID(id)).
				AND(table.Decision.Evaluated.IS_FALSE()),
		)

	result, err := query.Exec(tx)
	if err != nil {
		return false, fmt.Errorf("failed to mark decision %s evaluated: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (h decisionRepositoryHandler) ListRecentEvaluated(unitID string, limit int64) ([]model.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns).
		WHERE(
			table.Decision.UnitID.EQ(postgres.String(unitID)).
				AND(table.Decision.Evaluated.IS_TRUE()),
		).
		ORDER_BY(table.Decision.EvaluatedAt.DESC()).
		LIMIT(limit)

	results := []model.Decision{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluated decisions for unit %s: %w", unitID, err)
	}

	return results, nil
}

func (h decisionRepositoryHandler) ListIncorrect(unitID string, version int32, limit int64) ([]model.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns).
		WHERE(
			table.Decision.UnitID.EQ(postgres.String(unitID)).
				AND(table.Decision.Version.EQ(postgres.Int32(version))).
				AND(table.Decision.Evaluated.IS_TRUE()).
				AND(table.Decision.Realized.NOT_EQ(table.Decision.Predicted)),
		).
		ORDER_BY(table.Decision.EvaluatedAt.DESC()).
		LIMIT(limit)

	results := []model.Decision{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list incorrect decisions for unit %s v%d: %w", unitID, version, err)
	}

	return results, nil
}
