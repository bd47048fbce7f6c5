package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type SectorRepository interface {
	Get(sectorID string) (*model.Sector, error)
	List() ([]model.Sector, error)
	GetUniverse(sectorID string) ([]model.SectorAsset, error)
	Add(tx *sql.Tx, sector model.Sector) error
	AddAssets(tx *sql.Tx, assets []model.SectorAsset) error
	// UpdateScore sets the sector's current score head. The write is
	// guarded on score_as_of so an older reading never overwrites a newer
	// one; returns false when the guard rejected the write.
	UpdateScore(tx *sql.Tx, sectorID string, score float64, asOf time.Time) (bool, error)
}

type sectorRepositoryHandler struct {
	Db *sql.DB
}

func NewSectorRepository(db *sql.DB) SectorRepository {
	return sectorRepositoryHandler{Db: db}
}

func (h sectorRepositoryHandler) Get(sectorID string) (*model.Sector, error) {
	query := table.Sector.
		SELECT(table.Sector.AllColumns).
		WHERE(table.Sector.SectorID.EQ(postgres.String(sectorID)))

	result := model.Sector{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get sector %s: %w", sectorID, err)
	}

	return &result, nil
}

func (h sectorRepositoryHandler) List() ([]model.Sector, error) {
	query := table.Sector.
		SELECT(table.Sector.AllColumns).
		ORDER_BY(table.Sector.SectorID.ASC())

	results := []model.Sector{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	return results, nil
}

func (h sectorRepositoryHandler) GetUniverse(sectorID string) ([]model.SectorAsset, error) {
	query := table.SectorAsset.
		SELECT(table.SectorAsset.AllColumns).
		WHERE(table.SectorAsset.SectorID.EQ(postgres.String(sectorID))).
		ORDER_BY(table.SectorAsset.Ordinal.ASC())

	results := []model.SectorAsset{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get universe for sector %s: %w", sectorID, err)
	}

	return results, nil
}

func (h sectorRepositoryHandler) Add(tx *sql.Tx, sector model.Sector) error {
	sector.CreatedAt = time.Now().UTC()
	sector.ModifiedAt = time.Now().UTC()

	query := table.Sector.
		INSERT(table.Sector.AllColumns).
		MODEL(sector).
		ON_CONFLICT(table.Sector.SectorID).
		DO_NOTHING()

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert sector %s: %w", sector.SectorID, err)
	}

	return nil
}

func (h sectorRepositoryHandler) AddAssets(tx *sql.Tx, assets []model.SectorAsset) error {
	if len(assets) == 0 {
		return nil
	}

	for i := range assets {
		assets[i].CreatedAt = time.Now().UTC()
	}

	query := table.SectorAsset.
		INSERT(table.SectorAsset.AllColumns).
		MODELS(assets).
		ON_CONFLICT(table.SectorAsset.Symbol).
		DO_NOTHING()

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert sector assets: %w", err)
	}

	return nil
}

func (h sectorRepositoryHandler) UpdateScore(tx *sql.Tx, sectorID string, score float64, asOf time.Time) (bool, error) {
	query := table.Sector.
		UPDATE(table.Sector.CurrentScore, table.Sector.ScoreAsOf, table.Sector.ModifiedAt).
		SET(score, asOf, time.Now().UTC()).
		WHERE(
			table.Sector.SectorID.EQ(postgres.String(sectorID)).
				AND(
					table.Sector.ScoreAsOf.IS_NULL().
						OR(table.Sector.ScoreAsOf.LT(postgres.TimestampzT(asOf))),
				),
		)

	result, err := query.Exec(tx)
	if err != nil {
		return false, fmt.Errorf("failed to update score for sector %s: %w", sectorID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
