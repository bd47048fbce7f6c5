package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type SentimentReadingRepository interface {
	Add(tx *sql.Tx, reading model.SentimentReading) (*model.SentimentReading, error)
	Latest(sectorID string) (*model.SentimentReading, error)
	List(sectorID string, since time.Time) ([]model.SentimentReading, error)
}

type sentimentReadingRepositoryHandler struct {
	Db *sql.DB
}

func NewSentimentReadingRepository(db *sql.DB) SentimentReadingRepository {
	return sentimentReadingRepositoryHandler{Db: db}
}

func (h sentimentReadingRepositoryHandler) Add(tx *sql.Tx, reading model.SentimentReading) (*model.SentimentReading, error) {
	query := table.SentimentReading.
		INSERT(table.SentimentReading.AllColumns).
		MODEL(reading).
		RETURNING(table.SentimentReading.AllColumns)

	out := model.SentimentReading{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sentiment reading: %w", err)
	}

	return &out, nil
}

func (h sentimentReadingRepositoryHandler) Latest(sectorID string) (*model.SentimentReading, error) {
	query := table.SentimentReading.
		SELECT(table.SentimentReading.AllColumns).
		WHERE(table.SentimentReading.SectorID.EQ(postgres.String(sectorID))).
		ORDER_BY(table.SentimentReading.CreatedAt.DESC()).
		LIMIT(1)

	result := model.SentimentReading{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest reading for sector %s: %w", sectorID, err)
	}

	return &result, nil
}

func (h sentimentReadingRepositoryHandler) List(sectorID string, since time.Time) ([]model.SentimentReading, error) {
	query := table.SentimentReading.
		SELECT(table.SentimentReading.AllColumns).
		WHERE(
			table.SentimentReading.SectorID.EQ(postgres.String(sectorID)).
				AND(table.SentimentReading.CreatedAt.GT_EQ(postgres.TimestampzT(since))),
		).
		ORDER_BY(table.SentimentReading.CreatedAt.ASC())

	results := []model.SentimentReading{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings for sector %s: %w", sectorID, err)
	}

	return results, nil
}
