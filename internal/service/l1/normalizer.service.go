package l1_service

import (
	"context"
	"database/sql"
	"math"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"

	"github.com/google/uuid"
)

// NormalizerService is the single entry point for sentiment scores. Raw
// values within tolerance of the canonical range are clamped; anything
// further out is rejected before any state changes.
type NormalizerService interface {
	Normalize(ctx context.Context, tx *sql.Tx, in NormalizeInput) (*model.SentimentReading, error)
}

type NormalizeInput struct {
	SectorID        string
	Raw             float64
	PromptVersionID uuid.UUID
	ObservedAt      time.Time
}

type normalizerServiceHandler struct {
	SectorRepository           repository.SectorRepository
	SentimentReadingRepository repository.SentimentReadingRepository
}

func NewNormalizerService(
	sectorRepository repository.SectorRepository,
	sentimentReadingRepository repository.SentimentReadingRepository,
) NormalizerService {
	return normalizerServiceHandler{
		SectorRepository:           sectorRepository,
		SentimentReadingRepository: sentimentReadingRepository,
	}
}

func (h normalizerServiceHandler) Normalize(ctx context.Context, tx *sql.Tx, in NormalizeInput) (*model.SentimentReading, error) {
	log := logger.FromContext(ctx)

	normalized, err := clampScore(in.SectorID, in.Raw)
	if err != nil {
		return nil, err
	}

	reading, err := h.SentimentReadingRepository.Add(tx, model.SentimentReading{
		SectorID:        in.SectorID,
		RawValue:        in.Raw,
		NormalizedValue: normalized,
		PromptVersionID: in.PromptVersionID,
		CreatedAt:       in.ObservedAt,
	})
	if err != nil {
		return nil, err
	}

	updated, err := h.SectorRepository.UpdateScore(tx, in.SectorID, normalized, in.ObservedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		// a newer reading already owns the score head; the reading is
		// still appended to history above
		log.Warnf("reading for %s observed at %s is stale, score head unchanged",
			in.SectorID, in.ObservedAt.Format(time.RFC3339))
	}

	return reading, nil
}

func clampScore(sectorID string, raw float64) (float64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, domain.OutOfRangeInputError{SectorID: sectorID, Raw: raw}
	}
	if raw > domain.SentimentMax+domain.SentimentTolerance ||
		raw < domain.SentimentMin-domain.SentimentTolerance {
		return 0, domain.OutOfRangeInputError{SectorID: sectorID, Raw: raw}
	}
	if raw > domain.SentimentMax {
		return domain.SentimentMax, nil
	}
	if raw < domain.SentimentMin {
		return domain.SentimentMin, nil
	}
	return raw, nil
}
