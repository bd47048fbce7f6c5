package l1_service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	mock_repository "sentimentfolio/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalize(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects values beyond tolerance without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := normalizerServiceHandler{
			SectorRepository:           mock_repository.NewMockSectorRepository(ctrl),
			SentimentReadingRepository: mock_repository.NewMockSentimentReadingRepository(ctrl),
		}

		for _, raw := range []float64{1.2, -1.2, math.NaN(), math.Inf(1)} {
			_, err := handler.Normalize(ctx, nil, NormalizeInput{
				SectorID:   "XLK",
				Raw:        raw,
				ObservedAt: time.Now().UTC(),
			})
			var oorErr domain.OutOfRangeInputError
			require.True(t, errors.As(err, &oorErr), "expected out of range error for %f", raw)
			require.Equal(t, "XLK", oorErr.SectorID)
		}
	})

	t.Run("clamps values within tolerance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sectorRepository := mock_repository.NewMockSectorRepository(ctrl)
		readingRepository := mock_repository.NewMockSentimentReadingRepository(ctrl)
		handler := normalizerServiceHandler{
			SectorRepository:           sectorRepository,
			SentimentReadingRepository: readingRepository,
		}

		observedAt := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
		versionID := uuid.New()

		readingRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, reading model.SentimentReading) (*model.SentimentReading, error) {
				require.Equal(t, 1.03, reading.RawValue)
				require.Equal(t, 1.0, reading.NormalizedValue)
				require.Equal(t, versionID, reading.PromptVersionID)
				return &reading, nil
			})
		sectorRepository.EXPECT().
			UpdateScore(nil, "XLE", 1.0, observedAt).
			Return(true, nil)

		reading, err := handler.Normalize(ctx, nil, NormalizeInput{
			SectorID:        "XLE",
			Raw:             1.03,
			PromptVersionID: versionID,
			ObservedAt:      observedAt,
		})
		require.NoError(t, err)
		require.Equal(t, 1.0, reading.NormalizedValue)
	})

	t.Run("stale reading keeps history but not the score head", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sectorRepository := mock_repository.NewMockSectorRepository(ctrl)
		readingRepository := mock_repository.NewMockSentimentReadingRepository(ctrl)
		handler := normalizerServiceHandler{
			SectorRepository:           sectorRepository,
			SentimentReadingRepository: readingRepository,
		}

		observedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		readingRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, reading model.SentimentReading) (*model.SentimentReading, error) {
				return &reading, nil
			})
		sectorRepository.EXPECT().
			UpdateScore(nil, "XLF", -0.25, observedAt).
			Return(false, nil)

		reading, err := handler.Normalize(ctx, nil, NormalizeInput{
			SectorID:   "XLF",
			Raw:        -0.25,
			ObservedAt: observedAt,
		})
		require.NoError(t, err)
		require.Equal(t, -0.25, reading.NormalizedValue)
	})
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0.5, 0.5},
		{1.0, 1.0},
		{1.05, 1.0},
		{-1.04, -1.0},
		{0, 0},
	}
	for _, tc := range cases {
		got, err := clampScore("XLK", tc.raw)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := clampScore("XLK", 1.051)
	require.Error(t, err)
}
