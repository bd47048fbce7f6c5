package l2_service

import (
	"context"
	"testing"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	mock_repository "sentimentfolio/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordPrediction(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
	recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)

	handler := performanceServiceHandler{
		DecisionRepository:          decisionRepository,
		PerformanceRecordRepository: recordRepository,
	}

	decidedAt := time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)
	versionID := uuid.New()
	readingID := uuid.New()

	decisionRepository.EXPECT().
		Add(nil, gomock.Any()).
		DoAndReturn(func(_ interface{}, decision model.Decision) (*model.Decision, error) {
			require.Equal(t, "XLK/sentiment", decision.UnitID)
			require.Equal(t, model.Direction_Down, decision.Predicted)
			require.Equal(t, 0.4, decision.Magnitude)
			require.Equal(t, readingID, decision.SentimentReadingID)
			require.Equal(t, decidedAt.Add(72*time.Hour), decision.EvaluationDue)
			return &decision, nil
		})
	recordRepository.EXPECT().
		Ensure(nil, "XLK/sentiment", int32(3)).
		Return(nil)

	decision, err := handler.RecordPrediction(ctx, nil, RecordPredictionInput{
		Scenario: model.ScenarioName_Momentum,
		SectorID: "XLK",
		Reading: model.SentimentReading{
			SentimentReadingID: readingID,
			SectorID:           "XLK",
			NormalizedValue:    -0.4,
		},
		PromptVersion: model.PromptVersion{
			PromptVersionID: versionID,
			UnitID:          "XLK/sentiment",
			Version:         3,
		},
		DecidedAt: decidedAt,
		Horizon:   72 * time.Hour,
	})
	require.NoError(t, err)
	require.Equal(t, model.Direction_Down, decision.Predicted)
}

func TestRecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("correct outcome bumps the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)
		handler := performanceServiceHandler{
			DecisionRepository:          decisionRepository,
			PerformanceRecordRepository: recordRepository,
		}

		decisionID := uuid.New()
		decisionRepository.EXPECT().
			Get(decisionID).
			Return(&model.Decision{
				DecisionID: decisionID,
				UnitID:     "XLE/sentiment",
				Version:    1,
				Predicted:  model.Direction_Up,
			}, nil)
		decisionRepository.EXPECT().
			MarkEvaluated(nil, decisionID, model.Direction_Up, gomock.Any()).
			Return(true, nil)
		recordRepository.EXPECT().
			IncrementOutcome(nil, "XLE/sentiment", int32(1), true).
			Return(true, nil)

		result, err := handler.RecordOutcome(ctx, nil, decisionID, domain.DirectionUp)
		require.NoError(t, err)
		require.True(t, result.Correct)
		require.False(t, result.AlreadyEvaluated)
		require.False(t, result.RecordFrozen)
	})

	t.Run("already evaluated decision moves no counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)
		handler := performanceServiceHandler{
			DecisionRepository:          decisionRepository,
			PerformanceRecordRepository: recordRepository,
		}

		decisionID := uuid.New()
		decisionRepository.EXPECT().
			Get(decisionID).
			Return(&model.Decision{DecisionID: decisionID, Evaluated: true}, nil)
		decisionRepository.EXPECT().
			MarkEvaluated(nil, decisionID, model.Direction_Down, gomock.Any()).
			Return(false, nil)

		result, err := handler.RecordOutcome(ctx, nil, decisionID, domain.DirectionDown)
		require.NoError(t, err)
		require.True(t, result.AlreadyEvaluated)
	})

	t.Run("frozen record stores the outcome without counting it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)
		handler := performanceServiceHandler{
			DecisionRepository:          decisionRepository,
			PerformanceRecordRepository: recordRepository,
		}

		decisionID := uuid.New()
		decisionRepository.EXPECT().
			Get(decisionID).
			Return(&model.Decision{
				DecisionID: decisionID,
				UnitID:     "XLF/sentiment",
				Version:    2,
				Predicted:  model.Direction_Up,
			}, nil)
		decisionRepository.EXPECT().
			MarkEvaluated(nil, decisionID, model.Direction_Down, gomock.Any()).
			Return(true, nil)
		recordRepository.EXPECT().
			IncrementOutcome(nil, "XLF/sentiment", int32(2), false).
			Return(false, nil)

		result, err := handler.RecordOutcome(ctx, nil, decisionID, domain.DirectionDown)
		require.NoError(t, err)
		require.False(t, result.Correct)
		require.True(t, result.RecordFrozen)
	})
}
