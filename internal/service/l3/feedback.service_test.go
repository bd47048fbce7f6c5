package l3_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	mock_repository "sentimentfolio/internal/repository/mocks"
	"sentimentfolio/internal/scenarioconfig"
	mock_l1_service "sentimentfolio/internal/service/l1/mocks"
	l2_service "sentimentfolio/internal/service/l2"
	mock_l2_service "sentimentfolio/internal/service/l2/mocks"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func evaluatedDecisions(unitID string, wins, losses int) []model.Decision {
	up := model.Direction_Up
	down := model.Direction_Down
	out := []model.Decision{}
	for i := 0; i < wins; i++ {
		out = append(out, model.Decision{UnitID: unitID, Predicted: up, Realized: &up, Evaluated: true})
	}
	for i := 0; i < losses; i++ {
		out = append(out, model.Decision{UnitID: unitID, Predicted: up, Realized: &down, Evaluated: true})
	}
	return out
}

func TestRunEvaluationPass(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)

	t.Run("closes due decisions and adapts the threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		thresholdRepository := mock_repository.NewMockThresholdVersionRepository(ctrl)
		performanceService := mock_l2_service.NewMockPerformanceService(ctrl)
		priceService := mock_l1_service.NewMockPriceService(ctrl)

		handler := feedbackServiceHandler{
			DecisionRepository:         decisionRepository,
			ThresholdVersionRepository: thresholdRepository,
			PerformanceService:         performanceService,
			PriceService:               priceService,
			Config:                     scenarioconfig.Default(),
		}

		decidedAt := now.Add(-80 * time.Hour)
		due := decidedAt.Add(72 * time.Hour)
		evaluatedID := uuid.New()
		deferredID := uuid.New()

		decisionRepository.EXPECT().
			ListDue(now).
			Return([]model.Decision{
				{
					DecisionID:    evaluatedID,
					UnitID:        "XLK/sentiment",
					SectorID:      "XLK",
					Predicted:     model.Direction_Up,
					DecidedAt:     decidedAt,
					EvaluationDue: due,
				},
				{
					DecisionID:    deferredID,
					UnitID:        "CRYPTO/sentiment",
					SectorID:      "CRYPTO",
					Predicted:     model.Direction_Down,
					DecidedAt:     decidedAt,
					EvaluationDue: due,
				},
			}, nil)

		priceService.EXPECT().
			GetReturn("XLK", decidedAt, due).
			Return(0.04, nil)
		// crypto sectors evaluate via their configured proxy symbol
		priceService.EXPECT().
			GetReturn("BTC-USD", decidedAt, due).
			Return(0.0, errors.New("no price history"))

		performanceService.EXPECT().
			RecordOutcome(ctx, nil, evaluatedID, domain.DirectionUp).
			Return(&l2_service.OutcomeResult{Correct: true}, nil)

		decisionRepository.EXPECT().
			ListRecentEvaluated("XLK/sentiment", int64(20)).
			Return(evaluatedDecisions("XLK/sentiment", 9, 3), nil)
		thresholdRepository.EXPECT().
			Current("XLK/sentiment").
			Return(nil, qrm.ErrNoRows).
			Times(1)
		thresholdRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, version model.ThresholdVersion) (*model.ThresholdVersion, error) {
				// 9 of 12 wins lowers the starting threshold one step
				require.Equal(t, int32(1), version.Version)
				require.InDelta(t, 0.55, version.Value, 1e-9)
				require.NotNil(t, version.PreviousValue)
				require.InDelta(t, 0.6, *version.PreviousValue, 1e-9)
				require.Nil(t, version.CreatedFrom)
				require.NotEmpty(t, version.Reason)
				return &version, nil
			})

		result, err := handler.RunEvaluationPass(ctx, nil, now)
		require.NoError(t, err)
		require.Equal(t, 1, result.Evaluated)
		require.Equal(t, 1, result.Deferred)
		require.Zero(t, result.Skipped)
		require.Len(t, result.ThresholdChanges, 1)
	})

	t.Run("already closed decisions are skipped without touching thresholds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		performanceService := mock_l2_service.NewMockPerformanceService(ctrl)
		priceService := mock_l1_service.NewMockPriceService(ctrl)

		handler := feedbackServiceHandler{
			DecisionRepository: decisionRepository,
			PerformanceService: performanceService,
			PriceService:       priceService,
			Config:             scenarioconfig.Default(),
		}

		decisionID := uuid.New()
		decidedAt := now.Add(-100 * time.Hour)
		due := decidedAt.Add(72 * time.Hour)

		decisionRepository.EXPECT().
			ListDue(now).
			Return([]model.Decision{
				{
					DecisionID:    decisionID,
					UnitID:        "XLE/sentiment",
					SectorID:      "XLE",
					DecidedAt:     decidedAt,
					EvaluationDue: due,
				},
			}, nil)
		priceService.EXPECT().
			GetReturn("XLE", decidedAt, due).
			Return(-0.02, nil)
		performanceService.EXPECT().
			RecordOutcome(ctx, nil, decisionID, domain.DirectionDown).
			Return(&l2_service.OutcomeResult{AlreadyEvaluated: true}, nil)

		result, err := handler.RunEvaluationPass(ctx, nil, now)
		require.NoError(t, err)
		require.Zero(t, result.Evaluated)
		require.Equal(t, 1, result.Skipped)
		require.Empty(t, result.ThresholdChanges)
	})
}

func TestAdjustThreshold(t *testing.T) {
	ctx := context.Background()

	newHandler := func(ctrl *gomock.Controller) (feedbackServiceHandler, *mock_repository.MockDecisionRepository, *mock_repository.MockThresholdVersionRepository) {
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		thresholdRepository := mock_repository.NewMockThresholdVersionRepository(ctrl)
		handler := feedbackServiceHandler{
			DecisionRepository:         decisionRepository,
			ThresholdVersionRepository: thresholdRepository,
			Config:                     scenarioconfig.Default(),
		}
		return handler, decisionRepository, thresholdRepository
	}

	t.Run("low win rate raises the threshold with lineage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, decisionRepository, thresholdRepository := newHandler(ctrl)

		currentID := uuid.New()
		decisionRepository.EXPECT().
			ListRecentEvaluated("XLF/sentiment", int64(20)).
			Return(evaluatedDecisions("XLF/sentiment", 3, 9), nil)
		thresholdRepository.EXPECT().
			Current("XLF/sentiment").
			Return(&model.ThresholdVersion{
				ThresholdVersionID: currentID,
				UnitID:             "XLF/sentiment",
				Version:            2,
				Value:              0.55,
			}, nil)
		thresholdRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, version model.ThresholdVersion) (*model.ThresholdVersion, error) {
				require.Equal(t, int32(3), version.Version)
				require.InDelta(t, 0.60, version.Value, 1e-9)
				require.NotNil(t, version.CreatedFrom)
				require.Equal(t, currentID, *version.CreatedFrom)
				return &version, nil
			})

		change, err := handler.adjustThreshold(ctx, nil, "XLF/sentiment")
		require.NoError(t, err)
		require.NotNil(t, change)
	})

	t.Run("win rate inside the band changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, decisionRepository, _ := newHandler(ctrl)

		decisionRepository.EXPECT().
			ListRecentEvaluated("XLV/sentiment", int64(20)).
			Return(evaluatedDecisions("XLV/sentiment", 6, 6), nil)

		change, err := handler.adjustThreshold(ctx, nil, "XLV/sentiment")
		require.NoError(t, err)
		require.Nil(t, change)
	})

	t.Run("threshold never drops below the floor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, decisionRepository, thresholdRepository := newHandler(ctrl)

		decisionRepository.EXPECT().
			ListRecentEvaluated("XLU/sentiment", int64(20)).
			Return(evaluatedDecisions("XLU/sentiment", 10, 2), nil)
		thresholdRepository.EXPECT().
			Current("XLU/sentiment").
			Return(&model.ThresholdVersion{
				UnitID:  "XLU/sentiment",
				Version: 5,
				Value:   0.4,
			}, nil)

		// already at the floor: no new version is written
		change, err := handler.adjustThreshold(ctx, nil, "XLU/sentiment")
		require.NoError(t, err)
		require.Nil(t, change)
	})

	t.Run("too few evaluations changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, decisionRepository, _ := newHandler(ctrl)

		decisionRepository.EXPECT().
			ListRecentEvaluated("XLB/sentiment", int64(20)).
			Return(evaluatedDecisions("XLB/sentiment", 5, 2), nil)

		change, err := handler.adjustThreshold(ctx, nil, "XLB/sentiment")
		require.NoError(t, err)
		require.Nil(t, change)
	})
}
