package l3_service

import (
	"context"
	"testing"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/repository"
	mock_repository "sentimentfolio/internal/repository/mocks"
	"sentimentfolio/internal/scenarioconfig"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func evolutionSettings() scenarioconfig.EvolutionConfig {
	return scenarioconfig.EvolutionConfig{
		MinPredictions:    10,
		AccuracyThreshold: 0.5,
		MaxIncorrectCited: 5,
	}
}

func TestShouldEvolve(t *testing.T) {
	settings := evolutionSettings()

	cases := []struct {
		name   string
		record model.PerformanceRecord
		want   bool
	}{
		{"ten predictions, four correct", model.PerformanceRecord{Correct: 4, Total: 10}, true},
		{"twelve predictions, seven correct", model.PerformanceRecord{Correct: 7, Total: 12}, false},
		{"exactly at the accuracy threshold", model.PerformanceRecord{Correct: 5, Total: 10}, false},
		{"not enough predictions", model.PerformanceRecord{Correct: 1, Total: 9}, false},
		{"frozen record never evolves", model.PerformanceRecord{Correct: 0, Total: 20, Frozen: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, shouldEvolve(tc.record, settings))
		})
	}
}

func TestEvolveUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("underperforming unit evolves with lineage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		promptRepository := mock_repository.NewMockPromptVersionRepository(ctrl)
		recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)
		knowledgeRepository := mock_repository.NewMockKnowledgeItemRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := &evolutionServiceHandler{
			PromptVersionRepository:     promptRepository,
			PerformanceRecordRepository: recordRepository,
			DecisionRepository:          decisionRepository,
			KnowledgeItemRepository:     knowledgeRepository,
			GptRepository:               gptRepository,
			Settings:                    evolutionSettings(),
			inFlight:                    map[string]bool{},
		}

		oldID := uuid.New()
		realized := model.Direction_Down
		promptRepository.EXPECT().
			GetActive("XLK/sentiment").
			Return(&model.PromptVersion{
				PromptVersionID: oldID,
				UnitID:          "XLK/sentiment",
				Role:            model.PromptRole_Sentiment,
				Version:         2,
				Payload:         "score tech news",
			}, nil)
		recordRepository.EXPECT().
			Get("XLK/sentiment", int32(2)).
			Return(&model.PerformanceRecord{
				UnitID:  "XLK/sentiment",
				Version: 2,
				Correct: 4,
				Total:   10,
			}, nil)
		decisionRepository.EXPECT().
			ListIncorrect("XLK/sentiment", int32(2), int64(5)).
			Return([]model.Decision{
				{
					Predicted: model.Direction_Up,
					Realized:  &realized,
					Magnitude: 0.7,
					DecidedAt: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
				},
			}, nil)
		knowledgeRepository.EXPECT().
			ListRecent(int64(5)).
			Return([]model.KnowledgeItem{{Payload: "rate cuts favor growth"}}, nil)
		gptRepository.EXPECT().
			RevisePayload(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in repository.RevisePayloadInput) (string, error) {
				require.Equal(t, "XLK/sentiment", in.UnitID)
				require.Equal(t, "score tech news", in.CurrentPayload)
				require.InDelta(t, 0.4, in.Accuracy, 1e-9)
				require.Len(t, in.Mistakes, 1)
				require.Len(t, in.Knowledge, 1)
				return "score tech news, discount hype", nil
			})
		promptRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, version model.PromptVersion) (*model.PromptVersion, error) {
				require.Equal(t, int32(3), version.Version)
				require.NotNil(t, version.CreatedFrom)
				require.Equal(t, oldID, *version.CreatedFrom)
				require.Equal(t, model.PromptRole_Sentiment, version.Role)
				require.NotEmpty(t, version.Reason)
				version.PromptVersionID = uuid.New()
				return &version, nil
			})
		recordRepository.EXPECT().
			Freeze(nil, "XLK/sentiment", int32(2)).
			Return(nil)
		recordRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, record model.PerformanceRecord) (*model.PerformanceRecord, error) {
				require.Equal(t, int32(3), record.Version)
				require.Zero(t, record.Total)
				require.False(t, record.Frozen)
				return &record, nil
			})

		newVersion, err := handler.EvolveUnit(ctx, nil, "XLK/sentiment")
		require.NoError(t, err)
		require.NotNil(t, newVersion)
		require.Equal(t, int32(3), newVersion.Version)
	})

	t.Run("performing unit is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		promptRepository := mock_repository.NewMockPromptVersionRepository(ctrl)
		recordRepository := mock_repository.NewMockPerformanceRecordRepository(ctrl)

		handler := &evolutionServiceHandler{
			PromptVersionRepository:     promptRepository,
			PerformanceRecordRepository: recordRepository,
			Settings:                    evolutionSettings(),
			inFlight:                    map[string]bool{},
		}

		promptRepository.EXPECT().
			GetActive("XLE/sentiment").
			Return(&model.PromptVersion{UnitID: "XLE/sentiment", Version: 1}, nil)
		recordRepository.EXPECT().
			Get("XLE/sentiment", int32(1)).
			Return(&model.PerformanceRecord{Correct: 7, Total: 12}, nil)

		newVersion, err := handler.EvolveUnit(ctx, nil, "XLE/sentiment")
		require.NoError(t, err)
		require.Nil(t, newVersion)
	})

	t.Run("in-flight evolution makes the duplicate a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := &evolutionServiceHandler{
			PromptVersionRepository: mock_repository.NewMockPromptVersionRepository(ctrl),
			Settings:                evolutionSettings(),
			inFlight:                map[string]bool{"XLF/sentiment": true},
		}

		newVersion, err := handler.EvolveUnit(ctx, nil, "XLF/sentiment")
		require.NoError(t, err)
		require.Nil(t, newVersion)
	})
}
