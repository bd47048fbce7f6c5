package l2_service

import (
	"context"
	"errors"
	"testing"

	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/repository"
	mock_repository "sentimentfolio/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSelectWeights(t *testing.T) {
	ctx := context.Background()
	universe := []string{"AAPL", "MSFT", "NVDA"}

	t.Run("repairs and renormalizes the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := selectionServiceHandler{GptRepository: gptRepository}

		gptRepository.EXPECT().
			SelectAssets(ctx, gomock.Any()).
			Return(&repository.AssetSelection{
				Weights: map[string]float64{
					"AAPL": 0.6,
					"MSFT": 0.6,
					"TSLA": 0.5,  // not in this sector
					"NVDA": -0.1, // negative weight is nonsense
				},
			}, nil)

		weights, err := handler.SelectWeights(ctx, SelectWeightsInput{
			SectorID: "XLK",
			Universe: universe,
		})
		require.NoError(t, err)
		require.Len(t, weights, 2)
		require.InDelta(t, 0.5, weights["AAPL"], 1e-9)
		require.InDelta(t, 0.5, weights["MSFT"], 1e-9)
	})

	t.Run("collaborator failure falls back to equal weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := selectionServiceHandler{GptRepository: gptRepository}

		gptRepository.EXPECT().
			SelectAssets(ctx, gomock.Any()).
			Return(nil, errors.New("timeout"))

		weights, err := handler.SelectWeights(ctx, SelectWeightsInput{
			SectorID: "XLK",
			Universe: universe,
		})
		require.NoError(t, err)
		require.Len(t, weights, 3)
		for _, symbol := range universe {
			require.InDelta(t, 1.0/3.0, weights[symbol], 1e-9)
		}
	})

	t.Run("unusable proposal falls back to equal weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := selectionServiceHandler{GptRepository: gptRepository}

		gptRepository.EXPECT().
			SelectAssets(ctx, gomock.Any()).
			Return(&repository.AssetSelection{
				Weights: map[string]float64{"TSLA": 1.0},
			}, nil)

		weights, err := handler.SelectWeights(ctx, SelectWeightsInput{
			SectorID: "XLK",
			Universe: universe,
		})
		require.NoError(t, err)
		require.Len(t, weights, 3)
	})

	t.Run("empty universe is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := selectionServiceHandler{GptRepository: gptRepository}

		_, err := handler.SelectWeights(ctx, SelectWeightsInput{SectorID: "XLB"})
		var emptyErr domain.SectorUniverseEmptyError
		require.True(t, errors.As(err, &emptyErr))
		require.Equal(t, "XLB", emptyErr.SectorID)
	})
}
