package l1_service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	mock_repository "sentimentfolio/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApplyTrades(t *testing.T) {
	t.Run("sells add cash and remove emptied positions", func(t *testing.T) {
		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.Zero)
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:    "AAPL",
			SectorID:  "XLK",
			Quantity:  decimal.NewFromInt(10),
			CostBasis: decimal.NewFromInt(90),
		}

		next, err := applyTrades(portfolio, []domain.ProposedTrade{
			{
				Symbol:        "AAPL",
				SectorID:      "XLK",
				Quantity:      decimal.NewFromInt(-10),
				ExpectedPrice: decimal.NewFromInt(100),
			},
		})
		require.NoError(t, err)
		require.True(t, next.Cash.Equal(decimal.NewFromInt(1000)), "cash was %s", next.Cash)
		require.NotContains(t, next.Positions, "AAPL")
	})

	t.Run("buys average the cost basis", func(t *testing.T) {
		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.NewFromInt(2000))
		portfolio.Positions["XOM"] = &domain.Position{
			Symbol:    "XOM",
			SectorID:  "XLE",
			Quantity:  decimal.NewFromInt(10),
			CostBasis: decimal.NewFromInt(100),
		}

		next, err := applyTrades(portfolio, []domain.ProposedTrade{
			{
				Symbol:        "XOM",
				SectorID:      "XLE",
				Quantity:      decimal.NewFromInt(10),
				ExpectedPrice: decimal.NewFromInt(200),
			},
		})
		require.NoError(t, err)
		position := next.Positions["XOM"]
		require.True(t, position.Quantity.Equal(decimal.NewFromInt(20)))
		require.True(t, position.CostBasis.Equal(decimal.NewFromInt(150)), "cost basis was %s", position.CostBasis)
		require.True(t, next.Cash.Equal(decimal.Zero))
	})

	t.Run("overselling fails", func(t *testing.T) {
		portfolio := domain.NewPortfolio(domain.ScenarioAggressive, decimal.NewFromInt(1000))
		portfolio.Positions["NVDA"] = &domain.Position{
			Symbol:   "NVDA",
			SectorID: "XLK",
			Quantity: decimal.NewFromInt(5),
		}

		_, err := applyTrades(portfolio, []domain.ProposedTrade{
			{
				Symbol:        "NVDA",
				SectorID:      "XLK",
				Quantity:      decimal.NewFromInt(-6),
				ExpectedPrice: decimal.NewFromInt(100),
			},
		})
		require.ErrorContains(t, err, "oversells NVDA")
	})

	t.Run("insufficient capital fails and leaves the input untouched", func(t *testing.T) {
		portfolio := domain.NewPortfolio(domain.ScenarioDefensive, decimal.NewFromInt(500))

		_, err := applyTrades(portfolio, []domain.ProposedTrade{
			{
				Symbol:        "PG",
				SectorID:      "XLP",
				Quantity:      decimal.NewFromInt(10),
				ExpectedPrice: decimal.NewFromInt(100),
			},
		})
		var capErr domain.InsufficientCapitalError
		require.True(t, errors.As(err, &capErr))
		require.Equal(t, "defensive", capErr.Scenario)
		require.Equal(t, 1, capErr.NumTrades)

		// failed batch must not leak partial state into the input
		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(500)))
		require.Empty(t, portfolio.Positions)
	})

	t.Run("sells fund buys within the same batch", func(t *testing.T) {
		portfolio := domain.NewPortfolio(domain.ScenarioContrarian, decimal.Zero)
		portfolio.Positions["META"] = &domain.Position{
			Symbol:    "META",
			SectorID:  "XLC",
			Quantity:  decimal.NewFromInt(10),
			CostBasis: decimal.NewFromInt(400),
		}

		next, err := applyTrades(portfolio, []domain.ProposedTrade{
			{
				Symbol:        "META",
				SectorID:      "XLC",
				Quantity:      decimal.NewFromInt(-10),
				ExpectedPrice: decimal.NewFromInt(500),
			},
			{
				Symbol:        "GOOGL",
				SectorID:      "XLC",
				Quantity:      decimal.NewFromInt(20),
				ExpectedPrice: decimal.NewFromInt(250),
			},
		})
		require.NoError(t, err)
		require.True(t, next.Cash.Equal(decimal.Zero), "cash was %s", next.Cash)
		require.NotContains(t, next.Positions, "META")
		require.True(t, next.Positions["GOOGL"].Quantity.Equal(decimal.NewFromInt(20)))
	})
}

func TestLedgerApply(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path persists positions, cash, and trades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accountRepository := mock_repository.NewMockScenarioAccountRepository(ctrl)
		positionRepository := mock_repository.NewMockScenarioPositionRepository(ctrl)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)

		handler := &ledgerServiceHandler{
			AccountRepository:  accountRepository,
			PositionRepository: positionRepository,
			TradeRepository:    tradeRepository,
			locks:              map[model.ScenarioName]*sync.Mutex{},
		}

		accountRepository.EXPECT().
			Get(model.ScenarioName_Momentum).
			Return(&model.ScenarioAccount{
				Scenario: model.ScenarioName_Momentum,
				Cash:     decimal.NewFromInt(50000),
			}, nil)
		positionRepository.EXPECT().
			List(model.ScenarioName_Momentum).
			Return([]model.ScenarioPosition{}, nil)

		positionRepository.EXPECT().
			Upsert(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, position model.ScenarioPosition) error {
				require.Equal(t, "AAPL", position.Symbol)
				require.True(t, position.Quantity.Equal(decimal.NewFromInt(100)))
				require.True(t, position.CostBasis.Equal(decimal.NewFromInt(200)))
				return nil
			})
		accountRepository.EXPECT().
			UpdateCash(nil, model.ScenarioName_Momentum, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ model.ScenarioName, cash decimal.Decimal) error {
				require.True(t, cash.Equal(decimal.NewFromInt(30000)), "cash was %s", cash)
				return nil
			})
		tradeRepository.EXPECT().
			AddMany(nil, gomock.Any()).
			DoAndReturn(func(_ interface{}, rows []*model.Trade) ([]model.Trade, error) {
				require.Len(t, rows, 1)
				require.True(t, rows[0].Amount.Equal(decimal.NewFromInt(20000)))
				out := make([]model.Trade, 0, len(rows))
				for _, row := range rows {
					out = append(out, *row)
				}
				return out, nil
			})

		inserted, err := handler.Apply(ctx, nil, model.ScenarioName_Momentum, []domain.ProposedTrade{
			{
				Symbol:        "AAPL",
				SectorID:      "XLK",
				Quantity:      decimal.NewFromInt(100),
				ExpectedPrice: decimal.NewFromInt(200),
			},
		})
		require.NoError(t, err)
		require.Len(t, inserted, 1)
	})

	t.Run("failing batch writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accountRepository := mock_repository.NewMockScenarioAccountRepository(ctrl)
		positionRepository := mock_repository.NewMockScenarioPositionRepository(ctrl)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)

		handler := &ledgerServiceHandler{
			AccountRepository:  accountRepository,
			PositionRepository: positionRepository,
			TradeRepository:    tradeRepository,
			locks:              map[model.ScenarioName]*sync.Mutex{},
		}

		accountRepository.EXPECT().
			Get(model.ScenarioName_SpyOnly).
			Return(&model.ScenarioAccount{
				Scenario: model.ScenarioName_SpyOnly,
				Cash:     decimal.NewFromInt(100),
			}, nil)
		positionRepository.EXPECT().
			List(model.ScenarioName_SpyOnly).
			Return([]model.ScenarioPosition{}, nil)

		_, err := handler.Apply(ctx, nil, model.ScenarioName_SpyOnly, []domain.ProposedTrade{
			{
				Symbol:        "SPY",
				Quantity:      decimal.NewFromInt(10),
				ExpectedPrice: decimal.NewFromInt(500),
			},
		})
		var capErr domain.InsufficientCapitalError
		require.True(t, errors.As(err, &capErr))
	})
}
