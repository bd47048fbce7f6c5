package l3_service

import (
	"context"
	"errors"
	"testing"

	"sentimentfolio/internal/domain"
	l2_service "sentimentfolio/internal/service/l2"
	mock_l2_service "sentimentfolio/internal/service/l2/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestComputeSectorTargets(t *testing.T) {
	t.Run("linear tilt with clamps", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:         domain.ScenarioMomentum,
			Curve:        domain.CurveLinear,
			MinMagnitude: 0.1,
			Multiplier:   0.5,
			SectorCap:    0.20,
		}
		signals := []SectorSignal{
			{SectorID: "XLK", Score: 0.8, Threshold: 0.1, Universe: []string{"AAPL"}},
			{SectorID: "XLF", Score: -0.8, Threshold: 0.1, Universe: []string{"JPM"}},
			{SectorID: "XLE", Score: -0.3, Threshold: 0.1, Universe: []string{"XOM"}},
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		// 1/3 + 0.8*0.5 clamps at the ceiling
		require.InDelta(t, 0.20, targets.weights["XLK"], 1e-9)
		// 1/3 - 0.8*0.5 clamps at the floor
		require.InDelta(t, 0.02, targets.weights["XLF"], 1e-9)
		// 1/3 - 0.3*0.5 sits inside the band untouched
		require.InDelta(t, 1.0/3.0-0.15, targets.weights["XLE"], 1e-9)
		require.True(t, targets.active["XLK"])
		require.True(t, targets.active["XLF"])
	})

	t.Run("contrarian inverts the sign", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:         domain.ScenarioContrarian,
			Curve:        domain.CurveInverted,
			MinMagnitude: 0.1,
			Multiplier:   0.5,
			SectorCap:    0.20,
		}
		signals := []SectorSignal{
			{SectorID: "XLK", Score: -0.6, Threshold: 0.1, Universe: []string{"NVDA"}},
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		// strongly negative sentiment becomes a strong positive tilt
		require.InDelta(t, 0.20, targets.weights["XLK"], 1e-9)
		require.True(t, targets.active["XLK"])
	})

	t.Run("learned threshold widens the dead zone", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:         domain.ScenarioMomentum,
			Curve:        domain.CurveLinear,
			MinMagnitude: 0.1,
			Multiplier:   0.5,
		}
		signals := []SectorSignal{
			{SectorID: "XLK", Score: 0.5, Threshold: 0.7, Universe: []string{"AAPL"}},
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{"XLK": 0.4})
		require.NoError(t, err)
		require.False(t, targets.active["XLK"])
		// held sectors keep their current weight untouched
		require.InDelta(t, 0.4, targets.weights["XLK"], 1e-9)
	})

	t.Run("step curve concentrates above the threshold", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:          domain.ScenarioAggressive,
			Curve:         domain.CurveStep,
			MinMagnitude:  0.1,
			Multiplier:    0.30,
			StepThreshold: 0.5,
		}
		signals := []SectorSignal{
			{SectorID: "XLK", Score: 0.6, Threshold: 0.1, Universe: []string{"AAPL"}},
			{SectorID: "XLE", Score: 0.4, Threshold: 0.1, Universe: []string{"XOM"}},
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		require.InDelta(t, 0.30, targets.weights["XLK"], 1e-9)
		require.InDelta(t, stepIdleWeight, targets.weights["XLE"], 1e-9)
	})

	t.Run("base sectors anchor the defensive curve", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:         domain.ScenarioDefensive,
			Curve:        domain.CurveCappedLinear,
			MinMagnitude: 0.2,
			Multiplier:   0.25,
			SectorCap:    0.15,
			BaseSectors:  []string{"XLU"},
			BaseWeight:   0.15,
		}
		signals := []SectorSignal{
			{SectorID: "XLU", Score: -0.3, Threshold: 0.1, Universe: []string{"NEE"}},
			{SectorID: "XLK", Score: -0.3, Threshold: 0.1, Universe: []string{"AAPL"}},
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		// XLU tilts down from its anchored 0.15 base, not the uniform 0.5
		require.InDelta(t, 0.15-0.3*0.25, targets.weights["XLU"], 1e-9)
		require.InDelta(t, 0.15, targets.weights["XLK"], 1e-9)
	})

	t.Run("step curve parks bearish sectors at the idle weight", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:          domain.ScenarioAggressive,
			Curve:         domain.CurveStep,
			MinMagnitude:  0.1,
			Multiplier:    0.30,
			StepThreshold: 0.5,
		}
		signals := []SectorSignal{
			{SectorID: "XLK", Score: -0.6, Threshold: 0.1, Universe: []string{"AAPL"}},
		}

		// the step keys on the signed score: a strongly bearish sector
		// clears the dead zone but still gets the idle weight
		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		require.True(t, targets.active["XLK"])
		require.InDelta(t, stepIdleWeight, targets.weights["XLK"], 1e-9)
	})

	t.Run("aggregate above one scales active sectors down", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:          domain.ScenarioAggressive,
			Curve:         domain.CurveStep,
			MinMagnitude:  0.1,
			Multiplier:    0.30,
			StepThreshold: 0.5,
		}
		signals := []SectorSignal{}
		for _, sectorID := range []string{"XLK", "XLE", "XLF", "XLV", "XLI"} {
			signals = append(signals, SectorSignal{
				SectorID: sectorID, Score: 0.9, Threshold: 0.1, Universe: []string{sectorID + "1"},
			})
		}

		targets, err := computeSectorTargets(def, signals, map[string]float64{})
		require.NoError(t, err)
		total := 0.0
		for _, weight := range targets.weights {
			require.InDelta(t, 0.20, weight, 1e-9)
			total += weight
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("empty universe is fatal", func(t *testing.T) {
		def := domain.ScenarioDefinition{
			Name:         domain.ScenarioMomentum,
			Curve:        domain.CurveLinear,
			MinMagnitude: 0.1,
		}
		signals := []SectorSignal{{SectorID: "XLB", Score: 0.5, Threshold: 0.1}}

		_, err := computeSectorTargets(def, signals, map[string]float64{})
		var emptyErr domain.SectorUniverseEmptyError
		require.True(t, errors.As(err, &emptyErr))
	})
}

func TestGenerateTrades(t *testing.T) {
	ctx := context.Background()

	t.Run("momentum cycle produces sized buys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		selectionService.EXPECT().
			SelectWeights(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in l2_service.SelectWeightsInput) (map[string]float64, error) {
				switch in.SectorID {
				case "XLK":
					return map[string]float64{"AAPL": 0.5, "MSFT": 0.5}, nil
				case "XLF":
					return map[string]float64{"JPM": 1.0}, nil
				}
				return nil, errors.New("unexpected sector")
			}).
			Times(2)

		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.NewFromInt(50000))
		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:         domain.ScenarioMomentum,
				Curve:        domain.CurveLinear,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
			},
			Signals: []SectorSignal{
				{SectorID: "XLK", Score: 0.8, Threshold: 0.6, Universe: []string{"AAPL", "MSFT"}},
				{SectorID: "XLF", Score: -0.8, Threshold: 0.6, Universe: []string{"JPM", "GS"}},
				{SectorID: "XLE", Score: 0.2, Threshold: 0.6, Universe: []string{"XOM"}},
			},
			Portfolio: portfolio,
			PriceMap: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(100),
				"MSFT": decimal.NewFromInt(200),
				"JPM":  decimal.NewFromInt(100),
				"GS":   decimal.NewFromInt(200),
				"XOM":  decimal.NewFromInt(50),
			},
		})
		require.NoError(t, err)

		// XLE sat inside the dead zone: no trade, no decision
		require.Equal(t, []string{"XLF", "XLK"}, response.ActiveSectors)

		bySymbol := map[string]domain.ProposedTrade{}
		for _, trade := range response.Trades {
			bySymbol[trade.Symbol] = trade
		}
		require.Len(t, bySymbol, 3)
		require.True(t, bySymbol["AAPL"].Quantity.Equal(decimal.NewFromInt(50)), "AAPL qty %s", bySymbol["AAPL"].Quantity)
		require.True(t, bySymbol["MSFT"].Quantity.Equal(decimal.NewFromInt(25)))
		require.True(t, bySymbol["JPM"].Quantity.Equal(decimal.NewFromInt(10)))

		// total spend stays within capital
		spend := decimal.Zero
		for _, trade := range response.Trades {
			spend = spend.Add(trade.ExpectedAmount())
		}
		require.True(t, spend.LessThanOrEqual(portfolio.Cash))
	})

	t.Run("dead zone sector keeps its holdings untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.Zero)
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:   "AAPL",
			SectorID: "XLK",
			Quantity: decimal.NewFromInt(10),
		}

		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:         domain.ScenarioMomentum,
				Curve:        domain.CurveLinear,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				MinTradeSize: 100,
			},
			Signals: []SectorSignal{
				{SectorID: "XLK", Score: 0.05, Threshold: 0.1, Universe: []string{"AAPL"}},
			},
			Portfolio: portfolio,
			PriceMap:  map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(100)},
		})
		require.NoError(t, err)
		require.Empty(t, response.Trades)
		require.Empty(t, response.ActiveSectors)
		require.InDelta(t, 1.0, response.SectorWeights["XLK"], 1e-9)
	})

	t.Run("spy_only ignores sentiment and holds the benchmark", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		portfolio := domain.NewPortfolio(domain.ScenarioSpyOnly, decimal.NewFromInt(10000))
		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:            domain.ScenarioSpyOnly,
				Curve:           domain.CurveConstant,
				BenchmarkSymbol: "SPY",
				MinTradeSize:    100,
			},
			Signals: []SectorSignal{
				{SectorID: "XLK", Score: -0.9, Threshold: 0.1, Universe: []string{"AAPL"}},
			},
			Portfolio: portfolio,
			PriceMap:  map[string]decimal.Decimal{"SPY": decimal.NewFromInt(500)},
		})
		require.NoError(t, err)
		require.Len(t, response.Trades, 1)
		require.Equal(t, "SPY", response.Trades[0].Symbol)
		require.True(t, response.Trades[0].Quantity.Equal(decimal.NewFromInt(20)))
		require.Empty(t, response.ActiveSectors)
	})

	t.Run("stop loss liquidates an underwater position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		selectionService.EXPECT().
			SelectWeights(ctx, gomock.Any()).
			Return(map[string]float64{"ENPH": 1.0}, nil)

		portfolio := domain.NewPortfolio(domain.ScenarioAggressive, decimal.NewFromInt(100))
		portfolio.Positions["ENPH"] = &domain.Position{
			Symbol:    "ENPH",
			SectorID:  "ICLN",
			Quantity:  decimal.NewFromInt(10),
			CostBasis: decimal.NewFromInt(100),
		}

		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:          domain.ScenarioAggressive,
				Curve:         domain.CurveStep,
				MinMagnitude:  0.1,
				Multiplier:    0.30,
				StepThreshold: 0.5,
				MinTradeSize:  100,
				StopLossPct:   0.08,
			},
			Signals: []SectorSignal{
				{SectorID: "ICLN", Score: 0.9, Threshold: 0.1, Universe: []string{"ENPH"}},
			},
			Portfolio: portfolio,
			PriceMap:  map[string]decimal.Decimal{"ENPH": decimal.NewFromInt(90)},
		})
		require.NoError(t, err)
		require.Len(t, response.Trades, 1)
		require.True(t, response.Trades[0].Quantity.Equal(decimal.NewFromInt(-10)),
			"expected full liquidation, got %s", response.Trades[0].Quantity)
	})

	t.Run("sells dropped by the minimum never fund oversized buys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		selectionService.EXPECT().
			SelectWeights(ctx, gomock.Any()).
			Return(map[string]float64{"NVDA": 1.0}, nil)

		// ten positions each just under the minimum trade size, almost no
		// cash: every sell falls below the minimum, so the rotation into
		// NVDA has nothing to spend
		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.NewFromInt(50))
		universe := []string{"NVDA"}
		for _, symbol := range []string{"T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9"} {
			universe = append(universe, symbol)
			portfolio.Positions[symbol] = &domain.Position{
				Symbol:   symbol,
				SectorID: "XLK",
				Quantity: decimal.NewFromInt(1),
			}
		}
		priceMap := map[string]decimal.Decimal{"NVDA": decimal.NewFromInt(100)}
		for symbol := range portfolio.Positions {
			priceMap[symbol] = decimal.NewFromInt(95)
		}

		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:         domain.ScenarioMomentum,
				Curve:        domain.CurveLinear,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
			},
			Signals: []SectorSignal{
				{SectorID: "XLK", Score: 0.8, Threshold: 0.1, Universe: universe},
			},
			Portfolio: portfolio,
			PriceMap:  priceMap,
		})
		require.NoError(t, err)

		// the unscaled NVDA buy would be 200 against 50 of cash; capped to
		// cash it falls below the minimum trade size and is dropped
		require.Empty(t, response.Trades)
	})

	t.Run("sells are ordered before buys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		selectionService := mock_l2_service.NewMockSelectionService(ctrl)
		handler := allocationServiceHandler{SelectionService: selectionService}

		selectionService.EXPECT().
			SelectWeights(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in l2_service.SelectWeightsInput) (map[string]float64, error) {
				if in.SectorID == "XLK" {
					return map[string]float64{"MSFT": 1.0}, nil
				}
				return map[string]float64{"XOM": 1.0}, nil
			}).
			Times(2)

		portfolio := domain.NewPortfolio(domain.ScenarioMomentum, decimal.Zero)
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:   "AAPL",
			SectorID: "XLK",
			Quantity: decimal.NewFromInt(100),
		}

		response, err := handler.GenerateTrades(ctx, GenerateTradesInput{
			Definition: domain.ScenarioDefinition{
				Name:         domain.ScenarioMomentum,
				Curve:        domain.CurveLinear,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
			},
			Signals: []SectorSignal{
				{SectorID: "XLK", Score: 0.8, Threshold: 0.1, Universe: []string{"AAPL", "MSFT"}},
				{SectorID: "XLE", Score: 0.8, Threshold: 0.1, Universe: []string{"XOM"}},
			},
			Portfolio: portfolio,
			PriceMap: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(100),
				"MSFT": decimal.NewFromInt(100),
				"XOM":  decimal.NewFromInt(100),
			},
		})
		require.NoError(t, err)
		require.NotEmpty(t, response.Trades)
		require.True(t, response.Trades[0].Quantity.IsNegative(), "first trade should be the AAPL sell")
		for _, trade := range response.Trades[1:] {
			require.True(t, trade.Quantity.IsPositive())
		}
	})
}
