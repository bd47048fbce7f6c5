package integration_tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sentimentfolio/internal"
	"sentimentfolio/internal/app"
	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/db/models/postgres/public/table"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"
	l1_service "sentimentfolio/internal/service/l1"
	l2_service "sentimentfolio/internal/service/l2"
	l3_service "sentimentfolio/internal/service/l3"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testConfig() scenarioconfig.Config {
	return scenarioconfig.Config{
		Scenarios: []scenarioconfig.ScenarioConfig{
			{
				Name:         "momentum",
				Curve:        "linear",
				StartCapital: 50000,
				MinMagnitude: 0.1,
				Multiplier:   0.5,
				SectorCap:    0.20,
				MinTradeSize: 100,
			},
			{
				Name:            "spy_only",
				Curve:           "constant",
				StartCapital:    50000,
				BenchmarkSymbol: "SPY",
				MinTradeSize:    100,
			},
		},
		Sectors: []scenarioconfig.SectorConfig{
			{
				ID:   "XLK",
				Name: "Technology",
				Assets: []scenarioconfig.AssetConfig{
					{Symbol: "AAPL", Class: "equity"},
					{Symbol: "MSFT", Class: "equity"},
				},
			},
			{
				ID:   "XLF",
				Name: "Financials",
				Assets: []scenarioconfig.AssetConfig{
					{Symbol: "JPM", Class: "equity"},
					{Symbol: "GS", Class: "equity"},
				},
			},
		},
		Feedback: scenarioconfig.FeedbackConfig{
			EvaluationHorizon: 72 * time.Hour,
			StartThreshold:    0.6,
			LearningRate:      0.05,
			MinThreshold:      0.4,
			MaxThreshold:      0.9,
			LowerWinRate:      0.6,
			RaiseWinRate:      0.4,
			WindowSize:        20,
			MinEvaluations:    10,
		},
		Evolution: scenarioconfig.EvolutionConfig{
			MinPredictions:    10,
			AccuracyThreshold: 0.5,
			MaxIncorrectCited: 5,
		},
	}
}

func cleanupAll(db *sql.DB) error {
	tables := []postgres.WritableTable{
		table.Trade,
		table.Decision,
		table.ThresholdVersion,
		table.SentimentReading,
		table.PerformanceRecord,
		table.PromptVersion,
		table.ScenarioPosition,
		table.ScenarioAccount,
		table.SectorAsset,
		table.Sector,
		table.KnowledgeItem,
		table.AdjustedPrice,
	}
	for _, t := range tables {
		_, err := t.DELETE().WHERE(postgres.Bool(true)).Exec(db)
		if err != nil {
			return err
		}
	}
	return nil
}

type testHandlers struct {
	cycle      app.CycleHandler
	evaluation app.EvaluationHandler
	setup      app.SetupHandler
}

func newTestHandlers(db *sql.DB, config scenarioconfig.Config) testHandlers {
	gptRepository := NewMockGptForTests()
	quoteFeedRepository := NewMockQuoteFeedForTests()

	adjustedPriceRepository := repository.NewAdjustedPriceRepository(db)
	sectorRepository := repository.NewSectorRepository(db)
	sentimentReadingRepository := repository.NewSentimentReadingRepository(db)
	scenarioAccountRepository := repository.NewScenarioAccountRepository(db)
	scenarioPositionRepository := repository.NewScenarioPositionRepository(db)
	tradeRepository := repository.NewTradeRepository(db)
	decisionRepository := repository.NewDecisionRepository(db)
	performanceRecordRepository := repository.NewPerformanceRecordRepository(db)
	promptVersionRepository := repository.NewPromptVersionRepository(db)
	thresholdVersionRepository := repository.NewThresholdVersionRepository(db)
	knowledgeItemRepository := repository.NewKnowledgeItemRepository(db)

	priceService := l1_service.NewPriceService(adjustedPriceRepository, quoteFeedRepository)
	normalizerService := l1_service.NewNormalizerService(sectorRepository, sentimentReadingRepository)
	ledgerService := l1_service.NewLedgerService(scenarioAccountRepository, scenarioPositionRepository, tradeRepository)
	performanceService := l2_service.NewPerformanceService(decisionRepository, performanceRecordRepository, promptVersionRepository)
	selectionService := l2_service.NewSelectionService(gptRepository)
	allocationService := l3_service.NewAllocationService(selectionService)
	feedbackService := l3_service.NewFeedbackService(
		decisionRepository,
		thresholdVersionRepository,
		performanceService,
		priceService,
		config,
	)
	evolutionService := l3_service.NewEvolutionService(
		db,
		promptVersionRepository,
		performanceRecordRepository,
		decisionRepository,
		knowledgeItemRepository,
		gptRepository,
		config.Evolution,
	)

	return testHandlers{
		cycle: app.CycleHandler{
			Db:                         db,
			SectorRepository:           sectorRepository,
			SentimentReadingRepository: sentimentReadingRepository,
			PromptVersionRepository:    promptVersionRepository,
			KnowledgeItemRepository:    knowledgeItemRepository,
			GptRepository:              gptRepository,
			PriceService:               priceService,
			NormalizerService:          normalizerService,
			LedgerService:              ledgerService,
			PerformanceService:         performanceService,
			AllocationService:          allocationService,
			FeedbackService:            feedbackService,
			Config:                     config,
		},
		evaluation: app.EvaluationHandler{
			Db:               db,
			FeedbackService:  feedbackService,
			EvolutionService: evolutionService,
		},
		setup: app.SetupHandler{
			Db:                          db,
			SectorRepository:            sectorRepository,
			ScenarioAccountRepository:   scenarioAccountRepository,
			PromptVersionRepository:     promptVersionRepository,
			PerformanceRecordRepository: performanceRecordRepository,
			Config:                      config,
		},
	}
}

func Test_cycleFlow(t *testing.T) {
	db, err := internal.NewTestDb()
	if err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	require.NoError(t, cleanupAll(db))
	defer cleanupAll(db)

	config := testConfig()
	handlers := newTestHandlers(db, config)
	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

	err = handlers.setup.Seed(ctx)
	require.NoError(t, err)

	// seeding twice must not duplicate anything
	err = handlers.setup.Seed(ctx)
	require.NoError(t, err)

	result, err := handlers.cycle.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, result.ScoredSectors)
	require.Len(t, result.Rebalances, 2)

	// momentum: XLK scores 0.8, above the default 0.6 threshold, and its
	// linear weight clamps at 20%. XLF's 0.05 lands in the dead zone with
	// no holdings, so only XLK trades: 10k split 60/40 over AAPL and MSFT.
	momentum := result.Rebalances[model.ScenarioName_Momentum]
	require.NotNil(t, momentum)
	require.Equal(t, []string{"XLK"}, momentum.ActiveSectors)
	require.Equal(t, 1, momentum.Decisions)
	require.Equal(t, "", cmp.Diff(
		[]model.Trade{
			{
				Symbol:   "AAPL",
				SectorID: "XLK",
				Quantity: decimal.NewFromInt(60),
				Price:    decimal.NewFromInt(100),
				Amount:   decimal.NewFromInt(6000),
			},
			{
				Symbol:   "MSFT",
				SectorID: "XLK",
				Quantity: decimal.NewFromInt(20),
				Price:    decimal.NewFromInt(200),
				Amount:   decimal.NewFromInt(4000),
			},
		},
		momentum.Trades,
		cmpopts.IgnoreFields(model.Trade{}, "TradeID"),
		cmpopts.IgnoreFields(model.Trade{}, "Scenario"),
		cmpopts.IgnoreFields(model.Trade{}, "SentimentReadingID"),
		cmpopts.IgnoreFields(model.Trade{}, "CreatedAt"),
		cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
			return d1.Sub(d2).Abs().LessThan(decimal.NewFromFloat(0.00001))
		}),
		cmpopts.SortSlices(func(i, j model.Trade) bool {
			return i.Symbol < j.Symbol
		}),
	))

	// spy_only ignores sentiment and puts everything in SPY
	spyOnly := result.Rebalances[model.ScenarioName_SpyOnly]
	require.NotNil(t, spyOnly)
	require.Empty(t, spyOnly.ActiveSectors)
	require.Equal(t, 0, spyOnly.Decisions)
	require.Len(t, spyOnly.Trades, 1)
	require.True(t, spyOnly.Trades[0].Quantity.Equal(decimal.NewFromInt(100)), "SPY quantity %s", spyOnly.Trades[0].Quantity)

	// cash moved with the trades
	accounts := repository.NewScenarioAccountRepository(db)
	momentumAccount, err := accounts.Get(model.ScenarioName_Momentum)
	require.NoError(t, err)
	require.True(t, momentumAccount.Cash.Equal(decimal.NewFromInt(40000)), "momentum cash %s", momentumAccount.Cash)

	spyAccount, err := accounts.Get(model.ScenarioName_SpyOnly)
	require.NoError(t, err)
	require.True(t, spyAccount.Cash.Equal(decimal.NewFromInt(0)), "spy_only cash %s", spyAccount.Cash)

	// the decision is pending until its horizon elapses, so an immediate
	// evaluation pass touches nothing
	evalResult, err := handlers.evaluation.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, evalResult.Pass.Evaluated)
	require.Empty(t, evalResult.Evolved)

	decisions := repository.NewDecisionRepository(db)
	due, err := decisions.ListDue(time.Now().UTC().Add(96 * time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, "XLK/sentiment", due[0].UnitID)
	require.Equal(t, model.Direction_Up, due[0].Predicted)

	// a second cycle with unchanged scores is a no-op: targets match
	// holdings within the minimum trade size
	second, err := handlers.cycle.Run(ctx)
	require.NoError(t, err)
	require.Empty(t, second.Rebalances[model.ScenarioName_Momentum].Trades)
	require.Empty(t, second.Rebalances[model.ScenarioName_SpyOnly].Trades)
}
