package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"sentimentfolio/api"
	"sentimentfolio/internal"
	"sentimentfolio/internal/app"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"
	l1_service "sentimentfolio/internal/service/l1"
	l2_service "sentimentfolio/internal/service/l2"
	l3_service "sentimentfolio/internal/service/l3"

	_ "github.com/lib/pq"
)

// Dependencies is the fully wired object graph behind every command. One
// db handle is shared; handlers own their transactions.
type Dependencies struct {
	Db     *sql.DB
	Config scenarioconfig.Config

	CycleHandler      app.CycleHandler
	EvaluationHandler app.EvaluationHandler
	HarvestHandler    app.HarvestHandler
	SetupHandler      app.SetupHandler
	ReportHandler     app.ReportHandler

	ApiHandler api.ApiHandler
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	config, err := scenarioconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	adjustedPriceRepository := repository.NewAdjustedPriceRepository(dbConn)
	quoteFeedRepository := repository.NewQuoteFeedRepository()
	sectorRepository := repository.NewSectorRepository(dbConn)
	sentimentReadingRepository := repository.NewSentimentReadingRepository(dbConn)
	scenarioAccountRepository := repository.NewScenarioAccountRepository(dbConn)
	scenarioPositionRepository := repository.NewScenarioPositionRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)
	decisionRepository := repository.NewDecisionRepository(dbConn)
	performanceRecordRepository := repository.NewPerformanceRecordRepository(dbConn)
	promptVersionRepository := repository.NewPromptVersionRepository(dbConn)
	thresholdVersionRepository := repository.NewThresholdVersionRepository(dbConn)
	knowledgeItemRepository := repository.NewKnowledgeItemRepository(dbConn)

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
		dbConn,
		promptVersionRepository,
		performanceRecordRepository,
		decisionRepository,
		knowledgeItemRepository,
		gptRepository,
		config.Evolution,
	)

	cycleHandler := app.CycleHandler{
		Db:                         dbConn,
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
	}
	evaluationHandler := app.EvaluationHandler{
		Db:               dbConn,
		FeedbackService:  feedbackService,
		EvolutionService: evolutionService,
	}
	harvestHandler := app.HarvestHandler{
		Db:                      dbConn,
		KnowledgeItemRepository: knowledgeItemRepository,
	}
	setupHandler := app.SetupHandler{
		Db:                          dbConn,
		SectorRepository:            sectorRepository,
		ScenarioAccountRepository:   scenarioAccountRepository,
		PromptVersionRepository:     promptVersionRepository,
		PerformanceRecordRepository: performanceRecordRepository,
		Config:                      config,
	}
	reportHandler := app.ReportHandler{
		ScenarioAccountRepository:   scenarioAccountRepository,
		AdjustedPriceRepository:     adjustedPriceRepository,
		PerformanceRecordRepository: performanceRecordRepository,
		LedgerService:               ledgerService,
		PriceService:                priceService,
		FeedbackService:             feedbackService,
	}

	return &Dependencies{
		Db:                dbConn,
		Config:            config,
		CycleHandler:      cycleHandler,
		EvaluationHandler: evaluationHandler,
		HarvestHandler:    harvestHandler,
		SetupHandler:      setupHandler,
		ReportHandler:     reportHandler,
		ApiHandler: api.ApiHandler{
			Db:                dbConn,
			CycleHandler:      cycleHandler,
			EvaluationHandler: evaluationHandler,
			HarvestHandler:    harvestHandler,
			ReportHandler:     reportHandler,
		},
	}, nil
}
