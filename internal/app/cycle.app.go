package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"
	l1_service "sentimentfolio/internal/service/l1"
	l2_service "sentimentfolio/internal/service/l2"
	l3_service "sentimentfolio/internal/service/l3"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleHandler runs one full decision cycle: refresh prices, score every
// sector's sentiment, then rebalance each scenario against the fresh score
// heads. Scenarios rebalance independently, so one scenario failing does
// not roll back the others.
type CycleHandler struct {
	Db *sql.DB

	SectorRepository           repository.SectorRepository
	SentimentReadingRepository repository.SentimentReadingRepository
	PromptVersionRepository    repository.PromptVersionRepository
	KnowledgeItemRepository    repository.KnowledgeItemRepository
	GptRepository              repository.GptRepository

	PriceService       l1_service.PriceService
	NormalizerService  l1_service.NormalizerService
	LedgerService      l1_service.LedgerService
	PerformanceService l2_service.PerformanceService
	AllocationService  l3_service.AllocationService
	FeedbackService    l3_service.FeedbackService

	Config scenarioconfig.Config
}

type CycleResult struct {
	ScoredSectors int
	Rebalances    map[model.ScenarioName]*RebalanceResult
}

type RebalanceResult struct {
	Trades        []model.Trade
	ActiveSectors []string
	Decisions     int
}

// headlineLimit bounds how much harvested context goes into one scoring
// prompt.
const headlineLimit = 25

func (h CycleHandler) Run(ctx context.Context) (*CycleResult, error) {
	log := logger.FromContext(ctx)

	if err := h.SyncPrices(ctx); err != nil {
		return nil, err
	}

	scored, err := h.ScoreSectors(ctx)
	if err != nil {
		return nil, err
	}
	log.Infof("scored %d sectors", scored)

	rebalances, err := h.RebalanceScenarios(ctx)
	if err != nil {
		return nil, err
	}

	return &CycleResult{
		ScoredSectors: scored,
		Rebalances:    rebalances,
	}, nil
}

// SyncPrices pulls recent daily closes for every symbol the cycle could
// touch: sector universes, benchmark holdings, and the tickers used to
// score predictions.
func (h CycleHandler) SyncPrices(ctx context.Context) error {
	log := logger.FromContext(ctx)

	symbols, err := h.allSymbols()
	if err != nil {
		return err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7)

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price sync tx: %w", err)
	}
	defer tx.Rollback()

	added, err := h.PriceService.Sync(ctx, tx, symbols, start, end)
	if err != nil {
		return fmt.Errorf("failed to sync prices: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price sync: %w", err)
	}
	log.Infof("synced %d prices across %d symbols", added, len(symbols))

	return nil
}

// ScoreSectors asks the model for a fresh sentiment reading per sector and
// normalizes it onto the score head. A failure on one sector skips that
// sector rather than aborting the pass.
func (h CycleHandler) ScoreSectors(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	sectors, err := h.SectorRepository.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list sectors: %w", err)
	}

	headlines, err := h.recentHeadlines()
	if err != nil {
		return 0, err
	}

	scored := 0
	for _, sector := range sectors {
		unitID := domain.UnitID(sector.SectorID, domain.RoleSentiment)
		version, err := h.PromptVersionRepository.GetActive(unitID)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				log.Warnf("sector %s has no sentiment prompt, skipping", sector.SectorID)
				continue
			}
			return scored, err
		}

		raw, err := h.GptRepository.ScoreSentiment(ctx, repository.ScoreSentimentInput{
			SectorID:  sector.SectorID,
			Payload:   version.Payload,
			Headlines: headlines,
		})
		if err != nil {
			log.Warnf("failed to score sector %s: %v", sector.SectorID, err)
			continue
		}

		if err := h.storeReading(ctx, sector.SectorID, raw, version.PromptVersionID); err != nil {
			var oob domain.OutOfRangeInputError
			if errors.As(err, &oob) {
				log.Warnf("rejected sentiment reading for %s: %v", sector.SectorID, err)
				continue
			}
			return scored, err
		}
		scored++
	}

	return scored, nil
}

func (h CycleHandler) storeReading(ctx context.Context, sectorID string, raw float64, promptVersionID uuid.UUID) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reading tx: %w", err)
	}
	defer tx.Rollback()

	_, err = h.NormalizerService.Normalize(ctx, tx, l1_service.NormalizeInput{
		SectorID:        sectorID,
		Raw:             raw,
		PromptVersionID: promptVersionID,
		ObservedAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RebalanceScenarios regenerates targets and applies trades for every
// configured scenario, fanning out one goroutine per scenario. Signals and
// the price map are shared across scenarios; each scenario gets its own
// transaction.
func (h CycleHandler) RebalanceScenarios(ctx context.Context) (map[model.ScenarioName]*RebalanceResult, error) {
	log := logger.FromContext(ctx)

	defs, err := h.Config.Definitions()
	if err != nil {
		return nil, err
	}

	signals, readings, err := h.collectSignals(ctx)
	if err != nil {
		return nil, err
	}

	portfolios := map[model.ScenarioName]*domain.Portfolio{}
	for name := range defs {
		scenario := model.ScenarioName(name)
		portfolio, err := h.LedgerService.GetPortfolio(scenario)
		if err != nil {
			return nil, err
		}
		portfolios[scenario] = portfolio
	}

	priceMap, err := h.cyclePrices(defs, portfolios, signals)
	if err != nil {
		return nil, err
	}

	results := map[model.ScenarioName]*RebalanceResult{}
	errs := []error{}
	mu := sync.Mutex{}
	wg := sync.WaitGroup{}
	for name, def := range defs {
		scenario := model.ScenarioName(name)
		wg.Add(1)
		go func(scenario model.ScenarioName, def domain.ScenarioDefinition) {
			defer wg.Done()
			result, err := h.rebalanceScenario(ctx, def, portfolios[scenario], signals, readings, priceMap)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Errorf("failed to rebalance %s: %v", scenario, err)
				errs = append(errs, err)
				return
			}
			results[scenario] = result
		}(scenario, def)
	}
	wg.Wait()

	if len(errs) > 0 {
		return results, fmt.Errorf("%d of %d scenarios failed to rebalance: %w", len(errs), len(defs), errs[0])
	}

	return results, nil
}

func (h CycleHandler) rebalanceScenario(
	ctx context.Context,
	def domain.ScenarioDefinition,
	portfolio *domain.Portfolio,
	signals []l3_service.SectorSignal,
	readings map[string]model.SentimentReading,
	priceMap map[string]decimal.Decimal,
) (*RebalanceResult, error) {
	log := logger.FromContext(ctx)
	scenario := model.ScenarioName(def.Name)

	resp, err := h.AllocationService.GenerateTrades(ctx, l3_service.GenerateTradesInput{
		Definition: def,
		Signals:    signals,
		Portfolio:  portfolio,
		PriceMap:   priceMap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate trades for %s: %w", def.Name, err)
	}

	now := time.Now().UTC()

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin rebalance tx for %s: %w", def.Name, err)
	}
	defer tx.Rollback()

	trades, err := h.LedgerService.Apply(ctx, tx, scenario, resp.Trades)
	if err != nil {
		return nil, fmt.Errorf("failed to apply trades for %s: %w", def.Name, err)
	}

	decisions := 0
	for _, sectorID := range resp.ActiveSectors {
		reading, ok := readings[sectorID]
		if !ok {
			log.Warnf("active sector %s has no sentiment reading, no decision recorded", sectorID)
			continue
		}
		version, err := h.PromptVersionRepository.GetActive(domain.UnitID(sectorID, domain.RoleSentiment))
		if err != nil {
			return nil, err
		}
		_, err = h.PerformanceService.RecordPrediction(ctx, tx, l2_service.RecordPredictionInput{
			Scenario:      scenario,
			SectorID:      sectorID,
			Reading:       reading,
			PromptVersion: *version,
			DecidedAt:     now,
			Horizon:       h.Config.Feedback.EvaluationHorizon,
		})
		if err != nil {
			return nil, err
		}
		decisions++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rebalance for %s: %w", def.Name, err)
	}

	log.Infof("rebalanced %s: %d trades, %d active sectors, %d decisions", def.Name, len(trades), len(resp.ActiveSectors), decisions)

	return &RebalanceResult{
		Trades:        trades,
		ActiveSectors: resp.ActiveSectors,
		Decisions:     decisions,
	}, nil
}

// collectSignals builds the shared per-sector inputs for a rebalance: the
// current score head, the sentiment unit's learned threshold, the tradable
// universe, and the selection unit's active payload.
func (h CycleHandler) collectSignals(ctx context.Context) ([]l3_service.SectorSignal, map[string]model.SentimentReading, error) {
	sectors, err := h.SectorRepository.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	signals := make([]l3_service.SectorSignal, 0, len(sectors))
	readings := map[string]model.SentimentReading{}
	for _, sector := range sectors {
		universe, err := h.SectorRepository.GetUniverse(sector.SectorID)
		if err != nil {
			return nil, nil, err
		}
		symbols := make([]string, 0, len(universe))
		for _, asset := range universe {
			symbols = append(symbols, asset.Symbol)
		}

		threshold, err := h.FeedbackService.CurrentThreshold(domain.UnitID(sector.SectorID, domain.RoleSentiment))
		if err != nil {
			return nil, nil, err
		}

		payload := ""
		selectionVersion, err := h.PromptVersionRepository.GetActive(domain.UnitID(sector.SectorID, domain.RoleSelection))
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return nil, nil, err
		}
		if selectionVersion != nil {
			payload = selectionVersion.Payload
		}

		signals = append(signals, l3_service.SectorSignal{
			SectorID:         sector.SectorID,
			Score:            sector.CurrentScore,
			Threshold:        threshold,
			Universe:         symbols,
			SelectionPayload: payload,
		})

		reading, err := h.SentimentReadingRepository.Latest(sector.SectorID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return nil, nil, err
		}
		if reading != nil {
			readings[sector.SectorID] = *reading
		}
	}

	return signals, readings, nil
}

// cyclePrices marks every symbol a rebalance could touch: universes,
// constant-curve benchmarks, and anything currently held.
func (h CycleHandler) cyclePrices(
	defs map[domain.ScenarioName]domain.ScenarioDefinition,
	portfolios map[model.ScenarioName]*domain.Portfolio,
	signals []l3_service.SectorSignal,
) (map[string]decimal.Decimal, error) {
	seen := map[string]bool{}
	symbols := []string{}
	add := func(symbol string) {
		if symbol != "" && !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}

	for _, signal := range signals {
		for _, symbol := range signal.Universe {
			add(symbol)
		}
	}
	for _, def := range defs {
		add(def.BenchmarkSymbol)
	}
	for _, portfolio := range portfolios {
		for _, symbol := range portfolio.HeldSymbols() {
			add(symbol)
		}
	}

	return h.PriceService.GetMany(symbols, time.Now().UTC())
}

func (h CycleHandler) recentHeadlines() ([]string, error) {
	items, err := h.KnowledgeItemRepository.ListRecent(headlineLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}
	headlines := make([]string, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, item.Payload)
	}
	return headlines, nil
}

func (h CycleHandler) allSymbols() ([]string, error) {
	sectors, err := h.SectorRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	seen := map[string]bool{}
	symbols := []string{}
	add := func(symbol string) {
		if symbol != "" && !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}

	for _, sector := range sectors {
		universe, err := h.SectorRepository.GetUniverse(sector.SectorID)
		if err != nil {
			return nil, err
		}
		for _, asset := range universe {
			add(asset.Symbol)
		}
		add(h.Config.EvaluationSymbol(sector.SectorID))
	}
	for _, scenario := range h.Config.Scenarios {
		add(scenario.BenchmarkSymbol)
	}

	return symbols, nil
}
