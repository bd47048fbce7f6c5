package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"sentimentfolio/internal/calculator"
	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	l1_service "sentimentfolio/internal/service/l1"
	l3_service "sentimentfolio/internal/service/l3"
	treasury_client "sentimentfolio/pkg/treasury"

	"github.com/shopspring/decimal"
)

// metricsLookback is how far back the value series for risk metrics
// reaches. Shorter scenarios just produce fewer snapshots.
const metricsLookback = 30 * 24 * time.Hour

// ReportHandler assembles a point-in-time view of every scenario and every
// trackable unit: marked portfolio values, return and risk figures, and
// per-unit accuracy with the current learned threshold.
type ReportHandler struct {
	ScenarioAccountRepository   repository.ScenarioAccountRepository
	AdjustedPriceRepository     repository.AdjustedPriceRepository
	PerformanceRecordRepository repository.PerformanceRecordRepository

	LedgerService   l1_service.LedgerService
	PriceService    l1_service.PriceService
	FeedbackService l3_service.FeedbackService
}

type Report struct {
	GeneratedAt time.Time
	Scenarios   []ScenarioReport
	Units       []UnitReport
}

type ScenarioReport struct {
	Scenario    model.ScenarioName
	TotalValue  decimal.Decimal
	Cash        decimal.Decimal
	Positions   int
	TotalReturn float64
	// Metrics is nil when the scenario has too little price history for a
	// value series.
	Metrics *calculator.ScenarioMetrics
}

type UnitReport struct {
	UnitID   string
	Version  int32
	Correct  int32
	Total    int32
	Accuracy float64
	Frozen   bool
	// Threshold is the sentiment unit's learned confidence floor. Zero
	// for selection units, which have no threshold.
	Threshold float64
}

func (h ReportHandler) Generate(ctx context.Context) (*Report, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	accounts, err := h.ScenarioAccountRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario accounts: %w", err)
	}

	scenarios := make([]ScenarioReport, 0, len(accounts))
	for _, account := range accounts {
		report, err := h.scenarioReport(ctx, account, now)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *report)
	}
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Scenario < scenarios[j].Scenario
	})

	units, err := h.unitReports()
	if err != nil {
		return nil, err
	}

	log.Infof("generated report over %d scenarios and %d unit records", len(scenarios), len(units))

	return &Report{
		GeneratedAt: now,
		Scenarios:   scenarios,
		Units:       units,
	}, nil
}

func (h ReportHandler) scenarioReport(ctx context.Context, account model.ScenarioAccount, now time.Time) (*ScenarioReport, error) {
	log := logger.FromContext(ctx)

	portfolio, err := h.LedgerService.GetPortfolio(account.Scenario)
	if err != nil {
		return nil, err
	}

	totalValue := portfolio.Cash
	if len(portfolio.Positions) > 0 {
		priceMap, err := h.PriceService.GetMany(portfolio.HeldSymbols(), now)
		if err != nil {
			return nil, err
		}
		totalValue, err = portfolio.TotalValue(priceMap)
		if err != nil {
			return nil, fmt.Errorf("failed to mark %s portfolio: %w", account.Scenario, err)
		}
	}

	totalReturn := 0.0
	if account.StartCapital.IsPositive() {
		totalReturn = totalValue.Div(account.StartCapital).InexactFloat64() - 1
	}

	var metrics *calculator.ScenarioMetrics
	snapshots, err := h.valueHistory(portfolio, now.Add(-metricsLookback), now)
	if err != nil {
		return nil, err
	}
	if len(snapshots) >= 2 {
		metrics, err = calculator.CalculateScenarioMetrics(snapshots)
		if err != nil {
			return nil, fmt.Errorf("failed to compute metrics for %s: %w", account.Scenario, err)
		}
		// Sharpe over the raw annualized return until a risk-free rate is
		// available; skip the adjustment if the treasury API is down.
		if metrics.AnnualizedStdev > 0 {
			rate, err := treasury_client.RiskFreeRate(now)
			if err != nil {
				log.Warnf("failed to fetch risk-free rate, sharpe unadjusted: %v", err)
			} else {
				metrics.SharpeRatio = (metrics.AnnualizedReturn - rate) / metrics.AnnualizedStdev
			}
		}
	}

	return &ScenarioReport{
		Scenario:    account.Scenario,
		TotalValue:  totalValue,
		Cash:        portfolio.Cash,
		Positions:   len(portfolio.Positions),
		TotalReturn: totalReturn,
		Metrics:     metrics,
	}, nil
}

// valueHistory reconstructs a daily value series by marking the current
// holdings over stored closes. Only dates priced for every held symbol
// produce a snapshot, so a sparse symbol shortens the series rather than
// skewing it.
func (h ReportHandler) valueHistory(portfolio *domain.Portfolio, start, end time.Time) ([]calculator.ValueSnapshot, error) {
	if len(portfolio.Positions) == 0 {
		return nil, nil
	}

	perDate := map[time.Time]decimal.Decimal{}
	counts := map[time.Time]int{}
	for symbol, position := range portfolio.Positions {
		prices, err := h.AdjustedPriceRepository.List(symbol, start, end)
		if err != nil {
			return nil, err
		}
		for _, price := range prices {
			date := price.Date
			perDate[date] = perDate[date].Add(position.Quantity.Mul(decimal.NewFromFloat(price.Price)))
			counts[date]++
		}
	}

	snapshots := []calculator.ValueSnapshot{}
	for date, value := range perDate {
		if counts[date] != len(portfolio.Positions) {
			continue
		}
		snapshots = append(snapshots, calculator.ValueSnapshot{
			Date:       date,
			TotalValue: value.Add(portfolio.Cash).InexactFloat64(),
		})
	}

	return snapshots, nil
}

func (h ReportHandler) unitReports() ([]UnitReport, error) {
	records, err := h.PerformanceRecordRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list performance records: %w", err)
	}

	units := make([]UnitReport, 0, len(records))
	for _, record := range records {
		accuracy := 0.0
		if record.Total > 0 {
			accuracy, err = calculator.WinRate(int(record.Correct), int(record.Total))
			if err != nil {
				return nil, err
			}
		}

		threshold := 0.0
		if isSentimentUnit(record.UnitID) {
			threshold, err = h.FeedbackService.CurrentThreshold(record.UnitID)
			if err != nil {
				return nil, err
			}
		}

		units = append(units, UnitReport{
			UnitID:    record.UnitID,
			Version:   record.Version,
			Correct:   record.Correct,
			Total:     record.Total,
			Accuracy:  accuracy,
			Frozen:    record.Frozen,
			Threshold: threshold,
		})
	}

	sort.Slice(units, func(i, j int) bool {
		if units[i].UnitID != units[j].UnitID {
			return units[i].UnitID < units[j].UnitID
		}
		return units[i].Version < units[j].Version
	})

	return units, nil
}

func isSentimentUnit(unitID string) bool {
	return strings.HasSuffix(unitID, "/"+string(domain.RoleSentiment))
}
