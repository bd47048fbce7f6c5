package integration_tests

import (
	"context"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/repository"
)

// Deterministic replacements for the two external boundaries: the quote
// feed and the model. Prices are flat so trade quantities are exact.

var testPrices = map[string]float64{
	"AAPL":    100,
	"MSFT":    200,
	"JPM":     150,
	"GS":      400,
	"SPY":     500,
	"BTC-USD": 60000,
	"XLK":     180,
	"XLF":     40,
}

func NewMockQuoteFeedForTests() repository.QuoteFeedRepository {
	return mockQuoteFeedForTestsHandler{}
}

type mockQuoteFeedForTestsHandler struct{}

func (m mockQuoteFeedForTestsHandler) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.AdjustedPrice, error) {
	price, ok := testPrices[symbol]
	if !ok {
		return nil, fmt.Errorf("no test price for %s", symbol)
	}

	closes := []model.AdjustedPrice{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		closes = append(closes, model.AdjustedPrice{
			Symbol: symbol,
			Date:   time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
			Price:  price,
		})
	}
	return closes, nil
}

func NewMockGptForTests() repository.GptRepository {
	return mockGptForTestsHandler{
		scores: map[string]float64{
			"XLK": 0.8,
			"XLF": 0.05,
		},
	}
}

type mockGptForTestsHandler struct {
	scores map[string]float64
}

func (m mockGptForTestsHandler) ScoreSentiment(ctx context.Context, in repository.ScoreSentimentInput) (float64, error) {
	score, ok := m.scores[in.SectorID]
	if !ok {
		return 0, fmt.Errorf("no test score for %s", in.SectorID)
	}
	return score, nil
}

func (m mockGptForTestsHandler) SelectAssets(ctx context.Context, in repository.SelectAssetsInput) (*repository.AssetSelection, error) {
	selections := map[string]map[string]float64{
		"XLK": {"AAPL": 0.6, "MSFT": 0.4},
		"XLF": {"JPM": 1.0},
	}
	weights, ok := selections[in.SectorID]
	if !ok {
		return nil, fmt.Errorf("no test selection for %s", in.SectorID)
	}
	return &repository.AssetSelection{
		Weights:   weights,
		Rationale: "test selection",
		RiskLevel: "moderate",
	}, nil
}

func (m mockGptForTestsHandler) RevisePayload(ctx context.Context, in repository.RevisePayloadInput) (string, error) {
	return in.CurrentPayload + " (revised)", nil
}
