package l1_service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"

	"github.com/shopspring/decimal"
)

// PriceService sits between the quote feed and the adjusted price store.
// Reads always come from the store; Sync pulls the feed forward.
type PriceService interface {
	Sync(ctx context.Context, tx *sql.Tx, symbols []string, start, end time.Time) (int, error)
	GetMany(symbols []string, date time.Time) (map[string]decimal.Decimal, error)
	// GetReturn computes the fractional price change of symbol between the
	// two dates, e.g. 0.03 for a three percent gain.
	GetReturn(symbol string, start, end time.Time) (float64, error)
}

type priceServiceHandler struct {
	AdjPriceRepository  repository.AdjustedPriceRepository
	QuoteFeedRepository repository.QuoteFeedRepository
}

func NewPriceService(
	adjPriceRepository repository.AdjustedPriceRepository,
	quoteFeedRepository repository.QuoteFeedRepository,
) PriceService {
	return priceServiceHandler{
		AdjPriceRepository:  adjPriceRepository,
		QuoteFeedRepository: quoteFeedRepository,
	}
}

func (h priceServiceHandler) Sync(ctx context.Context, tx *sql.Tx, symbols []string, start, end time.Time) (int, error) {
	log := logger.FromContext(ctx)
	total := 0
	for _, symbol := range symbols {
		prices, err := h.QuoteFeedRepository.FetchDailyCloses(ctx, symbol, start, end)
		if err != nil {
			// a dead feed for one symbol must not starve the rest; the
			// store still serves the prior closes
			log.Warnf("failed to fetch daily closes for %s: %v", symbol, err)
			continue
		}
		if len(prices) == 0 {
			log.Warnf("quote feed returned no closes for %s between %s and %s",
				symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
			continue
		}
		err = h.AdjPriceRepository.Add(tx, prices)
		if err != nil {
			return total, err
		}
		total += len(prices)
	}
	log.Infof("synced %d adjusted prices across %d symbols", total, len(symbols))
	return total, nil
}

func (h priceServiceHandler) GetMany(symbols []string, date time.Time) (map[string]decimal.Decimal, error) {
	prices, err := h.AdjPriceRepository.GetMany(symbols, date)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		out[symbol] = decimal.NewFromFloat(price)
	}
	return out, nil
}

func (h priceServiceHandler) GetReturn(symbol string, start, end time.Time) (float64, error) {
	startPrice, err := h.AdjPriceRepository.Get(symbol, start)
	if err != nil {
		return 0, err
	}
	endPrice, err := h.AdjPriceRepository.Get(symbol, end)
	if err != nil {
		return 0, err
	}
	if startPrice == 0 {
		return 0, fmt.Errorf("zero price for %s on %s", symbol, start.Format(time.DateOnly))
	}
	return endPrice/startPrice - 1, nil
}
