package repository

import (
	"context"
	"fmt"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// QuoteFeedRepository is the external price collaborator. Calls are bounded
// by the caller's context; a timeout is recoverable and callers fall back
// (deferred evaluation, stale cache) rather than blocking a cycle.
type QuoteFeedRepository interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.AdjustedPrice, error)
}

type quoteFeedRepositoryHandler struct{}

func NewQuoteFeedRepository() QuoteFeedRepository {
	return quoteFeedRepositoryHandler{}
}

func (h quoteFeedRepositoryHandler) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.AdjustedPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}

	type fetchResult struct {
		prices []model.AdjustedPrice
		err    error
	}

	// the quote client is not context aware, so run the iteration in a
	// goroutine and abandon it when the deadline fires
	resultCh := make(chan fetchResult, 1)
	go func() {
		iter := chart.Get(params)

		prices := []model.AdjustedPrice{}
		for iter.Next() {
			prices = append(prices, model.AdjustedPrice{
				Symbol:    symbol,
				Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
				Price:     iter.Bar().AdjClose.InexactFloat64(),
				CreatedAt: time.Now().UTC(),
			})
		}
		if err := iter.Err(); err != nil {
			resultCh <- fetchResult{err: fmt.Errorf("failed to get prices for %s: %w", symbol, err)}
			return
		}
		resultCh <- fetchResult{prices: prices}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("price fetch for %s: %w", symbol, ctx.Err())
	case result := <-resultCh:
		return result.prices, result.err
	}
}
