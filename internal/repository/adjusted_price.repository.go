package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	. "sentimentfolio/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
)

type priceCache map[string]map[time.Time]float64

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, prices []model.AdjustedPrice) error
	Get(symbol string, date time.Time) (float64, error)
	GetMany(symbols []string, date time.Time) (map[string]float64, error)
	List(symbol string, start, end time.Time) ([]model.AdjustedPrice, error)
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		Db:        db,
		cache:     make(priceCache),
		readMutex: &sync.RWMutex{},
	}
}

type adjustedPriceRepositoryHandler struct {
	Db        *sql.DB
	cache     priceCache
	readMutex *sync.RWMutex
}

func (h *adjustedPriceRepositoryHandler) getFromCache(symbol string, date time.Time) *float64 {
	h.readMutex.RLock()
	defer h.readMutex.RUnlock()
	if _, ok := h.cache[symbol]; ok {
		if price, ok := h.cache[symbol][date]; ok {
			return &price
		}
	}
	return nil
}

func (h *adjustedPriceRepositoryHandler) addToCache(symbol string, date time.Time, price float64) {
	h.readMutex.Lock()
	defer h.readMutex.Unlock()
	if _, ok := h.cache[symbol]; !ok {
		h.cache[symbol] = map[time.Time]float64{}
	}
	h.cache[symbol][date] = price
}

func (h *adjustedPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.AdjustedPrice) error {
	if len(prices) == 0 {
		return nil
	}

	query := AdjustedPrice.
		INSERT(AdjustedPrice.Symbol, AdjustedPrice.Date, AdjustedPrice.Price, AdjustedPrice.CreatedAt).
		MODELS(prices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h *adjustedPriceRepositoryHandler) Get(symbol string, date time.Time) (float64, error) {
	if pc := h.getFromCache(symbol, date); pc != nil {
		return *pc, nil
	}

	minDate := TimestampzT(date.AddDate(0, 0, -3))
	maxDate := TimestampzT(date)
	// use a range so weekends and holidays resolve to the prior close
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to query price for %s on %v: %w", symbol, date, err)
	}

	h.addToCache(symbol, date, result.Price)
	return result.Price, nil
}

func (h *adjustedPriceRepositoryHandler) GetMany(symbols []string, date time.Time) (map[string]float64, error) {
	out := map[string]float64{}
	for _, symbol := range symbols {
		price, err := h.Get(symbol, date)
		if err != nil {
			return nil, err
		}
		out[symbol] = price
	}
	return out, nil
}

func (h *adjustedPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]model.AdjustedPrice, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(TimestampzT(start), TimestampzT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	results := []model.AdjustedPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	return results, nil
}
