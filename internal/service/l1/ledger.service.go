package l1_service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"

	"github.com/shopspring/decimal"
)

// LedgerService owns simulated position and cash state. A trade batch is
// applied all-or-nothing: if any trade would oversell a position or drive
// cash negative, no write happens. One batch per scenario at a time.
type LedgerService interface {
	GetPortfolio(scenario model.ScenarioName) (*domain.Portfolio, error)
	Apply(ctx context.Context, tx *sql.Tx, scenario model.ScenarioName, trades []domain.ProposedTrade) ([]model.Trade, error)
}

type ledgerServiceHandler struct {
	AccountRepository  repository.ScenarioAccountRepository
	PositionRepository repository.ScenarioPositionRepository
	TradeRepository    repository.TradeRepository

	locksMu sync.Mutex
	locks   map[model.ScenarioName]*sync.Mutex
}

func NewLedgerService(
	accountRepository repository.ScenarioAccountRepository,
	positionRepository repository.ScenarioPositionRepository,
	tradeRepository repository.TradeRepository,
) LedgerService {
	return &ledgerServiceHandler{
		AccountRepository:  accountRepository,
		PositionRepository: positionRepository,
		TradeRepository:    tradeRepository,
		locks:              map[model.ScenarioName]*sync.Mutex{},
	}
}

func (h *ledgerServiceHandler) lockFor(scenario model.ScenarioName) *sync.Mutex {
	h.locksMu.Lock()
	defer h.locksMu.Unlock()
	lock, ok := h.locks[scenario]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[scenario] = lock
	}
	return lock
}

func (h *ledgerServiceHandler) GetPortfolio(scenario model.ScenarioName) (*domain.Portfolio, error) {
	account, err := h.AccountRepository.Get(scenario)
	if err != nil {
		return nil, err
	}
	positions, err := h.PositionRepository.List(scenario)
	if err != nil {
		return nil, err
	}
	portfolio := domain.NewPortfolio(domain.ScenarioName(scenario), account.Cash)
	for _, p := range positions {
		portfolio.Positions[p.Symbol] = &domain.Position{
			Symbol:      p.Symbol,
			SectorID:    p.SectorID,
			Quantity:    p.Quantity,
			CostBasis:   p.CostBasis,
			LastTradeAt: p.LastTradeAt,
		}
	}
	return portfolio, nil
}

func (h *ledgerServiceHandler) Apply(ctx context.Context, tx *sql.Tx, scenario model.ScenarioName, trades []domain.ProposedTrade) ([]model.Trade, error) {
	log := logger.FromContext(ctx)
	if len(trades) == 0 {
		return []model.Trade{}, nil
	}

	lock := h.lockFor(scenario)
	lock.Lock()
	defer lock.Unlock()

	portfolio, err := h.GetPortfolio(scenario)
	if err != nil {
		return nil, err
	}

	next, err := applyTrades(portfolio, trades)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	touched := map[string]bool{}
	for _, t := range trades {
		touched[t.Symbol] = true
	}
	for symbol := range touched {
		position, held := next.Positions[symbol]
		if !held {
			// fully sold out
			err = h.PositionRepository.Delete(tx, scenario, symbol)
			if err != nil {
				return nil, err
			}
			continue
		}
		err = h.PositionRepository.Upsert(tx, model.ScenarioPosition{
			Scenario:    scenario,
			Symbol:      symbol,
			SectorID:    position.SectorID,
			Quantity:    position.Quantity,
			CostBasis:   position.CostBasis,
			LastTradeAt: &now,
		})
		if err != nil {
			return nil, err
		}
	}

	err = h.AccountRepository.UpdateCash(tx, scenario, next.Cash)
	if err != nil {
		return nil, err
	}

	rows := make([]*model.Trade, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, &model.Trade{
			Scenario:           scenario,
			Symbol:             t.Symbol,
			SectorID:           t.SectorID,
			Quantity:           t.Quantity,
			Price:              t.ExpectedPrice,
			Amount:             t.ExpectedAmount(),
			SentimentReadingID: t.SentimentReadingID,
		})
	}
	inserted, err := h.TradeRepository.AddMany(tx, rows)
	if err != nil {
		return nil, err
	}

	log.Infof("applied %d trades to %s, cash %s -> %s",
		len(inserted), scenario, portfolio.Cash.StringFixed(2), next.Cash.StringFixed(2))

	return inserted, nil
}

// applyTrades replays the batch against a copy of the portfolio. The input
// portfolio is never mutated, so a failed batch leaves no trace.
func applyTrades(portfolio *domain.Portfolio, trades []domain.ProposedTrade) (*domain.Portfolio, error) {
	next := portfolio.DeepCopy()
	for _, t := range trades {
		if t.ExpectedPrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("trade for %s has non-positive expected price %s", t.Symbol, t.ExpectedPrice.String())
		}
		position, ok := next.Positions[t.Symbol]
		if !ok {
			position = &domain.Position{
				Symbol:   t.Symbol,
				SectorID: t.SectorID,
			}
			next.Positions[t.Symbol] = position
		}

		newQuantity := position.Quantity.Add(t.Quantity)
		if newQuantity.IsNegative() {
			return nil, fmt.Errorf("trade batch oversells %s: held %s, selling %s",
				t.Symbol, position.Quantity.String(), t.Quantity.Neg().String())
		}

		if t.Quantity.IsPositive() {
			// weighted average cost basis across the old lot and this buy
			oldCost := position.CostBasis.Mul(position.Quantity)
			newCost := oldCost.Add(t.ExpectedAmount())
			position.CostBasis = newCost.Div(newQuantity)
		}
		position.Quantity = newQuantity
		if position.Quantity.IsZero() {
			delete(next.Positions, t.Symbol)
		}

		next.Cash = next.Cash.Sub(t.ExpectedAmount())
	}

	if next.Cash.IsNegative() {
		totalSpend := portfolio.Cash.Sub(next.Cash)
		return nil, domain.InsufficientCapitalError{
			Scenario:  string(portfolio.Scenario),
			Cash:      portfolio.Cash.StringFixed(2),
			Required:  totalSpend.StringFixed(2),
			NumTrades: len(trades),
		}
	}

	return next, nil
}
