package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is the in-memory view of one scenario's holdings. The ledger
// owns the persisted copy; everything here operates on snapshots.
type Portfolio struct {
	Scenario  ScenarioName
	Positions map[string]*Position
	Cash      decimal.Decimal
}

func NewPortfolio(scenario ScenarioName, cash decimal.Decimal) *Portfolio {
	return &Portfolio{
		Scenario:  scenario,
		Positions: map[string]*Position{},
		Cash:      cash,
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	return symbols
}

func (p Portfolio) DeepCopy() *Portfolio {
	out := &Portfolio{
		Scenario:  p.Scenario,
		Cash:      p.Cash,
		Positions: map[string]*Position{},
	}
	for symbol, position := range p.Positions {
		out.Positions[symbol] = position.DeepCopy()
	}
	return out
}

// TotalValue marks the portfolio to the given price map. Every held symbol
// must be priced.
func (p Portfolio) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := p.Cash
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", symbol)
		}
		totalValue = totalValue.Add(position.Quantity.Mul(price))
	}
	return totalValue, nil
}

type Position struct {
	Symbol      string
	SectorID    string
	Quantity    decimal.Decimal
	CostBasis   decimal.Decimal
	LastTradeAt *time.Time
}

func (p Position) DeepCopy() *Position {
	cp := p
	return &cp
}

// ProposedTrade is the signed difference between target and current value
// for one symbol, expressed in both quantity and dollar terms at the
// expected price.
type ProposedTrade struct {
	Symbol             string
	SectorID           string
	Quantity           decimal.Decimal
	ExpectedPrice      decimal.Decimal
	SentimentReadingID *uuid.UUID
}

func (p ProposedTrade) ExpectedAmount() decimal.Decimal {
	return p.Quantity.Mul(p.ExpectedPrice)
}
