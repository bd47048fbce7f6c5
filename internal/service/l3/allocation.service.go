package l3_service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	l2_service "sentimentfolio/internal/service/l2"

	"github.com/shopspring/decimal"
)

// AllocationService turns sector sentiment into proposed trades for one
// scenario. Weight computation is deterministic; only the per-sector asset
// selection consults the collaborator.
type AllocationService interface {
	GenerateTrades(ctx context.Context, in GenerateTradesInput) (*GenerateTradesResponse, error)
}

// SectorSignal is one sector's view going into a rebalance: its current
// head score, the learned confidence threshold for its sentiment unit, and
// its tradable universe.
type SectorSignal struct {
	SectorID         string
	Score            float64
	Threshold        float64
	Universe         []string
	SelectionPayload string
}

type GenerateTradesInput struct {
	Definition domain.ScenarioDefinition
	Signals    []SectorSignal
	Portfolio  *domain.Portfolio
	PriceMap   map[string]decimal.Decimal
}

type GenerateTradesResponse struct {
	// SectorWeights are final post-normalization targets, including the
	// retained weights of dead-zone sectors.
	SectorWeights map[string]float64
	SymbolWeights map[string]float64
	// ActiveSectors cleared their effective dead-zone floor this cycle.
	// The orchestrator records one decision per active sector that
	// produced trades.
	ActiveSectors []string
	Trades        []domain.ProposedTrade
}

// sectors tilted by linear curves stay inside these bounds before
// normalization, mirroring the 2..20 percent band of the original weekly
// rebalance
const (
	minLinearWeight = 0.02
	maxLinearWeight = 0.20
	// step curves park this much in sectors below the step threshold
	stepIdleWeight = 0.01
)

type allocationServiceHandler struct {
	SelectionService l2_service.SelectionService
}

func NewAllocationService(selectionService l2_service.SelectionService) AllocationService {
	return allocationServiceHandler{SelectionService: selectionService}
}

func (h allocationServiceHandler) GenerateTrades(ctx context.Context, in GenerateTradesInput) (*GenerateTradesResponse, error) {
	log := logger.FromContext(ctx)
	def := in.Definition

	totalValue, err := in.Portfolio.TotalValue(in.PriceMap)
	if err != nil {
		return nil, err
	}
	totalValueF, _ := totalValue.Float64()
	if totalValueF <= 0 {
		return nil, fmt.Errorf("scenario %s has no capital to allocate", def.Name)
	}

	currentSectorWeights, currentSymbolWeights := currentWeights(in.Portfolio, in.PriceMap, totalValue)

	targets, err := computeSectorTargets(def, in.Signals, currentSectorWeights)
	if err != nil {
		return nil, err
	}

	symbolWeights := map[string]float64{}
	if def.Curve == domain.CurveConstant {
		symbolWeights[def.BenchmarkSymbol] = 1.0
	} else {
		for _, signal := range in.Signals {
			weight := targets.weights[signal.SectorID]
			if !targets.active[signal.SectorID] {
				// dead zone: the sector's holdings stay exactly as
				// they are
				for symbol, w := range currentSymbolWeights[signal.SectorID] {
					symbolWeights[symbol] = w
				}
				continue
			}
			if weight <= 0 {
				continue
			}
			selected, err := h.SelectionService.SelectWeights(ctx, l2_service.SelectWeightsInput{
				SectorID:  signal.SectorID,
				Universe:  signal.Universe,
				Sentiment: signal.Score,
				Scenario:  string(def.Name),
				Budget:    weight * totalValueF,
				Payload:   signal.SelectionPayload,
			})
			if err != nil {
				return nil, err
			}
			for symbol, w := range selected {
				symbolWeights[symbol] += weight * w
			}
		}
	}

	trades := h.tradesToTargets(in, symbolWeights, targets, totalValue)

	tradedSectors := map[string]bool{}
	for _, trade := range trades {
		tradedSectors[trade.SectorID] = true
	}
	activeSectors := []string{}
	for sectorID, isActive := range targets.active {
		if isActive && tradedSectors[sectorID] {
			activeSectors = append(activeSectors, sectorID)
		}
	}
	sort.Strings(activeSectors)

	log.Infof("scenario %s: %d target sectors, %d trades proposed", def.Name, len(targets.weights), len(trades))

	return &GenerateTradesResponse{
		SectorWeights: targets.weights,
		SymbolWeights: symbolWeights,
		ActiveSectors: activeSectors,
		Trades:        trades,
	}, nil
}

// tradesToTargets diffs target symbol weights against current holdings.
// Sells come first so they fund the buys. Dead-zone sectors never trade,
// with one exception: an active scenario stop loss liquidates underwater
// positions in active sectors.
func (h allocationServiceHandler) tradesToTargets(
	in GenerateTradesInput,
	symbolWeights map[string]float64,
	targets sectorTargets,
	totalValue decimal.Decimal,
) []domain.ProposedTrade {
	def := in.Definition

	sectorOf := map[string]string{}
	for _, signal := range in.Signals {
		for _, symbol := range signal.Universe {
			sectorOf[symbol] = signal.SectorID
		}
	}
	for symbol, position := range in.Portfolio.Positions {
		if _, ok := sectorOf[symbol]; !ok {
			sectorOf[symbol] = position.SectorID
		}
	}

	symbols := map[string]bool{}
	for symbol := range symbolWeights {
		symbols[symbol] = true
	}
	for symbol := range in.Portfolio.Positions {
		symbols[symbol] = true
	}

	minTrade := decimal.NewFromFloat(def.MinTradeSize)
	trades := []domain.ProposedTrade{}
	available := in.Portfolio.Cash
	buyTotal := decimal.Zero
	for symbol := range symbols {
		sectorID := sectorOf[symbol]
		holdsSector := def.Curve != domain.CurveConstant && !targets.active[sectorID]
		position := in.Portfolio.Positions[symbol]

		if holdsSector {
			continue
		}

		price, ok := in.PriceMap[symbol]
		if !ok || price.LessThanOrEqual(decimal.Zero) {
			continue
		}

		targetValue := decimal.NewFromFloat(symbolWeights[symbol]).Mul(totalValue)
		currentValue := decimal.Zero
		if position != nil {
			currentValue = position.Quantity.Mul(price)

			if def.StopLossPct > 0 && position.CostBasis.IsPositive() {
				floor := position.CostBasis.Mul(decimal.NewFromFloat(1 - def.StopLossPct))
				if price.LessThan(floor) {
					targetValue = decimal.Zero
				}
			}
		}

		delta := targetValue.Sub(currentValue)
		if delta.Abs().LessThan(minTrade) {
			continue
		}

		if delta.IsNegative() {
			available = available.Add(delta.Abs())
		} else {
			buyTotal = buyTotal.Add(delta)
		}
		trades = append(trades, domain.ProposedTrade{
			Symbol:        symbol,
			SectorID:      sectorID,
			Quantity:      delta.Div(price).Round(8),
			ExpectedPrice: price,
		})
	}

	// dropping a sub-minimum sell must not let the buy it would have funded
	// through: aggregate buys never exceed cash plus the sells kept
	if buyTotal.GreaterThan(available) {
		scale := available.Div(buyTotal)
		kept := trades[:0]
		for _, trade := range trades {
			if trade.Quantity.IsNegative() {
				kept = append(kept, trade)
				continue
			}
			value := trade.Quantity.Mul(trade.ExpectedPrice).Mul(scale)
			if value.IsZero() || value.LessThan(minTrade) {
				continue
			}
			trade.Quantity = value.Div(trade.ExpectedPrice).RoundDown(8)
			kept = append(kept, trade)
		}
		trades = kept
	}

	// sells first so the cash is there for the buys
	sort.Slice(trades, func(i, j int) bool {
		qi, qj := trades[i].Quantity, trades[j].Quantity
		if qi.IsNegative() != qj.IsNegative() {
			return qi.IsNegative()
		}
		return trades[i].Symbol < trades[j].Symbol
	})

	return trades
}

type sectorTargets struct {
	weights map[string]float64
	active  map[string]bool
}

// computeSectorTargets maps sentiment to per-sector weights for one
// scenario. Sectors inside the effective dead zone keep their current
// weight; the remainder is shaped by the scenario curve, then everything is
// scaled down proportionally if the total exceeds one.
func computeSectorTargets(
	def domain.ScenarioDefinition,
	signals []SectorSignal,
	currentSectorWeights map[string]float64,
) (sectorTargets, error) {
	targets := sectorTargets{
		weights: map[string]float64{},
		active:  map[string]bool{},
	}

	if def.Curve == domain.CurveConstant {
		return targets, nil
	}
	if len(signals) == 0 {
		return targets, fmt.Errorf("scenario %s has no sector signals", def.Name)
	}

	base := 1.0 / float64(len(signals))
	heldTotal := 0.0
	activeTotal := 0.0

	for _, signal := range signals {
		if len(signal.Universe) == 0 {
			return targets, domain.SectorUniverseEmptyError{SectorID: signal.SectorID}
		}

		floor := math.Max(def.MinMagnitude, signal.Threshold)
		if math.Abs(signal.Score) < floor {
			held := currentSectorWeights[signal.SectorID]
			targets.weights[signal.SectorID] = held
			targets.active[signal.SectorID] = false
			heldTotal += held
			continue
		}

		sectorBase := base
		if def.BaseWeight > 0 && def.IsBaseSector(signal.SectorID) {
			sectorBase = def.BaseWeight
		}
		weight, err := curveWeight(def, sectorBase, signal.Score)
		if err != nil {
			return targets, err
		}
		targets.weights[signal.SectorID] = weight
		targets.active[signal.SectorID] = true
		activeTotal += weight
	}

	// never allocate beyond the portfolio; held sectors are untouchable so
	// only active sectors absorb the squeeze
	if heldTotal+activeTotal > 1.0 && activeTotal > 0 {
		scale := math.Max(0, 1.0-heldTotal) / activeTotal
		for sectorID, isActive := range targets.active {
			if isActive {
				targets.weights[sectorID] *= scale
			}
		}
	}

	return targets, nil
}

func curveWeight(def domain.ScenarioDefinition, base, score float64) (float64, error) {
	switch def.Curve {
	case domain.CurveLinear:
		return clamp(base+score*def.Multiplier, minLinearWeight, linearCap(def)), nil
	case domain.CurveInverted:
		return clamp(base-score*def.Multiplier, minLinearWeight, linearCap(def)), nil
	case domain.CurveStep:
		if score > def.StepThreshold {
			return def.Multiplier, nil
		}
		return stepIdleWeight, nil
	case domain.CurveCappedLinear:
		return clamp(base+score*def.Multiplier, 0, def.SectorCap), nil
	default:
		return 0, fmt.Errorf("scenario %s has unknown curve %q", def.Name, def.Curve)
	}
}

func linearCap(def domain.ScenarioDefinition) float64 {
	if def.SectorCap > 0 {
		return def.SectorCap
	}
	return maxLinearWeight
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func currentWeights(
	portfolio *domain.Portfolio,
	priceMap map[string]decimal.Decimal,
	totalValue decimal.Decimal,
) (map[string]float64, map[string]map[string]float64) {
	sectorWeights := map[string]float64{}
	symbolWeights := map[string]map[string]float64{}
	for symbol, position := range portfolio.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			continue
		}
		weight, _ := position.Quantity.Mul(price).Div(totalValue).Float64()
		sectorWeights[position.SectorID] += weight
		if symbolWeights[position.SectorID] == nil {
			symbolWeights[position.SectorID] = map[string]float64{}
		}
		symbolWeights[position.SectorID][symbol] = weight
	}
	return sectorWeights, symbolWeights
}
