package l2_service

import (
	"context"

	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
)

// SelectionService distributes one sector's budget across its universe. The
// collaborator proposes weights; everything it returns is treated as
// untrusted and repaired here: unknown symbols are dropped, negatives are
// zeroed, and the survivors are renormalized. When the collaborator is
// unreachable or returns nothing usable, the sector falls back to equal
// weight rather than sitting out the cycle.
type SelectionService interface {
	SelectWeights(ctx context.Context, in SelectWeightsInput) (map[string]float64, error)
}

type SelectWeightsInput struct {
	SectorID  string
	Universe  []string
	Sentiment float64
	Scenario  string
	Budget    float64
	// Payload is the selection unit's active prompt payload.
	Payload string
}

type selectionServiceHandler struct {
	GptRepository repository.GptRepository
}

func NewSelectionService(gptRepository repository.GptRepository) SelectionService {
	return selectionServiceHandler{GptRepository: gptRepository}
}

func (h selectionServiceHandler) SelectWeights(ctx context.Context, in SelectWeightsInput) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	if len(in.Universe) == 0 {
		return nil, domain.SectorUniverseEmptyError{SectorID: in.SectorID}
	}

	selection, err := h.GptRepository.SelectAssets(ctx, repository.SelectAssetsInput{
		SectorID:  in.SectorID,
		Sentiment: in.Sentiment,
		Scenario:  in.Scenario,
		Budget:    in.Budget,
		Payload:   in.Payload,
		Universe:  in.Universe,
	})
	if err != nil {
		log.Warnf("asset selection for %s failed, falling back to equal weight: %v", in.SectorID, err)
		return equalWeights(in.Universe), nil
	}

	weights := repairWeights(selection.Weights, in.Universe)
	if weights == nil {
		log.Warnf("asset selection for %s returned no usable weights, falling back to equal weight", in.SectorID)
		return equalWeights(in.Universe), nil
	}
	return weights, nil
}

func equalWeights(universe []string) map[string]float64 {
	out := make(map[string]float64, len(universe))
	for _, symbol := range universe {
		out[symbol] = 1.0 / float64(len(universe))
	}
	return out
}

// repairWeights keeps only known symbols with positive weight and scales
// them to sum to one. Returns nil when nothing survives.
func repairWeights(proposed map[string]float64, universe []string) map[string]float64 {
	known := make(map[string]bool, len(universe))
	for _, symbol := range universe {
		known[symbol] = true
	}

	sum := 0.0
	kept := map[string]float64{}
	for symbol, weight := range proposed {
		if !known[symbol] || weight <= 0 {
			continue
		}
		kept[symbol] = weight
		sum += weight
	}
	if len(kept) == 0 || sum <= 0 {
		return nil
	}

	for symbol := range kept {
		kept[symbol] /= sum
	}
	return kept
}
