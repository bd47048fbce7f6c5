package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) cycle(ctx *gin.Context) {
	result, err := m.CycleHandler.Run(requestContext(ctx))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run cycle: %w", err), ctx)
		return
	}

	scenarios := gin.H{}
	for scenario, rebalance := range result.Rebalances {
		scenarios[string(scenario)] = gin.H{
			"trades":        len(rebalance.Trades),
			"activeSectors": rebalance.ActiveSectors,
			"decisions":     rebalance.Decisions,
		}
	}

	ctx.JSON(200, gin.H{
		"scoredSectors": result.ScoredSectors,
		"scenarios":     scenarios,
	})
}
