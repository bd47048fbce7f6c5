package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type harvestRequest struct {
	Source   string   `json:"source"`
	Payloads []string `json:"payloads"`
}

func (m ApiHandler) harvest(ctx *gin.Context) {
	var req harvestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid harvest request: %w", err), ctx, 400)
		return
	}
	if len(req.Payloads) == 0 {
		returnErrorJsonCode(fmt.Errorf("harvest request contained no payloads"), ctx, 400)
		return
	}

	items, err := m.HarvestHandler.Harvest(requestContext(ctx), req.Source, req.Payloads)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to harvest: %w", err), ctx)
		return
	}

	ctx.JSON(200, gin.H{
		"stored": len(items),
	})
}
