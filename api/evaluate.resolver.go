package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) evaluate(ctx *gin.Context) {
	result, err := m.EvaluationHandler.Run(requestContext(ctx))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run evaluation: %w", err), ctx)
		return
	}

	evolved := make([]gin.H, 0, len(result.Evolved))
	for _, version := range result.Evolved {
		evolved = append(evolved, gin.H{
			"unitID":  version.UnitID,
			"version": version.Version,
			"reason":  version.Reason,
		})
	}

	ctx.JSON(200, gin.H{
		"evaluated":        result.Pass.Evaluated,
		"deferred":         result.Pass.Deferred,
		"skipped":          result.Pass.Skipped,
		"thresholdChanges": len(result.Pass.ThresholdChanges),
		"evolved":          evolved,
	})
}
