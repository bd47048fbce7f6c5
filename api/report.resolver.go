package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) report(ctx *gin.Context) {
	report, err := m.ReportHandler.Generate(requestContext(ctx))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to generate report: %w", err), ctx)
		return
	}

	scenarios := make([]gin.H, 0, len(report.Scenarios))
	for _, scenario := range report.Scenarios {
		entry := gin.H{
			"scenario":    scenario.Scenario,
			"totalValue":  scenario.TotalValue,
			"cash":        scenario.Cash,
			"positions":   scenario.Positions,
			"totalReturn": scenario.TotalReturn,
		}
		if scenario.Metrics != nil {
			entry["metrics"] = gin.H{
				"totalReturn":      scenario.Metrics.TotalReturn,
				"annualizedReturn": scenario.Metrics.AnnualizedReturn,
				"annualizedStdev":  scenario.Metrics.AnnualizedStdev,
				"sharpeRatio":      scenario.Metrics.SharpeRatio,
				"maxDrawdown":      scenario.Metrics.MaxDrawdown,
			}
		}
		scenarios = append(scenarios, entry)
	}

	units := make([]gin.H, 0, len(report.Units))
	for _, unit := range report.Units {
		units = append(units, gin.H{
			"unitID":    unit.UnitID,
			"version":   unit.Version,
			"correct":   unit.Correct,
			"total":     unit.Total,
			"accuracy":  unit.Accuracy,
			"frozen":    unit.Frozen,
			"threshold": unit.Threshold,
		})
	}

	ctx.JSON(200, gin.H{
		"generatedAt": report.GeneratedAt,
		"scenarios":   scenarios,
		"units":       units,
	})
}
