package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"sentimentfolio/cmd"
	"sentimentfolio/internal"
	"sentimentfolio/internal/app"
	"sentimentfolio/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "sentimentfolio",
		Short:        "sentiment-driven scenario portfolios",
		SilenceUsage: true,
	}

	root.AddCommand(
		seedCmd(),
		cycleCmd(),
		evaluateCmd(),
		evolveCmd(),
		harvestCmd(),
		reportCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func withDependencies(run func(ctx context.Context, deps *cmd.Dependencies) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, _ []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := context.WithValue(c.Context(), logger.ContextKey, logger.New())
		return run(ctx, deps)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "seed sectors, scenario accounts, and initial prompt versions",
		RunE: withDependencies(func(ctx context.Context, deps *cmd.Dependencies) error {
			return deps.SetupHandler.Seed(ctx)
		}),
	}
}

func cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "run one full cycle: sync prices, score sectors, rebalance scenarios",
		RunE: withDependencies(func(ctx context.Context, deps *cmd.Dependencies) error {
			result, err := deps.CycleHandler.Run(ctx)
			if err != nil {
				return err
			}
			internal.Pprint(result)
			return nil
		}),
	}
}

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "close out due decisions, adjust thresholds, evolve failing units",
		RunE: withDependencies(func(ctx context.Context, deps *cmd.Dependencies) error {
			result, err := deps.EvaluationHandler.Run(ctx)
			if err != nil {
				return err
			}
			internal.Pprint(result.Pass)
			for _, version := range result.Evolved {
				fmt.Printf("evolved %s to v%d: %s\n", version.UnitID, version.Version, version.Reason)
			}
			return nil
		}),
	}
}

func evolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evolve",
		Short: "run the evolution check without settling decisions",
		RunE: withDependencies(func(ctx context.Context, deps *cmd.Dependencies) error {
			evolved, err := deps.EvaluationHandler.Evolve(ctx)
			if err != nil {
				return err
			}
			if len(evolved) == 0 {
				fmt.Println("no units due for evolution")
				return nil
			}
			for _, version := range evolved {
				fmt.Printf("evolved %s to v%d: %s\n", version.UnitID, version.Version, version.Reason)
			}
			return nil
		}),
	}
}

func harvestCmd() *cobra.Command {
	var source string
	c := &cobra.Command{
		Use:   "harvest [payload]...",
		Short: "store knowledge items for scoring and evolution prompts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			ctx := context.WithValue(c.Context(), logger.ContextKey, logger.New())
			items, err := deps.HarvestHandler.Harvest(ctx, source, args)
			if err != nil {
				return err
			}
			fmt.Printf("stored %d knowledge items\n", len(items))
			return nil
		},
	}
	c.Flags().StringVar(&source, "source", "manual", "where the payloads came from")
	return c
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "print scenario values and per-unit accuracy",
		RunE: withDependencies(func(ctx context.Context, deps *cmd.Dependencies) error {
			report, err := deps.ReportHandler.Generate(ctx)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		}),
	}
}

func printReport(report *app.Report) {
	fmt.Printf("report generated at %s\n\n", report.GeneratedAt.Format(time.RFC3339))
	for _, scenario := range report.Scenarios {
		fmt.Printf(
			"%-12s value %s  cash %s  positions %d  return %+.2f%%",
			scenario.Scenario,
			scenario.TotalValue.StringFixed(2),
			scenario.Cash.StringFixed(2),
			scenario.Positions,
			scenario.TotalReturn*100,
		)
		if scenario.Metrics != nil {
			fmt.Printf("  sharpe %.2f  maxDD %.2f%%", scenario.Metrics.SharpeRatio, scenario.Metrics.MaxDrawdown*100)
		}
		fmt.Println()
	}
	fmt.Println()
	for _, unit := range report.Units {
		state := "active"
		if unit.Frozen {
			state = "frozen"
		}
		fmt.Printf(
			"%-24s v%-3d %s  %d/%d correct (%.0f%%)  threshold %.2f\n",
			unit.UnitID, unit.Version, state, unit.Correct, unit.Total, unit.Accuracy*100, unit.Threshold,
		)
	}
}
