package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sentimentfolio/cmd"
	"sentimentfolio/internal/logger"

	"github.com/robfig/cron/v3"
)

// The scheduler runs the standing cadence: a decision cycle each weekday
// after the close, and an evaluation pass every few hours so decisions
// close out soon after their horizon elapses.
const (
	cycleSchedule    = "30 21 * * MON-FRI" // 21:30 UTC, after US close
	evaluateSchedule = "0 */4 * * *"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer cmd.CloseDependencies(deps)

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
	l := logger.FromContext(ctx)

	c := cron.New()

	_, err = c.AddFunc(cycleSchedule, func() {
		if _, err := deps.CycleHandler.Run(ctx); err != nil {
			l.Errorf("cycle failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule cycle: %v", err)
	}

	_, err = c.AddFunc(evaluateSchedule, func() {
		if _, err := deps.EvaluationHandler.Run(ctx); err != nil {
			l.Errorf("evaluation failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule evaluation: %v", err)
	}

	c.Start()
	l.Infof("scheduler started: cycle %q, evaluate %q", cycleSchedule, evaluateSchedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	<-c.Stop().Done()
	l.Info("scheduler stopped")
}
