package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// ValueSnapshot is one scenario's marked-to-market total value on a date.
type ValueSnapshot struct {
	Date       time.Time
	TotalValue float64
}

type ScenarioMetrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	AnnualizedStdev  float64
	SharpeRatio      float64
	MaxDrawdown      float64
}

// CalculateScenarioMetrics computes return and risk figures from a value
// series. The series is sorted here; callers can pass snapshots in any
// order.
func CalculateScenarioMetrics(snapshots []ValueSnapshot) (*ScenarioMetrics, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 value snapshots")
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})

	returns := make([]float64, 0, len(snapshots)-1)
	for i := 1; i < len(snapshots); i++ {
		prev := snapshots[i-1].TotalValue
		if prev <= 0 {
			return nil, fmt.Errorf("non-positive value %f on %s", prev, snapshots[i-1].Date.Format(time.DateOnly))
		}
		returns = append(returns, snapshots[i].TotalValue/prev-1)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(252)

	startValue := snapshots[0].TotalValue
	endValue := snapshots[len(snapshots)-1].TotalValue
	totalReturn := endValue/startValue - 1

	numHours := snapshots[len(snapshots)-1].Date.Sub(snapshots[0].Date).Hours()
	numYears := numHours / (365 * 24)
	annualizedReturn := totalReturn
	if numYears > 0 {
		annualizedReturn = math.Pow(endValue/startValue, 1/numYears) - 1
	}

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &ScenarioMetrics{
		TotalReturn:      totalReturn,
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  annualizedStdev,
		SharpeRatio:      sharpeRatio,
		MaxDrawdown:      maxDrawdown(snapshots),
	}, nil
}

func maxDrawdown(snapshots []ValueSnapshot) float64 {
	peak := snapshots[0].TotalValue
	worst := 0.0
	for _, s := range snapshots {
		if s.TotalValue > peak {
			peak = s.TotalValue
		}
		if peak > 0 {
			drawdown := s.TotalValue/peak - 1
			if drawdown < worst {
				worst = drawdown
			}
		}
	}
	return worst
}

// WinRate is the fraction of evaluated predictions that were correct.
func WinRate(correct, total int) (float64, error) {
	if total == 0 {
		return 0, fmt.Errorf("no evaluated predictions")
	}
	if correct < 0 || correct > total {
		return 0, fmt.Errorf("invalid counts: %d of %d", correct, total)
	}
	return float64(correct) / float64(total), nil
}
