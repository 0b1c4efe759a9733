package forecast

import (
	"errors"
	"fmt"

	"demandcast.sgpreschools.org/internal/models"
)

// minHistory is the smallest series a strategy will fit a trend to.
// Anything shorter triggers the flat low-confidence fallback.
const minHistory = 3

// ErrInsufficientHistory reports a series too short to fit a trend.
var ErrInsufficientHistory = errors.New("insufficient history to fit a trend")

// Trend is a fitted projection that predicts a value for a future year.
type Trend interface {
	Predict(year int) float64
}

// Strategy fits a Trend to a historical yearly series. Which strategy to
// use is configurable at launch and per request.
type Strategy interface {
	Name() string
	Fit(series []models.YearCount) (Trend, error)
}

// StrategyFromName resolves a strategy name from configuration or a query
// parameter. The empty string selects the default linear strategy.
func StrategyFromName(name string) (Strategy, error) {
	switch name {
	case "", "linear":
		return LinearTrend{}, nil
	case "growth":
		return AverageGrowth{}, nil
	default:
		return nil, fmt.Errorf("unknown forecast strategy %q", name)
	}
}

// LinearTrend fits an ordinary least-squares line through the series.
type LinearTrend struct{}

func (LinearTrend) Name() string { return "linear" }

func (LinearTrend) Fit(series []models.YearCount) (Trend, error) {
	if len(series) < minHistory {
		return nil, ErrInsufficientHistory
	}

	var sumYear, sumCount float64
	for _, point := range series {
		sumYear += float64(point.Year)
		sumCount += float64(point.Count)
	}
	meanYear := sumYear / float64(len(series))
	meanCount := sumCount / float64(len(series))

	var covariance, variance float64
	for _, point := range series {
		dy := float64(point.Year) - meanYear
		covariance += dy * (float64(point.Count) - meanCount)
		variance += dy * dy
	}
	if variance == 0 {
		return nil, ErrInsufficientHistory
	}

	slope := covariance / variance
	intercept := meanCount - slope*meanYear
	return linearFit{slope: slope, intercept: intercept}, nil
}

type linearFit struct {
	slope     float64
	intercept float64
}

func (f linearFit) Predict(year int) float64 {
	return f.intercept + f.slope*float64(year)
}

// AverageGrowth extrapolates from the latest observation using the mean
// year-over-year change across the series.
type AverageGrowth struct{}

func (AverageGrowth) Name() string { return "growth" }

func (AverageGrowth) Fit(series []models.YearCount) (Trend, error) {
	if len(series) < minHistory {
		return nil, ErrInsufficientHistory
	}

	first := series[0]
	last := series[len(series)-1]
	span := last.Year - first.Year
	if span == 0 {
		return nil, ErrInsufficientHistory
	}

	delta := float64(last.Count-first.Count) / float64(span)
	return growthFit{lastYear: last.Year, lastCount: float64(last.Count), delta: delta}, nil
}

type growthFit struct {
	lastYear  int
	lastCount float64
	delta     float64
}

func (f growthFit) Predict(year int) float64 {
	return f.lastCount + f.delta*float64(year-f.lastYear)
}
