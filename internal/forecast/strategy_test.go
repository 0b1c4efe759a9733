package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast.sgpreschools.org/internal/models"
)

func series(points ...[2]int) []models.YearCount {
	result := make([]models.YearCount, 0, len(points))
	for _, point := range points {
		result = append(result, models.YearCount{Year: point[0], Count: point[1]})
	}
	return result
}

func TestStrategyFromName(t *testing.T) {
	strategy, err := StrategyFromName("")
	require.NoError(t, err)
	assert.Equal(t, "linear", strategy.Name())

	strategy, err = StrategyFromName("linear")
	require.NoError(t, err)
	assert.Equal(t, "linear", strategy.Name())

	strategy, err = StrategyFromName("growth")
	require.NoError(t, err)
	assert.Equal(t, "growth", strategy.Name())

	_, err = StrategyFromName("arima")
	assert.Error(t, err)
}

func TestLinearTrendFitsObservedSlope(t *testing.T) {
	trend, err := LinearTrend{}.Fit(series([2]int{2018, 100}, [2]int{2019, 105}, [2]int{2020, 110}))
	require.NoError(t, err)

	assert.InDelta(t, 115, trend.Predict(2021), 0.001)
	assert.InDelta(t, 135, trend.Predict(2025), 0.001)
}

func TestLinearTrendFlatSeries(t *testing.T) {
	trend, err := LinearTrend{}.Fit(series([2]int{2018, 50}, [2]int{2019, 50}, [2]int{2020, 50}))
	require.NoError(t, err)

	assert.InDelta(t, 50, trend.Predict(2023), 0.001)
}

func TestLinearTrendInsufficientHistory(t *testing.T) {
	_, err := LinearTrend{}.Fit(nil)
	assert.ErrorIs(t, err, ErrInsufficientHistory)

	_, err = LinearTrend{}.Fit(series([2]int{2019, 80}, [2]int{2020, 85}))
	assert.ErrorIs(t, err, ErrInsufficientHistory)

	// Three points in the same year carry no usable trend either.
	_, err = LinearTrend{}.Fit(series([2]int{2020, 80}, [2]int{2020, 85}, [2]int{2020, 90}))
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestAverageGrowth(t *testing.T) {
	trend, err := AverageGrowth{}.Fit(series([2]int{2016, 100}, [2]int{2018, 120}, [2]int{2020, 140}))
	require.NoError(t, err)

	// Mean growth of 10/year from the latest observation.
	assert.InDelta(t, 150, trend.Predict(2021), 0.001)
	assert.InDelta(t, 190, trend.Predict(2025), 0.001)
}

func TestAverageGrowthInsufficientHistory(t *testing.T) {
	_, err := AverageGrowth{}.Fit(series([2]int{2020, 100}))
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}
