package forecast

import (
	"math"

	"demandcast.sgpreschools.org/internal/models"
)

const (
	// DefaultHorizon is the number of yearly projections per subzone.
	DefaultHorizon = 5

	// birthCohortOffsetYears shifts birth cohorts forward to the year they
	// enter the preschool age band.
	birthCohortOffsetYears = 2
)

// Engine produces the five-year demand projection for a subzone. It is a
// deterministic closed-form computation: a trend fitted by the configured
// strategy, scaled by the national birth-cohort index where cohort data
// covers the projected years.
type Engine struct {
	strategy Strategy
	horizon  int
}

func NewEngine(strategy Strategy) *Engine {
	return &Engine{
		strategy: strategy,
		horizon:  DefaultHorizon,
	}
}

func (e *Engine) StrategyName() string {
	return e.strategy.Name()
}

// Forecast projects demand for the horizon years following the last
// observed year. current is the aggregated current demand for the subzone;
// it anchors the flat fallback when the series is too short to fit. The
// projected years are contiguous, starting the year after the series ends
// (or after baseYear when the series is empty). Values never go negative.
func (e *Engine) Forecast(subzoneID string, baseYear, current int, series, births []models.YearCount) []models.ForecastEntry {
	lastYear := baseYear
	fallback := current
	if len(series) > 0 {
		last := series[len(series)-1]
		lastYear = last.Year
		fallback = last.Count
	}

	trend, err := e.strategy.Fit(series)
	if err != nil {
		// Fit failures mean insufficient history; the subzone still gets
		// its five entries, just flagged low-confidence.
		return e.flat(subzoneID, lastYear, fallback)
	}

	index := newBirthIndex(births, lastYear)

	entries := make([]models.ForecastEntry, 0, e.horizon)
	for year := lastYear + 1; year <= lastYear+e.horizon; year++ {
		value := trend.Predict(year) * index.factor(year)
		demand := int(math.Round(value))
		if demand < 0 {
			demand = 0
		}
		entries = append(entries, models.NewForecastEntry(subzoneID, year, demand, false))
	}
	return entries
}

// flat is the low-confidence fallback: the latest known value carried
// forward for the whole horizon.
func (e *Engine) flat(subzoneID string, lastYear, value int) []models.ForecastEntry {
	if value < 0 {
		value = 0
	}
	entries := make([]models.ForecastEntry, 0, e.horizon)
	for year := lastYear + 1; year <= lastYear+e.horizon; year++ {
		entries = append(entries, models.NewForecastEntry(subzoneID, year, value, true))
	}
	return entries
}

// birthIndex scales projections by the size of the birth cohort entering
// the age band, relative to the cohort behind the last observed year.
type birthIndex struct {
	byYear map[int]int
	base   float64
}

func newBirthIndex(births []models.YearCount, lastYear int) birthIndex {
	index := birthIndex{byYear: make(map[int]int, len(births))}
	for _, cohort := range births {
		index.byYear[cohort.Year] = cohort.Count
	}
	if base, ok := index.byYear[lastYear-birthCohortOffsetYears]; ok && base > 0 {
		index.base = float64(base)
	}
	return index
}

// factor returns the cohort ratio for a projection year, or 1 when cohort
// data does not cover it.
func (idx birthIndex) factor(year int) float64 {
	if idx.base == 0 {
		return 1
	}
	cohort, ok := idx.byYear[year-birthCohortOffsetYears]
	if !ok || cohort <= 0 {
		return 1
	}
	return float64(cohort) / idx.base
}
