package forecast

import "demandcast.sgpreschools.org/internal/models"

// Households move in and enrol children gradually: a completed project adds
// a fifth of its units as demand per year, starting two years after the
// estimated completion year.
const (
	occupancyLagYears = 2
	upliftSpreadYears = 5
)

// Uplift returns the additional demand that housing projects contribute to
// a single year.
func Uplift(projects []models.HousingProject, year int) int {
	total := 0
	for _, project := range projects {
		start := project.CompletionYear + occupancyLagYears
		if year >= start && year < start+upliftSpreadYears {
			total += project.TotalUnits / upliftSpreadYears
		}
	}
	return total
}
