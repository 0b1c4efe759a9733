package models

// ForecastEntry is one projected year of preschool demand for a subzone.
// Entries are derived data, recomputed per request and never persisted.
type ForecastEntry struct {
	SubzoneID     string `json:"subzoneId"`
	Year          int    `json:"year"`
	Demand        int    `json:"demand"`
	LowConfidence bool   `json:"lowConfidence"`
}

func NewForecastEntry(subzoneID string, year, demand int, lowConfidence bool) ForecastEntry {
	return ForecastEntry{
		SubzoneID:     subzoneID,
		Year:          year,
		Demand:        demand,
		LowConfidence: lowConfidence,
	}
}

// ForecastData is the entry payload for the forecast endpoint.
type ForecastData struct {
	SubzoneID string          `json:"subzoneId"`
	Strategy  string          `json:"strategy"`
	Entries   []ForecastEntry `json:"entries"`
}

// OverviewData is the entry payload for the overview endpoint: parallel
// arrays keyed by Years, matching the tabular layout the dashboard renders.
// Current holds observed history followed by the projection, Upcoming holds
// the demand uplift from housing projects, and Total is their sum.
type OverviewData struct {
	SubzoneID string `json:"subzoneId"`
	Years     []int  `json:"years"`
	Current   []int  `json:"current"`
	Upcoming  []int  `json:"upcoming"`
	Total     []int  `json:"total"`
}

// TrendData is the entry payload for the historical trend endpoint.
type TrendData struct {
	SubzoneID string      `json:"subzoneId"`
	Series    []YearCount `json:"series"`
}
