package models

// Subzone is the smallest administrative planning unit used for demand
// aggregation. Reference data, loaded once per process.
type Subzone struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PlanningArea string `json:"planningArea"`
}

// YearCount is a single point in a yearly series, e.g. children counted in
// a subzone for one calendar year, or births recorded nationally.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// SubzoneDemand is the aggregated current demand estimate for one subzone.
type SubzoneDemand struct {
	SubzoneID     string `json:"subzoneId"`
	Name          string `json:"name"`
	PlanningArea  string `json:"planningArea"`
	Year          int    `json:"year"`
	Demand        int    `json:"demand"`
	CentreCount   int    `json:"centreCount"`
	TotalCapacity int    `json:"totalCapacity"`
}

// SubzoneReference is the compact form of a subzone included in the
// references section of a response.
type SubzoneReference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PlanningArea string `json:"planningArea"`
}

func NewSubzoneReference(id, name, planningArea string) SubzoneReference {
	return SubzoneReference{
		ID:           id,
		Name:         name,
		PlanningArea: planningArea,
	}
}

// BirthCohort is a count of births attributed to a year and an
// administrative area. Cohorts project forward future age-band populations.
type BirthCohort struct {
	Year   int    `json:"year"`
	Area   string `json:"area"`
	Births int    `json:"births"`
}

// HousingProject is an upcoming build-to-order housing development whose
// completion adds preschool demand to its subzone a couple of years later.
type HousingProject struct {
	ID             string `json:"id"`
	SubzoneID      string `json:"subzoneId"`
	CompletionYear int    `json:"completionYear"`
	TotalUnits     int    `json:"totalUnits"`
}
