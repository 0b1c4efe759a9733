package snapshotdb

// Subzone represents one row of the subzones table
type Subzone struct {
	ID           string // subzone_id
	Name         string // name
	PlanningArea string // planning_area
}

// PopulationCount represents one row of the population table: children of a
// single age in a subzone for one calendar year
type PopulationCount struct {
	SubzoneID string // subzone_id
	Age       int    // age
	Year      int    // year
	Count     int    // count
}

// Birth represents one row of the births table
type Birth struct {
	Year   int    // year
	Area   string // area
	Births int    // births
}

// Centre represents one row of the centres table. Lat, Lon and SubzoneID
// are filled in during geocoding/assignment and may be zero for centres
// that could not be placed.
type Centre struct {
	ID         string  // centre_id
	Name       string  // name
	PostalCode string  // postal_code
	Capacity   int     // capacity
	Lat        float64 // lat
	Lon        float64 // lon
	SubzoneID  string  // subzone_id
}

// HousingProject represents one row of the housing_projects table
type HousingProject struct {
	ID             string // project_id
	SubzoneID      string // subzone_id
	CompletionYear int    // completion_year
	TotalUnits     int    // total_units
}
