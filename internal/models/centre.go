package models

// Centre is an existing preschool centre with its geocoded location and the
// subzone it falls in. Read-only reference data.
type Centre struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PostalCode string  `json:"postalCode"`
	Capacity   int     `json:"capacity"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	SubzoneID  string  `json:"subzoneId"`
}

// CentreReference is the compact form of a centre included in the
// references section of a response.
type CentreReference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func NewCentreReference(id, name string, capacity int) CentreReference {
	return CentreReference{
		ID:       id,
		Name:     name,
		Capacity: capacity,
	}
}
