package models

// ReferencesModel carries the reference data related to a response payload.
type ReferencesModel struct {
	Subzones []SubzoneReference `json:"subzones"`
	Centres  []CentreReference  `json:"centres"`
}

// NewEmptyReferences creates a References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Subzones: []SubzoneReference{},
		Centres:  []CentreReference{},
	}
}
