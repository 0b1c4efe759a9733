package models

// The preschool-relevant age band is 18 months to 6 years. Census counts
// are bucketed by whole years of age, so the band maps to ages 2 through 6.
const (
	AgeBandMinYears = 2
	AgeBandMaxYears = 6
)
