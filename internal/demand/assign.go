package demand

import (
	"demandcast.sgpreschools.org/internal/snapshot"
	"demandcast.sgpreschools.org/snapshotdb"
)

// assignCentres geocodes centre listings through the postal table and
// assigns each geocoded centre to the subzone whose boundary contains it.
// Centres that cannot be placed are kept (the listing itself is still
// reference data) but counted in the diagnostics, with empty location and
// subzone fields.
func assignCentres(boundaries []snapshot.Boundary, centres []snapshot.CentreRow, postal []snapshot.PostalGeocode) ([]snapshotdb.Centre, JoinDiagnostics) {
	geocodes := make(map[string]snapshot.PostalGeocode, len(postal))
	for _, geocode := range postal {
		geocodes[geocode.PostalCode] = geocode
	}

	var diagnostics JoinDiagnostics
	assigned := make([]snapshotdb.Centre, 0, len(centres))
	for _, centre := range centres {
		row := snapshotdb.Centre{
			ID:         centre.ID,
			Name:       centre.Name,
			PostalCode: centre.PostalCode,
			Capacity:   centre.Capacity,
		}

		geocode, ok := geocodes[centre.PostalCode]
		if !ok {
			diagnostics.CentresWithoutGeocode++
			assigned = append(assigned, row)
			continue
		}
		row.Lat = geocode.Lat
		row.Lon = geocode.Lon

		if subzoneID := subzoneForPoint(boundaries, geocode.Lon, geocode.Lat); subzoneID != "" {
			row.SubzoneID = subzoneID
		} else {
			diagnostics.CentresOutsideBoundaries++
		}
		assigned = append(assigned, row)
	}
	return assigned, diagnostics
}

func subzoneForPoint(boundaries []snapshot.Boundary, lon, lat float64) string {
	for i := range boundaries {
		if boundaries[i].Contains(lon, lat) {
			return boundaries[i].SubzoneID
		}
	}
	return ""
}
