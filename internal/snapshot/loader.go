package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"demandcast.sgpreschools.org/internal/models"
)

// PopulationRow is one pre-cleaned census count: children of a single age in
// a subzone for one calendar year.
type PopulationRow struct {
	SubzoneID string
	Age       int
	Year      int
	Count     int
}

// CentreRow is one preschool centre listing before geocoding.
type CentreRow struct {
	ID         string
	Name       string
	PostalCode string
	Capacity   int
}

// PostalGeocode maps a postal code to a coordinate.
type PostalGeocode struct {
	PostalCode string
	Lat        float64
	Lon        float64
}

// Tables holds every validated in-memory snapshot table, keyed by field
// rather than by name so callers cannot ask for a table that does not exist.
type Tables struct {
	Boundaries []Boundary
	Population []PopulationRow
	Births     []models.BirthCohort
	Centres    []CentreRow
	Postal     []PostalGeocode
	Projects   []models.HousingProject
}

// Load reads the snapshot set in dir according to its manifest and returns
// the validated tables. Any missing or malformed file fails the whole load
// with ErrDataUnavailable; a header that differs from the declared schema
// fails with a SchemaError.
func Load(dir string) (*Tables, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	tables := &Tables{}

	tables.Population, err = loadPopulation(dir, manifest.Spec(TablePopulation))
	if err != nil {
		return nil, err
	}

	tables.Births, err = loadBirths(dir, manifest.Spec(TableBirths))
	if err != nil {
		return nil, err
	}

	tables.Centres, err = loadCentres(dir, manifest.Spec(TableCentres))
	if err != nil {
		return nil, err
	}

	tables.Postal, err = loadPostal(dir, manifest.Spec(TablePostal))
	if err != nil {
		return nil, err
	}

	tables.Projects, err = loadProjects(dir, manifest.Spec(TableProjects))
	if err != nil {
		return nil, err
	}

	tables.Boundaries, err = loadBoundaries(dir, manifest.Spec(TableBoundaries))
	if err != nil {
		return nil, err
	}

	return tables, nil
}

// readCSV reads a CSV table and checks its header against the declared
// schema. It returns the data rows and a column-name-to-index map.
func readCSV(dir string, spec *TableSpec) ([][]string, map[string]int, error) {
	f, err := os.Open(filepath.Join(dir, spec.File))
	if err != nil {
		return nil, nil, unavailable(spec.Name, err)
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, unavailable(spec.Name, err)
	}
	if len(records) == 0 {
		return nil, nil, unavailable(spec.Name, fmt.Errorf("file %q is empty", spec.File))
	}

	header := records[0]
	if !schemaMatches(spec.Columns, header) {
		return nil, nil, &SchemaError{Table: spec.Name, Want: spec.Columns, Got: header}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	return records[1:], cols, nil
}

func schemaMatches(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

func loadPopulation(dir string, spec *TableSpec) ([]PopulationRow, error) {
	rows, cols, err := readCSV(dir, spec)
	if err != nil {
		return nil, err
	}

	population := make([]PopulationRow, 0, len(rows))
	for _, row := range rows {
		age, err := strconv.Atoi(row[cols["age"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad age %q: %w", row[cols["age"]], err))
		}
		year, err := strconv.Atoi(row[cols["year"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad year %q: %w", row[cols["year"]], err))
		}
		count, err := strconv.Atoi(row[cols["count"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad count %q: %w", row[cols["count"]], err))
		}
		population = append(population, PopulationRow{
			SubzoneID: row[cols["subzone_id"]],
			Age:       age,
			Year:      year,
			Count:     count,
		})
	}
	return population, nil
}

func loadBirths(dir string, spec *TableSpec) ([]models.BirthCohort, error) {
	rows, cols, err := readCSV(dir, spec)
	if err != nil {
		return nil, err
	}

	births := make([]models.BirthCohort, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(row[cols["year"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad year %q: %w", row[cols["year"]], err))
		}
		count, err := strconv.Atoi(row[cols["births"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad births %q: %w", row[cols["births"]], err))
		}
		births = append(births, models.BirthCohort{
			Year:   year,
			Area:   row[cols["area"]],
			Births: count,
		})
	}
	return births, nil
}

func loadCentres(dir string, spec *TableSpec) ([]CentreRow, error) {
	rows, cols, err := readCSV(dir, spec)
	if err != nil {
		return nil, err
	}

	centres := make([]CentreRow, 0, len(rows))
	for _, row := range rows {
		capacity, err := strconv.Atoi(row[cols["capacity"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad capacity %q: %w", row[cols["capacity"]], err))
		}
		centres = append(centres, CentreRow{
			ID:         row[cols["centre_id"]],
			Name:       row[cols["centre_name"]],
			PostalCode: row[cols["postal_code"]],
			Capacity:   capacity,
		})
	}
	return centres, nil
}

func loadPostal(dir string, spec *TableSpec) ([]PostalGeocode, error) {
	rows, cols, err := readCSV(dir, spec)
	if err != nil {
		return nil, err
	}

	geocodes := make([]PostalGeocode, 0, len(rows))
	for _, row := range rows {
		lat, err := strconv.ParseFloat(row[cols["lat"]], 64)
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad lat %q: %w", row[cols["lat"]], err))
		}
		lon, err := strconv.ParseFloat(row[cols["lon"]], 64)
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad lon %q: %w", row[cols["lon"]], err))
		}
		geocodes = append(geocodes, PostalGeocode{
			PostalCode: row[cols["postal_code"]],
			Lat:        lat,
			Lon:        lon,
		})
	}
	return geocodes, nil
}

func loadProjects(dir string, spec *TableSpec) ([]models.HousingProject, error) {
	rows, cols, err := readCSV(dir, spec)
	if err != nil {
		return nil, err
	}

	projects := make([]models.HousingProject, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(row[cols["completion_year"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad completion_year %q: %w", row[cols["completion_year"]], err))
		}
		units, err := strconv.Atoi(row[cols["total_units"]])
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("bad total_units %q: %w", row[cols["total_units"]], err))
		}
		projects = append(projects, models.HousingProject{
			ID:             row[cols["project_id"]],
			SubzoneID:      row[cols["subzone_id"]],
			CompletionYear: year,
			TotalUnits:     units,
		})
	}
	return projects, nil
}
