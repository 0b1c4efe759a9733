package snapshotdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"demandcast.sgpreschools.org/internal/models"
)

// SubzoneDemandRow is one subzone's aggregated demand for a single year.
type SubzoneDemandRow struct {
	SubzoneID    string
	Name         string
	PlanningArea string
	Demand       int
}

// CentreStatsRow is the centre count and total capacity for one subzone.
type CentreStatsRow struct {
	SubzoneID     string
	CentreCount   int
	TotalCapacity int
}

// LatestPopulationYear returns the most recent year present in the
// population table, or 0 when the table is empty.
func (c *Client) LatestPopulationYear(ctx context.Context) (int, error) {
	var year sql.NullInt64
	err := c.DB.QueryRowContext(ctx, `SELECT MAX(year) FROM population;`).Scan(&year)
	if err != nil {
		return 0, fmt.Errorf("error querying latest population year: %w", err)
	}
	if !year.Valid {
		return 0, nil
	}
	return int(year.Int64), nil
}

// DemandBySubzone aggregates the number of children in the [minAge, maxAge]
// band per subzone for the given year. Every subzone appears in the result,
// with zero demand when it has no matching population rows. Rows are
// ordered by subzone ID so repeated runs iterate stably.
func (c *Client) DemandBySubzone(ctx context.Context, year, minAge, maxAge int) ([]SubzoneDemandRow, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT s.subzone_id, s.name, s.planning_area, COALESCE(SUM(p.count), 0)
		FROM subzones s
		LEFT JOIN population p
			ON p.subzone_id = s.subzone_id
			AND p.year = ?
			AND p.age BETWEEN ? AND ?
		GROUP BY s.subzone_id, s.name, s.planning_area
		ORDER BY s.subzone_id;
	`, year, minAge, maxAge)
	if err != nil {
		return nil, fmt.Errorf("error querying demand by subzone: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var result []SubzoneDemandRow
	for rows.Next() {
		var row SubzoneDemandRow
		if err := rows.Scan(&row.SubzoneID, &row.Name, &row.PlanningArea, &row.Demand); err != nil {
			return nil, fmt.Errorf("error scanning demand row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// DemandSeries returns the yearly counts of children in the [minAge, maxAge]
// band for one subzone, ordered by year.
func (c *Client) DemandSeries(ctx context.Context, subzoneID string, minAge, maxAge int) ([]models.YearCount, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT year, SUM(count)
		FROM population
		WHERE subzone_id = ? AND age BETWEEN ? AND ?
		GROUP BY year
		ORDER BY year;
	`, subzoneID, minAge, maxAge)
	if err != nil {
		return nil, fmt.Errorf("error querying demand series: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var series []models.YearCount
	for rows.Next() {
		var point models.YearCount
		if err := rows.Scan(&point.Year, &point.Count); err != nil {
			return nil, fmt.Errorf("error scanning series row: %w", err)
		}
		series = append(series, point)
	}
	return series, rows.Err()
}

// NationalBirths sums birth cohorts across all areas per year, ordered by year.
func (c *Client) NationalBirths(ctx context.Context) ([]models.YearCount, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT year, SUM(births)
		FROM births
		GROUP BY year
		ORDER BY year;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying national births: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var series []models.YearCount
	for rows.Next() {
		var point models.YearCount
		if err := rows.Scan(&point.Year, &point.Count); err != nil {
			return nil, fmt.Errorf("error scanning births row: %w", err)
		}
		series = append(series, point)
	}
	return series, rows.Err()
}

// GetSubzone returns the subzone with the given ID, or nil if it is unknown.
func (c *Client) GetSubzone(ctx context.Context, id string) (*Subzone, error) {
	var subzone Subzone
	err := c.DB.QueryRowContext(ctx, `
		SELECT subzone_id, name, planning_area
		FROM subzones
		WHERE subzone_id = ?;
	`, id).Scan(&subzone.ID, &subzone.Name, &subzone.PlanningArea)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying subzone: %w", err)
	}
	return &subzone, nil
}

// CentreStats returns per-subzone centre counts and total capacity for
// centres that were assigned to a subzone.
func (c *Client) CentreStats(ctx context.Context) ([]CentreStatsRow, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT subzone_id, COUNT(*), SUM(capacity)
		FROM centres
		WHERE subzone_id <> ''
		GROUP BY subzone_id
		ORDER BY subzone_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying centre stats: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stats []CentreStatsRow
	for rows.Next() {
		var row CentreStatsRow
		if err := rows.Scan(&row.SubzoneID, &row.CentreCount, &row.TotalCapacity); err != nil {
			return nil, fmt.Errorf("error scanning centre stats row: %w", err)
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

// GeocodedCentres returns all centres that have a resolved location,
// ordered by centre ID.
func (c *Client) GeocodedCentres(ctx context.Context) ([]Centre, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT centre_id, name, postal_code, capacity, lat, lon, subzone_id
		FROM centres
		WHERE lat <> 0 OR lon <> 0
		ORDER BY centre_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying centres: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var centres []Centre
	for rows.Next() {
		var centre Centre
		err := rows.Scan(
			&centre.ID, &centre.Name, &centre.PostalCode, &centre.Capacity,
			&centre.Lat, &centre.Lon, &centre.SubzoneID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning centre row: %w", err)
		}
		centres = append(centres, centre)
	}
	return centres, rows.Err()
}

// ProjectsForSubzone returns the housing projects planned in one subzone.
func (c *Client) ProjectsForSubzone(ctx context.Context, subzoneID string) ([]HousingProject, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT project_id, subzone_id, completion_year, total_units
		FROM housing_projects
		WHERE subzone_id = ?
		ORDER BY project_id;
	`, subzoneID)
	if err != nil {
		return nil, fmt.Errorf("error querying housing projects: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var projects []HousingProject
	for rows.Next() {
		var project HousingProject
		err := rows.Scan(&project.ID, &project.SubzoneID, &project.CompletionYear, &project.TotalUnits)
		if err != nil {
			return nil, fmt.Errorf("error scanning housing project row: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
