package snapshotdb

import (
	"database/sql"
	"fmt"
)

// InsertSubzoneBatch adds subzones to the store
func InsertSubzoneBatch(db *sql.DB, subzones []Subzone) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO subzones (
			subzone_id, name, planning_area
		) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, subzone := range subzones {
		_, err := stmt.Exec(subzone.ID, subzone.Name, subzone.PlanningArea)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting subzone: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertPopulationBatch adds population counts to the store
func InsertPopulationBatch(db *sql.DB, counts []PopulationCount) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO population (
			subzone_id, age, year, count
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, count := range counts {
		_, err := stmt.Exec(count.SubzoneID, count.Age, count.Year, count.Count)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting population count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertBirthBatch adds birth cohorts to the store
func InsertBirthBatch(db *sql.DB, births []Birth) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO births (
			year, area, births
		) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, birth := range births {
		_, err := stmt.Exec(birth.Year, birth.Area, birth.Births)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting birth cohort: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertCentreBatch adds preschool centres to the store
func InsertCentreBatch(db *sql.DB, centres []Centre) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO centres (
			centre_id, name, postal_code, capacity, lat, lon, subzone_id
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, centre := range centres {
		_, err := stmt.Exec(
			centre.ID, centre.Name, centre.PostalCode, centre.Capacity,
			centre.Lat, centre.Lon, centre.SubzoneID,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting centre: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertHousingProjectBatch adds housing projects to the store
func InsertHousingProjectBatch(db *sql.DB, projects []HousingProject) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO housing_projects (
			project_id, subzone_id, completion_year, total_units
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, project := range projects {
		_, err := stmt.Exec(project.ID, project.SubzoneID, project.CompletionYear, project.TotalUnits)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting housing project: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
