package demand

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"demandcast.sgpreschools.org/internal/models"
	"demandcast.sgpreschools.org/internal/snapshot"
	"demandcast.sgpreschools.org/snapshotdb"
)

// JoinDiagnostics counts the records dropped while joining the snapshot
// tables. Unmatched records never fail the load; they are surfaced so the
// dashboard can show how much of the input was usable.
type JoinDiagnostics struct {
	PopulationDropped        int `json:"populationDropped"`
	CentresWithoutGeocode    int `json:"centresWithoutGeocode"`
	CentresOutsideBoundaries int `json:"centresOutsideBoundaries"`
	ProjectsDropped          int `json:"projectsDropped"`
}

// Manager loads the snapshot set once, stores it in the snapshot store, and
// answers the aggregate queries the API layer needs. All state is scoped to
// the Manager instance; nothing is process-global.
type Manager struct {
	config       Config
	boundaries   []snapshot.Boundary
	DemandDB     *snapshotdb.Client
	diagnostics  JoinDiagnostics
	latestYear   int
	shutdownOnce sync.Once
}

// InitManager loads the snapshot directory named by the config and builds
// the snapshot store from it.
func InitManager(config Config) (*Manager, error) {
	tables, err := snapshot.Load(config.DataDir)
	if err != nil {
		return nil, err
	}

	client, err := snapshotdb.NewClient(snapshotdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error building snapshot store: %w", err)
	}

	manager := &Manager{
		config:     config,
		boundaries: tables.Boundaries,
		DemandDB:   client,
	}

	if err := manager.store(tables); err != nil {
		_ = client.Close()
		return nil, err
	}

	manager.latestYear, err = client.LatestPopulationYear(context.Background())
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return manager, nil
}

// store validates the cross-table joins and bulk-inserts everything into
// the snapshot store.
func (manager *Manager) store(tables *snapshot.Tables) error {
	known := make(map[string]bool, len(tables.Boundaries))
	subzones := make([]snapshotdb.Subzone, 0, len(tables.Boundaries))
	for _, boundary := range tables.Boundaries {
		known[boundary.SubzoneID] = true
		subzones = append(subzones, snapshotdb.Subzone{
			ID:           boundary.SubzoneID,
			Name:         boundary.Name,
			PlanningArea: boundary.PlanningArea,
		})
	}
	if err := snapshotdb.InsertSubzoneBatch(manager.DemandDB.DB, subzones); err != nil {
		return err
	}

	population := make([]snapshotdb.PopulationCount, 0, len(tables.Population))
	for _, row := range tables.Population {
		if !known[row.SubzoneID] {
			manager.diagnostics.PopulationDropped++
			continue
		}
		population = append(population, snapshotdb.PopulationCount{
			SubzoneID: row.SubzoneID,
			Age:       row.Age,
			Year:      row.Year,
			Count:     row.Count,
		})
	}
	if err := snapshotdb.InsertPopulationBatch(manager.DemandDB.DB, population); err != nil {
		return err
	}

	births := make([]snapshotdb.Birth, 0, len(tables.Births))
	for _, cohort := range tables.Births {
		births = append(births, snapshotdb.Birth{
			Year:   cohort.Year,
			Area:   cohort.Area,
			Births: cohort.Births,
		})
	}
	if err := snapshotdb.InsertBirthBatch(manager.DemandDB.DB, births); err != nil {
		return err
	}

	centres, centreDiagnostics := assignCentres(tables.Boundaries, tables.Centres, tables.Postal)
	manager.diagnostics.CentresWithoutGeocode = centreDiagnostics.CentresWithoutGeocode
	manager.diagnostics.CentresOutsideBoundaries = centreDiagnostics.CentresOutsideBoundaries
	if err := snapshotdb.InsertCentreBatch(manager.DemandDB.DB, centres); err != nil {
		return err
	}

	projects := make([]snapshotdb.HousingProject, 0, len(tables.Projects))
	for _, project := range tables.Projects {
		if !known[project.SubzoneID] {
			manager.diagnostics.ProjectsDropped++
			continue
		}
		projects = append(projects, snapshotdb.HousingProject{
			ID:             project.ID,
			SubzoneID:      project.SubzoneID,
			CompletionYear: project.CompletionYear,
			TotalUnits:     project.TotalUnits,
		})
	}
	return snapshotdb.InsertHousingProjectBatch(manager.DemandDB.DB, projects)
}

// Shutdown closes the snapshot store. Safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.DemandDB != nil {
			_ = manager.DemandDB.Close()
		}
	})
}

// LatestYear returns the most recent year in the population snapshot.
func (manager *Manager) LatestYear() int {
	return manager.latestYear
}

// Diagnostics returns the join summary collected while loading.
func (manager *Manager) Diagnostics() JoinDiagnostics {
	return manager.diagnostics
}

// LogStatistics logs what the manager loaded.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("snapshot data loaded",
		"subzones", len(manager.boundaries),
		"latest_year", manager.latestYear,
		"population_dropped", manager.diagnostics.PopulationDropped,
		"centres_without_geocode", manager.diagnostics.CentresWithoutGeocode,
		"centres_outside_boundaries", manager.diagnostics.CentresOutsideBoundaries,
		"projects_dropped", manager.diagnostics.ProjectsDropped,
	)
}

// CurrentDemand aggregates the latest-year demand per subzone, merged with
// centre counts and capacity. Rows are ordered by subzone ID; running it
// twice over the same snapshot yields identical output.
func (manager *Manager) CurrentDemand(ctx context.Context) ([]models.SubzoneDemand, error) {
	rows, err := manager.DemandDB.DemandBySubzone(ctx, manager.latestYear, models.AgeBandMinYears, models.AgeBandMaxYears)
	if err != nil {
		return nil, err
	}

	stats, err := manager.DemandDB.CentreStats(ctx)
	if err != nil {
		return nil, err
	}
	statsBySubzone := make(map[string]snapshotdb.CentreStatsRow, len(stats))
	for _, row := range stats {
		statsBySubzone[row.SubzoneID] = row
	}

	demand := make([]models.SubzoneDemand, 0, len(rows))
	for _, row := range rows {
		entry := models.SubzoneDemand{
			SubzoneID:    row.SubzoneID,
			Name:         row.Name,
			PlanningArea: row.PlanningArea,
			Year:         manager.latestYear,
			Demand:       row.Demand,
		}
		if stat, ok := statsBySubzone[row.SubzoneID]; ok {
			entry.CentreCount = stat.CentreCount
			entry.TotalCapacity = stat.TotalCapacity
		}
		demand = append(demand, entry)
	}
	return demand, nil
}

// DemandSeries returns the historical yearly demand for one subzone.
func (manager *Manager) DemandSeries(ctx context.Context, subzoneID string) ([]models.YearCount, error) {
	return manager.DemandDB.DemandSeries(ctx, subzoneID, models.AgeBandMinYears, models.AgeBandMaxYears)
}

// FindSubzone returns the subzone with the given ID, or nil if unknown.
func (manager *Manager) FindSubzone(ctx context.Context, id string) (*models.Subzone, error) {
	row, err := manager.DemandDB.GetSubzone(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &models.Subzone{
		ID:           row.ID,
		Name:         row.Name,
		PlanningArea: row.PlanningArea,
	}, nil
}

// NationalBirths returns the national birth cohort series.
func (manager *Manager) NationalBirths(ctx context.Context) ([]models.YearCount, error) {
	return manager.DemandDB.NationalBirths(ctx)
}

// Centres returns every centre with a resolved location, for the heatmap.
func (manager *Manager) Centres(ctx context.Context) ([]models.Centre, error) {
	rows, err := manager.DemandDB.GeocodedCentres(ctx)
	if err != nil {
		return nil, err
	}
	centres := make([]models.Centre, 0, len(rows))
	for _, row := range rows {
		centres = append(centres, models.Centre{
			ID:         row.ID,
			Name:       row.Name,
			PostalCode: row.PostalCode,
			Capacity:   row.Capacity,
			Lat:        row.Lat,
			Lon:        row.Lon,
			SubzoneID:  row.SubzoneID,
		})
	}
	return centres, nil
}

// ProjectsForSubzone returns the housing projects planned in one subzone.
func (manager *Manager) ProjectsForSubzone(ctx context.Context, subzoneID string) ([]models.HousingProject, error) {
	rows, err := manager.DemandDB.ProjectsForSubzone(ctx, subzoneID)
	if err != nil {
		return nil, err
	}
	projects := make([]models.HousingProject, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, models.HousingProject{
			ID:             row.ID,
			SubzoneID:      row.SubzoneID,
			CompletionYear: row.CompletionYear,
			TotalUnits:     row.TotalUnits,
		})
	}
	return projects, nil
}
