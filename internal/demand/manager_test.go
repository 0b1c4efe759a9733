package demand

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast.sgpreschools.org/internal/appconf"
	"demandcast.sgpreschools.org/internal/models"
	"demandcast.sgpreschools.org/internal/snapshot"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := InitManager(Config{
		DataDir: filepath.Join("..", "..", "testdata"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func TestInitManagerMissingSnapshot(t *testing.T) {
	_, err := InitManager(Config{
		DataDir: filepath.Join("..", "..", "testdata", "nope"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	assert.ErrorIs(t, err, snapshot.ErrDataUnavailable)
}

func TestManagerLatestYear(t *testing.T) {
	manager := newTestManager(t)
	assert.Equal(t, 2020, manager.LatestYear())
}

func TestManagerDiagnostics(t *testing.T) {
	manager := newTestManager(t)

	assert.Equal(t, JoinDiagnostics{
		PopulationDropped:        1,
		CentresWithoutGeocode:    1,
		CentresOutsideBoundaries: 1,
		ProjectsDropped:          0,
	}, manager.Diagnostics())
}

func TestManagerCurrentDemand(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	demand, err := manager.CurrentDemand(ctx)
	require.NoError(t, err)
	require.Len(t, demand, 3)

	assert.Equal(t, models.SubzoneDemand{
		SubzoneID:     "sz-cecil",
		Name:          "Cecil",
		PlanningArea:  "Downtown Core",
		Year:          2020,
		Demand:        110,
		CentreCount:   1,
		TotalCapacity: 80,
	}, demand[0])

	assert.Equal(t, "sz-maxwell", demand[1].SubzoneID)
	assert.Equal(t, 50, demand[1].Demand)
	assert.Equal(t, 1, demand[1].CentreCount)
	assert.Equal(t, 60, demand[1].TotalCapacity)

	// Subzones with a boundary but no population rows still appear, at zero.
	assert.Equal(t, "sz-punggol", demand[2].SubzoneID)
	assert.Equal(t, 0, demand[2].Demand)
	assert.Equal(t, 0, demand[2].CentreCount)
}

func TestManagerCurrentDemandIsDeterministic(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	first, err := manager.CurrentDemand(ctx)
	require.NoError(t, err)
	second, err := manager.CurrentDemand(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestManagerDemandSeries(t *testing.T) {
	manager := newTestManager(t)

	series, err := manager.DemandSeries(context.Background(), "sz-cecil")
	require.NoError(t, err)

	assert.Equal(t, []models.YearCount{
		{Year: 2018, Count: 100},
		{Year: 2019, Count: 105},
		{Year: 2020, Count: 110},
	}, series)
}

func TestManagerFindSubzone(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	subzone, err := manager.FindSubzone(ctx, "sz-maxwell")
	require.NoError(t, err)
	require.NotNil(t, subzone)
	assert.Equal(t, "Maxwell", subzone.Name)

	subzone, err = manager.FindSubzone(ctx, "sz-unknown")
	require.NoError(t, err)
	assert.Nil(t, subzone)
}

func TestManagerNationalBirths(t *testing.T) {
	manager := newTestManager(t)

	births, err := manager.NationalBirths(context.Background())
	require.NoError(t, err)
	require.Len(t, births, 7)
	assert.Equal(t, models.YearCount{Year: 2014, Count: 30000}, births[0])
	assert.Equal(t, models.YearCount{Year: 2020, Count: 30000}, births[6])
}

func TestManagerCentres(t *testing.T) {
	manager := newTestManager(t)

	centres, err := manager.Centres(context.Background())
	require.NoError(t, err)

	// Only geocoded centres come back; the one with an unmatched postal
	// code is excluded from the heatmap listing.
	require.Len(t, centres, 3)

	byID := make(map[string]models.Centre, len(centres))
	for _, centre := range centres {
		byID[centre.ID] = centre
	}

	assert.Equal(t, "sz-cecil", byID["c-001"].SubzoneID)
	assert.Equal(t, 80, byID["c-001"].Capacity)
	assert.Equal(t, "sz-maxwell", byID["c-002"].SubzoneID)

	// Geocoded but outside every boundary: kept, with no subzone.
	assert.Equal(t, "", byID["c-004"].SubzoneID)
	assert.InDelta(t, 1.5, byID["c-004"].Lat, 0.0001)
}

func TestManagerProjectsForSubzone(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	projects, err := manager.ProjectsForSubzone(ctx, "sz-cecil")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, models.HousingProject{
		ID:             "p-001",
		SubzoneID:      "sz-cecil",
		CompletionYear: 2019,
		TotalUnits:     500,
	}, projects[0])

	projects, err = manager.ProjectsForSubzone(ctx, "sz-punggol")
	require.NoError(t, err)
	assert.Empty(t, projects)
}
