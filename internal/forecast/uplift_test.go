package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"demandcast.sgpreschools.org/internal/models"
)

func TestUpliftWindow(t *testing.T) {
	projects := []models.HousingProject{
		{ID: "p-001", SubzoneID: "sz-cecil", CompletionYear: 2019, TotalUnits: 500},
	}

	// Occupancy starts two years after completion and spreads over five.
	assert.Equal(t, 0, Uplift(projects, 2020))
	assert.Equal(t, 100, Uplift(projects, 2021))
	assert.Equal(t, 100, Uplift(projects, 2025))
	assert.Equal(t, 0, Uplift(projects, 2026))
}

func TestUpliftOverlappingProjects(t *testing.T) {
	projects := []models.HousingProject{
		{ID: "p-001", SubzoneID: "sz-cecil", CompletionYear: 2019, TotalUnits: 500},
		{ID: "p-002", SubzoneID: "sz-cecil", CompletionYear: 2022, TotalUnits: 250},
	}

	assert.Equal(t, 100, Uplift(projects, 2023))
	assert.Equal(t, 150, Uplift(projects, 2024))
	assert.Equal(t, 150, Uplift(projects, 2025))
	assert.Equal(t, 50, Uplift(projects, 2026))
	assert.Equal(t, 50, Uplift(projects, 2028))
	assert.Equal(t, 0, Uplift(projects, 2029))
}

func TestUpliftNoProjects(t *testing.T) {
	assert.Equal(t, 0, Uplift(nil, 2024))
}
