package restapi

import (
	"net/http"

	"demandcast.sgpreschools.org/internal/forecast"
	"demandcast.sgpreschools.org/internal/models"
	"demandcast.sgpreschools.org/internal/utils"
)

// overviewHandler combines observed history, the projection, and the
// housing-project uplift into one table: one column per year, with
// current, upcoming, and total demand rows.
func (api *RestAPI) overviewHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	strategy, err := api.strategyFor(r)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"strategy": {err.Error()}})
		return
	}

	ctx := r.Context()

	subzone, err := api.DemandManager.FindSubzone(ctx, id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if subzone == nil {
		api.notFoundResponse(w, r)
		return
	}

	references := models.NewEmptyReferences()
	references.Subzones = append(references.Subzones,
		models.NewSubzoneReference(subzone.ID, subzone.Name, subzone.PlanningArea))

	key := cacheKey("overview", subzone.ID, strategy.Name())
	if cached, found := api.resultCache.Get(key); found {
		api.sendResponse(w, r, models.NewEntryResponse(cached.(models.OverviewData), references))
		return
	}

	series, err := api.DemandManager.DemandSeries(ctx, subzone.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	forecastData, err := api.computeForecast(r, subzone.ID, strategy)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	projects, err := api.DemandManager.ProjectsForSubzone(ctx, subzone.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := buildOverview(subzone.ID, series, forecastData.Entries, projects)
	api.resultCache.SetDefault(key, entry)
	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}

func buildOverview(subzoneID string, series []models.YearCount, projection []models.ForecastEntry, projects []models.HousingProject) models.OverviewData {
	entry := models.OverviewData{
		SubzoneID: subzoneID,
		Years:     []int{},
		Current:   []int{},
		Upcoming:  []int{},
		Total:     []int{},
	}

	appendYear := func(year, current int) {
		upcoming := forecast.Uplift(projects, year)
		entry.Years = append(entry.Years, year)
		entry.Current = append(entry.Current, current)
		entry.Upcoming = append(entry.Upcoming, upcoming)
		entry.Total = append(entry.Total, current+upcoming)
	}

	for _, point := range series {
		appendYear(point.Year, point.Count)
	}
	for _, projected := range projection {
		appendYear(projected.Year, projected.Demand)
	}

	return entry
}
