package restapi

import (
	"net/http"

	"demandcast.sgpreschools.org/internal/forecast"
	"demandcast.sgpreschools.org/internal/models"
	"demandcast.sgpreschools.org/internal/utils"
)

func (api *RestAPI) forecastHandler(w http.ResponseWriter, r *http.Request) {
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

	key := cacheKey("forecast", subzone.ID, strategy.Name())
	if cached, found := api.resultCache.Get(key); found {
		api.sendResponse(w, r, models.NewEntryResponse(cached.(models.ForecastData), references))
		return
	}

	entry, err := api.computeForecast(r, subzone.ID, strategy)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.resultCache.SetDefault(key, entry)
	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}

// computeForecast runs the forecast engine over the subzone's historical
// series and the national birth cohorts.
func (api *RestAPI) computeForecast(r *http.Request, subzoneID string, strategy forecast.Strategy) (models.ForecastData, error) {
	ctx := r.Context()

	series, err := api.DemandManager.DemandSeries(ctx, subzoneID)
	if err != nil {
		return models.ForecastData{}, err
	}

	births, err := api.DemandManager.NationalBirths(ctx)
	if err != nil {
		return models.ForecastData{}, err
	}

	current := 0
	if len(series) > 0 {
		current = series[len(series)-1].Count
	}

	engine := forecast.NewEngine(strategy)
	entries := engine.Forecast(subzoneID, api.DemandManager.LatestYear(), current, series, births)

	return models.ForecastData{
		SubzoneID: subzoneID,
		Strategy:  strategy.Name(),
		Entries:   entries,
	}, nil
}
