package restapi

import (
	"net/http"

	"demandcast.sgpreschools.org/internal/models"
	"demandcast.sgpreschools.org/internal/utils"
)

func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
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

	series, err := api.DemandManager.DemandSeries(ctx, id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if series == nil {
		series = []models.YearCount{}
	}

	entry := models.TrendData{
		SubzoneID: subzone.ID,
		Series:    series,
	}

	references := models.NewEmptyReferences()
	references.Subzones = append(references.Subzones,
		models.NewSubzoneReference(subzone.ID, subzone.Name, subzone.PlanningArea))

	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
