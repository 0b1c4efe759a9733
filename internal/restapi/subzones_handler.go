package restapi

import (
	"net/http"

	"demandcast.sgpreschools.org/internal/demand"
	"demandcast.sgpreschools.org/internal/models"
)

func (api *RestAPI) subzonesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	currentDemand, err := api.DemandManager.CurrentDemand(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := struct {
		Year        int                    `json:"year"`
		Subzones    []models.SubzoneDemand `json:"subzones"`
		Diagnostics demand.JoinDiagnostics `json:"diagnostics"`
	}{
		Year:        api.DemandManager.LatestYear(),
		Subzones:    currentDemand,
		Diagnostics: api.DemandManager.Diagnostics(),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
