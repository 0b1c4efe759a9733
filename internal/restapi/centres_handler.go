package restapi

import (
	"net/http"

	"demandcast.sgpreschools.org/internal/models"
)

// centresHandler serves the geocoded centre listing the dashboard renders
// as a heatmap layer.
func (api *RestAPI) centresHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	centres, err := api.DemandManager.Centres(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(centres, models.NewEmptyReferences()))
}
