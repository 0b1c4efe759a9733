package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// withAPIKey rejects requests that do not carry a valid API key.
func (api *RestAPI) withAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		next(w, r)
	}
}

// Routes builds the router with all API endpoints, wrapped in request
// logging and CORS for the browser-hosted dashboard.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/demand/subzones.json", api.withAPIKey(api.subzonesHandler))
	router.HandlerFunc(http.MethodGet, "/api/demand/centres.json", api.withAPIKey(api.centresHandler))
	router.HandlerFunc(http.MethodGet, "/api/demand/trend/:id", api.withAPIKey(api.trendHandler))
	router.HandlerFunc(http.MethodGet, "/api/demand/forecast/:id", api.withAPIKey(api.forecastHandler))
	router.HandlerFunc(http.MethodGet, "/api/demand/overview/:id", api.withAPIKey(api.overviewHandler))

	corsMiddleware := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	})

	handler := NewRequestLoggingMiddleware(api.Logger)(router)
	return corsMiddleware.Handler(handler)
}
