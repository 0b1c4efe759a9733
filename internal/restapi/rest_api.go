package restapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"demandcast.sgpreschools.org/internal/app"
	"demandcast.sgpreschools.org/internal/forecast"
)

// Snapshots are immutable for the lifetime of the process, so computed
// forecasts can be cached generously.
const (
	resultCacheDuration = time.Hour
	resultCacheCleanup  = 2 * time.Hour
)

type RestAPI struct {
	*app.Application
	resultCache *cache.Cache
}

// NewRestAPI creates a new RestAPI instance with an initialized result cache
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		resultCache: cache.New(resultCacheDuration, resultCacheCleanup),
	}
}

// cacheKey builds a cache key from a prefix and request parameters
func cacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}

// strategyFor resolves the forecast strategy for a request: the strategy
// query parameter when present, the configured default otherwise.
func (api *RestAPI) strategyFor(r *http.Request) (forecast.Strategy, error) {
	name := r.URL.Query().Get("strategy")
	if name == "" {
		name = api.Config.Strategy
	}
	return forecast.StrategyFromName(name)
}
