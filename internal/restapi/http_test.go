package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"demandcast.sgpreschools.org/internal/app"
	"demandcast.sgpreschools.org/internal/appconf"
	"demandcast.sgpreschools.org/internal/demand"
	"demandcast.sgpreschools.org/internal/logging"
	"demandcast.sgpreschools.org/internal/models"
)

// createTestApi creates a RestAPI instance with a demand manager initialized
// from the testdata snapshot for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	demandConfig := demand.Config{
		DataDir: filepath.Join("..", "..", "testdata"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	}
	demandManager, err := demand.InitManager(demandConfig)
	require.NoError(t, err)
	t.Cleanup(demandManager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:      appconf.Test,
			ApiKeys:  []string{"TEST"},
			Strategy: "linear",
		},
		Logger:        logging.NewStructuredLogger(io.Discard, slog.LevelError),
		DemandManager: demandManager,
	}

	return NewRestAPI(app)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryFromModel pulls the entry map out of an envelope's data section.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func intsFromJSON(t *testing.T, raw interface{}) []int {
	values, ok := raw.([]interface{})
	require.True(t, ok)
	ints := make([]int, 0, len(values))
	for _, value := range values {
		number, ok := value.(float64)
		require.True(t, ok)
		ints = append(ints, int(number))
	}
	return ints
}
