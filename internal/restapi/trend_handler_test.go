package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/demand/trend/sz-cecil.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)

	entry := entryFromModel(t, model)
	assert.Equal(t, "sz-cecil", entry["subzoneId"])

	series, ok := entry["series"].([]interface{})
	require.True(t, ok)
	require.Len(t, series, 3)

	first, ok := series[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2018), first["year"])
	assert.Equal(t, float64(100), first["count"])

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	subzones, ok := refs["subzones"].([]interface{})
	require.True(t, ok)
	require.Len(t, subzones, 1)
	reference, ok := subzones[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Cecil", reference["name"])
	assert.Equal(t, "Downtown Core", reference["planningArea"])
}

func TestTrendHandlerEmptySeries(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/demand/trend/sz-punggol.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	series, ok := entry["series"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, series)
}

func TestTrendHandlerUnknownSubzone(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/demand/trend/sz-nowhere.json?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestTrendHandlerRejectsMalformedID(t *testing.T) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/demand/trend/bad%20id.json?key=TEST")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
