package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	testCode := http.StatusCreated
	testData := map[string]string{"key": "value"}
	testText := "Resource Created"

	currentTimeBeforeCall := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(testCode, testData, testText)
	currentTimeAfterCall := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, testCode, response.Code, "Response code should match input")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, testText, response.Text, "Response text should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.GreaterOrEqual(t, response.CurrentTime, currentTimeBeforeCall)
	assert.LessOrEqual(t, response.CurrentTime, currentTimeAfterCall)
}

func TestNewEntryResponse(t *testing.T) {
	entry := NewForecastEntry("sz-001", 2026, 512, false)
	references := NewEmptyReferences()
	references.Subzones = append(references.Subzones, NewSubzoneReference("sz-001", "Cecil", "Downtown Core"))

	response := NewEntryResponse(entry, references)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.InDelta(t, time.Now().UnixNano()/int64(time.Millisecond), response.CurrentTime, 100)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, entry, responseData["entry"])
	assert.Equal(t, references, responseData["references"])
}

func TestNewListResponse(t *testing.T) {
	list := []SubzoneDemand{
		{SubzoneID: "sz-001", Name: "Cecil", Year: 2020, Demand: 340},
		{SubzoneID: "sz-002", Name: "Maxwell", Year: 2020, Demand: 122},
	}
	references := NewEmptyReferences()

	response := NewListResponse(list, references)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)

	responseData, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, list, responseData["list"])
	assert.Equal(t, references, responseData["references"])
	assert.False(t, responseData["limitExceeded"].(bool), "limitExceeded should be false")
}

func TestResponseModelJSONRoundTrip(t *testing.T) {
	response := ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: 1746324484528,
		Data:        map[string]string{"test": "data"},
		Text:        "Test Message",
		Version:     2,
	}

	jsonData, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal ResponseModel to JSON: %v", err)
	}

	var unmarshaled ResponseModel
	err = json.Unmarshal(jsonData, &unmarshaled)
	if err != nil {
		t.Fatalf("Failed to unmarshal JSON to ResponseModel: %v", err)
	}

	if unmarshaled.Code != response.Code {
		t.Errorf("Expected code %d, got %d", response.Code, unmarshaled.Code)
	}
	if unmarshaled.CurrentTime != response.CurrentTime {
		t.Errorf("Expected currentTime %d, got %d", response.CurrentTime, unmarshaled.CurrentTime)
	}
	if unmarshaled.Text != response.Text {
		t.Errorf("Expected text %s, got %s", response.Text, unmarshaled.Text)
	}
}

func TestForecastEntryJSONFieldNames(t *testing.T) {
	entry := NewForecastEntry("sz-010", 2027, 98, true)

	jsonData, err := json.Marshal(entry)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	err = json.Unmarshal(jsonData, &decoded)
	assert.NoError(t, err)

	assert.Equal(t, "sz-010", decoded["subzoneId"])
	assert.Equal(t, float64(2027), decoded["year"])
	assert.Equal(t, float64(98), decoded["demand"])
	assert.Equal(t, true, decoded["lowConfidence"])
}
