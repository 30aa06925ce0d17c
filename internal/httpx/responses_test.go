package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	payload := map[string]interface{}{"count": 2, "results": []string{"a", "b"}}

	JSON(w, http.StatusOK, payload)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if decoded["count"] != float64(2) {
		t.Errorf("Expected count 2, got %v", decoded["count"])
	}
}

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, map[string]string{"id": "card-a"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response SuccessResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success to be true")
	}
	data, ok := response.Data.(map[string]interface{})
	if !ok || data["id"] != "card-a" {
		t.Errorf("Expected data with id card-a, got %+v", response.Data)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{
		{Field: "sort", Message: "sort must be one of: name usd_price rarity released_at"},
	}

	JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters", details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Success {
		t.Error("Expected success to be false")
	}
	if response.Error.Code != "INVALID_QUERY" {
		t.Errorf("Expected code INVALID_QUERY, got %s", response.Error.Code)
	}
	if len(response.Error.Details) != 1 || response.Error.Details[0].Field != "sort" {
		t.Errorf("Expected sort detail, got %+v", response.Error.Details)
	}
}
