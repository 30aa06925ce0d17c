package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"cardapi/internal/card"
)

// Float64 returns a pointer to v, for nullable price fields.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v, for nullable URL fields.
func String(v string) *string { return &v }

// TestCardMythic is a mock mythic card for testing.
var TestCardMythic = card.Card{
	ID:              "card-a",
	Name:            "Aetherworks Marvel",
	ReleasedAt:      "2016-09-30",
	SetName:         "Kaladesh",
	CollectorNumber: "193",
	Rarity:          "mythic",
	TypeLine:        "Legendary Artifact",
	USDPrice:        Float64(12.50),
	ImageURL:        String("https://cards.example/card-a.jpg"),
	ScryfallURI:     String("https://scryfall.com/card/kld/193"),
}

// TestCardRare is a mock rare card for testing.
var TestCardRare = card.Card{
	ID:              "card-b",
	Name:            "Blooming Marsh",
	ReleasedAt:      "2016-09-30",
	SetName:         "Kaladesh",
	CollectorNumber: "243",
	Rarity:          "rare",
	TypeLine:        "Land",
	USDPrice:        Float64(3.00),
	ScryfallURI:     String("https://scryfall.com/card/kld/243"),
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds the recorded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as JSON.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
