package favorite

import (
	"errors"
	"net/http"

	"cardapi/internal/card"
	"cardapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type mutationResponse struct {
	Message string `json:"message"`
	CardID  string `json:"card_id"`
}

// Add handles POST /favorites/{id}
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")
	if cardID == "" {
		http.NotFound(w, r)
		return
	}

	if err := h.service.Add(r.Context(), cardID); err != nil {
		if errors.Is(err, ErrAlreadyFavorited) {
			httpx.JSON(w, http.StatusConflict, mutationResponse{
				Message: "card already favorited",
				CardID:  cardID,
			})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, mutationResponse{
		Message: "card favorited",
		CardID:  cardID,
	})
}

// Remove handles DELETE /favorites/{id}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")
	if cardID == "" {
		http.NotFound(w, r)
		return
	}

	if err := h.service.Remove(r.Context(), cardID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, mutationResponse{
		Message: "card unfavorited",
		CardID:  cardID,
	})
}

// List handles GET /favorites
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if cards == nil {
		cards = []card.Card{}
	}
	httpx.JSON(w, http.StatusOK, card.ListResponse{
		Count:   len(cards),
		Results: cards,
	})
}
