package card

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cardapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type listParams struct {
	Rarity string
	Search string
	Sort   string `validate:"omitempty,oneof=name usd_price rarity released_at"`
	Order  string `validate:"omitempty,oneof=asc desc"`
	Page   int    `validate:"min=1"`
	Limit  int    `validate:"min=1,max=500"`
}

// ListResponse is the contract shape of the list endpoints. Count is the
// number of records in this page, not the total matching the filter.
type ListResponse struct {
	Count   int    `json:"count"`
	Results []Card `json:"results"`
}

// List handles GET /cards
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := listParams{
		Rarity: query.Get("rarity"),
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
		Order:  strings.ToLower(query.Get("order")),
		Page:   1,
		Limit:  DefaultLimit,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters",
				[]httpx.ErrorDetail{{Field: "page", Message: "page must be an integer"}})
			return
		}
		params.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters",
				[]httpx.ErrorDetail{{Field: "limit", Message: "limit must be an integer"}})
			return
		}
		params.Limit = limit
	}

	if details := httpx.ValidateStruct(params); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters", details)
		return
	}

	results, err := h.service.List(r.Context(), Query{
		Rarity: params.Rarity,
		Search: params.Search,
		Sort:   params.Sort,
		Order:  params.Order,
		Limit:  params.Limit,
		Offset: (params.Page - 1) * params.Limit,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error(), nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if results == nil {
		results = []Card{}
	}
	httpx.JSON(w, http.StatusOK, ListResponse{
		Count:   len(results),
		Results: results,
	})
}

// GetByID handles GET /cards/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Card not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, c)
}
