package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/services"
)

type CatalogHandler struct {
	Service *services.CatalogService
}

// Browse serves the storefront grid. Filters arrive as query parameters,
// POST with a JSON BrowseRequest works the same for clients that prefer it.
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	var req models.BrowseRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
	} else {
		req = models.BrowseRequest{
			Filter: models.FilterSpec{
				Genres:    getListParam(r, "genre"),
				Features:  getListParam(r, "feature"),
				Types:     getListParam(r, "type"),
				Platforms: getListParam(r, "platform"),
				Price:     getParam(r, "price"),
			},
			Search:    getParam(r, "search"),
			Page:      getIntParam(r, "page"),
			PageSize:  getIntParam(r, "page_size"),
			Signature: getParam(r, "sig"),
		}
	}

	resp, err := h.Service.Browse(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.GetItem(r.Context(), getParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(item)
}

func (h *CatalogHandler) FreeItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.FreeItems(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *CatalogHandler) PopularGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Service.PopularGenres(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(genres)
}
