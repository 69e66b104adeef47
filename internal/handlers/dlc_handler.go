package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/services"
)

type DLCHandler struct {
	Service *services.DLCService
}

func (h *DLCHandler) CreateDLC(w http.ResponseWriter, r *http.Request) {
	var dlc models.DLC
	if err := json.NewDecoder(r.Body).Decode(&dlc); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateDLC(r.Context(), dlc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(created)
}

func (h *DLCHandler) GetDLCs(w http.ResponseWriter, r *http.Request) {
	dlcs, err := h.Service.GetDLCs(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(dlcs)
}

func (h *DLCHandler) GetDLCByID(w http.ResponseWriter, r *http.Request) {
	dlc, err := h.Service.GetDLCByID(r.Context(), getParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(dlc)
}

func (h *DLCHandler) UpdateDLC(w http.ResponseWriter, r *http.Request) {
	var dlc models.DLC
	if err := json.NewDecoder(r.Body).Decode(&dlc); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	dlc.ID = getParam(r, "id")
	updated, err := h.Service.UpdateDLC(r.Context(), dlc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *DLCHandler) DeleteDLC(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDLC(r.Context(), getParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
