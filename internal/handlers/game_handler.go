package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/services"
)

type GameHandler struct {
	Service *services.GameService
}

func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var game models.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateGame(r.Context(), game)
	if err != nil {
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(created)
}

func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.Service.GetGames(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(games)
}

func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	game, err := h.Service.GetGameByID(r.Context(), getParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(game)
}

func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var game models.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	game.ID = getParam(r, "id")
	updated, err := h.Service.UpdateGame(r.Context(), game)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteGame(r.Context(), getParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
