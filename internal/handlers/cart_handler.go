package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/services"
)

type CartHandler struct {
	Service *services.CartService
}

type cartItemRequest struct {
	ItemID string `json:"item_id"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	view, err := h.Service.GetCart(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	cart, err := h.Service.AddToCart(r.Context(), userID, req.ItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	cart, err := h.Service.RemoveFromCart(r.Context(), userID, getParam(r, "item_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(cart)
}

func (h *CartHandler) MoveToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	view, err := h.Service.MoveToWishlist(r.Context(), userID, req.ItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(view)
}
