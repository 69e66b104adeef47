package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/services"
)

type WishlistHandler struct {
	Service *services.CartService
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	items, err := h.Service.Wishlist(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Service.AddToWishlist(r.Context(), userID, req.ItemID); err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := h.Service.Wishlist(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.Service.RemoveFromWishlist(r.Context(), userID, getParam(r, "item_id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
