package handlers

import (
	"encoding/json"
	"net/http"

	"gamestoreBack/internal/services"
)

type OrderHandler struct {
	OrderService   *services.OrderService
	LibraryService *services.LibraryService
}

type checkoutRequest struct {
	PromoCode string `json:"promo_code"`
}

type buyNowRequest struct {
	ItemID    string `json:"item_id"`
	PromoCode string `json:"promo_code"`
}

// Checkout converts the whole cart into purchases. The promo code is
// optional and unknown codes are simply ignored by pricing.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req checkoutRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	result, err := h.OrderService.Checkout(r.Context(), userID, req.PromoCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(result)
}

func (h *OrderHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req buyNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	result, err := h.OrderService.BuyNow(r.Context(), userID, req.ItemID, req.PromoCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(result)
}

func (h *OrderHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	entries, err := h.LibraryService.GetLibrary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(entries)
}

// CheckOwnership answers whether the current user owns a single item, the
// question the details page asks before rendering a buy button.
func (h *OrderHandler) CheckOwnership(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	owned, err := h.LibraryService.IsOwned(r.Context(), userID, getParam(r, "item_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"owned": owned})
}
