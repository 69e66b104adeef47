package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamestoreBack/internal/repositories"
	"gamestoreBack/internal/services"
)

// writeServiceError translates service and repository sentinels into the
// status codes clients act on. Blocked purchases answer 409 with the
// structured per-item reasons so the basket can explain itself.
func writeServiceError(w http.ResponseWriter, err error) {
	var blocked *services.BlockedError
	switch {
	case errors.As(err, &blocked):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   blocked.Error(),
			"blocked": blocked.Items,
		})
	case errors.Is(err, repositories.ErrAlreadyOwned):
		http.Error(w, "Item already owned", http.StatusConflict)
	case errors.Is(err, services.ErrEmptyCart):
		http.Error(w, "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, services.ErrMissingParentGame):
		http.Error(w, "Parent game required for this dlc type", http.StatusBadRequest)
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, repositories.ErrGameNotFound),
		errors.Is(err, repositories.ErrDLCNotFound):
		http.Error(w, "Item not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
