package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/repositories"
	"gamestoreBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if user.Email == "" || user.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}
	// Role is never taken from the sign up body.
	user.Role = "user"

	resp, err := h.Service.SignUp(r.Context(), user)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to sign up", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.Service.SignOut(r.Context(), userID); err != nil {
		http.Error(w, "Failed to sign out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
