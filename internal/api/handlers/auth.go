package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mrivera/user-auth-service/internal/domain"
	"github.com/mrivera/user-auth-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returns the created user. The password hash never
// serializes: domain.User hides it from JSON.
type RegisterResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request body",
			"success": false,
		})
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			log.Printf("ERROR [auth.Register] validation failed: %v", validationErr)
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message": "Validation error",
				"success": false,
				"errors":  validationErr.Messages,
			})
			return
		}

		log.Printf("ERROR [auth.Register] failed to register user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Server error.",
			"success": false,
		})
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully!",
		Success: true,
		User:    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	token, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Unknown email and wrong password answer with distinct
		// messages, matching the existing client contract.
		if errors.Is(err, service.ErrInvalidEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Invalid email",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidPassword) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Invalid password",
			})
			return
		}

		log.Printf("ERROR [auth.Login] failed to log in: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Server error!",
		})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
	})
}
