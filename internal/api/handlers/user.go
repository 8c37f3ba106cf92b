package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/mrivera/user-auth-service/internal/api/middleware"
	"github.com/mrivera/user-auth-service/internal/domain"
	"github.com/mrivera/user-auth-service/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type UserInfoResponse struct {
	User *domain.User `json:"user"`
}

// UserInfo returns the authenticated user's record, without the password
// hash. The token can outlive the account, hence the 404 path.
func (h *UserHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"message": "Access denied!",
		})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"message": "User not found!",
				"success": false,
			})
			return
		}

		log.Printf("ERROR [user.UserInfo] failed to fetch user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Server error",
			"success": false,
		})
		return
	}

	writeJSON(w, http.StatusOK, UserInfoResponse{User: user})
}
