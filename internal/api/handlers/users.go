package handlers

import (
	"log"
	"net/http"

	"github.com/skinaid/skinaid-web/internal/service"
)

type UsersHandler struct {
	authService *service.AuthService
}

func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{authService: authService}
}

// List returns every registered user. The domain.User JSON mapping drops the
// password hash, so nothing sensitive leaves this endpoint.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR [users.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	respondJSON(w, http.StatusOK, users)
}
