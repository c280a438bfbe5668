package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/skinaid/skinaid-web/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please enter all required fields.")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			respondError(w, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("ERROR [auth.Register] %v", err)
		respondError(w, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully!",
		Token:   result.Token,
		User: UserResponse{
			ID:        result.User.ID.String(),
			FirstName: result.User.FirstName,
			Email:     result.User.Email,
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials. Please try again.")
			return
		}
		log.Printf("ERROR [auth.Login] %v", err)
		respondError(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful!",
		Token:   result.Token,
		User: UserResponse{
			ID:        result.User.ID.String(),
			FirstName: result.User.FirstName,
			Email:     result.User.Email,
		},
	})
}
