package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// AuthTokenHeader carries the session token on every protected request.
const AuthTokenHeader = "x-auth-token"

// Auth verifies the session token and stores the authenticated user ID in the
// request context. Handlers must take the identity from there, never from the
// request body or query, so a client cannot act as another user.
//
// A missing header is 401; a present-but-unverifiable token (bad signature,
// malformed, expired) is 400, matching the API contract the frontend expects.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AuthTokenHeader)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "No token, authorization denied.")
				return
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				writeJSONError(w, http.StatusBadRequest, "Token is not valid.")
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				log.Printf("ERROR [middleware.Auth] missing 'sub' claim in token")
				writeJSONError(w, http.StatusBadRequest, "Token is not valid.")
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] failed to parse user ID: %v", err)
				writeJSONError(w, http.StatusBadRequest, "Token is not valid.")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + message + `"}`))
}
