package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	tokenIssuer "conduit/pkg/jwt"

	"go.uber.org/zap"
)

var (
	errMissingAuthorization = errors.New("authorization header is required")
	errMalformedAuthHeader  = errors.New("invalid authorization header format")
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (*tokenIssuer.Claims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid "Bearer" (or "Token") JWT
// and puts the token's user id into the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			m.unauthorized(w, err, requestID)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.unauthorized(w, err, requestID)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom returns the id of the authenticated user.
func UserIDFrom(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, err error, requestID string) {
	m.logs.Errorw("request not authenticated",
		"error", err,
		"request_id", requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   err.Error(),
	})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthorization
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok {
		return "", errMalformedAuthHeader
	}

	switch strings.ToLower(scheme) {
	case "bearer", "token":
	default:
		return "", errMalformedAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMalformedAuthHeader
	}
	return token, nil
}
