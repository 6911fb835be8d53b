package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/api"
	"github.com/cleanup-hub/cleanup/internal/entities"
)

type contextKey int

const actorKey contextKey = iota

var errInvalidClaims = errors.New("invalid claims")

// Claims are claims of access token. Subject is user id.
type Claims struct {
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator resolves request's actor from bearer token signed with secret.
// Requests without Authorization header are passed as anonymous, requests with invalid token are rejected.
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				api.WriteError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			actor, err := ParseToken(secret, parts[1])
			if err != nil {
				log.WithError(err).Debug("failed to parse token")
				api.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// ParseToken verifies the token and returns its actor.
func ParseToken(secret []byte, token string) (*entities.Actor, error) {
	var claims Claims

	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", errInvalidClaims)
	}

	switch claims.Role {
	case entities.UserRole, entities.ModeratorRole, entities.AdminRole:
	default:
		return nil, fmt.Errorf("%w: invalid role %q", errInvalidClaims, claims.Role)
	}

	return &entities.Actor{ID: id, Role: claims.Role}, nil
}

// WithActor puts actor into context.
func WithActor(ctx context.Context, a *entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// GetActor returns request's actor or nil for anonymous requests.
func GetActor(ctx context.Context) *entities.Actor {
	a, _ := ctx.Value(actorKey).(*entities.Actor)
	return a
}
