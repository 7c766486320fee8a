package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/auth"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/response"
)

type apiIdentityKey struct{}

// RequireToken guards JSON API routes with a Bearer JWT.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), apiIdentityKey{}, claims.ShopkeeperID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIIdentity returns the shopkeeper id attached by RequireToken.
func APIIdentity(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(apiIdentityKey{}).(uint)
	return id, ok
}
