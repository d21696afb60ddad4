package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/getwaylabs/getway/pkg/model"
)

// userFromContext extracts the authenticated user placed by requireAuth.
func userFromContext(ctx context.Context) *model.User {
	if u, ok := ctx.Value(ctxKeyUser).(*model.User); ok {
		return u
	}
	return nil
}

// bearerToken extracts the credential from an "Authorization: Bearer x"
// header, or "" when absent or malformed.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// requireAuth resolves the bearer token to a user and stores it in the
// request context. Requests without a valid token get a 401 envelope.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		user, ok := s.data.userByToken(tok)
		if !ok {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireOwner gates the owner-admin endpoints.
func (s *Server) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := userFromContext(r.Context())
		if u == nil || !u.IsOwner() {
			respondError(w, http.StatusForbidden, "owner role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireDataAccess gates the analytics endpoints: approved scientists
// and owners only.
func (s *Server) requireDataAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := userFromContext(r.Context())
		if u == nil || !u.CanAccessData() {
			respondError(w, http.StatusForbidden, "data access requires an approved scientist or owner account")
			return
		}
		next.ServeHTTP(w, r)
	})
}
