package auth

import (
	"net/http"
	"strings"

	"bookcatalog/internal/httpx"
)

// RequireToken rejects requests without a valid allow-list token. A missing
// or empty Authorization header is a 401, a token outside the allow-list a
// 403. The "Bearer " prefix is optional and matched case-insensitively. On
// success the matched username is attached to the request context.
func RequireToken(allowlist *Allowlist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.JSONError(w, r, http.StatusUnauthorized, "AUTHENTICATION_REQUIRED", "Authentication required", nil)
				return
			}

			token := header
			if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
				token = header[7:]
			}

			user, ok := allowlist.Lookup(token)
			if !ok {
				httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Invalid token", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
