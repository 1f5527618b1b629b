package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// Protect wraps next with session verification. The login page, the auth
// endpoints, health probes and static asset paths (anything containing a
// dot) pass through; everything else needs a valid session cookie.
// Unauthenticated API calls get a 401 JSON body, page requests a redirect
// to /login.
func (s *Service) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		authed := false
		if c, err := r.Cookie(CookieName); err == nil {
			_, authed = s.Verify(c.Value)
		}

		if path == "/login" {
			if authed {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(path, "/api/auth/") ||
			strings.Contains(path, ".") ||
			path == "/healthz" || path == "/readyz" {
			next.ServeHTTP(w, r)
			return
		}

		if !authed {
			slog.WarnContext(r.Context(), "Unauthenticated request rejected",
				"path", path, "method", r.Method)
			if strings.HasPrefix(path, "/api/") {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
