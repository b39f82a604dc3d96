package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/postline/internal/pkg/session"
)

// middlewareCredential copies a bearer token from the Authorization header
// into the request context. It never rejects: whether the token names an
// active session is for the session backend to decide.
func middlewareCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r.Header.Get("Authorization")); token != "" {
			r = r.WithContext(session.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) string {
	p := strings.Fields(header)
	if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
		return ""
	}
	return p[1]
}
