package router

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/uid"
)

const (
	// HeaderCorrelationID is echoed on every response.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is accepted from proxies that do not set HeaderCorrelationID.
	HeaderRequestID = "X-Request-ID"

	maxCorrelationIDLen = 128
)

var correlationHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// inboundCorrelationID returns the first usable ID sent by the caller.
// Values with control characters are ignored rather than sanitised.
func inboundCorrelationID(h http.Header) string {
	for _, name := range correlationHeaders {
		v := strings.TrimSpace(h.Get(name))
		if v == "" || strings.ContainsFunc(v, unicode.IsControl) {
			continue
		}
		if len(v) > maxCorrelationIDLen {
			v = v[:maxCorrelationIDLen]
		}
		return v
	}
	return ""
}

// middlewareCorrelationID tags the request with a correlation ID, taking the
// caller's when present and minting one otherwise. The ID reaches the logs
// through instrument.GetCorrelationID and the request span through
// middlewareObservability.
func middlewareCorrelationID(gen uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := inboundCorrelationID(r.Header)
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}
			if cid == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderCorrelationID, cid)
			next.ServeHTTP(w, r.WithContext(instrument.SetCorrelationID(r.Context(), cid)))
		})
	}
}
