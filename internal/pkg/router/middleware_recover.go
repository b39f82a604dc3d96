package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/postline/internal/pkg/goerror"
	"github.com/shandysiswandi/postline/internal/pkg/stacktrace"
)

// middlewareRecoverer turns a handler panic into the standard 500 envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
//
//nolint:contextcheck // the request context is the only one available here
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // sentinel must be compared directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err, ok := rvr.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rvr)
			}

			slog.ErrorContext(r.Context(), "recovered from handler panic",
				"error", err,
				"stack", stacktrace.Internal(1),
			)

			encodeError(r.Context(), w, goerror.NewServer(err))
		}()

		next.ServeHTTP(w, r)
	})
}
