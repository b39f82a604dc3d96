package router

import (
	"net/http"

	"github.com/shandysiswandi/postline/internal/pkg/config"
	"github.com/shandysiswandi/postline/internal/pkg/goerror"
)

// middlewareMaintenance answers 503 for routes listed in
// app.maintenance.endpoints. The list is read on every request so a config
// reload takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg != nil {
				route := matchedRoutePath(r)
				for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
					if endpoint == route {
						encodeError(r.Context(), w, goerror.NewBusiness("service is under maintenance", goerror.CodeUnavailable))
						return
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
