package dashboard

import (
	"net/http"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard+"/{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard+"/{rest...}", h.WriteNotFound)
}
