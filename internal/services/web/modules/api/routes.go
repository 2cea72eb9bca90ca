package api

import (
	"net/http"

	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIGetSession, h.handleGetSession)
	mux.HandleFunc(routepath.APIPrefix, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
}
