package locale

import (
	"net/http"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Locale, h.handleSwitchForm)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern, h.handleSwitchLink)
}
