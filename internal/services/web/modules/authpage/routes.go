package authpage

import (
	"net/http"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Auth, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignIn, h.handleSignIn)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignUp, h.handleSignUp)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignOut, h.handleSignOut)
	mux.HandleFunc(routepath.AuthPrefix+"{rest...}", h.WriteNotFound)
}
