package locale

import (
	"errors"
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/atrium/internal/platform/i18n"
	apperrors "github.com/louisbranch/atrium/internal/services/web/platform/errors"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

const maxFormBytes = 4 << 10

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleSwitchForm switches locale from the form fields locale and path.
func (h handlers) handleSwitchForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse form: "+err.Error()))
		return
	}
	h.switchLocale(w, r, r.PostForm.Get("locale"), r.PostForm.Get(routepath.PathQueryKey))
}

// handleSwitchLink switches locale from the path value and the path query.
func (h handlers) handleSwitchLink(w http.ResponseWriter, r *http.Request) {
	h.switchLocale(w, r, r.PathValue("locale"), r.URL.Query().Get(routepath.PathQueryKey))
}

// switchLocale redirects to returnPath under target and remembers the
// choice. An unsupported target is rejected before anything is written.
func (h handlers) switchLocale(w http.ResponseWriter, r *http.Request, target string, returnPath string) {
	target = strings.ToLower(strings.TrimSpace(target))
	location, err := localeroute.Switch(returnPath, target)
	if err != nil {
		if errors.Is(err, localeroute.ErrUnsupportedLocale) {
			h.Logger().InfoContext(r.Context(), "locale switch rejected", "locale", target)
			h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "common.unsupportedLocale", "unsupported locale "+target))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	localeroute.SetCookie(w, r, target, h.Policy())
	w.Header().Set("Content-Language", platformi18n.Tag(target).String())
	httpx.WriteRedirect(w, r, location)
}
