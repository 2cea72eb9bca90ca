// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	apperrors "github.com/louisbranch/atrium/internal/services/web/platform/errors"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/atrium/internal/services/web/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Only errors
// carrying a localization key expose their text.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX
// requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, bundle *catalog.Bundle) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	notFound := statusCode == http.StatusNotFound

	page := pagerender.NewPageContext(r, bundle, "")
	titleKey := "errorTitle"
	if notFound {
		titleKey = "notFoundTitle"
	}
	page.Title = page.T("common", titleKey)

	err := pagerender.Write(w, r, page, pagerender.Page{
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(page, notFound),
	})
	if err != nil {
		http.Error(w, PublicMessage(page.Loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response: the error
// page for not-found and server errors, a plain message for everything else.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, bundle *catalog.Bundle) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, bundle)
		return
	}
	loc := webi18n.New(bundle, localeroute.FromRequest(r))
	if httpx.IsHTMXRequest(r) {
		_ = httpx.WriteHTML(w, statusCode, `<div class="form-error" role="alert">`+templ.EscapeString(PublicMessage(loc, err))+`</div>`)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
