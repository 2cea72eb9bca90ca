package api

import (
	"net/http"
	"time"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
)

type handlers struct {
	sessions module.SessionReader
}

type sessionPayload struct {
	User    userPayload    `json:"user"`
	Session sessionDetails `json:"session"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type sessionDetails struct {
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// handleGetSession writes the current session, or null without one. The
// session token never leaves the cookie.
func (h handlers) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Session(r)
	if !ok || !sess.Authenticated() {
		_ = httpx.WriteJSON(w, http.StatusOK, nil)
		return
	}
	payload := sessionPayload{
		User: userPayload{
			ID:    sess.UserID,
			Name:  sess.Name,
			Email: sess.Email,
			Image: sess.Image,
		},
	}
	if !sess.ExpiresAt.IsZero() {
		expiresAt := sess.ExpiresAt.UTC()
		payload.Session.ExpiresAt = &expiresAt
	}
	_ = httpx.WriteJSON(w, http.StatusOK, payload)
}
