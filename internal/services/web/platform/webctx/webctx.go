// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"

	"github.com/louisbranch/atrium/internal/services/web/credentials"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
)

// WithClientInfo returns the request context enriched with the caller's
// address and user agent for session bookkeeping.
func WithClientInfo(r *http.Request, policy requestmeta.SchemePolicy) context.Context {
	if r == nil {
		return context.Background()
	}
	return credentials.WithClient(r.Context(), credentials.ClientInfo{
		IPAddress: requestmeta.ClientIP(r, policy),
		UserAgent: requestmeta.UserAgent(r),
	})
}
