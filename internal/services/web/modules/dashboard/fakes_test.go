package dashboard

import (
	"net/http"
	"sync/atomic"

	"github.com/louisbranch/atrium/internal/services/web/session"
)

type fakeSessions struct {
	sess  session.Session
	ok    bool
	calls atomic.Int32
}

func (f *fakeSessions) Session(*http.Request) (session.Session, bool) {
	f.calls.Add(1)
	return f.sess, f.ok
}
