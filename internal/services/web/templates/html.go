package templates

// Runtime helpers for the hand-written components; no .templ source.

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error, so
// components can emit a sequence of writes and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// text writes escaped character data.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes one escaped attribute with a leading space.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a sanitized URL attribute.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a write function into a templ component.
func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}
