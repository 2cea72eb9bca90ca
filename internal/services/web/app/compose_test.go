package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/atrium/internal/services/web/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}

func named(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: named("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: named("two")}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), `owned by module "one"`) {
		t.Fatalf("Compose() error = %v, want duplicate prefix error", err)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "auth/x/"},
		{name: "missing trailing slash", prefix: "/auth/x"},
		{name: "contains surrounding whitespace", prefix: "/auth/x/ "},
		{name: "static prefix", prefix: "/static/"},
		{name: "empty", prefix: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: named("bad")}}},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("error = %q, want module id and invalid prefix", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleAndMountErrors(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
	boom := errors.New("boom")
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: boom}}})
	if !errors.Is(err, boom) {
		t.Fatalf("Compose() error = %v, want %v", err, boom)
	}
	_, err = Compose(ComposeInput{Modules: []module.Module{stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x/"}}}})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("Compose() error = %v, want handler required", err)
	}
}

func TestComposeMountsSlashlessAlias(t *testing.T) {
	t.Parallel()

	root, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "home", mount: module.Mount{Prefix: "/", Handler: named("home")}},
			stubModule{id: "auth", mount: module.Mount{Prefix: "/auth/", Handler: named("auth")}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for path, want := range map[string]string{
		"/":            "home",
		"/elsewhere":   "home",
		"/auth":        "auth",
		"/auth/":       "auth",
		"/auth/inside": "auth",
	} {
		rr := httptest.NewRecorder()
		root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if got := rr.Body.String(); got != want {
			t.Fatalf("%s served by %q, want %q", path, got, want)
		}
	}
}
