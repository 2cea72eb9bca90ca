package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Auth != "/auth" {
		t.Fatalf("Auth = %q", Auth)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if APIGetSession != "/api/auth/get-session" {
		t.Fatalf("APIGetSession = %q", APIGetSession)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}

func TestAuthTab(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                  "/auth",
		AuthTabSignIn:       "/auth",
		AuthTabSignUp:       "/auth?tab=signup",
		" " + AuthTabSignUp: "/auth?tab=signup",
	}
	for tab, want := range tests {
		if got := AuthTab(tab); got != want {
			t.Fatalf("AuthTab(%q) = %q, want %q", tab, got, want)
		}
	}
}

func TestDashboardResolved(t *testing.T) {
	t.Parallel()

	if got := DashboardResolved(); got != "/dashboard?resolved=1" {
		t.Fatalf("DashboardResolved() = %q", got)
	}
}

func TestLocaleSwitch(t *testing.T) {
	t.Parallel()

	if got := LocaleSwitch("sk", "/dashboard?resolved=1"); got != "/locale/sk?path=%2Fdashboard%3Fresolved%3D1" {
		t.Fatalf("LocaleSwitch() = %q", got)
	}
	if got := LocaleSwitch("en", ""); got != "/locale/en" {
		t.Fatalf("LocaleSwitch(no path) = %q", got)
	}
}

func TestIsPage(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/auth", "/dashboard", "/auth/sign-in"} {
		if !IsPage(path) {
			t.Fatalf("IsPage(%q) = false, want true", path)
		}
	}
	for _, path := range []string{"/static/app.js", "/api/auth/get-session", "/up", "/locale", "/locale/sk"} {
		if IsPage(path) {
			t.Fatalf("IsPage(%q) = true, want false", path)
		}
	}
}
