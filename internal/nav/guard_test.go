package nav

import (
	"testing"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/notify"
)

type fakeAuth struct {
	authenticated bool
	roles         []string
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }

func (f *fakeAuth) HasRole(role string) bool {
	for _, r := range f.roles {
		if r == role {
			return true
		}
	}
	return false
}

func mustRoute(t *testing.T, path string) Route {
	t.Helper()
	route, ok := Lookup(path)
	if !ok {
		t.Fatalf("route %s missing from table", path)
	}
	return route
}

func TestAuthGuardRedirectsAnonymousToLogin(t *testing.T) {
	recorder := &notify.Recorder{}
	a := NewAuthorizer(&fakeAuth{}, recorder)

	d := a.AuthGuard(mustRoute(t, PathDashboard))

	if d.Allowed {
		t.Fatal("anonymous navigation must be blocked")
	}
	if d.RedirectTo != PathLogin {
		t.Fatalf("redirect = %q, want %q", d.RedirectTo, PathLogin)
	}
	if d.ReturnURL != PathDashboard {
		t.Fatalf("return URL = %q, want the requested path", d.ReturnURL)
	}
	if len(recorder.Warns) != 1 || recorder.Warns[0] != "Please sign in to continue." {
		t.Fatalf("unexpected notifications: %+v", recorder)
	}
}

func TestRoleGuardBlocksRegularAdminFromAdminView(t *testing.T) {
	recorder := &notify.Recorder{}
	auth := &fakeAuth{authenticated: true, roles: []string{domain.RoleRegularAdmin}}
	a := NewAuthorizer(auth, recorder)

	d := a.Authorize(mustRoute(t, PathAdmins))

	if d.Allowed {
		t.Fatal("regular admin must not reach the admin-management view")
	}
	if d.RedirectTo != PathUnauthorized {
		t.Fatalf("redirect = %q, want %q", d.RedirectTo, PathUnauthorized)
	}
	if len(recorder.Errors) != 1 || recorder.Errors[0] != "You are not authorized to access this page." {
		t.Fatalf("unexpected notifications: %+v", recorder)
	}
}

func TestAuthorizeAllowsMatchingRole(t *testing.T) {
	recorder := &notify.Recorder{}
	auth := &fakeAuth{authenticated: true, roles: []string{domain.RoleSuperAdmin}}
	a := NewAuthorizer(auth, recorder)

	d := a.Authorize(mustRoute(t, PathAdmins))

	if !d.Allowed {
		t.Fatalf("super admin should pass both guards: %+v", d)
	}
	if n := len(recorder.Warns) + len(recorder.Errors); n != 0 {
		t.Fatalf("allowed navigation must not notify, got %+v", recorder)
	}
}

func TestAuthorizeUnannotatedRouteNeedsOnlyASession(t *testing.T) {
	recorder := &notify.Recorder{}
	auth := &fakeAuth{authenticated: true} // no roles at all
	a := NewAuthorizer(auth, recorder)

	for _, path := range []string{PathDashboard, PathSubmissions, PathPlants, PathSettings} {
		if d := a.Authorize(mustRoute(t, path)); !d.Allowed {
			t.Fatalf("route %s should not require a role: %+v", path, d)
		}
	}
}

func TestAuthGuardRunsBeforeRoleGuard(t *testing.T) {
	recorder := &notify.Recorder{}
	a := NewAuthorizer(&fakeAuth{}, recorder) // anonymous

	d := a.Authorize(mustRoute(t, PathAdmins))

	// An anonymous user heading for a role-protected view is sent to login,
	// not to the unauthorized view.
	if d.RedirectTo != PathLogin {
		t.Fatalf("redirect = %q, want %q", d.RedirectTo, PathLogin)
	}
	if len(recorder.Errors) != 0 {
		t.Fatalf("role guard must not fire for anonymous users: %+v", recorder)
	}
}
