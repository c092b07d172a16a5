package nav

import (
	"github.com/plantdesk/portalctl/internal/core/ports"
)

// SessionAuth is the slice of the auth service the guards need.
type SessionAuth interface {
	IsAuthenticated() bool
	HasRole(role string) bool
}

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo names the view to navigate to instead, and ReturnURL carries
// the originally requested path when it should be resumed after login.
type Decision struct {
	Allowed    bool
	RedirectTo string
	ReturnURL  string
}

// Authorizer evaluates the guard predicates for protected views.
type Authorizer struct {
	auth     SessionAuth
	notifier ports.Notifier
}

func NewAuthorizer(auth SessionAuth, notifier ports.Notifier) *Authorizer {
	return &Authorizer{auth: auth, notifier: notifier}
}

// AuthGuard blocks navigation when no session token is held. The redirect
// carries the requested path so login can return there.
func (a *Authorizer) AuthGuard(route Route) Decision {
	if a.auth.IsAuthenticated() {
		return Decision{Allowed: true}
	}
	a.notifier.Warn("Please sign in to continue.")
	return Decision{RedirectTo: PathLogin, ReturnURL: route.Path}
}

// RoleGuard blocks navigation when the route's required-role annotation is
// not satisfied by the current user. Routes without an annotation pass.
func (a *Authorizer) RoleGuard(route Route) Decision {
	if route.RequiredRole == "" || a.auth.HasRole(route.RequiredRole) {
		return Decision{Allowed: true}
	}
	a.notifier.Error("You are not authorized to access this page.")
	return Decision{RedirectTo: PathUnauthorized}
}

// Authorize runs both guards in order: authentication first, then role.
func (a *Authorizer) Authorize(route Route) Decision {
	if d := a.AuthGuard(route); !d.Allowed {
		return d
	}
	return a.RoleGuard(route)
}
