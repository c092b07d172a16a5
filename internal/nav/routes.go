// Package nav holds the protected-view route table and the guard
// predicates evaluated before entering a view. Guards are pure functions of
// session state and route metadata; they never perform network calls.
package nav

import "github.com/plantdesk/portalctl/internal/core/domain"

// Well-known view paths.
const (
	PathLogin        = "/login"
	PathUnauthorized = "/unauthorized"
	PathDashboard    = "/dashboard"
	PathSubmissions  = "/submissions"
	PathPlants       = "/plants"
	PathAdmins       = "/admins"
	PathSettings     = "/settings"
)

// Route is the metadata attached to a protected view. RequiredRole is
// empty when authentication alone suffices.
type Route struct {
	Name         string
	Path         string
	RequiredRole string
}

// Routes is the protected-view table. The login and unauthorized views are
// deliberately absent: they must stay reachable without a session.
var Routes = []Route{
	{Name: "dashboard", Path: PathDashboard},
	{Name: "submissions", Path: PathSubmissions},
	{Name: "plants", Path: PathPlants},
	{Name: "admins", Path: PathAdmins, RequiredRole: domain.RoleSuperAdmin},
	{Name: "settings", Path: PathSettings},
}

// Lookup finds a route by path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
