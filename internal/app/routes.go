package app

import (
	"net/http"

	"unit-service/internal/authz"
)

// Capability strings checked against a role's allowed actions.
const (
	PermListUnits      = "list_units"
	PermViewUnit       = "view_unit"
	PermViewAccessLogs = "view_access_logs"
)

// DefaultRouteTable declares which capabilities each protected endpoint
// requires. Declaration order matters: the first matching entry wins, so
// literal paths must come before parameterized siblings.
func DefaultRouteTable() []authz.RouteGroup {
	return []authz.RouteGroup{
		{
			BasePath: "/units",
			Children: []authz.ChildRoute{
				{Path: "", Method: http.MethodGet, Permissions: []string{PermListUnits}},
				{Path: "/:id", Method: http.MethodGet, Permissions: []string{PermViewUnit}},
			},
		},
		{
			BasePath: "/residents",
			Children: []authz.ChildRoute{
				// Open to any authenticated, sessioned user; results are
				// scoped per caller by the handler.
				{Path: "", Method: http.MethodGet, Permissions: nil},
			},
		},
		{
			BasePath: "/access-logs",
			Children: []authz.ChildRoute{
				{Path: "", Method: http.MethodGet, Permissions: []string{PermViewAccessLogs}},
			},
		},
	}
}

// DefaultPublicRoutes lists the endpoints exempt from authentication.
// They are still audit-logged.
func DefaultPublicRoutes() []authz.PublicRoute {
	return []authz.PublicRoute{
		{Pattern: "/health", Method: http.MethodGet},
		{Pattern: "/auth/login", Method: http.MethodPost},
	}
}
