package authz_test

import (
	"net/http"
	"reflect"
	"testing"

	"unit-service/internal/authz"
)

func newResolver(t *testing.T, table []authz.RouteGroup) *authz.Resolver {
	t.Helper()
	r, err := authz.NewResolver(table)
	if err != nil {
		t.Fatalf("failed to build resolver: %v", err)
	}
	return r
}

func TestResolverResolve(t *testing.T) {
	resolver := newResolver(t, []authz.RouteGroup{
		{
			BasePath: "/units",
			Children: []authz.ChildRoute{
				{Path: "", Method: http.MethodGet, Permissions: []string{"list_units"}},
				{Path: "/:id", Method: http.MethodGet, Permissions: []string{"view_unit"}},
				{Path: "/:id", Method: http.MethodPut, Permissions: []string{"view_unit", "edit_unit"}},
			},
		},
		{
			BasePath: "/residents",
			Children: []authz.ChildRoute{
				{Path: "", Method: http.MethodGet, Permissions: nil},
			},
		},
	})

	tests := []struct {
		name     string
		path     string
		method   string
		expected []string
	}{
		{"base path exact", "/units", http.MethodGet, []string{"list_units"}},
		{"param segment", "/units/42", http.MethodGet, []string{"view_unit"}},
		{"param segment uuid", "/units/b2c9a7e0-6f1d-4e53-9c1a-2f8d33a90421", http.MethodGet, []string{"view_unit"}},
		{"multiple permissions", "/units/42", http.MethodPut, []string{"view_unit", "edit_unit"}},
		{"method not declared", "/units/42", http.MethodPost, nil},
		{"extra segment no match", "/units/42/extra", http.MethodGet, nil},
		{"prefix no match", "/unitstore", http.MethodGet, nil},
		{"declared with no requirement", "/residents", http.MethodGet, nil},
		{"unknown path", "/visitors", http.MethodGet, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.path, tt.method)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Resolve(%s, %s) = %v, expected %v", tt.path, tt.method, got, tt.expected)
			}
		})
	}
}

func TestResolverFirstMatchWins(t *testing.T) {
	resolver := newResolver(t, []authz.RouteGroup{
		{
			BasePath: "/units",
			Children: []authz.ChildRoute{
				{Path: "/summary", Method: http.MethodGet, Permissions: []string{"view_summary"}},
				{Path: "/:id", Method: http.MethodGet, Permissions: []string{"view_unit"}},
			},
		},
		{
			BasePath: "/units",
			Children: []authz.ChildRoute{
				{Path: "/:id", Method: http.MethodGet, Permissions: []string{"never_reached"}},
			},
		},
	})

	if got := resolver.Resolve("/units/summary", http.MethodGet); !reflect.DeepEqual(got, []string{"view_summary"}) {
		t.Errorf("literal route should shadow the parameterized one, got %v", got)
	}

	if got := resolver.Resolve("/units/42", http.MethodGet); !reflect.DeepEqual(got, []string{"view_unit"}) {
		t.Errorf("first declared group should win, got %v", got)
	}
}

func TestResolverCaseInsensitiveMethod(t *testing.T) {
	resolver := newResolver(t, []authz.RouteGroup{
		{
			BasePath: "/units",
			Children: []authz.ChildRoute{
				{Path: "", Method: "get", Permissions: []string{"list_units"}},
			},
		},
	})

	if got := resolver.Resolve("/units", "GET"); !reflect.DeepEqual(got, []string{"list_units"}) {
		t.Errorf("method matching should be case-insensitive, got %v", got)
	}
}

func TestNewResolverRejectsEmptyPattern(t *testing.T) {
	_, err := authz.NewResolver([]authz.RouteGroup{
		{BasePath: "", Children: []authz.ChildRoute{{Path: "", Method: http.MethodGet}}},
	})
	if err == nil {
		t.Fatal("expected error for empty route pattern, got nil")
	}
}

func TestAllowlistContains(t *testing.T) {
	allowlist, err := authz.NewAllowlist([]authz.PublicRoute{
		{Pattern: "/health", Method: http.MethodGet},
		{Pattern: "/auth/login", Method: http.MethodPost},
	})
	if err != nil {
		t.Fatalf("failed to build allowlist: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		method   string
		expected bool
	}{
		{"health check", "/health", http.MethodGet, true},
		{"login", "/auth/login", http.MethodPost, true},
		{"wrong method", "/health", http.MethodPost, false},
		{"suffix no match", "/healthz", http.MethodGet, false},
		{"protected path", "/units", http.MethodGet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allowlist.Contains(tt.path, tt.method); got != tt.expected {
				t.Errorf("Contains(%s, %s) = %v, expected %v", tt.path, tt.method, got, tt.expected)
			}
		})
	}
}
