package authz

import (
	"fmt"
	"regexp"
	"strings"
)

// Resolver matches a request path+method against the route table and
// returns the capability set the caller's role must hold. The table is
// flattened once at construction into (compiled pattern, method,
// permissions) tuples; resolution is a single linear scan in declaration
// order and the first match wins globally.
type Resolver struct {
	routes []compiledRoute
}

type compiledRoute struct {
	pattern     *regexp.Regexp
	method      string
	permissions []string
}

// NewResolver flattens and compiles the route table. Group order and child
// order are both preserved, so earlier declarations shadow later ones.
func NewResolver(table []RouteGroup) (*Resolver, error) {
	var routes []compiledRoute

	for _, group := range table {
		for _, child := range group.Children {
			pattern, err := compilePattern(group.BasePath + child.Path)
			if err != nil {
				return nil, fmt.Errorf("route table: %w", err)
			}
			routes = append(routes, compiledRoute{
				pattern:     pattern,
				method:      strings.ToUpper(child.Method),
				permissions: child.Permissions,
			})
		}
	}

	return &Resolver{routes: routes}, nil
}

// Resolve returns the permissions required for (path, method), or nil when
// no route matches or the first matching route declares no requirement.
// All returned permissions are required (ALL-of, not ANY-of).
func (r *Resolver) Resolve(path, method string) []string {
	method = strings.ToUpper(method)
	for _, route := range r.routes {
		if route.method != method {
			continue
		}
		if route.pattern.MatchString(path) {
			return route.permissions
		}
	}
	return nil
}

// Allowlist matches requests exempt from authentication.
type Allowlist struct {
	routes []compiledRoute
}

// NewAllowlist compiles the public allowlist with the same pattern rules
// as the route table.
func NewAllowlist(public []PublicRoute) (*Allowlist, error) {
	var routes []compiledRoute

	for _, entry := range public {
		pattern, err := compilePattern(entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("public allowlist: %w", err)
		}
		routes = append(routes, compiledRoute{
			pattern: pattern,
			method:  strings.ToUpper(entry.Method),
		})
	}

	return &Allowlist{routes: routes}, nil
}

// Contains reports whether (path, method) is public.
func (a *Allowlist) Contains(path, method string) bool {
	method = strings.ToUpper(method)
	for _, route := range a.routes {
		if route.method == method && route.pattern.MatchString(path) {
			return true
		}
	}
	return false
}
