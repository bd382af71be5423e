package authz

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// RouteGroup is one parent entry of the route table: a base path and the
// child routes declared under it. The table is declared once at startup
// and never mutated afterwards, so it is safe for concurrent readers.
type RouteGroup struct {
	BasePath string
	Children []ChildRoute
}

// ChildRoute binds a path suffix and method to the capability strings a
// caller's role must hold. Path segments starting with ':' match any
// single path component. A nil Permissions slice declares no requirement:
// the route is open to any authenticated, sessioned user.
type ChildRoute struct {
	Path        string
	Method      string
	Permissions []string
}

// PublicRoute exempts matching requests from credential, session and
// permission checks. They are still audit-logged.
type PublicRoute struct {
	Pattern string
	Method  string
}

// ScopeFilter narrows downstream queries to the caller's reach: privileged
// callers are scoped by unit alone (RoleID nil), everyone else by both
// role and unit.
type ScopeFilter struct {
	RoleID *uuid.UUID
	UnitID uuid.UUID
}

const (
	paramPrefix          = ":"
	segmentWildcard      = "[^/]+"
	errEmptyPatternFmt   = "route pattern is empty (group %q)"
	errInvalidPatternFmt = "invalid route pattern %q: %w"
)

// compilePattern turns basePath+suffix into an anchored regexp where each
// named-parameter segment matches exactly one path component.
func compilePattern(fullPath string) (*regexp.Regexp, error) {
	if fullPath == "" {
		return nil, fmt.Errorf(errEmptyPatternFmt, fullPath)
	}

	segments := strings.Split(fullPath, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, paramPrefix) {
			segments[i] = segmentWildcard
		} else {
			segments[i] = regexp.QuoteMeta(seg)
		}
	}

	pattern, err := regexp.Compile("^" + strings.Join(segments, "/") + "$")
	if err != nil {
		return nil, fmt.Errorf(errInvalidPatternFmt, fullPath, err)
	}

	return pattern, nil
}
