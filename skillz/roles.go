// skillz/roles.go
package skillz

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
)

// DefaultRole is the profile used for role names that are not recognised.
const DefaultRole = "backend"

// DefaultRoleSkills maps each known role to the skills it requires.
var DefaultRoleSkills = map[string][]string{
	"backend":  {"python", "sql", "fastapi", "docker", "mongodb"},
	"frontend": {"react", "javascript", "css", "html"},
	"ml":       {"python", "pandas", "numpy", "tensorflow", "sklearn"},
}

// RoleProfiles resolves role names case-insensitively to their required skills.
// It is immutable after construction and safe for concurrent use.
type RoleProfiles struct {
	required map[string]map[string]struct{}
	fallback string
}

// NewRoleProfiles builds profiles from roles. fallback must name one of them.
func NewRoleProfiles(roles map[string][]string, fallback string) (*RoleProfiles, error) {
	required := make(map[string]map[string]struct{}, len(roles))
	for role, skills := range roles {
		set := make(map[string]struct{}, len(skills))
		for _, skill := range skills {
			set[skill] = struct{}{}
		}
		required[foldRole(role)] = set
	}

	fallback = foldRole(fallback)
	if _, ok := required[fallback]; !ok {
		return nil, fmt.Errorf("fallback role %q has no profile", fallback)
	}

	return &RoleProfiles{required: required, fallback: fallback}, nil
}

// DefaultRoleProfiles returns the built-in backend/frontend/ml profiles.
func DefaultRoleProfiles() *RoleProfiles {
	profiles, err := NewRoleProfiles(DefaultRoleSkills, DefaultRole)
	if err != nil {
		panic(err)
	}
	return profiles
}

// Resolve returns the canonical profile name for role, falling back to the default.
func (r *RoleProfiles) Resolve(role string) string {
	folded := foldRole(role)
	if _, ok := r.required[folded]; ok {
		return folded
	}
	return r.fallback
}

// Required returns the sorted skills required for role.
func (r *RoleProfiles) Required(role string) []string {
	return sortedKeys(r.required[r.Resolve(role)])
}

// Missing computes required(role) minus found, sorted alphabetically.
func (r *RoleProfiles) Missing(role string, found []string) []string {
	have := make(map[string]struct{}, len(found))
	for _, skill := range found {
		have[skill] = struct{}{}
	}

	missing := make([]string, 0)
	for skill := range r.required[r.Resolve(role)] {
		if _, ok := have[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}

// Roles lists the known profile names.
func (r *RoleProfiles) Roles() []string {
	names := make([]string, 0, len(r.required))
	for name := range r.required {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func foldRole(role string) string {
	return cases.Fold().String(role)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
