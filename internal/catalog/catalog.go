// Package catalog loads and serves the static role profile catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/types"
)

// Catalog holds the role profiles keyed by lowercased name. Read-only
// after construction.
type Catalog struct {
	roles map[string]*types.RoleProfile
	names []string
}

// New builds a catalog from the given role profiles. Each profile is
// validated and duplicate names are rejected.
func New(roles []types.RoleProfile) (*Catalog, error) {
	validate := validator.New()
	cat := &Catalog{roles: make(map[string]*types.RoleProfile, len(roles))}
	for i := range roles {
		role := roles[i]
		if err := validate.Struct(role); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid role profile %q", role.Name),
				Cause:   err,
			}
		}
		key := strings.ToLower(role.Name)
		if _, exists := cat.roles[key]; exists {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate role name %q", role.Name)}
		}
		cat.roles[key] = &role
		cat.names = append(cat.names, role.Name)
	}
	sort.Strings(cat.names)
	return cat, nil
}

// LoadFile loads a role catalog from a JSON file holding an array of
// role profiles.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read catalog file %s", path),
			Cause:   err,
		}
	}

	var roles []types.RoleProfile
	if err := json.Unmarshal(content, &roles); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal catalog JSON",
			Cause:   err,
		}
	}

	return New(roles)
}

// Role looks up a role profile by name, case-insensitively.
func (c *Catalog) Role(name string) (*types.RoleProfile, error) {
	role, ok := c.roles[strings.ToLower(name)]
	if !ok {
		return nil, &RoleNotFoundError{Role: name, Available: c.names}
	}
	return role, nil
}

// Names returns all role names in sorted order
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of roles in the catalog
func (c *Catalog) Len() int {
	return len(c.roles)
}
