package catalog

import "fmt"

// LoadError indicates the role catalog file could not be read or parsed
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RoleNotFoundError indicates the requested role is not in the catalog
type RoleNotFoundError struct {
	Role      string
	Available []string
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("role %q not found in catalog (%d roles available)", e.Role, len(e.Available))
}
