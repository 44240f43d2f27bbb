package registry

import "fmt"

// NotFoundError indicates a by-identifier operation referenced a
// server that is not in the registry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("server '%s' not found", e.ID)
}
