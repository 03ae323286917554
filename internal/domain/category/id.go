package category

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin/internal/domain"
)

// ID identifies a Category. It is assigned once at creation.
type ID string

// NewID returns a random UUID-backed identifier. It is the default generator
// used by New.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID checks that s is a well-formed UUID and returns it as an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid category id %q", domain.ErrValidation, s)
	}
	return ID(u.String()), nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
