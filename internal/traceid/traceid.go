package traceid

import "github.com/google/uuid"

// ID is a search invocation identifier, a v4 UUID string.
type ID string

// New mints a fresh ID.
func New() ID {
	return ID(uuid.NewString())
}

// String satisfies fmt.Stringer so an ID can be embedded directly in
// log fields.
func (id ID) String() string {
	return string(id)
}
