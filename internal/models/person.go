package models

// Person is a stable identity for someone money is lent to or borrowed from.
//
// Persons are created implicitly the first time a transaction references an
// unknown name; there is no direct "add person" operation. Name uniqueness is
// not enforced structurally: the identity resolver treats case-insensitive
// name equality as "same person" at resolution time only.
type Person struct {
	// ID is the unique identifier for the person (UUID format), immutable.
	ID string `json:"id"`

	// Name is the display name. Mutable via rename; the resolver matches
	// against it case-insensitively.
	Name string `json:"name"`
}
