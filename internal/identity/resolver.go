// Package identity resolves free-text person names into stable identities.
//
// Resolution happens when a transaction carrying a person name is added: the
// name either matches an existing person (case-insensitively) or a new person
// is synthesized for it. Keeping the decision in a pure function makes the
// "found vs created" outcome visible to callers and testable in isolation.
package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mkhatri/moneyman/internal/models"
)

// Resolution is the tagged outcome of resolving a raw name.
type Resolution struct {
	// Person is the matched or newly synthesized person.
	Person models.Person

	// Created is true when Person did not exist and must be inserted into
	// the registry by the caller.
	Created bool
}

// Resolve maps rawName to a person identity. Matching is a case-insensitive
// exact match on current names; the first match wins if duplicates exist
// (uniqueness is not enforced elsewhere). On a miss it synthesizes a person
// with a fresh ID and the trimmed name as given, not lower-cased.
//
// Resolve has no side effects: a Created person is not persisted here. The
// caller must not invoke it for empty or whitespace-only names; an empty name
// means "no person" and short-circuits before resolution.
func Resolve(rawName string, persons []models.Person) Resolution {
	name := strings.TrimSpace(rawName)
	lower := strings.ToLower(name)

	for _, p := range persons {
		if strings.ToLower(p.Name) == lower {
			return Resolution{Person: p}
		}
	}

	return Resolution{
		Person:  models.Person{ID: uuid.New().String(), Name: name},
		Created: true,
	}
}
