// Package guard pre-checks field uniqueness before a create or update. The
// check is advisory: the database's unique indexes stay the source of truth,
// this layer just turns the common case into a friendly error.
package guard

import "github.com/google/uuid"

// Lookup resolves the id of the record currently holding a value for the
// guarded field, if any.
type Lookup func(value string) (uuid.UUID, bool, error)

// Conflicts reports whether value is already taken by a record other than
// exclude. Pass uuid.Nil on create, the record's own id on update.
func Conflicts(lookup Lookup, value string, exclude uuid.UUID) (bool, error) {
	id, found, err := lookup(value)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if exclude != uuid.Nil && id == exclude {
		return false, nil
	}
	return true, nil
}
