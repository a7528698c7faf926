package utils

import (
	"github.com/google/uuid"
)

// NewRecordID returns a time-ordered UUID for database primary keys. v7 keeps
// inserts roughly sequential on the id index; the random v4 fallback only
// triggers when the entropy source fails.
func NewRecordID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
