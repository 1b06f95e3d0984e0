package repositories

import "github.com/google/uuid"

// mustParseUUID is used on IDs that already passed binding or JWT validation.
func mustParseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
