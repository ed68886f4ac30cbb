package accounts

import "github.com/google/uuid"

// NewID allocates a fresh opaque account identifier. Ids are never reused.
func NewID() string {
	return uuid.NewString()
}
