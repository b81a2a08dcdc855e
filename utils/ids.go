package utils

import "github.com/google/uuid"

// NewID returns a random uuid string used as a document identifier.
func NewID() string {
	return uuid.New().String()
}
