package utils

import (
	"github.com/google/uuid"
)

// NewRequestLabel returns a random UUIDv4 naming a batch of download tickets.
func NewRequestLabel() string {
	return uuid.New().String()
}
