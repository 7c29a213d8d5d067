package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateKodeBarang generates a unique fabric code for newly entered
// barang that arrive without one.
func GenerateKodeBarang() string {
	return "KB-" + strings.ToUpper(uuid.New().String()[:8])
}
