package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7 holding identifier. UUIDv7 is time-ordered, so
// ids still sort by creation time, and its random tail keeps ids unique
// when holdings are created from more than one process.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and parses a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
