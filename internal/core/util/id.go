package util

import "github.com/google/uuid"

// GenerateID generates an opaque unique identifier
func GenerateID() string {
	return uuid.NewString()
}
