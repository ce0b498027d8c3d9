package model

import (
	"time"

	"taskboard/internal/core/util"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized to clients
	CreatedAt    time.Time `json:"createdAt"`
}

func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           util.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}
