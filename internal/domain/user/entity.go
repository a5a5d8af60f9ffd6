package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleHR    = "hr"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
