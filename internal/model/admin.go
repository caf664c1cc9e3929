package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

type Admin struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        string
	Role         AdminRole
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// AdminInput carries the fields needed to create an admin account.
type AdminInput struct {
	Username string
	Password string
	Email    string
	Role     AdminRole
}
