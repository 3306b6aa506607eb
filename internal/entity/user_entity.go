// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleGuest   UserRole = "guest"
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	Department   Department
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserIdentity is what the authentication store hands back on a successful
// credential check. Deliberately smaller than User: downstream code only
// ever needs these three fields.
type UserIdentity struct {
	FullName   string
	Role       UserRole
	Department Department
}
