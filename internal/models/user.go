package models

import (
	"time"

	"github.com/google/uuid"
)

// Role controls route and action access
type Role string

const (
	RoleUser      Role = "USER"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type User struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	Username       string
	Firstname      string
	Lastname       string
	Email          string
	Gender         Gender
	Birthdate      *time.Time
	Role           Role
	HashedPassword string

	// PasswordChanged is false while the user still signs in with the
	// auto-generated temporary password mailed at signup
	PasswordChanged  bool
	PasswordIssuedAt time.Time
}

func (u User) FullName() string {
	switch {
	case u.Firstname == "":
		return u.Lastname
	case u.Lastname == "":
		return u.Firstname
	default:
		return u.Firstname + " " + u.Lastname
	}
}
