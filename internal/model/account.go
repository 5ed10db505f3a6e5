// Package model defines database models
package model

import (
	"errors"
	"time"
)

// Role is a closed set. Handlers and the policy package must switch
// over it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCandidate:
		return RoleCandidate, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEmployer:
		return RoleEmployer, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type Account struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Immutable after creation
	Role      Role      `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *CandidateProfile `gorm:"foreignKey:AccountID" json:"-"`
}
