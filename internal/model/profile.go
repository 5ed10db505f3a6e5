package model

import (
	"errors"
	"time"
)

// VerificationStatus is the coarse workflow stage of a profile:
// unsubmitted -> submitted -> {verified, rejected}, with rejected
// allowed back to submitted on resubmission.
type VerificationStatus string

const (
	StatusUnsubmitted VerificationStatus = "unsubmitted"
	StatusSubmitted   VerificationStatus = "submitted"
	StatusVerified    VerificationStatus = "verified"
	StatusRejected    VerificationStatus = "rejected"
)

// VerificationLevel is the admin-assigned trust tier, independent of
// the status.
type VerificationLevel string

const (
	LevelNone     VerificationLevel = "none"
	LevelBasic    VerificationLevel = "basic"
	LevelStandard VerificationLevel = "standard"
	LevelPremium  VerificationLevel = "premium"
)

var (
	ErrUnknownStatus = errors.New("unknown verification status")
	ErrUnknownLevel  = errors.New("unknown verification level")
)

func ParseStatus(s string) (VerificationStatus, error) {
	switch VerificationStatus(s) {
	case StatusUnsubmitted, StatusSubmitted, StatusVerified, StatusRejected:
		return VerificationStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

func ParseLevel(s string) (VerificationLevel, error) {
	switch VerificationLevel(s) {
	case LevelNone, LevelBasic, LevelStandard, LevelPremium:
		return VerificationLevel(s), nil
	default:
		return "", ErrUnknownLevel
	}
}

type CandidateProfile struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// Exactly one profile per candidate account, created in the same
	// transaction as the account itself
	AccountID string `gorm:"uniqueIndex;not null" json:"-"`

	// Personal fields, owned by the candidate. Every save overwrites
	// all of them, blank input becomes NULL
	FullName             *string `json:"full_name"`
	DOB                  *string `json:"dob"`
	Phone                *string `json:"phone"`
	Location             *string `json:"location"`
	Headline             *string `json:"headline"`
	TotalExperienceYears *int    `json:"total_experience_years"`
	PrimarySkills        *string `json:"primary_skills"`
	LinkedinURL          *string `json:"linkedin_url"`
	GithubURL            *string `json:"github_url"`

	// Verification fields, owned by administrators
	VerificationStatus VerificationStatus `gorm:"not null;default:unsubmitted" json:"verification_status"`
	VerificationLevel  VerificationLevel  `gorm:"not null;default:none" json:"verification_level"`
	RiskScore          int                `gorm:"not null;default:0" json:"risk_score"`
	AdminNotes         *string            `json:"admin_notes,omitempty"`
	LastReviewedAt     *time.Time         `json:"last_reviewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Documents []Document `gorm:"foreignKey:CandidateProfileID" json:"-"`
}
