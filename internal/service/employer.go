package service

import (
	"fmt"

	"verihire/candidate-api/internal/model"

	"gorm.io/gorm"
)

// VerifiedCandidate is the employer-facing projection: derived
// profile data only, no account fields, no documents.
type VerifiedCandidate struct {
	ID                   uint                    `json:"id"`
	FullName             *string                 `json:"full_name"`
	Headline             *string                 `json:"headline"`
	PrimarySkills        *string                 `json:"primary_skills"`
	Location             *string                 `json:"location"`
	TotalExperienceYears *int                    `json:"total_experience_years"`
	VerificationLevel    model.VerificationLevel `json:"verification_level"`
	RiskScore            int                     `json:"risk_score"`
}

// ListVerified only ever returns verified profiles; the filter lives
// in the query itself, not in caller discipline.
func ListVerified(db *gorm.DB) ([]VerifiedCandidate, error) {
	var rows []VerifiedCandidate

	err := db.Model(&model.CandidateProfile{}).
		Where("verification_status = ?", model.StatusVerified).
		Order("verification_level DESC, risk_score ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return rows, nil
}

// VerifiedByID returns a single verified profile in the same
// projection as the listing. A profile that exists but is not
// verified is indistinguishable in status code from one that never
// existed, but the error kind differs for logging.
func VerifiedByID(db *gorm.DB, id uint) (*VerifiedCandidate, error) {
	profile, err := ProfileByID(db, id)
	if err != nil {
		return nil, err
	}

	if profile.VerificationStatus != model.StatusVerified {
		return nil, ErrNotVerified
	}

	return &VerifiedCandidate{
		ID:                   profile.ID,
		FullName:             profile.FullName,
		Headline:             profile.Headline,
		PrimarySkills:        profile.PrimarySkills,
		Location:             profile.Location,
		TotalExperienceYears: profile.TotalExperienceYears,
		VerificationLevel:    profile.VerificationLevel,
		RiskScore:            profile.RiskScore,
	}, nil
}
