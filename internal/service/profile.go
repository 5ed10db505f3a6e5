package service

import (
	"fmt"
	"strconv"
	"strings"

	"verihire/candidate-api/internal/model"

	"gorm.io/gorm"
)

// ProfileInput carries the raw form values of a profile save. Strings
// on purpose: blank means "erase", not "leave unchanged".
type ProfileInput struct {
	FullName             string `json:"full_name"`
	DOB                  string `json:"dob"`
	Phone                string `json:"phone"`
	Location             string `json:"location"`
	Headline             string `json:"headline"`
	TotalExperienceYears string `json:"total_experience_years"`
	PrimarySkills        string `json:"primary_skills"`
	LinkedinURL          string `json:"linkedin_url"`
	GithubURL            string `json:"github_url"`
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

func nullableInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}

	return &n
}

// UpdateProfile overwrites every personal field on every save.
// Verification fields are untouchable through this path.
func UpdateProfile(db *gorm.DB, accountID string, in ProfileInput) (*model.CandidateProfile, error) {
	profile, err := ProfileByAccount(db, accountID)
	if err != nil {
		return nil, err
	}

	err = db.Model(&model.CandidateProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":              nullable(in.FullName),
			"dob":                    nullable(in.DOB),
			"phone":                  nullable(in.Phone),
			"location":               nullable(in.Location),
			"headline":               nullable(in.Headline),
			"total_experience_years": nullableInt(in.TotalExperienceYears),
			"primary_skills":         nullable(in.PrimarySkills),
			"linkedin_url":           nullable(in.LinkedinURL),
			"github_url":             nullable(in.GithubURL),
		}).Error
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return ProfileByAccount(db, accountID)
}

func ProfileByAccount(db *gorm.DB, accountID string) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile

	err := db.Where("account_id = ?", accountID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return &profile, nil
}

func ProfileByID(db *gorm.DB, id uint) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile

	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCandidateNotFound
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return &profile, nil
}

// CandidateRow is the admin listing projection: the profile joined
// with the account email.
type CandidateRow struct {
	model.CandidateProfile
	Email string `json:"email"`
}

func ListCandidates(db *gorm.DB) ([]CandidateRow, error) {
	var rows []CandidateRow

	err := db.Model(&model.CandidateProfile{}).
		Select("candidate_profiles.*, accounts.email").
		Joins("JOIN accounts ON accounts.id = candidate_profiles.account_id").
		Order("candidate_profiles.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return rows, nil
}

func CandidateByID(db *gorm.DB, id uint) (*CandidateRow, error) {
	var row CandidateRow

	err := db.Model(&model.CandidateProfile{}).
		Select("candidate_profiles.*, accounts.email").
		Joins("JOIN accounts ON accounts.id = candidate_profiles.account_id").
		Where("candidate_profiles.id = ?", id).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCandidateNotFound
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return &row, nil
}
