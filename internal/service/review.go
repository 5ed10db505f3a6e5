package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"verihire/candidate-api/internal/model"

	"gorm.io/gorm"
)

// ReviewInput is what an administrator submits on the review form.
// RiskScore stays a string end to end so the lenient coercion below
// is the only place that interprets it.
type ReviewInput struct {
	Status    string `json:"status"`
	Level     string `json:"level"`
	RiskScore string `json:"risk_score"`
	Notes     string `json:"notes"`
}

// CoerceRiskScore turns form input into a non-negative integer.
// Missing or unparseable input becomes 0, negatives clamp to 0. Never
// an error: the review flow is deliberately lenient here.
func CoerceRiskScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// Review applies an administrator decision to a profile: status,
// level, risk score and notes are set atomically together with
// last_reviewed_at. Calling it twice with identical input leaves the
// same state. There is no history, only the current row.
func Review(db *gorm.DB, profileID uint, in ReviewInput) (*model.CandidateProfile, error) {
	status, err := model.ParseStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrValidation, err)
	}

	level, err := model.ParseLevel(in.Level)
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrValidation, err)
	}

	now := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		r := tx.Model(&model.CandidateProfile{}).
			Where("id = ?", profileID).
			Updates(map[string]any{
				"verification_status": status,
				"verification_level":  level,
				"risk_score":          CoerceRiskScore(in.RiskScore),
				"admin_notes":         nullable(in.Notes),
				"last_reviewed_at":    now,
				"updated_at":          now,
			})
		if r.Error != nil {
			return fmt.Errorf("%w, %v", ErrStoreUnavailable, r.Error)
		}

		if r.RowsAffected == 0 {
			return ErrCandidateNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ProfileByID(db, profileID)
}

// Submit is the candidate-driven transition into the review queue.
// Only unsubmitted and rejected profiles may enter submitted; every
// other state is the administrator's to change.
func Submit(db *gorm.DB, accountID string) (*model.CandidateProfile, error) {
	profile, err := ProfileByAccount(db, accountID)
	if err != nil {
		return nil, err
	}

	switch profile.VerificationStatus {
	case model.StatusUnsubmitted, model.StatusRejected:
	case model.StatusSubmitted, model.StatusVerified:
		return nil, fmt.Errorf("%w, cannot submit a %s profile", ErrValidation, profile.VerificationStatus)
	default:
		return nil, fmt.Errorf("%w, %v", ErrValidation, model.ErrUnknownStatus)
	}

	err = db.Model(&model.CandidateProfile{}).
		Where("id = ?", profile.ID).
		Update("verification_status", model.StatusSubmitted).Error
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return ProfileByAccount(db, accountID)
}
