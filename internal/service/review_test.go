package service

import (
	"testing"
	"time"

	"verihire/candidate-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceRiskScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 12 ", 12},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"7.5", 0},
		{"-3", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceRiskScore(tt.in), "input %q", tt.in)
	}
}

func TestReviewSetsAllFields(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	before, err := ProfileByID(db, profileID)
	require.NoError(t, err)
	require.Nil(t, before.LastReviewedAt)

	got, err := Review(db, profileID, ReviewInput{
		Status:    "verified",
		Level:     "standard",
		RiskScore: "7",
		Notes:     "checked references",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusVerified, got.VerificationStatus)
	assert.Equal(t, model.LevelStandard, got.VerificationLevel)
	assert.Equal(t, 7, got.RiskScore)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, "checked references", *got.AdminNotes)

	require.NotNil(t, got.LastReviewedAt)
	assert.WithinDuration(t, time.Now(), *got.LastReviewedAt, time.Minute)
	assert.False(t, got.UpdatedAt.Before(before.UpdatedAt))
}

func TestReviewInvalidRiskScoreDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	got, err := Review(db, profileID, ReviewInput{
		Status:    "submitted",
		Level:     "none",
		RiskScore: "abc",
	})
	require.NoError(t, err)
	assert.Zero(t, got.RiskScore)
}

func TestReviewRejectsUnknownStatusAndLevel(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	_, err := Review(db, profileID, ReviewInput{Status: "approved", Level: "none"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Review(db, profileID, ReviewInput{Status: "verified", Level: "platinum"})
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing was written
	profile, err := ProfileByID(db, profileID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnsubmitted, profile.VerificationStatus)
	assert.Nil(t, profile.LastReviewedAt)
}

func TestReviewUnknownProfile(t *testing.T) {
	db := newTestDB(t)

	_, err := Review(db, 404, ReviewInput{Status: "verified", Level: "basic"})
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestReviewIdempotent(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	in := ReviewInput{Status: "rejected", Level: "basic", RiskScore: "42", Notes: "incomplete"}

	first, err := Review(db, profileID, in)
	require.NoError(t, err)

	second, err := Review(db, profileID, in)
	require.NoError(t, err)

	assert.Equal(t, first.VerificationStatus, second.VerificationStatus)
	assert.Equal(t, first.VerificationLevel, second.VerificationLevel)
	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.Equal(t, *first.AdminNotes, *second.AdminNotes)
}

func TestSubmitTransitions(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	// unsubmitted -> submitted
	got, err := Submit(db, account.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, got.VerificationStatus)

	// submitted profiles are already in the queue
	_, err = Submit(db, account.ID)
	assert.ErrorIs(t, err, ErrValidation)

	// rejected -> submitted (resubmission)
	_, err = Review(db, profileID, ReviewInput{Status: "rejected", Level: "none"})
	require.NoError(t, err)

	got, err = Submit(db, account.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, got.VerificationStatus)

	// verified profiles stay put
	_, err = Review(db, profileID, ReviewInput{Status: "verified", Level: "basic"})
	require.NoError(t, err)

	_, err = Submit(db, account.ID)
	assert.ErrorIs(t, err, ErrValidation)
}
