package service

import (
	"testing"

	"verihire/candidate-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVerifiedIsSubsetOfVerified(t *testing.T) {
	db := newTestDB(t)

	verified := registerCandidate(t, db, "verified@x.com")
	rejected := registerCandidate(t, db, "rejected@x.com")
	registerCandidate(t, db, "fresh@x.com")

	_, err := Review(db, mustProfileID(t, db, verified.ID), ReviewInput{
		Status: "verified", Level: "premium", RiskScore: "2",
	})
	require.NoError(t, err)

	_, err = Review(db, mustProfileID(t, db, rejected.ID), ReviewInput{
		Status: "rejected", Level: "none",
	})
	require.NoError(t, err)

	rows, err := ListVerified(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Every returned row really is verified
	for _, row := range rows {
		profile, err := ProfileByID(db, row.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusVerified, profile.VerificationStatus)
	}
}

func TestVerifiedByID(t *testing.T) {
	db := newTestDB(t)

	account := registerCandidate(t, db, "a@x.com")
	profileID := mustProfileID(t, db, account.ID)

	_, err := VerifiedByID(db, profileID)
	assert.ErrorIs(t, err, ErrNotVerified)

	_, err = Review(db, profileID, ReviewInput{Status: "verified", Level: "basic"})
	require.NoError(t, err)

	profile, err := VerifiedByID(db, profileID)
	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)

	_, err = VerifiedByID(db, 404)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}
