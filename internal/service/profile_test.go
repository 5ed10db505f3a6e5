package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileEraseOnBlank(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")

	profile, err := UpdateProfile(db, account.ID, ProfileInput{
		FullName: "Ann",
		Phone:    "",
	})
	require.NoError(t, err)

	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Ann", *profile.FullName)
	assert.Nil(t, profile.Phone)

	// A save with everything blank erases previous values
	profile, err = UpdateProfile(db, account.ID, ProfileInput{})
	require.NoError(t, err)
	assert.Nil(t, profile.FullName)
}

func TestUpdateProfileExperienceYears(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")

	profile, err := UpdateProfile(db, account.ID, ProfileInput{TotalExperienceYears: "5"})
	require.NoError(t, err)
	require.NotNil(t, profile.TotalExperienceYears)
	assert.Equal(t, 5, *profile.TotalExperienceYears)

	profile, err = UpdateProfile(db, account.ID, ProfileInput{TotalExperienceYears: "lots"})
	require.NoError(t, err)
	assert.Nil(t, profile.TotalExperienceYears)
}

func TestUpdateProfileLeavesVerificationAlone(t *testing.T) {
	db := newTestDB(t)
	account := registerCandidate(t, db, "a@x.com")

	_, err := Review(db, mustProfileID(t, db, account.ID), ReviewInput{
		Status: "verified", Level: "basic", RiskScore: "3",
	})
	require.NoError(t, err)

	profile, err := UpdateProfile(db, account.ID, ProfileInput{FullName: "Ann"})
	require.NoError(t, err)

	assert.EqualValues(t, "verified", profile.VerificationStatus)
	assert.EqualValues(t, "basic", profile.VerificationLevel)
	assert.Equal(t, 3, profile.RiskScore)
}

func TestUpdateProfileMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateProfile(db, "no-such-account", ProfileInput{FullName: "Ann"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListCandidatesIncludesEmail(t *testing.T) {
	db := newTestDB(t)
	registerCandidate(t, db, "a@x.com")
	registerCandidate(t, db, "b@x.com")

	rows, err := ListCandidates(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	emails := []string{rows[0].Email, rows[1].Email}
	assert.Contains(t, emails, "a@x.com")
	assert.Contains(t, emails, "b@x.com")
}
