package service

import (
	"testing"

	"verihire/candidate-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCandidateCreatesProfile(t *testing.T) {
	db := newTestDB(t)

	account := registerCandidate(t, db, "a@x.com")
	require.Equal(t, model.RoleCandidate, account.Role)

	profile, err := ProfileByAccount(db, account.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusUnsubmitted, profile.VerificationStatus)
	assert.Equal(t, model.LevelNone, profile.VerificationLevel)
	assert.Zero(t, profile.RiskScore)
}

func TestRegisterEmployerHasNoProfile(t *testing.T) {
	db := newTestDB(t)

	account, err := Register(db, testArgon, "hr@corp.com", "password123", model.RoleEmployer)
	require.NoError(t, err)

	_, err = ProfileByAccount(db, account.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, testArgon, "a@x.com", "password123", model.Role("root"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	registerCandidate(t, db, "a@x.com")

	// Role doesn't matter, the email is taken
	_, err := Register(db, testArgon, "a@x.com", "otherpassword", model.RoleEmployer)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = Register(db, testArgon, "a@x.com", "password123", model.RoleCandidate)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&model.Account{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)

	account := registerCandidate(t, db, "a@x.com")

	got, err := Authenticate(db, testArgon, "a@x.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	_, err = Authenticate(db, testArgon, "a@x.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, testArgon, "nobody@x.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFindAccount(t *testing.T) {
	db := newTestDB(t)

	account := registerCandidate(t, db, "a@x.com")

	got, err := FindAccount(db, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = FindAccount(db, "missing")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}
