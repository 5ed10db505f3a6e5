package db

import (
	"fmt"
	"testing"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Account{}, &model.CandidateProfile{}, &model.Document{}))

	return db
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	db := newTestDB(t)
	argon := security.New()

	require.NoError(t, EnsureAdmin(db, argon, "admin@example.com", "admin-pass-123"))

	var count int64
	require.NoError(t, db.Model(&model.Account{}).Where("role = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Running the bootstrap again does nothing
	require.NoError(t, EnsureAdmin(db, argon, "other-admin@example.com", "different-pass"))

	require.NoError(t, db.Model(&model.Account{}).Where("role = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var admin model.Account
	require.NoError(t, db.Where("role = ?", model.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	db := newTestDB(t)

	assert.Error(t, EnsureAdmin(db, security.New(), "", ""))
}
