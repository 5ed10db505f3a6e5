package service

import (
	"fmt"
	"strings"
	"testing"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/pkg/security"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testArgon = security.New()

// newTestDB opens a per-test in-memory database. cache=shared keeps
// the schema visible across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Account{}, &model.CandidateProfile{}, &model.Document{}))

	return db
}

func registerCandidate(t *testing.T, db *gorm.DB, email string) *model.Account {
	t.Helper()

	account, err := Register(db, testArgon, email, "password123", model.RoleCandidate)
	require.NoError(t, err)

	return account
}

func mustProfileID(t *testing.T, db *gorm.DB, accountID string) uint {
	t.Helper()

	profile, err := ProfileByAccount(db, accountID)
	require.NoError(t, err)

	return profile.ID
}
