package service

import (
	"fmt"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/pkg/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Register creates an account and, for candidates, its profile in
// the same transaction. An account without a profile can never be
// observed.
func Register(db *gorm.DB, argon *security.ArgonHash, email, password string, role model.Role) (*model.Account, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w, %v", ErrValidation, model.ErrUnknownRole)
	}

	hash, err := argon.GenerateFromPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password, %w", err)
	}

	accountID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID, %w", err)
	}

	account := &model.Account{
		ID:           accountID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var found bool

		// Exact, case-sensitive match; the unique index backs this up
		r := tx.Model(model.Account{}).
			Select("count(*) > 0").
			Where("email = ?", email).
			Find(&found)
		if r.Error != nil {
			return fmt.Errorf("%w, %v", ErrStoreUnavailable, r.Error)
		}

		if found {
			return ErrDuplicateEmail
		}

		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
		}

		if role == model.RoleCandidate {
			profile := &model.CandidateProfile{
				AccountID:          accountID,
				VerificationStatus: model.StatusUnsubmitted,
				VerificationLevel:  model.LevelNone,
			}

			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate never reveals whether the email or the password was
// the wrong half.
func Authenticate(db *gorm.DB, argon *security.ArgonHash, email, password string) (*model.Account, error) {
	var account model.Account

	err := db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	ok, err := argon.VerifyPasswd(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password, %w", err)
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	return &account, nil
}

func FindAccount(db *gorm.DB, id string) (*model.Account, error) {
	var account model.Account

	err := db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCandidateNotFound
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return &account, nil
}
