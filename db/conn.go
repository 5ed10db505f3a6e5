// Package db opens the relational store and runs the boot-time
// migrations and seeding
package db

import (
	"errors"
	"fmt"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/pkg/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dsn := viper.GetString("db.dsn")

	switch driver := viper.GetString("db.driver"); driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(&model.Account{}, &model.CandidateProfile{}, &model.Document{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

// EnsureAdmin is the idempotent bootstrap step that guarantees at
// least one admin account exists. It runs once at process start,
// keyed on "no admin exists yet", inside a transaction.
func EnsureAdmin(db *gorm.DB, argon *security.ArgonHash, email, password string) error {
	if email == "" || password == "" {
		return errors.New("admin seed credentials are not configured")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64

		err := tx.Model(&model.Account{}).
			Where("role = ?", model.RoleAdmin).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check for admin accounts, %w", err)
		}

		if count > 0 {
			return nil
		}

		hash, err := argon.GenerateFromPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password, %w", err)
		}

		id, err := gonanoid.Generate(idCharset, 16)
		if err != nil {
			return fmt.Errorf("failed to generate admin account ID, %w", err)
		}

		err = tx.Create(&model.Account{
			ID:           id,
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to seed admin account, %w", err)
		}

		zap.L().Info("Seeded admin account", zap.String("email", email))
		return nil
	})
}
