package internal

import (
	"verihire/candidate-api/internal/service"
	"verihire/candidate-api/pkg/security"
	"verihire/candidate-api/storage"

	"gorm.io/gorm"
)

type Deps struct {
	DB    *gorm.DB
	Argon *security.ArgonHash
	Blob  storage.Storage
	Docs  *service.Documents
}
