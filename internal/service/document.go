package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/pkg/util"
	"verihire/candidate-api/storage"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Documents couples the metadata rows with the blob store that holds
// the actual bytes.
type Documents struct {
	DB    *gorm.DB
	Store storage.Storage
}

func NewDocuments(db *gorm.DB, store storage.Storage) *Documents {
	return &Documents{DB: db, Store: store}
}

// Upload stores the blob and records its metadata. The mime type is
// sniffed from the bytes, not taken from the client. Requires an
// existing profile; nothing is written otherwise.
func (s *Documents) Upload(ctx context.Context, accountID, docType, filename string, f io.ReadSeeker, size int64) (*model.Document, error) {
	profile, err := ProfileByAccount(s.DB, accountID)
	if err != nil {
		return nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to sniff file type, %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload, %w", err)
	}

	key := util.RandStr(10) + path.Ext(filename)

	if err := s.Store.Save(ctx, key, f, size, mime.String()); err != nil {
		return nil, fmt.Errorf("failed to store blob, %w", err)
	}

	doc := &model.Document{
		CandidateProfileID: profile.ID,
		Type:               docType,
		OriginalFilename:   filename,
		StoredKey:          key,
		MimeType:           mime.String(),
		Size:               size,
		UploadedAt:         time.Now(),
	}

	if err := s.DB.Create(doc).Error; err != nil {
		// Don't leave an unreferenced blob behind
		if delErr := s.Store.Delete(context.Background(), key); delErr != nil {
			zap.L().Error("Failed to clean up blob after failed insert",
				zap.String("key", key), zap.Error(delErr))
		}

		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return doc, nil
}

// ByAccount lists a candidate's own documents, newest first.
func (s *Documents) ByAccount(accountID string) ([]model.Document, error) {
	profile, err := ProfileByAccount(s.DB, accountID)
	if err != nil {
		return nil, err
	}

	return DocumentsByProfile(s.DB, profile.ID)
}

func DocumentsByProfile(db *gorm.DB, profileID uint) ([]model.Document, error) {
	var docs []model.Document

	err := db.Where("candidate_profile_id = ?", profileID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("%w, %v", ErrStoreUnavailable, err)
	}

	return docs, nil
}
