package model

import "time"

// Document rows are immutable once created. The bytes themselves live
// in the blob store under StoredKey.
type Document struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CandidateProfileID uint   `gorm:"index;not null" json:"-"`
	Type               string `gorm:"not null" json:"type"`
	OriginalFilename   string `gorm:"not null" json:"original_filename"`
	// Opaque handle into the blob store
	StoredKey  string    `gorm:"not null" json:"-"`
	MimeType   string    `gorm:"not null" json:"mime_type"`
	Size       int64     `gorm:"not null" json:"size"`
	UploadedAt time.Time `gorm:"not null" json:"uploaded_at"`
}
