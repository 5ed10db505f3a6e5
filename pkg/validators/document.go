package validators

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrFileEmpty       = errors.New("uploaded file is empty")
	ErrFileTooLarge    = errors.New("file too large")
	ErrFileNameTooLong = errors.New("file name is too long")
	ErrDocTypeEmpty    = errors.New("no document type provided")
	ErrDocTypeTooLong  = errors.New("document type is too long")
)

const (
	maxFileNameSize = 255
	maxDocTypeSize  = 64
)

// DocumentValidator checks the upload metadata before any bytes are
// read. Document types are a free-form tag on purpose, only their
// shape is checked here.
func DocumentValidator(fh *multipart.FileHeader, docType string) (code int, err error) {
	if fh == nil {
		return http.StatusBadRequest, ErrNoFile
	}

	if fh.Size == 0 {
		return http.StatusBadRequest, ErrFileEmpty
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, ErrFileTooLarge
	}

	if len(fh.Filename) > maxFileNameSize {
		return http.StatusBadRequest, ErrFileNameTooLong
	}

	if strings.TrimSpace(docType) == "" {
		return http.StatusBadRequest, ErrDocTypeEmpty
	}

	if len(docType) > maxDocTypeSize {
		return http.StatusBadRequest, ErrDocTypeTooLong
	}

	return 0, nil
}
