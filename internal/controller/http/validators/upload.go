package validators

import (
	"errors"
	"fmt"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/ingest"
)

const maxTitleLen = 200

var (
	ErrValidation = errors.New("validation failed")

	ErrEmptyFile     = fmt.Errorf("%w: uploaded file is empty", ErrValidation)
	ErrFileTooLarge  = fmt.Errorf("%w: uploaded file is too large", ErrValidation)
	ErrTitleTooLong  = fmt.Errorf("%w: title exceeds %d characters", ErrValidation, maxTitleLen)
	ErrInvalidFormat = fmt.Errorf("%w: format must be plain or json", ErrValidation)
	ErrInvalidRole   = fmt.Errorf("%w: role must be user or assistant", ErrValidation)
	ErrEmptyMessage  = fmt.Errorf("%w: message must not be empty", ErrValidation)
)

func ValidateUpload(size int64, maxSize int64, title string, format ingest.Format) error {
	if size == 0 {
		return ErrEmptyFile
	}
	if maxSize > 0 && size > maxSize {
		return ErrFileTooLarge
	}
	if len(title) > maxTitleLen {
		return ErrTitleTooLong
	}

	switch format {
	case "", ingest.FormatPlain, ingest.FormatJSON:
	default:
		return ErrInvalidFormat
	}

	return nil
}

func ValidateChatMessage(role, message string) error {
	switch role {
	case domain.ChatRoleUser, domain.ChatRoleAssistant:
	default:
		return ErrInvalidRole
	}

	if message == "" {
		return ErrEmptyMessage
	}

	return nil
}
