package app

import (
	"context"
	"errors"

	"weighin/internal/domain"
)

const maxImageSize = 10 << 20 // 10MB

// ErrOCRUnavailable indicates that no vision backend is configured.
var ErrOCRUnavailable = errors.New("scale reading is not configured")

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// OCRService validates scale photos and delegates reading them to the
// external vision model.
type OCRService struct {
	reader domain.ScaleReader
}

// NewOCRService creates an OCRService. A nil reader disables the feature.
func NewOCRService(reader domain.ScaleReader) *OCRService {
	return &OCRService{reader: reader}
}

// ReadScalePhoto validates the upload and asks the vision model for the
// weight shown on the scale.
func (s *OCRService) ReadScalePhoto(ctx context.Context, image []byte, mediaType string) (*domain.OCRResult, error) {
	if s.reader == nil {
		return nil, ErrOCRUnavailable
	}
	if !validImageTypes[mediaType] {
		return nil, errors.New("invalid image type; upload a JPEG, PNG, WebP, or GIF")
	}
	if len(image) == 0 {
		return nil, errors.New("no image provided")
	}
	if len(image) > maxImageSize {
		return nil, errors.New("image too large; maximum size is 10MB")
	}
	return s.reader.ReadScale(ctx, image, mediaType)
}
