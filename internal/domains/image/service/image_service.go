package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"recipes-backend/internal/domains/image"
)

// MaxImageSize bounds uploads to 5 MiB.
const MaxImageSize = 5 << 20

type imageServiceImpl struct {
	storage image.ObjectStorage
}

func NewImageService(store image.ObjectStorage) image.Service {
	return &imageServiceImpl{storage: store}
}

// Upload stores the image under a fresh uuid key, keeping the original file
// extension so the object store serves a sensible content type.
func (s *imageServiceImpl) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", image.ErrUnsupportedType
	}
	if len(data) > MaxImageSize {
		return "", image.ErrTooLarge
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(filename)))

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return url, nil
}
