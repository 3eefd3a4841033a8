package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipes-backend/internal/domains/image"
)

type fakeObjectStorage struct {
	key         string
	contentType string
}

func (f *fakeObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.key = key
	f.contentType = contentType
	return "http://localhost:9000/recipes/" + key, nil
}

func TestUploadStoresUnderUUIDKey(t *testing.T) {
	store := &fakeObjectStorage{}
	svc := NewImageService(store)

	url, err := svc.Upload(context.Background(), "tea.JPG", "image/jpeg", []byte("fake"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(store.key, "recipes/"))
	assert.True(t, strings.HasSuffix(store.key, ".jpg"))
	assert.Equal(t, "image/jpeg", store.contentType)
	assert.Contains(t, url, store.key)
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := NewImageService(&fakeObjectStorage{})

	_, err := svc.Upload(context.Background(), "notes.pdf", "application/pdf", []byte("fake"))

	assert.ErrorIs(t, err, image.ErrUnsupportedType)
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	svc := NewImageService(&fakeObjectStorage{})

	_, err := svc.Upload(context.Background(), "big.png", "image/png", make([]byte, MaxImageSize+1))

	assert.ErrorIs(t, err, image.ErrTooLarge)
}
