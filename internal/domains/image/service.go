package image

import "context"

// Service uploads a recipe image and returns its public URL. The recipe core
// never uploads anything itself; clients pass the returned URL as imageUrl.
type Service interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// ObjectStorage is the slice of the object store the service needs;
// satisfied by storage.MinIOStorage.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
