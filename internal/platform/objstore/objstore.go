package objstore

import (
	"context"
	"errors"
	"io"
)

// ErrNoCredentials means the object store is unreachable because no access
// credentials were configured. Handlers map it to a distinct server error
// rather than a generic failure.
var ErrNoCredentials = errors.New("object store credentials not available")

// Store is the photo upload collaborator: store bytes under a name in the
// configured bucket.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Bucket() string
}
