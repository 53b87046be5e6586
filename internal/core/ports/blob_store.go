package ports

import (
	"context"
)

// BlobStore stores opaque byte blobs, used only for settlement payment
// proofs. A failure to store is surfaced to the immediate caller; there is
// no retry.
type BlobStore interface {
	// Store persists the blob and returns its locator.
	Store(ctx context.Context, filename string, data []byte) (string, error)

	// Retrieve reads back the blob for a locator.
	Retrieve(ctx context.Context, locator string) ([]byte, error)
}
