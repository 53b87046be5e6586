// Package blobstore stores uploaded payment proofs on the local filesystem.
// The locator returned to callers is the path relative to the store root, so
// the root can move without invalidating stored locators.
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// FilesystemBlobStore implements ports.BlobStore on a local directory.
// Filenames are prefixed with a random identifier so repeated uploads of the
// same file never collide.
type FilesystemBlobStore struct {
	root string
}

// NewFilesystemBlobStore creates a blob store rooted at the given directory,
// creating it if needed.
func NewFilesystemBlobStore(root string) (*FilesystemBlobStore, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FilesystemBlobStore{root: root}, nil
}

// Store writes the data under a collision-free name and returns its locator.
func (s *FilesystemBlobStore) Store(_ context.Context, filename string, data []byte) (string, error) {
	if filename == "" {
		return "", errs.NewValueIsRequiredError("filename")
	}
	if len(data) == 0 {
		return "", errs.NewValueIsRequiredError("data")
	}

	locator := fmt.Sprintf("%s_%s", uuid.NewString()[:8], sanitize(filename))
	if err := os.WriteFile(filepath.Join(s.root, locator), data, 0o644); err != nil {
		return "", err
	}
	return locator, nil
}

// Retrieve reads the blob back by its locator.
func (s *FilesystemBlobStore) Retrieve(_ context.Context, locator string) ([]byte, error) {
	if locator == "" {
		return nil, errs.NewValueIsRequiredError("locator")
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.Base(locator)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundError("blob", locator)
		}
		return nil, err
	}
	return data, nil
}

// sanitize strips path separators from user-supplied filenames.
func sanitize(filename string) string {
	cleaned := filepath.Base(filename)
	return strings.ReplaceAll(cleaned, string(os.PathSeparator), "_")
}
