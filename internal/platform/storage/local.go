// Package storage persists uploaded files on the local filesystem. Files are
// grouped by purpose and owner and get random names, so no two requests ever
// write the same path. The database stores paths relative to the store root.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Purpose scopes a stored file to the feature that produced it.
type Purpose string

const (
	PurposeReceipt Purpose = "receipts"
	PurposeAvatar  Purpose = "avatars"
	PurposeLogo    Purpose = "logos"
)

// LocalStore writes files under a single root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates the store root if it does not exist yet.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("upload directory cannot be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes data under <root>/<purpose>/<ownerID>/<uuid><ext> and returns
// the path relative to the store root.
func (s *LocalStore) Save(ownerID string, purpose Purpose, ext string, data []byte) (string, error) {
	dir := filepath.Join(s.root, string(purpose), ownerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return filepath.ToSlash(filepath.Join(string(purpose), ownerID, name)), nil
}

// Root returns the store root directory, for mounting as a static route.
func (s *LocalStore) Root() string {
	return s.root
}
