// Package ports declares the driven-side interfaces the core services depend
// on beyond the database: the extraction gateway and the file store.
package ports

import (
	"context"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/platform/storage"
)

// ReceiptExtractor turns a receipt photo into a best-effort structured
// record. Implementations make exactly one attempt per call; retry policy is
// the caller's responsibility. The context carries the timeout.
type ReceiptExtractor interface {
	ExtractReceipt(ctx context.Context, kind domain.ReceiptKind, image []byte, mimeType string) (*domain.ExtractedReceipt, error)
}

// FileStore persists uploaded files and returns the relative path to record
// in the database. It never validates that a recorded path still resolves.
type FileStore interface {
	Save(ownerID string, purpose storage.Purpose, ext string, data []byte) (string, error)
}
