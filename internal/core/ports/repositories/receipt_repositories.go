package repositories

import (
	"context"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
)

// ReceiptRepositoryFacade defines persistence operations for receipts and
// their line items. Every read and write is scoped to an owner; a row that
// belongs to someone else behaves exactly like a missing row.
type ReceiptRepositoryFacade interface {
	// SaveReceiptWithItems persists the receipt and all of its line items as
	// a single transaction: any item failure rolls back the parent.
	SaveReceiptWithItems(ctx context.Context, receipt domain.Receipt) error

	// FindReceiptsByOwner returns summaries most-recent-first by insertion
	// order. pageToken of "" starts from the newest; the returned token is ""
	// when the listing is exhausted.
	FindReceiptsByOwner(ctx context.Context, ownerID string, kind domain.ReceiptKind, limit int, pageToken string) ([]domain.Receipt, string, error)

	// FindReceiptByID returns the receipt with its line items in position
	// order. Returns apperrors.ErrNotFound for an absent id or another
	// owner's row.
	FindReceiptByID(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) (*domain.Receipt, error)

	// UpdateAmountAndDate applies a partial update of monetary fields and
	// issue date. Returns apperrors.ErrNotFound if no row matched.
	UpdateAmountAndDate(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, receipt domain.Receipt) error

	// DeleteReceipt removes the receipt and all of its line items in one
	// transaction. Returns apperrors.ErrNotFound if nothing was deleted.
	DeleteReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) error

	// SetImagePath records the stored source image for a receipt. Metadata
	// only; the file itself is not validated.
	SetImagePath(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, path string) error
}
