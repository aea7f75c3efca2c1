package services

import (
	"context"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/dto"
)

// ReceiptScannerSvc defines the scan flow: image in, extracted fields out,
// nothing persisted.
type ReceiptScannerSvc interface {
	// ScanReceipt normalizes the photo and sends it to the extraction
	// service once. Extraction failures surface to the caller so the client
	// can re-prompt the user with the photo.
	ScanReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, image []byte) (*domain.ExtractedReceipt, error)
}

// ReceiptWriterSvc defines write operations for receipts.
type ReceiptWriterSvc interface {
	// ConfirmReceipt persists a reviewed receipt and its line items
	// atomically, deriving the tax period and, when absent, the IGV
	// breakdown.
	ConfirmReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, req dto.ConfirmReceiptRequest) (*domain.Receipt, error)

	// UpdateReceipt applies a partial amount/date update, rederiving the
	// dependent fields.
	UpdateReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error)

	// DeleteReceipt removes the receipt and its line items.
	DeleteReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) error

	// AttachImage stores the source photo for an existing receipt and
	// records its path.
	AttachImage(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, image []byte) (string, error)
}

// ReceiptReaderSvc defines read operations for receipts.
type ReceiptReaderSvc interface {
	// ListReceipts returns owner-scoped summaries, most-recent-first.
	ListReceipts(ctx context.Context, ownerID string, kind domain.ReceiptKind, limit int, pageToken string) ([]domain.Receipt, string, error)

	// GetReceipt returns one receipt with its line items.
	GetReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) (*domain.Receipt, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptScannerSvc
	ReceiptWriterSvc
	ReceiptReaderSvc
}
