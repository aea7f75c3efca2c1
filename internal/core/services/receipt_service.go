package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/core/ports"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/platform/storage"
	"github.com/kipubooks/kipu-backend/internal/utils/fiscal"
)

// receiptService implements the scan, confirm, list and update flows for
// purchase and sale documents.
type receiptService struct {
	BaseService
	receiptRepo       portsrepo.ReceiptRepositoryFacade
	extractor         ports.ReceiptExtractor
	files             ports.FileStore
	extractionTimeout time.Duration
}

// NewReceiptService creates the receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, extractor ports.ReceiptExtractor, files ports.FileStore, extractionTimeout time.Duration) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo:       receiptRepo,
		extractor:         extractor,
		files:             files,
		extractionTimeout: extractionTimeout,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) ScanReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, image []byte) (*domain.ExtractedReceipt, error) {
	normalized, mimeType, err := storage.NormalizeReceiptImage(image)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.extractionTimeout)
	defer cancel()

	extracted, err := s.extractor.ExtractReceipt(ctx, kind, normalized, mimeType)
	if err != nil {
		s.LogError(ctx, err, "receipt extraction failed",
			slog.String("owner_id", ownerID), slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "receipt scanned",
		slog.String("owner_id", ownerID),
		slog.String("kind", string(kind)),
		slog.String("ruc", extracted.RUC),
		slog.String("total", extracted.Total.String()))
	return extracted, nil
}

func (s *receiptService) ConfirmReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, req dto.ConfirmReceiptRequest) (*domain.Receipt, error) {
	if req.Total.IsNegative() {
		return nil, fmt.Errorf("total cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if req.FechaEmision != "" && !fiscal.ValidDate(req.FechaEmision) {
		s.LogWarn(ctx, "unparsable issue date, periodo falls back to processing month",
			slog.String("owner_id", ownerID), slog.String("fecha_emision", req.FechaEmision))
	}

	base, igv := req.BaseImponible, req.IGV
	// A document that carried only a total gets the standard IGV breakdown.
	if base.IsZero() && igv.IsZero() && !req.Total.IsZero() {
		base, igv = fiscal.SplitTotal(req.Total)
	}

	moneda := req.Moneda
	if moneda == "" {
		moneda = "PEN"
	}
	estado := domain.StatusManual
	if req.Scanned {
		estado = domain.StatusConfirmed
	}

	receiptID := uuid.NewString()
	receipt := domain.Receipt{
		ReceiptID:    receiptID,
		OwnerID:      ownerID,
		Kind:         kind,
		Periodo:      fiscal.TaxPeriod(req.FechaEmision, now),
		FechaEmision: req.FechaEmision,
		Counterparty: domain.Counterparty{
			RUC:         req.RUC,
			RazonSocial: req.RazonSocial,
			Direccion:   req.Direccion,
			Telefono:    req.Telefono,
		},
		TipoComprobante: req.TipoComprobante,
		Serie:           req.Serie,
		Numero:          req.Numero,
		BaseImponible:   base,
		IGV:             igv,
		Total:           req.Total,
		Moneda:          moneda,
		Categoria:       req.Categoria,
		Estado:          estado,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	for i, item := range req.Items {
		receipt.LineItems = append(receipt.LineItems, domain.LineItem{
			LineItemID:     uuid.NewString(),
			ReceiptID:      receiptID,
			Descripcion:    item.Descripcion,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Total:          item.Total,
			Position:       i,
		})
	}

	if err := s.receiptRepo.SaveReceiptWithItems(ctx, receipt); err != nil {
		s.LogError(ctx, err, "failed to confirm receipt", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "receipt confirmed",
		slog.String("receipt_id", receiptID),
		slog.String("owner_id", ownerID),
		slog.String("kind", string(kind)),
		slog.String("periodo", receipt.Periodo),
		slog.Int("items", len(receipt.LineItems)))
	return &receipt, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, ownerID, kind, receiptID)
	if err != nil {
		return nil, err
	}

	if req.Total != nil {
		if req.Total.IsNegative() {
			return nil, fmt.Errorf("total cannot be negative: %w", apperrors.ErrValidation)
		}
		receipt.Total = *req.Total
		// The breakdown follows the corrected total.
		receipt.BaseImponible, receipt.IGV = fiscal.SplitTotal(*req.Total)
	}
	if req.FechaEmision != nil {
		receipt.FechaEmision = *req.FechaEmision
		receipt.Periodo = fiscal.TaxPeriod(*req.FechaEmision, time.Now().UTC())
	}
	receipt.LastUpdatedAt = time.Now().UTC()
	receipt.LastUpdatedBy = ownerID

	if err := s.receiptRepo.UpdateAmountAndDate(ctx, ownerID, kind, receiptID, *receipt); err != nil {
		s.LogError(ctx, err, "failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, ownerID, kind, receiptID); err != nil {
		return err
	}
	s.LogInfo(ctx, "receipt deleted", slog.String("receipt_id", receiptID), slog.String("owner_id", ownerID))
	return nil
}

func (s *receiptService) AttachImage(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, image []byte) (string, error) {
	// Ownership check before touching the filesystem.
	if _, err := s.receiptRepo.FindReceiptByID(ctx, ownerID, kind, receiptID); err != nil {
		return "", err
	}

	normalized, _, err := storage.NormalizeReceiptImage(image)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	path, err := s.files.Save(ownerID, storage.PurposeReceipt, ".jpg", normalized)
	if err != nil {
		s.LogError(ctx, err, "failed to store receipt image", slog.String("receipt_id", receiptID))
		return "", fmt.Errorf("failed to store receipt image: %w", err)
	}

	if err := s.receiptRepo.SetImagePath(ctx, ownerID, kind, receiptID, path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, ownerID string, kind domain.ReceiptKind, limit int, pageToken string) ([]domain.Receipt, string, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.receiptRepo.FindReceiptsByOwner(ctx, ownerID, kind, limit, pageToken)
}

func (s *receiptService) GetReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, ownerID, kind, receiptID)
}
