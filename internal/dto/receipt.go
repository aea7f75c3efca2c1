package dto

import (
	"time"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line item in a confirm payload.
type LineItemRequest struct {
	Descripcion    string          `json:"descripcion" binding:"required"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
}

// ConfirmReceiptRequest is the payload persisting a reviewed receipt. Total
// is authoritative; base and IGV may be omitted and are then back-computed.
// FechaEmision is taken as extracted, even when unparsable: the tax period
// then falls back to the processing month instead of failing the confirm.
type ConfirmReceiptRequest struct {
	FechaEmision string `json:"fechaEmision"`

	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`

	TipoComprobante string `json:"tipoComprobante"`
	Serie           string `json:"serie"`
	Numero          string `json:"numero"`

	BaseImponible decimal.Decimal `json:"baseImponible"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	Moneda        string          `json:"moneda"`

	Categoria string `json:"categoria"`
	// Scanned marks the scan-and-confirm flow; direct manual entries leave
	// it false.
	Scanned bool `json:"scanned"`

	Items []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateReceiptRequest is a partial amount/date update. Omitted fields stay
// unchanged.
type UpdateReceiptRequest struct {
	Total        *decimal.Decimal `json:"total"`
	FechaEmision *string          `json:"fechaEmision"`
}

// ListReceiptsParams defines query parameters for listing receipts.
type ListReceiptsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// LineItemResponse is the API shape of a line item.
type LineItemResponse struct {
	LineItemID     string          `json:"lineItemID"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
}

// ReceiptResponse is the full API shape of a receipt.
type ReceiptResponse struct {
	ReceiptID string `json:"receiptID"`
	Kind      string `json:"kind"`

	Periodo      string `json:"periodo"`
	FechaEmision string `json:"fechaEmision"`

	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Direccion   string `json:"direccion,omitempty"`
	Telefono    string `json:"telefono,omitempty"`

	TipoComprobante string `json:"tipoComprobante,omitempty"`
	Serie           string `json:"serie,omitempty"`
	Numero          string `json:"numero,omitempty"`

	BaseImponible decimal.Decimal `json:"baseImponible"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total"`
	Moneda        string          `json:"moneda"`

	Categoria string    `json:"categoria,omitempty"`
	Estado    string    `json:"estado"`
	ImagePath string    `json:"imagePath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Items []LineItemResponse `json:"items,omitempty"`
}

// ReceiptSummaryResponse is the listing shape of a receipt.
type ReceiptSummaryResponse struct {
	ReceiptID    string          `json:"receiptID"`
	Periodo      string          `json:"periodo"`
	FechaEmision string          `json:"fechaEmision"`
	RUC          string          `json:"ruc"`
	RazonSocial  string          `json:"razonSocial"`
	Total        decimal.Decimal `json:"total"`
	Moneda       string          `json:"moneda"`
	Categoria    string          `json:"categoria,omitempty"`
	Estado       string          `json:"estado"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListReceiptsResponse wraps a page of summaries.
type ListReceiptsResponse struct {
	Receipts      []ReceiptSummaryResponse `json:"receipts"`
	NextPageToken string                   `json:"nextPageToken,omitempty"`
}

// ScanReceiptResponse carries the extracted fields for the user to review.
// Nothing has been persisted when this is returned.
type ScanReceiptResponse struct {
	Kind string `json:"kind"`

	RUC          string `json:"ruc"`
	RazonSocial  string `json:"razonSocial"`
	Direccion    string `json:"direccion,omitempty"`
	FechaEmision string `json:"fechaEmision"`

	TipoComprobante string `json:"tipoComprobante,omitempty"`
	Serie           string `json:"serie,omitempty"`
	Numero          string `json:"numero,omitempty"`

	BaseImponible decimal.Decimal `json:"baseImponible"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total"`
	Moneda        string          `json:"moneda,omitempty"`

	Items []LineItemResponse `json:"items,omitempty"`
}

// ToReceiptResponse converts a domain.Receipt to its full API shape.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	items := make([]LineItemResponse, len(r.LineItems))
	for i, it := range r.LineItems {
		items[i] = LineItemResponse{
			LineItemID:     it.LineItemID,
			Descripcion:    it.Descripcion,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Total:          it.Total,
		}
	}
	return ReceiptResponse{
		ReceiptID:       r.ReceiptID,
		Kind:            string(r.Kind),
		Periodo:         r.Periodo,
		FechaEmision:    r.FechaEmision,
		RUC:             r.Counterparty.RUC,
		RazonSocial:     r.Counterparty.RazonSocial,
		Direccion:       r.Counterparty.Direccion,
		Telefono:        r.Counterparty.Telefono,
		TipoComprobante: r.TipoComprobante,
		Serie:           r.Serie,
		Numero:          r.Numero,
		BaseImponible:   r.BaseImponible,
		IGV:             r.IGV,
		Total:           r.Total,
		Moneda:          r.Moneda,
		Categoria:       r.Categoria,
		Estado:          string(r.Estado),
		ImagePath:       r.ImagePath,
		CreatedAt:       r.CreatedAt,
		Items:           items,
	}
}

// ToReceiptSummaryResponse converts a domain.Receipt to its listing shape.
func ToReceiptSummaryResponse(r *domain.Receipt) ReceiptSummaryResponse {
	return ReceiptSummaryResponse{
		ReceiptID:    r.ReceiptID,
		Periodo:      r.Periodo,
		FechaEmision: r.FechaEmision,
		RUC:          r.Counterparty.RUC,
		RazonSocial:  r.Counterparty.RazonSocial,
		Total:        r.Total,
		Moneda:       r.Moneda,
		Categoria:    r.Categoria,
		Estado:       string(r.Estado),
		CreatedAt:    r.CreatedAt,
	}
}

// ToScanReceiptResponse converts an extraction result to its API shape.
func ToScanReceiptResponse(e *domain.ExtractedReceipt) ScanReceiptResponse {
	items := make([]LineItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = LineItemResponse{
			Descripcion:    it.Descripcion,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Total:          it.Total,
		}
	}
	return ScanReceiptResponse{
		Kind:            string(e.Kind),
		RUC:             e.RUC,
		RazonSocial:     e.RazonSocial,
		Direccion:       e.Direccion,
		FechaEmision:    e.FechaEmision,
		TipoComprobante: e.TipoComprobante,
		Serie:           e.Serie,
		Numero:          e.Numero,
		BaseImponible:   e.BaseImponible,
		IGV:             e.IGV,
		Total:           e.Total,
		Moneda:          e.Moneda,
		Items:           items,
	}
}
