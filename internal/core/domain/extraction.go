package domain

import "github.com/shopspring/decimal"

// ExtractedItem is one line item as read off the photographed document.
type ExtractedItem struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
}

// ExtractedReceipt is the best-effort structured reading of a receipt photo.
// It is what the scan endpoints return for the user to review and confirm;
// nothing is persisted until confirmation. Numeric fields the model did not
// find are zero, never absent, so downstream arithmetic stays total.
type ExtractedReceipt struct {
	Kind ReceiptKind `json:"kind"`

	RUC          string `json:"ruc"`
	RazonSocial  string `json:"razonSocial"`
	Direccion    string `json:"direccion,omitempty"`
	FechaEmision string `json:"fechaEmision"` // DD/MM/YYYY as printed, may be empty

	TipoComprobante string `json:"tipoComprobante,omitempty"`
	Serie           string `json:"serie,omitempty"`
	Numero          string `json:"numero,omitempty"`

	BaseImponible decimal.Decimal `json:"baseImponible"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total"`
	Moneda        string          `json:"moneda,omitempty"`

	Items []ExtractedItem `json:"items,omitempty"`
}
