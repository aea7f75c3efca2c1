package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReceiptKind distinguishes the two document namespaces. A purchase is an
// expense document received from a supplier; a sale is an income document
// issued to a client. The kind is part of every lookup key, so ids from one
// namespace never resolve in the other.
type ReceiptKind string

const (
	KindPurchase ReceiptKind = "purchase"
	KindSale     ReceiptKind = "sale"
)

// ParseReceiptKind validates a kind string taken from a URL segment.
func ParseReceiptKind(s string) (ReceiptKind, error) {
	switch ReceiptKind(s) {
	case KindPurchase:
		return KindPurchase, nil
	case KindSale:
		return KindSale, nil
	}
	return "", fmt.Errorf("unknown receipt kind %q", s)
}

// ReceiptStatus records how a receipt entered the system. It is set once at
// creation and never transitioned.
type ReceiptStatus string

const (
	// StatusConfirmed marks a receipt created through the scan-and-confirm flow.
	StatusConfirmed ReceiptStatus = "confirmado"
	// StatusManual marks a receipt typed in directly.
	StatusManual ReceiptStatus = "manual"
)

// Counterparty identifies the other party on a document: the issuer for a
// purchase, the client for a sale.
type Counterparty struct {
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Direccion   string `json:"direccion,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
}

// Receipt is a purchase or sale document owned by exactly one user.
// Total is the authoritative amount; BaseImponible and IGV are derived from
// it when the source document carried no breakdown.
type Receipt struct {
	ReceiptID string      `json:"receiptID"` // UUID
	OwnerID   string      `json:"ownerID"`
	Kind      ReceiptKind `json:"kind"`

	// Periodo is the YYYYMM tax period derived from FechaEmision.
	Periodo string `json:"periodo"`
	// FechaEmision is the issue date as printed on the document, DD/MM/YYYY.
	FechaEmision string `json:"fechaEmision"`

	Counterparty Counterparty `json:"counterparty"`

	TipoComprobante string `json:"tipoComprobante,omitempty"`
	Serie           string `json:"serie,omitempty"`
	Numero          string `json:"numero,omitempty"`

	BaseImponible decimal.Decimal `json:"baseImponible"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total"`
	Moneda        string          `json:"moneda"`

	Categoria string        `json:"categoria,omitempty"`
	Estado    ReceiptStatus `json:"estado"`
	ImagePath string        `json:"imagePath,omitempty"`

	LineItems []LineItem `json:"lineItems,omitempty"`
	AuditFields
}

// LineItem is one product or service row within a receipt. It lives and dies
// with its parent.
type LineItem struct {
	LineItemID     string          `json:"lineItemID"` // UUID
	ReceiptID      string          `json:"receiptID"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
	Position       int             `json:"position"`
}