package models

// Receipt mirrors a row of the receipts table. Monetary columns are stored as
// TEXT decimal strings; conversion to decimal.Decimal happens in the
// repository mapping helpers.
type Receipt struct {
	ReceiptID string `db:"receipt_id"`
	OwnerID   string `db:"owner_id"`
	Kind      string `db:"kind"`

	Periodo      string `db:"periodo"`
	FechaEmision string `db:"fecha_emision"`

	RUC         string `db:"ruc"`
	RazonSocial string `db:"razon_social"`
	Direccion   string `db:"direccion"`
	Telefono    string `db:"telefono"`

	TipoComprobante string `db:"tipo_comprobante"`
	Serie           string `db:"serie"`
	Numero          string `db:"numero"`

	BaseImponible string `db:"base_imponible"`
	IGV           string `db:"igv"`
	Total         string `db:"total"`
	Moneda        string `db:"moneda"`

	Categoria string `db:"categoria"`
	Estado    string `db:"estado"`
	ImagePath string `db:"image_path"`

	// Seq is the sqlite rowid, the sole ordering key for listings.
	Seq int64 `db:"seq"`

	AuditFields
}

// LineItem mirrors a row of the line_items table.
type LineItem struct {
	LineItemID     string `db:"line_item_id"`
	ReceiptID      string `db:"receipt_id"`
	Descripcion    string `db:"descripcion"`
	Cantidad       string `db:"cantidad"`
	PrecioUnitario string `db:"precio_unitario"`
	Total          string `db:"total"`
	Position       int    `db:"position"`
}
