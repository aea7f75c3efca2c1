package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
	"github.com/kipubooks/kipu-backend/internal/models"
	"github.com/kipubooks/kipu-backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type SQLiteReceiptRepository struct {
	BaseRepository
}

func newSQLiteReceiptRepository(db *sqlx.DB) portsrepo.ReceiptRepositoryFacade {
	return &SQLiteReceiptRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*SQLiteReceiptRepository)(nil)

const receiptColumns = `
	receipt_id, owner_id, kind, periodo, fecha_emision,
	ruc, razon_social, direccion, telefono,
	tipo_comprobante, serie, numero,
	base_imponible, igv, total, moneda,
	categoria, estado, image_path, rowid AS seq,
	created_at, created_by, last_updated_at, last_updated_by
`

func toModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:       d.ReceiptID,
		OwnerID:         d.OwnerID,
		Kind:            string(d.Kind),
		Periodo:         d.Periodo,
		FechaEmision:    d.FechaEmision,
		RUC:             d.Counterparty.RUC,
		RazonSocial:     d.Counterparty.RazonSocial,
		Direccion:       d.Counterparty.Direccion,
		Telefono:        d.Counterparty.Telefono,
		TipoComprobante: d.TipoComprobante,
		Serie:           d.Serie,
		Numero:          d.Numero,
		BaseImponible:   d.BaseImponible.String(),
		IGV:             d.IGV.String(),
		Total:           d.Total.String(),
		Moneda:          d.Moneda,
		Categoria:       d.Categoria,
		Estado:          string(d.Estado),
		ImagePath:       d.ImagePath,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainReceipt(m models.Receipt) (domain.Receipt, error) {
	base, err := decimal.NewFromString(m.BaseImponible)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("corrupt base_imponible on receipt %s: %w", m.ReceiptID, err)
	}
	igv, err := decimal.NewFromString(m.IGV)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("corrupt igv on receipt %s: %w", m.ReceiptID, err)
	}
	total, err := decimal.NewFromString(m.Total)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("corrupt total on receipt %s: %w", m.ReceiptID, err)
	}
	return domain.Receipt{
		ReceiptID:    m.ReceiptID,
		OwnerID:      m.OwnerID,
		Kind:         domain.ReceiptKind(m.Kind),
		Periodo:      m.Periodo,
		FechaEmision: m.FechaEmision,
		Counterparty: domain.Counterparty{
			RUC:         m.RUC,
			RazonSocial: m.RazonSocial,
			Direccion:   m.Direccion,
			Telefono:    m.Telefono,
		},
		TipoComprobante: m.TipoComprobante,
		Serie:           m.Serie,
		Numero:          m.Numero,
		BaseImponible:   base,
		IGV:             igv,
		Total:           total,
		Moneda:          m.Moneda,
		Categoria:       m.Categoria,
		Estado:          domain.ReceiptStatus(m.Estado),
		ImagePath:       m.ImagePath,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func toDomainLineItem(m models.LineItem) (domain.LineItem, error) {
	cantidad, err := decimal.NewFromString(m.Cantidad)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("corrupt cantidad on line item %s: %w", m.LineItemID, err)
	}
	precio, err := decimal.NewFromString(m.PrecioUnitario)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("corrupt precio_unitario on line item %s: %w", m.LineItemID, err)
	}
	total, err := decimal.NewFromString(m.Total)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("corrupt total on line item %s: %w", m.LineItemID, err)
	}
	return domain.LineItem{
		LineItemID:     m.LineItemID,
		ReceiptID:      m.ReceiptID,
		Descripcion:    m.Descripcion,
		Cantidad:       cantidad,
		PrecioUnitario: precio,
		Total:          total,
		Position:       m.Position,
	}, nil
}

func (r *SQLiteReceiptRepository) SaveReceiptWithItems(ctx context.Context, receipt domain.Receipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelReceipt(receipt)
	insertReceipt := `
		INSERT INTO receipts (
			receipt_id, owner_id, kind, periodo, fecha_emision,
			ruc, razon_social, direccion, telefono,
			tipo_comprobante, serie, numero,
			base_imponible, igv, total, moneda,
			categoria, estado, image_path,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, insertReceipt,
		m.ReceiptID, m.OwnerID, m.Kind, m.Periodo, m.FechaEmision,
		m.RUC, m.RazonSocial, m.Direccion, m.Telefono,
		m.TipoComprobante, m.Serie, m.Numero,
		m.BaseImponible, m.IGV, m.Total, m.Moneda,
		m.Categoria, m.Estado, m.ImagePath,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("receipt %s already exists: %w", receipt.ReceiptID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	insertItem := `
		INSERT INTO line_items (
			line_item_id, receipt_id, descripcion, cantidad, precio_unitario, total, position
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	for _, item := range receipt.LineItems {
		_, err = tx.ExecContext(ctx, insertItem,
			item.LineItemID, receipt.ReceiptID, item.Descripcion,
			item.Cantidad.String(), item.PrecioUnitario.String(), item.Total.String(),
			item.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to save line item %d: %w", item.Position, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *SQLiteReceiptRepository) FindReceiptsByOwner(ctx context.Context, ownerID string, kind domain.ReceiptKind, limit int, pageToken string) ([]domain.Receipt, string, error) {
	args := []interface{}{ownerID, string(kind)}
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE owner_id = ? AND kind = ?`
	if pageToken != "" {
		seq, err := pagination.DecodeSeqToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND rowid < ?`
		args = append(args, seq)
	}
	// Fetch one extra row to know whether another page exists.
	query += ` ORDER BY rowid DESC LIMIT ?;`
	args = append(args, limit+1)

	var rows []models.Receipt
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, "", fmt.Errorf("failed to list receipts: %w", err)
	}

	nextToken := ""
	if len(rows) > limit {
		rows = rows[:limit]
		nextToken = pagination.EncodeSeqToken(rows[len(rows)-1].Seq)
	}

	receipts := make([]domain.Receipt, 0, len(rows))
	for _, m := range rows {
		d, err := toDomainReceipt(m)
		if err != nil {
			return nil, "", err
		}
		receipts = append(receipts, d)
	}
	return receipts, nextToken, nil
}

func (r *SQLiteReceiptRepository) FindReceiptByID(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = ? AND owner_id = ? AND kind = ?;`
	var m models.Receipt
	if err := r.DB.GetContext(ctx, &m, query, receiptID, ownerID, string(kind)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}
	d, err := toDomainReceipt(m)
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT line_item_id, receipt_id, descripcion, cantidad, precio_unitario, total, position
		FROM line_items WHERE receipt_id = ? ORDER BY position ASC;
	`
	var itemRows []models.LineItem
	if err := r.DB.SelectContext(ctx, &itemRows, itemQuery, receiptID); err != nil {
		return nil, fmt.Errorf("failed to load line items for receipt %s: %w", receiptID, err)
	}
	for _, im := range itemRows {
		item, err := toDomainLineItem(im)
		if err != nil {
			return nil, err
		}
		d.LineItems = append(d.LineItems, item)
	}
	return &d, nil
}

func (r *SQLiteReceiptRepository) UpdateAmountAndDate(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, receipt domain.Receipt) error {
	query := `
		UPDATE receipts
		SET fecha_emision = ?, periodo = ?, base_imponible = ?, igv = ?, total = ?,
			last_updated_at = ?, last_updated_by = ?
		WHERE receipt_id = ? AND owner_id = ? AND kind = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		receipt.FechaEmision, receipt.Periodo,
		receipt.BaseImponible.String(), receipt.IGV.String(), receipt.Total.String(),
		receipt.LastUpdatedAt, receipt.LastUpdatedBy,
		receiptID, ownerID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt %s: %w", receiptID, err)
	}
	return requireRowsAffected(res, "receipt")
}

func (r *SQLiteReceiptRepository) DeleteReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// ON DELETE CASCADE covers the items; the explicit delete keeps the
	// behavior independent of the foreign_keys pragma.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM line_items WHERE receipt_id IN (SELECT receipt_id FROM receipts WHERE receipt_id = ? AND owner_id = ? AND kind = ?);`,
		receiptID, ownerID, string(kind),
	); err != nil {
		return fmt.Errorf("failed to delete line items for receipt %s: %w", receiptID, err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM receipts WHERE receipt_id = ? AND owner_id = ? AND kind = ?;`,
		receiptID, ownerID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("receipt %s: %w", receiptID, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}

func (r *SQLiteReceiptRepository) SetImagePath(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, path string) error {
	query := `UPDATE receipts SET image_path = ? WHERE receipt_id = ? AND owner_id = ? AND kind = ?;`
	res, err := r.DB.ExecContext(ctx, query, path, receiptID, ownerID, string(kind))
	if err != nil {
		return fmt.Errorf("failed to set image path on receipt %s: %w", receiptID, err)
	}
	return requireRowsAffected(res, "receipt")
}
