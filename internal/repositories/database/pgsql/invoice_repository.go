package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
	"github.com/SscSPs/gigster_garage_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `invoice_id, invoice_number, client_name, client_email, status, issue_date, due_date,
	line_items, subtotal, tax_rate, tax_amount, discount_amount, total_amount, amount_paid, balance_due,
	notes, payment_link, payment_link_expires_at, sent_at, paid_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and their payments.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.ClientName,
		m.ClientEmail,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.LineItems,
		m.Subtotal,
		m.TaxRate,
		m.TaxAmount,
		m.DiscountAmount,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Notes,
		m.PaymentLink,
		m.PaymentLinkExpiresAt,
		m.SentAt,
		m.PaidAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice %s: %w", invoiceID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices pages newest first using a (created_at, invoice_id) keyset.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, params portsrepo.ListInvoicesParams) ([]domain.Invoice, error) {
	limit, _ := normalizeLimit(params.Limit, 0)

	var (
		conditions []string
		args       []any
	)
	if params.Status != "" {
		args = append(args, string(params.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.AfterCreatedAt != nil {
		args = append(args, *params.AfterCreatedAt, params.AfterInvoiceID)
		conditions = append(conditions, fmt.Sprintf("(created_at, invoice_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC, invoice_id DESC LIMIT $%d;`, len(args))

	return r.collect(ctx, query, args...)
}

func (r *PgxInvoiceRepository) ListInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) ([]domain.Invoice, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE status = ANY($1) ORDER BY due_date ASC NULLS LAST, invoice_id;`
	return r.collect(ctx, query, values)
}

func (r *PgxInvoiceRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	modelInvoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}
	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

// UpdateInvoice writes invoice only if the stored row still has expectedStatus and
// the same amount_paid, so a sweep or payment that landed in between is not undone.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error {
	m := mapping.ToModelInvoice(invoice)
	args := append(updateInvoiceArgs(m), string(expectedStatus), m.AmountPaid)
	tag, err := r.Pool.Exec(ctx, updateInvoiceQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1);`, m.InvoiceID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check invoice %s: %w", m.InvoiceID, err)
	}
	if !exists {
		return fmt.Errorf("invoice %s: %w", m.InvoiceID, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%w: invoice %s changed while it was being updated", apperrors.ErrConflict, m.InvoiceID)
}

const updateInvoiceQuery = `
	UPDATE invoices SET
		client_name = $2, client_email = $3, status = $4, issue_date = $5, due_date = $6,
		line_items = $7, subtotal = $8, tax_rate = $9, tax_amount = $10, discount_amount = $11,
		total_amount = $12, amount_paid = $13, balance_due = $14, notes = $15,
		payment_link = $16, payment_link_expires_at = $17, sent_at = $18, paid_at = $19,
		last_updated_at = $20, last_updated_by = $21
	WHERE invoice_id = $1 AND status = $22 AND amount_paid = $23;
`

func updateInvoiceArgs(m models.Invoice) []any {
	return []any{
		m.InvoiceID,
		m.ClientName,
		m.ClientEmail,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.LineItems,
		m.Subtotal,
		m.TaxRate,
		m.TaxAmount,
		m.DiscountAmount,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Notes,
		m.PaymentLink,
		m.PaymentLinkExpiresAt,
		m.SentAt,
		m.PaidAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// TransitionInvoiceStatus is a compare-and-set on status so concurrent sweeps
// cannot both apply the same transition.
func (r *PgxInvoiceRepository) TransitionInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, at time.Time) (bool, error) {
	query := `
		UPDATE invoices SET status = $3, last_updated_at = $4
		WHERE invoice_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(from), string(to), at)
	if err != nil {
		return false, fmt.Errorf("failed to transition invoice %s to %s: %w", invoiceID, to, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1 AND status = $2;`, invoiceID, string(domain.InvoiceDraft))
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1);`, invoiceID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check invoice %s: %w", invoiceID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: only draft invoices can be deleted", apperrors.ErrPrecondition)
}

// RecordPayment inserts the payment and writes the invoice's new balance in one
// transaction. The locked row must still be in expectedStatus with the amount_paid
// the caller started from, otherwise another write won and ErrConflict is returned.
func (r *PgxInvoiceRepository) RecordPayment(ctx context.Context, payment domain.Payment, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var (
		storedStatus string
		storedPaid   decimal.Decimal
	)
	err = tx.QueryRow(ctx, `SELECT status, amount_paid FROM invoices WHERE invoice_id = $1 FOR UPDATE;`, invoice.InvoiceID).
		Scan(&storedStatus, &storedPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock invoice %s: %w", invoice.InvoiceID, err)
	}
	previousPaid := invoice.AmountPaid.Sub(payment.Amount)
	if err := checkInvoiceUnchanged(invoice.InvoiceID, domain.InvoiceStatus(storedStatus), storedPaid, expectedStatus, previousPaid); err != nil {
		return err
	}

	p := mapping.ToModelPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (payment_id, invoice_id, amount, payment_date, method, reference, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		p.PaymentID,
		p.InvoiceID,
		p.Amount,
		p.PaymentDate,
		p.Method,
		p.Reference,
		p.CreatedAt,
		p.CreatedBy,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment for invoice %s: %w", invoice.InvoiceID, err)
	}

	args := append(updateInvoiceArgs(mapping.ToModelInvoice(invoice)), string(expectedStatus), previousPaid)
	if _, err := tx.Exec(ctx, updateInvoiceQuery, args...); err != nil {
		return fmt.Errorf("failed to update invoice %s after payment: %w", invoice.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// checkInvoiceUnchanged compares a locked row against the snapshot a write was computed from.
func checkInvoiceUnchanged(invoiceID string, storedStatus domain.InvoiceStatus, storedPaid decimal.Decimal, expectedStatus domain.InvoiceStatus, expectedPaid decimal.Decimal) error {
	if storedStatus != expectedStatus {
		return fmt.Errorf("%w: invoice %s moved from %s to %s", apperrors.ErrConflict, invoiceID, expectedStatus, storedStatus)
	}
	if !storedPaid.Equal(expectedPaid) {
		return fmt.Errorf("%w: invoice %s was paid concurrently", apperrors.ErrConflict, invoiceID)
	}
	return nil
}
