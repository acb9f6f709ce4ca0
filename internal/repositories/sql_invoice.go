package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"

	"github.com/lib/pq"
)

type InvoiceRepository interface {
	ListByNames(ctx context.Context, names []string) ([]models.PurchaseInvoice, error)
}

type invoiceRepository sqlRepo

var _ InvoiceRepository = (*invoiceRepository)(nil)

// ListByNames fetches the invoices for the given document names together with
// each supplier's default bank account. Missing names are simply absent from
// the result; the caller decides whether that is an error.
func (r *invoiceRepository) ListByNames(ctx context.Context, names []string) ([]models.PurchaseInvoice, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryInvoiceListByNames, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PurchaseInvoice
	for rows.Next() {
		var (
			invoice     models.PurchaseInvoice
			postingDate sql.NullTime
			address     string
		)
		if err = rows.Scan(
			&invoice.Name,
			&invoice.GrandTotal,
			&invoice.Currency,
			&invoice.Status,
			&invoice.DocStatus,
			&invoice.SupplierName,
			&postingDate,
			&invoice.Remarks,
			&invoice.SupplierBankAccount,
			&invoice.SupplierIBAN,
			&invoice.SupplierBIC,
			&invoice.SupplierCountryCode,
			&address,
		); err != nil {
			return nil, err
		}
		if postingDate.Valid {
			invoice.PostingDate = &postingDate.Time
		}
		invoice.SupplierAddressLines = splitAddressLines(address)
		result = append(result, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// splitAddressLines turns the newline separated address column into clean
// lines, dropping blanks.
func splitAddressLines(address string) []string {
	var lines []string
	for _, line := range strings.Split(address, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
