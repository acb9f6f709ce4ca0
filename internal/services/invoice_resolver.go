package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/banking"
	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"
	"github.com/finworks/go-sepa-export/internal/repositories"
)

// resolveInvoices turns the requested invoice names into validated payment
// candidates. Every failure names the offending invoice, so the caller can
// surface exactly which document blocked the batch.
func (s *sepaExport) resolveInvoices(
	ctx context.Context,
	r repositories.SQLRepository,
	names []string,
	currency string,
) (resolved []models.ResolvedInvoice, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	invoices, err := r.GetInvoiceRepository().ListByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]models.PurchaseInvoice, len(invoices))
	for _, invoice := range invoices {
		byName[invoice.Name] = invoice
	}

	resolved = make([]models.ResolvedInvoice, 0, len(names))
	for _, name := range names {
		invoice, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: invoice %s", common.ErrDataNotFound, name)
		}

		candidate, resolveErr := s.resolveOne(invoice, currency)
		if resolveErr != nil {
			return nil, resolveErr
		}
		resolved = append(resolved, candidate)
	}

	return resolved, nil
}

func (s *sepaExport) resolveOne(invoice models.PurchaseInvoice, currency string) (models.ResolvedInvoice, error) {
	if !invoice.Payable() {
		return models.ResolvedInvoice{}, fmt.Errorf("%w: invoice %s (status %s)",
			common.ErrInvoiceNotEligible, invoice.Name, invoice.Status)
	}

	if invoice.Currency != currency {
		return models.ResolvedInvoice{}, fmt.Errorf("%w: invoice %s is in %s",
			common.ErrCurrencyMismatch, invoice.Name, invoice.Currency)
	}

	if !invoice.GrandTotal.IsPositive() {
		return models.ResolvedInvoice{}, fmt.Errorf("%w: invoice %s has total %s",
			common.ErrInvalidAmount, invoice.Name, invoice.GrandTotal.String())
	}

	if invoice.SupplierBankAccount == "" {
		return models.ResolvedInvoice{}, fmt.Errorf("%w: invoice %s (supplier %s)",
			common.ErrMissingSupplierAccount, invoice.Name, invoice.SupplierName)
	}

	if invoice.SupplierIBAN == "" {
		return models.ResolvedInvoice{}, fmt.Errorf("%w: invoice %s (account %s)",
			common.ErrMissingSupplierIBAN, invoice.Name, invoice.SupplierBankAccount)
	}

	iban, err := banking.NormalizeIBAN(invoice.SupplierIBAN)
	if err != nil {
		return models.ResolvedInvoice{}, fmt.Errorf("invoice %s: %w", invoice.Name, err)
	}

	bic, err := banking.NormalizeBIC(invoice.SupplierBIC)
	if err != nil {
		return models.ResolvedInvoice{}, fmt.Errorf("invoice %s: %w", invoice.Name, err)
	}

	country := strings.ToUpper(invoice.SupplierCountryCode)
	if country == "" {
		country = s.srv.conf.Sepa.DefaultCountryCode
	}

	return models.ResolvedInvoice{
		InvoiceName: invoice.Name,
		Amount:      invoice.GrandTotal,
		Currency:    invoice.Currency,
		Supplier: models.Party{
			Name:         invoice.SupplierName,
			AddressLines: invoice.SupplierAddressLines,
			CountryCode:  country,
			Bank: models.BankIdentifier{
				IBAN: iban,
				BIC:  bic,
			},
		},
		RemittanceReference: invoice.RemittanceReference(),
	}, nil
}
