package models

import (
	"time"
)

// Invoice statuses as stored by the host record system. Only submitted,
// unpaid invoices are eligible for a payment export.
const (
	InvoiceStatusUnpaid    = "Unpaid"
	InvoiceStatusOverdue   = "Overdue"
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusCancelled = "Cancelled"
	InvoiceStatusDraft     = "Draft"
)

// DocStatusSubmitted marks a finalized document (drafts are 0, cancelled 2).
const DocStatusSubmitted = 1

// PurchaseInvoice is an invoice row joined with the supplier's default bank
// account details, as fetched by the repository in one batch query.
type PurchaseInvoice struct {
	Name         string
	GrandTotal   Decimal
	Currency     string
	Status       string
	DocStatus    int
	SupplierName string
	PostingDate  *time.Time
	Remarks      string

	SupplierBankAccount  string
	SupplierIBAN         string
	SupplierBIC          string
	SupplierCountryCode  string
	SupplierAddressLines []string
}

// Payable reports whether the invoice is in a state that allows exporting a
// payment for it.
func (i PurchaseInvoice) Payable() bool {
	return i.DocStatus == DocStatusSubmitted &&
		i.Status != InvoiceStatusPaid &&
		i.Status != InvoiceStatusCancelled
}

// RemittanceReference is the text placed in the RmtInf/Ustrd element:
// invoice remarks when present, otherwise the invoice number.
func (i PurchaseInvoice) RemittanceReference() string {
	if i.Remarks != "" {
		return i.Remarks
	}
	return i.Name
}

// ResolvedInvoice is a validated invoice ready to become one payment
// transaction: all banking identifiers normalized, amount and currency
// checked.
type ResolvedInvoice struct {
	InvoiceName         string
	Amount              Decimal
	Currency            string
	Supplier            Party
	RemittanceReference string
}
