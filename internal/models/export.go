package models

import (
	"fmt"
	"time"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/constants"
)

// CreateSepaExportRequest is the inbound payload collected by the export
// dialog. Every field is re-validated here regardless of whether it came
// from user input or the defaults prefill.
type CreateSepaExportRequest struct {
	InvoiceNames  []string `json:"invoice_names" validate:"required,min=1,dive,required"`
	ExecutionDate string   `json:"execution_date" validate:"required,date"`
	DebtorName    string   `json:"debtor_name" validate:"required,max=140,noStartEndSpaces"`
	DebtorIBAN    string   `json:"debtor_iban" validate:"required,iban"`
	DebtorBIC     string   `json:"debtor_bic" validate:"omitempty,bic"`
	DebtorAddress []string `json:"debtor_address" validate:"required,min=1,dive,required"`
	DebtorCountry string   `json:"debtor_country" validate:"required,iso3166_1_alpha2"`
	Currency      string   `json:"currency" validate:"omitempty,eq=EUR"`
}

// ToIn parses the request into the service input. Validation tags have
// already run; only the date needs parsing here.
func (r CreateSepaExportRequest) ToIn() (CreateSepaExportIn, error) {
	executionDate, err := time.ParseInLocation(constants.DateFormatYYYYMMDD, r.ExecutionDate, time.Local)
	if err != nil {
		return CreateSepaExportIn{}, fmt.Errorf("%w: %s", common.ErrInvalidFormatDate, r.ExecutionDate)
	}

	currency := r.Currency
	if currency == "" {
		currency = constants.EURCurrency
	}

	return CreateSepaExportIn{
		InvoiceNames:  r.InvoiceNames,
		ExecutionDate: executionDate,
		DebtorName:    r.DebtorName,
		DebtorIBAN:    r.DebtorIBAN,
		DebtorBIC:     r.DebtorBIC,
		DebtorAddress: r.DebtorAddress,
		DebtorCountry: r.DebtorCountry,
		Currency:      currency,
	}, nil
}

// CreateSepaExportIn is the transport-independent input of the export
// pipeline.
type CreateSepaExportIn struct {
	InvoiceNames  []string
	ExecutionDate time.Time
	DebtorName    string
	DebtorIBAN    string
	DebtorBIC     string
	DebtorAddress []string
	DebtorCountry string
	Currency      string
}

// SepaExportOut carries the finished document plus the filename offered for
// download.
type SepaExportOut struct {
	Filename             string
	Content              []byte
	MessageID            string
	ControlSum           string
	NumberOfTransactions int
}

// SepaSettings is the per-company settings row used only to pre-fill the
// export dialog; it is never a trust boundary for validation.
type SepaSettings struct {
	Company            string
	DebtorName         string
	CountryCode        string
	DefaultBankAccount string
}

// Company is the minimal company row needed for the defaults cascade.
type Company struct {
	Name    string
	Country string
}

// BankAccount is a stored bank account row (company side or supplier side).
type BankAccount struct {
	Name         string
	IBAN         string
	BIC          string
	CountryCode  string
	AddressLines []string
}

// DebtorDefaultsOut is the prefill payload for the export dialog, resolved
// through the SEPA settings -> company -> bank account cascade.
type DebtorDefaultsOut struct {
	Kind        string `json:"kind"`
	Company     string `json:"company"`
	DebtorName  string `json:"debtor_name"`
	CountryCode string `json:"debtor_country"`
	IBAN        string `json:"debtor_iban,omitempty"`
	BIC         string `json:"debtor_bic,omitempty"`
}
