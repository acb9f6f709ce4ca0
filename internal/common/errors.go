package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrDataNotFound           = errors.New("data not found")
	ErrInternalServerError    = errors.New("internal server error")
	ErrInvalidFormatDate      = errors.New("invalid format date")
	ErrInvalidIBAN            = errors.New("invalid IBAN")
	ErrInvalidBIC             = errors.New("invalid BIC")
	ErrInvalidCountryCode     = errors.New("invalid country code")
	ErrExecutionDateInPast    = errors.New("requested execution date is in the past")
	ErrEmptyInvoiceSet        = errors.New("no invoices selected for export")
	ErrInvoiceNotEligible     = errors.New("invoice not eligible for export")
	ErrCurrencyMismatch       = errors.New("invoice currency does not match instruction currency")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrMissingSupplierAccount = errors.New("supplier has no default bank account")
	ErrMissingSupplierIBAN    = errors.New("supplier bank account is missing an IBAN")
	ErrFieldTooLong           = errors.New("field exceeds schema maximum length")
	ErrNoRows                 = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
