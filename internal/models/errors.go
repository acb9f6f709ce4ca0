package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// MapErrors maps "<field>_<tag>" validation keys (and a few service-level
// codes) to stable error codes surfaced to API clients.
var MapErrors = MapErrs{
	"invoice_names_required": {
		Code:         "SEPA_EXPORT_422_01",
		ErrorMessage: errors.New("at least one invoice must be selected"),
	},
	"invoice_names_min": {
		Code:         "SEPA_EXPORT_422_01",
		ErrorMessage: errors.New("at least one invoice must be selected"),
	},
	"execution_date_required": {
		Code:         "SEPA_EXPORT_422_02",
		ErrorMessage: errors.New("execution date is required"),
	},
	"execution_date_date": {
		Code:         "SEPA_EXPORT_422_03",
		ErrorMessage: errors.New("execution date must use the YYYY-MM-DD format"),
	},
	"debtor_name_required": {
		Code:         "SEPA_EXPORT_422_04",
		ErrorMessage: errors.New("debtor name is required"),
	},
	"debtor_iban_required": {
		Code:         "SEPA_EXPORT_422_05",
		ErrorMessage: errors.New("debtor IBAN is required"),
	},
	"debtor_iban_iban": {
		Code:         "SEPA_EXPORT_422_06",
		ErrorMessage: errors.New("debtor IBAN is not a valid IBAN"),
	},
	"debtor_bic_bic": {
		Code:         "SEPA_EXPORT_422_07",
		ErrorMessage: errors.New("debtor BIC is not a valid BIC"),
	},
	"debtor_address_required": {
		Code:         "SEPA_EXPORT_422_08",
		ErrorMessage: errors.New("debtor address is required"),
	},
	"debtor_address_min": {
		Code:         "SEPA_EXPORT_422_08",
		ErrorMessage: errors.New("debtor address is required"),
	},
	"debtor_country_required": {
		Code:         "SEPA_EXPORT_422_09",
		ErrorMessage: errors.New("debtor country is required"),
	},
	"debtor_country_iso3166_1_alpha2": {
		Code:         "SEPA_EXPORT_422_10",
		ErrorMessage: errors.New("debtor country must be a 2-letter ISO code"),
	},
	"currency_eq": {
		Code:         "SEPA_EXPORT_422_11",
		ErrorMessage: errors.New("only EUR exports are supported"),
	},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
