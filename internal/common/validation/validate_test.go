package validation

import (
	"testing"

	"github.com/finworks/go-sepa-export/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExportRequest() models.CreateSepaExportRequest {
	return models.CreateSepaExportRequest{
		InvoiceNames:  []string{"PINV-0001"},
		ExecutionDate: "2026-09-01",
		DebtorName:    "Debtor GmbH",
		DebtorIBAN:    "AT611904300234573201",
		DebtorBIC:     "GIBAATWW",
		DebtorAddress: []string{"Hauptstrasse 1", "1010 Wien"},
		DebtorCountry: "AT",
		Currency:      "EUR",
	}
}

func TestValidateStruct_CreateSepaExportRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *models.CreateSepaExportRequest)
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *models.CreateSepaExportRequest) {},
		},
		{
			name:   "empty BIC is allowed",
			mutate: func(r *models.CreateSepaExportRequest) { r.DebtorBIC = "" },
		},
		{
			name:      "empty invoice list",
			mutate:    func(r *models.CreateSepaExportRequest) { r.InvoiceNames = nil },
			wantErr:   true,
			wantField: "invoice_names",
		},
		{
			name:      "bad IBAN checksum",
			mutate:    func(r *models.CreateSepaExportRequest) { r.DebtorIBAN = "AT621904300234573201" },
			wantErr:   true,
			wantField: "debtor_iban",
		},
		{
			name:      "bad BIC",
			mutate:    func(r *models.CreateSepaExportRequest) { r.DebtorBIC = "NOPE" },
			wantErr:   true,
			wantField: "debtor_bic",
		},
		{
			name:      "three letter country",
			mutate:    func(r *models.CreateSepaExportRequest) { r.DebtorCountry = "AUT" },
			wantErr:   true,
			wantField: "debtor_country",
		},
		{
			name:      "unsupported currency",
			mutate:    func(r *models.CreateSepaExportRequest) { r.Currency = "USD" },
			wantErr:   true,
			wantField: "currency",
		},
		{
			name:      "malformed date",
			mutate:    func(r *models.CreateSepaExportRequest) { r.ExecutionDate = "01.09.2026" },
			wantErr:   true,
			wantField: "execution_date",
		},
		{
			name:      "debtor name with trailing space",
			mutate:    func(r *models.CreateSepaExportRequest) { r.DebtorName = "Debtor GmbH " },
			wantErr:   true,
			wantField: "debtor_name",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := validExportRequest()
			tt.mutate(&req)

			err := ValidateStruct(req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			merr, ok := err.(*multierror.Error)
			require.True(t, ok)

			var fields []string
			for _, e := range merr.Errors {
				if vErr, ok := e.(ErrorValidateResponse); ok {
					fields = append(fields, vErr.Field)
				}
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}
