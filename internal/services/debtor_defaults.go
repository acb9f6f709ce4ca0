package services

import (
	"context"
	"fmt"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/banking"
	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"
)

// GetDebtorDefaults resolves the export dialog prefill through the cascade:
// SEPA settings first, then the company row, then the company's default bank
// account. The result is advisory only; the export request re-validates every
// field it actually uses.
func (s *sepaExport) GetDebtorDefaults(ctx context.Context, company string) (out *models.DebtorDefaultsOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	companyRow, err := s.srv.sqlRepo.GetSepaSettingsRepository().GetCompany(ctx, company)
	if err != nil {
		return
	}
	if companyRow == nil {
		err = fmt.Errorf("%w: company %s", common.ErrDataNotFound, company)
		return
	}

	settings, err := s.srv.sqlRepo.GetSepaSettingsRepository().GetByCompany(ctx, company)
	if err != nil {
		return
	}
	if settings == nil {
		settings = &models.SepaSettings{Company: company}
	}

	debtorName := settings.DebtorName
	if debtorName == "" {
		debtorName = companyRow.Name
	}

	countryCode := settings.CountryCode
	if countryCode == "" {
		countryCode = s.srv.conf.Sepa.DefaultCountryCode
	}

	account, err := s.lookupDefaultAccount(ctx, company, settings.DefaultBankAccount)
	if err != nil {
		return
	}

	out = &models.DebtorDefaultsOut{
		Kind:        "sepaExportDefaults",
		Company:     company,
		DebtorName:  debtorName,
		CountryCode: countryCode,
	}
	if account != nil {
		// Prefill with the normalized IBAN when it validates; a broken stored
		// value is passed through untouched and rejected at export time.
		if iban, normErr := banking.NormalizeIBAN(account.IBAN); normErr == nil {
			out.IBAN = iban
		} else {
			out.IBAN = account.IBAN
		}
		out.BIC = account.BIC
		if account.CountryCode != "" {
			out.CountryCode = account.CountryCode
		}
	}

	return
}

func (s *sepaExport) lookupDefaultAccount(ctx context.Context, company, preferred string) (*models.BankAccount, error) {
	if preferred != "" {
		account, err := s.srv.sqlRepo.GetBankAccountRepository().GetByName(ctx, preferred)
		if err != nil {
			return nil, err
		}
		if account != nil {
			return account, nil
		}
	}

	return s.srv.sqlRepo.GetBankAccountRepository().GetDefaultForCompany(ctx, company)
}
