package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"
)

type SepaSettingsRepository interface {
	GetByCompany(ctx context.Context, company string) (*models.SepaSettings, error)
	GetCompany(ctx context.Context, name string) (*models.Company, error)
}

type sepaSettingsRepository sqlRepo

var _ SepaSettingsRepository = (*sepaSettingsRepository)(nil)

// GetByCompany returns the company's SEPA settings row, or nil when the
// company has none configured.
func (r *sepaSettingsRepository) GetByCompany(ctx context.Context, company string) (*models.SepaSettings, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var settings models.SepaSettings
	err = db.QueryRowContext(ctx, querySepaSettingsGetByCompany, company).Scan(
		&settings.Company,
		&settings.DebtorName,
		&settings.CountryCode,
		&settings.DefaultBankAccount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

func (r *sepaSettingsRepository) GetCompany(ctx context.Context, name string) (*models.Company, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var company models.Company
	err = db.QueryRowContext(ctx, queryCompanyGetByName, name).Scan(
		&company.Name,
		&company.Country,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &company, nil
}
