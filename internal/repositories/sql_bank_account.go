package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/monitoring"
)

type BankAccountRepository interface {
	GetByName(ctx context.Context, name string) (*models.BankAccount, error)
	GetDefaultForCompany(ctx context.Context, company string) (*models.BankAccount, error)
}

type bankAccountRepository sqlRepo

var _ BankAccountRepository = (*bankAccountRepository)(nil)

func (r *bankAccountRepository) GetByName(ctx context.Context, name string) (*models.BankAccount, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	account, err := scanBankAccount(db.QueryRowContext(ctx, queryBankAccountGetByName, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

// GetDefaultForCompany returns the company's default own account, or nil when
// none is flagged as default.
func (r *bankAccountRepository) GetDefaultForCompany(ctx context.Context, company string) (*models.BankAccount, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	account, err := scanBankAccount(db.QueryRowContext(ctx, queryBankAccountGetDefaultForCompany, company))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func scanBankAccount(row *sql.Row) (*models.BankAccount, error) {
	var (
		account models.BankAccount
		address string
	)
	if err := row.Scan(
		&account.Name,
		&account.IBAN,
		&account.BIC,
		&account.CountryCode,
		&address,
	); err != nil {
		return nil, err
	}
	account.AddressLines = splitAddressLines(address)
	return &account, nil
}
