package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/finworks/go-sepa-export/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBankAccountRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(bankAccountTestSuite))
}

type bankAccountTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    BankAccountRepository
}

func (suite *bankAccountTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetBankAccountRepository()
}

func (suite *bankAccountTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func bankAccountColumns() []string {
	return []string{"name", "iban", "bic", "country", "addressLines"}
}

func (suite *bankAccountTestSuite) TestRepository_GetByName() {
	testCases := []struct {
		name    string
		wantErr bool
		wantNil bool
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := sqlmock.NewRows(bankAccountColumns()).
					AddRow("ACME Giro - GIBA", "AT611904300234573201", "GIBAATWWXXX", "AT", "Main Street 1\nVienna")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryBankAccountGetByName)).
					WithArgs("ACME Giro - GIBA").
					WillReturnRows(rows)
			},
			wantErr: false,
			wantNil: false,
		},
		{
			name: "test account not found",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryBankAccountGetByName)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: false,
			wantNil: true,
		},
		{
			name: "test error db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryBankAccountGetByName)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
			wantNil: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := suite.repo.GetByName(context.Background(), "ACME Giro - GIBA")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNil, got == nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *bankAccountTestSuite) TestRepository_GetDefaultForCompany() {
	testCases := []struct {
		name    string
		wantErr bool
		wantNil bool
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := sqlmock.NewRows(bankAccountColumns()).
					AddRow("ACME Giro - GIBA", "AT611904300234573201", "GIBAATWWXXX", "AT", "")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryBankAccountGetDefaultForCompany)).
					WithArgs("ACME GmbH").
					WillReturnRows(rows)
			},
			wantErr: false,
			wantNil: false,
		},
		{
			name: "test no default account",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryBankAccountGetDefaultForCompany)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: false,
			wantNil: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := suite.repo.GetDefaultForCompany(context.Background(), "ACME GmbH")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNil, got == nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
