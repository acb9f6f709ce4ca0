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

func TestSepaSettingsRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(sepaSettingsTestSuite))
}

type sepaSettingsTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    SepaSettingsRepository
}

func (suite *sepaSettingsTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetSepaSettingsRepository()
}

func (suite *sepaSettingsTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *sepaSettingsTestSuite) TestRepository_GetByCompany() {
	testCases := []struct {
		name    string
		wantErr bool
		wantNil bool
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := sqlmock.
					NewRows([]string{"company", "debtorName", "countryCode", "defaultBankAccount"}).
					AddRow("ACME GmbH", "ACME GmbH Treasury", "AT", "ACME Giro - GIBA")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(querySepaSettingsGetByCompany)).
					WillReturnRows(rows)
			},
			wantErr: false,
			wantNil: false,
		},
		{
			name: "test no settings row",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(querySepaSettingsGetByCompany)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: false,
			wantNil: true,
		},
		{
			name: "test error db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(querySepaSettingsGetByCompany)).
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

			got, err := suite.repo.GetByCompany(context.Background(), "ACME GmbH")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNil, got == nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *sepaSettingsTestSuite) TestRepository_GetCompany() {
	testCases := []struct {
		name    string
		wantErr bool
		wantNil bool
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := sqlmock.
					NewRows([]string{"name", "country"}).
					AddRow("ACME GmbH", "Austria")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryCompanyGetByName)).
					WillReturnRows(rows)
			},
			wantErr: false,
			wantNil: false,
		},
		{
			name: "test company not found",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryCompanyGetByName)).
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

			got, err := suite.repo.GetCompany(context.Background(), "ACME GmbH")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantNil, got == nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
