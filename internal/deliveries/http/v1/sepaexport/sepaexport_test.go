package sepaexport

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/models"
	mockServices "github.com/finworks/go-sepa-export/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandlerHelper struct {
	mockCtrl *gomock.Controller
	mockSvc  *mockServices.MockSepaExportService
	router   *echo.Echo
}

func handlerTestHelper(t *testing.T) testHandlerHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mockServices.NewMockSepaExportService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testHandlerHelper{
		mockCtrl: mockCtrl,
		mockSvc:  mockSvc,
		router:   app,
	}
}

func validRequestBody() string {
	return `{
		"invoice_names": ["ACC-PINV-2026-00001", "ACC-PINV-2026-00002"],
		"execution_date": "2099-08-10",
		"debtor_name": "ACME GmbH",
		"debtor_iban": "AT611904300234573201",
		"debtor_bic": "GIBAATWWXXX",
		"debtor_address": ["Main Street 1", "1010 Vienna"],
		"debtor_country": "AT",
		"currency": "EUR"
	}`
}

func Test_Handler_createExport(t *testing.T) {
	type mockData struct {
		wantCode         int
		wantBodyContains string
		wantDisposition  string
	}

	tests := []struct {
		name     string
		body     string
		mockData mockData
		doMock   func(h testHandlerHelper)
	}{
		{
			name: "success returns file download",
			body: validRequestBody(),
			mockData: mockData{
				wantCode:         http.StatusOK,
				wantBodyContains: "<MsgId>080912301234567890abcdef</MsgId>",
				wantDisposition:  "attachment; filename=payment_instruction_20260809_123015.xml",
			},
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					CreateExport(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, in models.CreateSepaExportIn) (*models.SepaExportOut, error) {
						return &models.SepaExportOut{
							Filename:             "payment_instruction_20260809_123015.xml",
							Content:              []byte(`<?xml version="1.0"?><Document><MsgId>080912301234567890abcdef</MsgId></Document>`),
							MessageID:            "080912301234567890abcdef",
							ControlSum:           "120.00",
							NumberOfTransactions: 2,
						}, nil
					})
			},
		},
		{
			name: "invalid json body",
			body: `{"invoice_names": `,
			mockData: mockData{
				wantCode: http.StatusBadRequest,
			},
			doMock: func(h testHandlerHelper) {},
		},
		{
			name: "validation rejects bad debtor iban",
			body: strings.Replace(validRequestBody(), "AT611904300234573201", "AT621904300234573201", 1),
			mockData: mockData{
				wantCode:         http.StatusUnprocessableEntity,
				wantBodyContains: "debtor_iban",
			},
			doMock: func(h testHandlerHelper) {},
		},
		{
			name: "validation rejects empty invoice list",
			body: strings.Replace(validRequestBody(), `["ACC-PINV-2026-00001", "ACC-PINV-2026-00002"]`, `[]`, 1),
			mockData: mockData{
				wantCode:         http.StatusUnprocessableEntity,
				wantBodyContains: "invoice_names",
			},
			doMock: func(h testHandlerHelper) {},
		},
		{
			name: "unknown invoice maps to 404",
			body: validRequestBody(),
			mockData: mockData{
				wantCode:         http.StatusNotFound,
				wantBodyContains: "ACC-PINV-2026-00002",
			},
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					CreateExport(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: invoice ACC-PINV-2026-00002", common.ErrDataNotFound))
			},
		},
		{
			name: "execution date in past maps to 422",
			body: validRequestBody(),
			mockData: mockData{
				wantCode: http.StatusUnprocessableEntity,
			},
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					CreateExport(gomock.Any(), gomock.Any()).
					Return(nil, common.ErrExecutionDateInPast)
			},
		},
		{
			name: "unexpected failure maps to 500",
			body: validRequestBody(),
			mockData: mockData{
				wantCode: http.StatusInternalServerError,
			},
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					CreateExport(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := handlerTestHelper(t)
			tt.doMock(h)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sepa-exports", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode, "body: %s", body)
			if tt.mockData.wantBodyContains != "" {
				assert.Contains(t, string(body), tt.mockData.wantBodyContains)
			}
			if tt.mockData.wantDisposition != "" {
				assert.Equal(t, tt.mockData.wantDisposition, resp.Header.Get(echo.HeaderContentDisposition))
				assert.Equal(t, "application/xml", resp.Header.Get(echo.HeaderContentType))
			}
		})
	}
}

func Test_Handler_createExport_PassesParsedInput(t *testing.T) {
	h := handlerTestHelper(t)

	var captured models.CreateSepaExportIn
	h.mockSvc.EXPECT().
		CreateExport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in models.CreateSepaExportIn) (*models.SepaExportOut, error) {
			captured = in
			return &models.SepaExportOut{Filename: "f.xml", Content: []byte("<x/>")}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sepa-exports", strings.NewReader(validRequestBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ACC-PINV-2026-00001", "ACC-PINV-2026-00002"}, captured.InvoiceNames)
	assert.Equal(t, time.Date(2099, 8, 10, 0, 0, 0, 0, time.Local), captured.ExecutionDate)
	assert.Equal(t, "EUR", captured.Currency)
	assert.Equal(t, "ACME GmbH", captured.DebtorName)
}

func Test_Handler_getDefaults(t *testing.T) {
	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantBody  string
		doMock    func(h testHandlerHelper)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/sepa-exports/defaults?company=ACME+GmbH",
			wantCode:  http.StatusOK,
			wantBody:  `"debtor_iban":"AT611904300234573201"`,
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					GetDebtorDefaults(gomock.Any(), "ACME GmbH").
					Return(&models.DebtorDefaultsOut{
						Kind:        "sepaExportDefaults",
						Company:     "ACME GmbH",
						DebtorName:  "ACME GmbH",
						CountryCode: "AT",
						IBAN:        "AT611904300234573201",
						BIC:         "GIBAATWWXXX",
					}, nil)
			},
		},
		{
			name:      "missing company parameter",
			urlCalled: "/api/v1/sepa-exports/defaults",
			wantCode:  http.StatusBadRequest,
			doMock:    func(h testHandlerHelper) {},
		},
		{
			name:      "unknown company",
			urlCalled: "/api/v1/sepa-exports/defaults?company=Nobody",
			wantCode:  http.StatusNotFound,
			doMock: func(h testHandlerHelper) {
				h.mockSvc.EXPECT().
					GetDebtorDefaults(gomock.Any(), "Nobody").
					Return(nil, common.ErrDataNotFound)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := handlerTestHelper(t)
			tt.doMock(h)

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode, "body: %s", body)
			if tt.wantBody != "" {
				assert.Contains(t, string(body), tt.wantBody)
			}
		})
	}
}
