package sepaexport

import (
	"errors"
	nethttp "net/http"

	"github.com/finworks/go-sepa-export/internal/common"
	"github.com/finworks/go-sepa-export/internal/common/http"
	"github.com/finworks/go-sepa-export/internal/common/validation"
	"github.com/finworks/go-sepa-export/internal/models"
	"github.com/finworks/go-sepa-export/internal/services"

	"github.com/labstack/echo/v4"
)

type sepaExportHandler struct {
	sepaExportSvc services.SepaExportService
}

// New sepa export handler will initialize the sepa-exports/ resources endpoint
func New(app *echo.Group, sepaExportSvc services.SepaExportService) {
	handler := sepaExportHandler{
		sepaExportSvc: sepaExportSvc,
	}
	api := app.Group("/sepa-exports")
	api.POST("", handler.createExport())
	api.GET("/defaults", handler.getDefaults())
}

// createExport builds the pain.001 document for the selected invoices and
// streams it back as a file download.
func (h *sepaExportHandler) createExport() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateSepaExportRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToIn()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		res, err := h.sepaExportSvc.CreateExport(c.Request().Context(), in)
		if err != nil {
			return http.RestErrorResponse(c, exportStatusCode(err), err)
		}

		return http.XMLFileResponse(c, res.Filename, res.Content)
	}
}

// getDefaults returns the debtor prefill for the export dialog.
func (h *sepaExportHandler) getDefaults() echo.HandlerFunc {
	return func(c echo.Context) error {
		company := c.QueryParam("company")
		if company == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest,
				errors.New("query parameter 'company' is required"))
		}

		res, err := h.sepaExportSvc.GetDebtorDefaults(c.Request().Context(), company)
		if err != nil {
			if errors.Is(err, common.ErrDataNotFound) {
				return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
			}
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, res)
	}
}

// exportStatusCode maps pipeline failures to HTTP statuses: everything the
// caller can fix by changing the request is a 422, unknown invoices are 404,
// the rest is a 500.
func exportStatusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrDataNotFound):
		return nethttp.StatusNotFound
	case errors.Is(err, common.ErrExecutionDateInPast),
		errors.Is(err, common.ErrEmptyInvoiceSet),
		errors.Is(err, common.ErrInvoiceNotEligible),
		errors.Is(err, common.ErrCurrencyMismatch),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrMissingSupplierAccount),
		errors.Is(err, common.ErrMissingSupplierIBAN),
		errors.Is(err, common.ErrInvalidIBAN),
		errors.Is(err, common.ErrInvalidBIC):
		return nethttp.StatusUnprocessableEntity
	default:
		return nethttp.StatusInternalServerError
	}
}
