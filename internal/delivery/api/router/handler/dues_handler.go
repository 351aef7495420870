package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"fishers/internal/delivery/api/response"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DuesHandlerParams holds dependencies for DuesHandler, injected by Fx.
type DuesHandlerParams struct {
	fx.In

	DuesUC    usecase.DuesUsecase
	ReceiptUC usecase.ReceiptUsecase
	Logger    *slog.Logger
}

// DuesHandler serves the dues lifecycle endpoints
type DuesHandler struct {
	duesUC    usecase.DuesUsecase
	receiptUC usecase.ReceiptUsecase
	logger    *slog.Logger
}

// NewDuesHandler is the constructor for DuesHandler
func NewDuesHandler(params DuesHandlerParams) *DuesHandler {
	return &DuesHandler{
		duesUC:    params.DuesUC,
		receiptUC: params.ReceiptUC,
		logger:    params.Logger,
	}
}

// AddDuesRequest represents the request body for adding a single competency
type AddDuesRequest struct {
	Competency string `json:"competency" validate:"required"`
}

// GenerateDuesRequest represents the request body for generating a whole year
type GenerateDuesRequest struct {
	Year int `json:"year" validate:"required,min=1900,max=2100"`
}

// PayDuesRequest represents the request body for paying a dues record
type PayDuesRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   string           `json:"payment_date"`
	PaymentMethod string           `json:"payment_method" validate:"max=40"`
	Note          string           `json:"note" validate:"max=500"`
}

// ExemptDuesRequest represents the request body for exempting a dues record
type ExemptDuesRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// AddDues creates the dues record of one competency (MM/YYYY) for a member
func (h *DuesHandler) AddDues(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	var req AddDuesRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	result, err := h.duesUC.AddSingle(c.Request().Context(), memberID, req.Competency)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !result.Created {
		return response.HandleAppError(c, domainerrors.ErrDuesAlreadyExists)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GenerateDues creates the twelve monthly records of a year
func (h *DuesHandler) GenerateDues(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	var req GenerateDuesRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	result, err := h.duesUC.GenerateYear(c.Request().Context(), memberID, req.Year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// PayDues marks a dues record as paid
func (h *DuesHandler) PayDues(c echo.Context) error {
	duesID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid dues ID")
	}

	var req PayDuesRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	record, err := h.duesUC.Pay(c.Request().Context(), duesID, &usecase.PayDuesInput{
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// ExemptDues exempts a pending dues record
func (h *DuesHandler) ExemptDues(c echo.Context) error {
	duesID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid dues ID")
	}

	var req ExemptDuesRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	record, err := h.duesUC.Exempt(c.Request().Context(), duesID, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// DeleteDues removes an unpaid dues record
func (h *DuesHandler) DeleteDues(c echo.Context) error {
	duesID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid dues ID")
	}

	if err := h.duesUC.Delete(c.Request().Context(), duesID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Dues record deleted successfully"})
}

// GetReceipt renders the payment receipt PDF of a paid dues record
func (h *DuesHandler) GetReceipt(c echo.Context) error {
	duesID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid dues ID")
	}

	receipt, err := h.receiptUC.RenderReceipt(c.Request().Context(), duesID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.File(c, "application/pdf", fmt.Sprintf("receipt-%d.pdf", receipt.Number), receipt.PDF, false)
}

// GetDues returns a single dues record
func (h *DuesHandler) GetDues(c echo.Context) error {
	duesID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid dues ID")
	}

	record, err := h.duesUC.Get(c.Request().Context(), duesID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
