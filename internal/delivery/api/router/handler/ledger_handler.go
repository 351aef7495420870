package handler

import (
	"log/slog"
	"net/http"

	"fishers/internal/delivery/api/response"
	"fishers/internal/domain/entity"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler serves the cash ledger endpoints
type LedgerHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// LedgerEntryRequest represents the request body of a manual ledger entry
type LedgerEntryRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category" validate:"required,max=80"`
	Description string          `json:"description" validate:"max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required"`
}

func (req *LedgerEntryRequest) toInput() (*usecase.LedgerEntryInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return &usecase.LedgerEntryInput{
		Type:        entity.LedgerEntryType(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}, nil
}

// ListEntries lists ledger entries of the year/month period with totals
func (h *LedgerHandler) ListEntries(c echo.Context) error {
	filter := entity.ParsePeriodFilter(c.QueryParam("year"), c.QueryParam("month"))

	result, err := h.ledgerUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CreateEntry records a manual ledger entry
func (h *LedgerHandler) CreateEntry(c echo.Context) error {
	var req LedgerEntryRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	entry, err := h.ledgerUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// UpdateEntry changes a manual ledger entry
func (h *LedgerHandler) UpdateEntry(c echo.Context) error {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid ledger entry ID")
	}

	var req LedgerEntryRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	entry, err := h.ledgerUC.Update(c.Request().Context(), entryID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// DeleteEntry removes a manual ledger entry
func (h *LedgerHandler) DeleteEntry(c echo.Context) error {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid ledger entry ID")
	}

	if err := h.ledgerUC.Delete(c.Request().Context(), entryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Ledger entry deleted successfully"})
}
