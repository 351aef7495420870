package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fishers/internal/delivery/api/response"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReceiptHandlerParams holds dependencies for ReceiptHandler, injected by Fx.
type ReceiptHandlerParams struct {
	fx.In

	ReceiptUC usecase.ReceiptUsecase
	Logger    *slog.Logger
}

// ReceiptHandler serves the public receipt verification page
type ReceiptHandler struct {
	receiptUC usecase.ReceiptUsecase
	logger    *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler
func NewReceiptHandler(params ReceiptHandlerParams) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUC: params.ReceiptUC,
		logger:    params.Logger,
	}
}

// VerifyReceipt confirms that a receipt number and token were issued by the association
func (h *ReceiptHandler) VerifyReceipt(c echo.Context) error {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		return response.HandleAppError(c, domainerrors.ErrReceiptNotFound)
	}

	verification, err := h.receiptUC.VerifyReceipt(c.Request().Context(), number, c.QueryParam("t"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, verification)
}
