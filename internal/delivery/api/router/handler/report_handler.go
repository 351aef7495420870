package handler

import (
	"log/slog"
	"net/http"

	"fishers/internal/delivery/api/response"
	"fishers/internal/domain/entity"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves the period report
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetReport computes the report of the year/month period. Non-numeric values are ignored.
func (h *ReportHandler) GetReport(c echo.Context) error {
	filter := entity.ParsePeriodFilter(c.QueryParam("year"), c.QueryParam("month"))

	report, err := h.reportUC.ComputePeriodReport(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
