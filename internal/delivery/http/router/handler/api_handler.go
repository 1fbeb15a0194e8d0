package handler

import (
	"log/slog"
	"net/http"

	"watchdesk/internal/delivery/http/middleware"
	"watchdesk/internal/delivery/http/response"
	"watchdesk/internal/domain/entity"
	"watchdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// APIHandler serves the JSON API.
type APIHandler struct {
	dashboard usecase.DashboardUsecase
	resolve   usecase.ResolveUsecase
	logger    *slog.Logger
}

// NewAPIHandler is the constructor for APIHandler, injected by Fx.
func NewAPIHandler(dashboard usecase.DashboardUsecase, resolve usecase.ResolveUsecase, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		dashboard: dashboard,
		resolve:   resolve,
		logger:    logger,
	}
}

// ListCases returns the current case list as card projections.
func (h *APIHandler) ListCases(c echo.Context) error {
	snap := h.dashboard.CurrentSnapshot()

	views := make([]entity.CaseView, 0, len(snap.Cases))
	for _, record := range snap.Cases {
		views = append(views, record.View())
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListAlerts returns the current device alert list as card projections.
func (h *APIHandler) ListAlerts(c echo.Context) error {
	snap := h.dashboard.CurrentSnapshot()

	views := make([]entity.AlertView, 0, len(snap.Alerts))
	for _, record := range snap.Alerts {
		views = append(views, record.View())
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetStats returns the aggregate counters.
func (h *APIHandler) GetStats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboard.CurrentSnapshot().Stats(), "")
}

// ResolveCase marks a case as resolved on behalf of the logged-in operator.
func (h *APIHandler) ResolveCase(c echo.Context) error {
	operator, _ := c.Get(middleware.OperatorContextKey).(entity.Operator)

	if err := h.resolve.ResolveCase(c.Request().Context(), operator, c.Param("id")); err != nil {
		h.logger.Debug("case resolve failed",
			slog.String("case_id", c.Param("id")), slog.Any("error", err))
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Case resolved successfully")
}

// ResolveAlert marks a device alert as handled on behalf of the logged-in
// operator.
func (h *APIHandler) ResolveAlert(c echo.Context) error {
	operator, _ := c.Get(middleware.OperatorContextKey).(entity.Operator)

	if err := h.resolve.ResolveDeviceAlert(c.Request().Context(), operator, c.Param("id")); err != nil {
		h.logger.Debug("device alert resolve failed",
			slog.String("alert_id", c.Param("id")), slog.Any("error", err))
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device alert marked as handled")
}
