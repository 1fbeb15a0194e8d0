// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"watchdesk/internal/delivery/http/middleware"
	"watchdesk/internal/delivery/http/response"
	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/usecase"
	"watchdesk/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the dashboard pages and fragments.
type DashboardHandler struct {
	uc       usecase.DashboardUsecase
	renderer *view.Renderer
	logger   *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, renderer *view.Renderer, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:       uc,
		renderer: renderer,
		logger:   logger,
	}
}

// Page renders the full dashboard page.
func (h *DashboardHandler) Page(c echo.Context) error {
	operator, _ := c.Get(middleware.OperatorContextKey).(entity.Operator)

	html, err := h.renderer.RenderPage(operator.StationName(), h.uc.CurrentSnapshot())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Tab renders the card list fragment for one tab.
func (h *DashboardHandler) Tab(c echo.Context) error {
	tab := c.Param("tab")
	if !usecase.ValidTab(tab) {
		h.logger.Debug("fragment requested for unknown tab", slog.String("tab", tab))
		return domainerrors.ErrRecordNotFound
	}

	html, err := h.renderer.RenderTab(tab, h.uc.CurrentSnapshot())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Stats renders the stat cards fragment.
func (h *DashboardHandler) Stats(c echo.Context) error {
	html, err := h.renderer.RenderStats(h.uc.CurrentSnapshot().Stats())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// CaseModal renders the detail modal body for a case.
func (h *DashboardHandler) CaseModal(c echo.Context) error {
	record, found := h.uc.CaseByID(c.Param("id"))
	if !found {
		h.logger.Debug("modal requested for unknown case", slog.String("case_id", c.Param("id")))
		return domainerrors.ErrRecordNotFound
	}

	html, err := h.renderer.RenderCaseModal(record)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// AlertModal renders the detail modal body for a device alert.
func (h *DashboardHandler) AlertModal(c echo.Context) error {
	record, found := h.uc.AlertByID(c.Param("id"))
	if !found {
		h.logger.Debug("modal requested for unknown alert", slog.String("alert_id", c.Param("id")))
		return domainerrors.ErrRecordNotFound
	}

	html, err := h.renderer.RenderAlertModal(record)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Stream pushes an SSE update event whenever either feed delivers new data.
// The event payload is the current stats; the client refetches fragments.
func (h *DashboardHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	updates, cancel := h.uc.Updates()
	defer cancel()

	// Deliver the current state immediately so a reconnecting client does
	// not wait for the next feed delivery.
	if err := h.writeUpdateEvent(c); err != nil {
		return nil
	}

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			if err := h.writeUpdateEvent(c); err != nil {
				return nil
			}
		}
	}
}

func (h *DashboardHandler) writeUpdateEvent(c echo.Context) error {
	stats, err := json.Marshal(h.uc.CurrentSnapshot().Stats())
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(c.Response(), "event: update\ndata: %s\n\n", stats); err != nil {
		return errors.WithStack(err)
	}
	c.Response().Flush()

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
