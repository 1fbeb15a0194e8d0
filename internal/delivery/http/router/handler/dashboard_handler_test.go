package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchdesk/internal/delivery/http/middleware"
	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	mockUsecase "watchdesk/internal/mocks/usecase"
	"watchdesk/internal/usecase"
	"watchdesk/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardHandler(t *testing.T) (*DashboardHandler, *mockUsecase.MockDashboardUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockDashboardUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDashboardHandler(uc, view.NewRenderer(), logger), uc
}

func handlerSnapshot() usecase.Snapshot {
	return usecase.Snapshot{
		Cases: []entity.Case{
			{ID: "case-1", Raw: map[string]any{"userName": "Asha Patil", "status": "pending"}},
		},
		Alerts: []entity.DeviceAlert{
			{ID: "alert-1", Raw: map[string]any{"deviceId": "tracker-7", "status": "pending"}},
		},
	}
}

func TestDashboardHandler_Page(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().CurrentSnapshot().Return(handlerSnapshot())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.OperatorContextKey, entity.Operator{Station: "Belapur HQ"})

	require.NoError(t, h.Page(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Belapur HQ")
	assert.Contains(t, rec.Body.String(), "Asha Patil")
}

func TestDashboardHandler_Tab(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().CurrentSnapshot().Return(handlerSnapshot())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/tab/deviceAlerts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tab")
	c.SetParamValues("deviceAlerts")

	require.NoError(t, h.Tab(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tracker-7")
}

func TestDashboardHandler_Tab_Unknown(t *testing.T) {
	h, _ := newDashboardHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/tab/archive", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tab")
	c.SetParamValues("archive")

	err := h.Tab(c)
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestDashboardHandler_Stats(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().CurrentSnapshot().Return(handlerSnapshot())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Stats(c))
	assert.Contains(t, rec.Body.String(), `id="totalCases">2<`)
}

func TestDashboardHandler_CaseModal(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().CaseByID("case-1").Return(handlerSnapshot().Cases[0], true)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/case/case-1/modal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("case-1")

	require.NoError(t, h.CaseModal(c))
	assert.Contains(t, rec.Body.String(), "Asha Patil")
}

func TestDashboardHandler_CaseModal_NotFound(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().CaseByID("missing").Return(entity.Case{}, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/case/missing/modal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.CaseModal(c)
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestDashboardHandler_AlertModal(t *testing.T) {
	h, uc := newDashboardHandler(t)
	uc.EXPECT().AlertByID("alert-1").Return(handlerSnapshot().Alerts[0], true)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/alert/alert-1/modal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("alert-1")

	require.NoError(t, h.AlertModal(c))
	assert.Contains(t, rec.Body.String(), "tracker-7")
	assert.Contains(t, rec.Body.String(), "Raw Data")
}
