package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/domain/service"
	mockRepo "watchdesk/internal/mocks/repository"
	mockSvc "watchdesk/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolveFixture struct {
	dashboard *feedService
	caseRepo  *mockRepo.MockCaseRepository
	alertRepo *mockRepo.MockAlertRepository
	publisher *mockSvc.MockEventPublisher
	service   *resolveService
}

func newResolveFixture(t *testing.T) *resolveFixture {
	t.Helper()

	dashboard := newTestFeedService(t)
	caseRepo := mockRepo.NewMockCaseRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewResolveService(dashboard, caseRepo, alertRepo, publisher, logger).(*resolveService)

	return &resolveFixture{
		dashboard: dashboard,
		caseRepo:  caseRepo,
		alertRepo: alertRepo,
		publisher: publisher,
		service:   svc,
	}
}

var testOperator = entity.Operator{Station: "Belapur HQ", HeadACP: "ACP Rane"}

func TestResolveService_ResolveCase_Success(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "pending", "userId": "user-9"}},
	})

	expectedResolution := entity.Resolution{
		By:      "ACP Rane",
		Station: "Belapur HQ",
		Message: resolutionMessage,
	}

	f.caseRepo.EXPECT().ResolveCase(ctx, "case-1", expectedResolution).Return(nil)
	f.caseRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("entity.Notification")).
		Run(func(_ context.Context, notification entity.Notification) {
			assert.Equal(t, "user-9", notification.UserID)
			assert.Equal(t, "case-1", notification.EmergencyID)
			assert.Equal(t, "Emergency Update", notification.Title)
			assert.Equal(t, resolutionMessage, notification.Message)
			assert.Equal(t, "status_update", notification.Type)
			assert.False(t, notification.Read)
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Run(func(_ context.Context, event *service.ResolveEvent) {
			assert.Equal(t, service.ResolveSourceCase, event.Source)
			assert.Equal(t, "case-1", event.RecordID)
			assert.Equal(t, "ACP Rane", event.ResolvedBy)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(nil)

	err := f.service.ResolveCase(ctx, testOperator, "case-1")
	require.NoError(t, err)
}

func TestResolveService_ResolveCase_NotFound(t *testing.T) {
	f := newResolveFixture(t)

	err := f.service.ResolveCase(context.Background(), testOperator, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestResolveService_ResolveCase_AlreadyResolvedRewrites(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "resolved"}},
	})

	// A second resolve re-confirms the record; redundant but harmless.
	f.caseRepo.EXPECT().
		ResolveCase(ctx, "case-1", mock.AnythingOfType("entity.Resolution")).
		Return(nil)
	f.caseRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("entity.Notification")).
		Return(nil)
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Return(nil)

	err := f.service.ResolveCase(ctx, testOperator, "case-1")
	require.NoError(t, err)
}

func TestResolveService_ResolveCase_WriteFailure(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "pending"}},
	})

	f.caseRepo.EXPECT().
		ResolveCase(ctx, "case-1", mock.AnythingOfType("entity.Resolution")).
		Return(errors.New("deadline exceeded"))

	err := f.service.ResolveCase(ctx, testOperator, "case-1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_WRITE_FAILED", appErr.ErrorCode())
}

func TestResolveService_ResolveCase_NotificationFailureIsSwallowed(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "pending"}},
	})

	f.caseRepo.EXPECT().
		ResolveCase(ctx, "case-1", mock.AnythingOfType("entity.Resolution")).
		Return(nil)
	f.caseRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("entity.Notification")).
		Return(errors.New("collection unavailable"))
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Return(nil)

	err := f.service.ResolveCase(ctx, testOperator, "case-1")
	assert.NoError(t, err)
}

func TestResolveService_ResolveCase_DefaultsWhenOperatorFieldsEmpty(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "pending"}},
	})

	f.caseRepo.EXPECT().
		ResolveCase(ctx, "case-1", entity.Resolution{
			By:      "Police",
			Station: "Unknown",
			Message: resolutionMessage,
		}).
		Return(nil)
	f.caseRepo.EXPECT().
		AppendNotification(ctx, mock.AnythingOfType("entity.Notification")).
		Return(nil)
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Return(nil)

	err := f.service.ResolveCase(ctx, entity.Operator{}, "case-1")
	require.NoError(t, err)
}

func TestResolveService_ResolveDeviceAlert_Success(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	alert := entity.DeviceAlert{
		ID:  "alert-1",
		Raw: map[string]any{"status": "pending", "deviceId": "tracker-7"},
	}
	f.dashboard.replaceAlerts([]entity.DeviceAlert{alert})

	expectedResolution := entity.Resolution{By: "ACP Rane", Station: "Belapur HQ"}

	f.alertRepo.EXPECT().ResolveAlert(ctx, "alert-1", expectedResolution).Return(nil)
	f.caseRepo.EXPECT().MirrorSolvedAlert(ctx, alert, expectedResolution).Return(nil)
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Run(func(_ context.Context, event *service.ResolveEvent) {
			assert.Equal(t, service.ResolveSourceDeviceAlert, event.Source)
			assert.Equal(t, "alert-1", event.RecordID)
		}).
		Return(nil)

	err := f.service.ResolveDeviceAlert(ctx, testOperator, "alert-1")
	require.NoError(t, err)
}

func TestResolveService_ResolveDeviceAlert_NotFound(t *testing.T) {
	f := newResolveFixture(t)

	err := f.service.ResolveDeviceAlert(context.Background(), testOperator, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestResolveService_ResolveDeviceAlert_FeedUnavailable(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	f.dashboard.replaceAlerts([]entity.DeviceAlert{
		{ID: "alert-1", Raw: map[string]any{"status": "pending"}},
	})

	f.alertRepo.EXPECT().
		ResolveAlert(ctx, "alert-1", mock.AnythingOfType("entity.Resolution")).
		Return(repository.ErrAlertFeedUnavailable)

	err := f.service.ResolveDeviceAlert(ctx, testOperator, "alert-1")
	assert.ErrorIs(t, err, domainerrors.ErrAlertFeedUnavailable)
}

func TestResolveService_ResolveDeviceAlert_MirrorFailureIsSwallowed(t *testing.T) {
	f := newResolveFixture(t)
	ctx := context.Background()

	alert := entity.DeviceAlert{ID: "alert-1", Raw: map[string]any{"status": "pending"}}
	f.dashboard.replaceAlerts([]entity.DeviceAlert{alert})

	f.alertRepo.EXPECT().
		ResolveAlert(ctx, "alert-1", mock.AnythingOfType("entity.Resolution")).
		Return(nil)
	f.caseRepo.EXPECT().
		MirrorSolvedAlert(ctx, alert, mock.AnythingOfType("entity.Resolution")).
		Return(errors.New("archive write failed"))
	f.publisher.EXPECT().
		PublishResolveEvent(ctx, mock.AnythingOfType("*service.ResolveEvent")).
		Return(nil)

	err := f.service.ResolveDeviceAlert(ctx, testOperator, "alert-1")
	assert.NoError(t, err)
}
