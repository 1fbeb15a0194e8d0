package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"watchdesk/internal/domain/entity"
	domainerrors "watchdesk/internal/domain/errors"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/domain/service"
	"watchdesk/internal/usecase"

	"github.com/google/uuid"
)

// resolutionMessage is the status message written on every resolved case and
// delivered to the reporting user.
const resolutionMessage = "Help is on the way! Police team dispatched to your location."

type resolveService struct {
	dashboard usecase.DashboardUsecase
	caseRepo  repository.CaseRepository
	alertRepo repository.AlertRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewResolveService creates the resolve use case.
func NewResolveService(
	dashboard usecase.DashboardUsecase,
	caseRepo repository.CaseRepository,
	alertRepo repository.AlertRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ResolveUsecase {
	return &resolveService{
		dashboard: dashboard,
		caseRepo:  caseRepo,
		alertRepo: alertRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *resolveService) ResolveCase(ctx context.Context, operator entity.Operator, caseID string) error {
	record, ok := s.dashboard.CaseByID(caseID)
	if !ok {
		s.logger.Debug("resolve requested for unknown case", slog.String("case_id", caseID))
		return domainerrors.ErrRecordNotFound
	}

	resolution := entity.Resolution{
		By:      operator.ResolverName(),
		Station: operator.StationName(),
		Message: resolutionMessage,
	}

	if err := s.caseRepo.ResolveCase(ctx, caseID, resolution); err != nil {
		return domainerrors.NewBackendWriteError(err, "failed to resolve case")
	}

	notification := entity.Notification{
		UserID:      record.UserID(),
		EmergencyID: caseID,
		Title:       "Emergency Update",
		Message:     resolutionMessage,
		Type:        "status_update",
		Read:        false,
	}
	if err := s.caseRepo.AppendNotification(ctx, notification); err != nil {
		// The case is already resolved; a lost notification is not worth
		// failing the whole request over.
		s.logger.Error("failed to append resolve notification",
			slog.String("case_id", caseID), slog.Any("error", err))
	}

	s.publishResolveEvent(ctx, service.ResolveSourceCase, caseID, resolution)

	return nil
}

func (s *resolveService) ResolveDeviceAlert(ctx context.Context, operator entity.Operator, alertID string) error {
	record, ok := s.dashboard.AlertByID(alertID)
	if !ok {
		s.logger.Debug("resolve requested for unknown alert", slog.String("alert_id", alertID))
		return domainerrors.ErrRecordNotFound
	}

	resolution := entity.Resolution{
		By:      operator.ResolverName(),
		Station: operator.StationName(),
	}

	if err := s.alertRepo.ResolveAlert(ctx, alertID, resolution); err != nil {
		if errors.Is(err, repository.ErrAlertFeedUnavailable) {
			return domainerrors.ErrAlertFeedUnavailable
		}
		return domainerrors.NewBackendWriteError(err, "failed to resolve device alert")
	}

	if err := s.caseRepo.MirrorSolvedAlert(ctx, record, resolution); err != nil {
		// The alert itself is already resolved; the archive copy is best
		// effort.
		s.logger.Error("failed to mirror solved alert",
			slog.String("alert_id", alertID), slog.Any("error", err))
	}

	s.publishResolveEvent(ctx, service.ResolveSourceDeviceAlert, alertID, resolution)

	return nil
}

// publishResolveEvent emits the resolve event for downstream consumers. The
// resolve itself already succeeded, so publish failures are only logged.
func (s *resolveService) publishResolveEvent(ctx context.Context, source, recordID string, res entity.Resolution) {
	event := &service.ResolveEvent{
		EventID:    uuid.NewString(),
		Source:     source,
		RecordID:   recordID,
		ResolvedBy: res.By,
		Station:    res.Station,
		ResolvedAt: time.Now(),
	}

	if err := s.publisher.PublishResolveEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish resolve event",
			slog.String("source", source),
			slog.String("record_id", recordID),
			slog.Any("error", err))
	}
}
