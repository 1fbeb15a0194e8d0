package usecase

import (
	"context"

	"watchdesk/internal/domain/entity"
)

// ResolveUsecase marks emergency records as handled on behalf of an operator.
type ResolveUsecase interface {
	// ResolveCase marks the emergency case as resolved, appends the status
	// notification for the reporting user, and publishes a resolve event.
	ResolveCase(ctx context.Context, operator entity.Operator, caseID string) error

	// ResolveDeviceAlert marks the device alert as resolved, mirrors the full
	// record into the solved archive, and publishes a resolve event.
	ResolveDeviceAlert(ctx context.Context, operator entity.Operator, alertID string) error
}
