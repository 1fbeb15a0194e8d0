// Package usecase defines the application use cases of the dashboard.
package usecase

import (
	"context"

	"watchdesk/internal/domain/entity"
)

// Tab names exposed on the dashboard.
const (
	TabAll          = "all"
	TabPending      = "pending"
	TabSolved       = "solved"
	TabDeviceAlerts = "deviceAlerts"
)

// ValidTab reports whether name is one of the dashboard tabs.
func ValidTab(name string) bool {
	switch name {
	case TabAll, TabPending, TabSolved, TabDeviceAlerts:
		return true
	}

	return false
}

// Snapshot is an immutable copy of both feed lists taken at one point in
// time. The two feeds advance independently, so consumers must derive every
// count from the same Snapshot instead of mixing reads.
type Snapshot struct {
	Cases  []entity.Case
	Alerts []entity.DeviceAlert

	// Degraded is set while either feed is failing; the lists then hold the
	// last successfully delivered data.
	Degraded bool
}

// Stats computes the aggregate counters from this snapshot.
func (s Snapshot) Stats() entity.Stats {
	return entity.ComputeStats(s.Cases, s.Alerts)
}

// DashboardUsecase exposes the current feed state to the delivery layer.
type DashboardUsecase interface {
	// Run attaches both live feeds and blocks until ctx is cancelled. The
	// feeds stay attached for the whole process lifetime.
	Run(ctx context.Context) error

	// CurrentSnapshot returns copies of the latest case and alert lists.
	CurrentSnapshot() Snapshot

	// CaseByID looks up a case in the current in-memory list.
	CaseByID(id string) (entity.Case, bool)

	// AlertByID looks up a device alert in the current in-memory list.
	AlertByID(id string) (entity.DeviceAlert, bool)

	// Updates registers a subscriber that is signalled after every list
	// replacement. cancel must be called when the subscriber goes away.
	Updates() (ch <-chan struct{}, cancel func())
}
