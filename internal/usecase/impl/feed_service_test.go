package impl

import (
	"io"
	"log/slog"
	"testing"

	"watchdesk/internal/domain/entity"
	mockRepo "watchdesk/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeedService(t *testing.T) *feedService {
	t.Helper()

	caseRepo := mockRepo.NewMockCaseRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFeedService(caseRepo, alertRepo, logger).(*feedService)
}

func TestFeedService_CurrentSnapshot_CopiesAreIndependent(t *testing.T) {
	svc := newTestFeedService(t)

	svc.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"status": "pending"}},
	})
	svc.replaceAlerts([]entity.DeviceAlert{
		{ID: "alert-1", Raw: map[string]any{"status": "pending"}},
	})

	snap := svc.CurrentSnapshot()
	require.Len(t, snap.Cases, 1)
	require.Len(t, snap.Alerts, 1)

	// Mutating the returned slice must not reach the service's own lists.
	snap.Cases[0] = entity.Case{ID: "tampered"}

	again := svc.CurrentSnapshot()
	assert.Equal(t, "case-1", again.Cases[0].ID)
}

func TestFeedService_CurrentSnapshot_DegradedUntilBothFeedsDeliver(t *testing.T) {
	svc := newTestFeedService(t)

	assert.True(t, svc.CurrentSnapshot().Degraded)

	svc.replaceCases([]entity.Case{})
	assert.True(t, svc.CurrentSnapshot().Degraded)

	svc.replaceAlerts([]entity.DeviceAlert{})
	assert.False(t, svc.CurrentSnapshot().Degraded)

	svc.setAlertFeedUp(false)
	assert.True(t, svc.CurrentSnapshot().Degraded)
}

func TestFeedService_ReplaceCases_SwapsWholeList(t *testing.T) {
	svc := newTestFeedService(t)

	svc.replaceCases([]entity.Case{
		{ID: "a"}, {ID: "b"},
	})
	svc.replaceCases([]entity.Case{
		{ID: "c"},
	})

	snap := svc.CurrentSnapshot()
	require.Len(t, snap.Cases, 1)
	assert.Equal(t, "c", snap.Cases[0].ID)

	_, found := svc.CaseByID("a")
	assert.False(t, found)
}

func TestFeedService_CaseByID(t *testing.T) {
	svc := newTestFeedService(t)

	svc.replaceCases([]entity.Case{
		{ID: "case-1", Raw: map[string]any{"name": "Asha"}},
		{ID: "case-2"},
	})

	record, found := svc.CaseByID("case-1")
	require.True(t, found)
	assert.Equal(t, "Asha", record.Raw["name"])

	_, found = svc.CaseByID("missing")
	assert.False(t, found)
}

func TestFeedService_AlertByID(t *testing.T) {
	svc := newTestFeedService(t)

	svc.replaceAlerts([]entity.DeviceAlert{
		{ID: "alert-1", Raw: map[string]any{"deviceId": "tracker-7"}},
	})

	record, found := svc.AlertByID("alert-1")
	require.True(t, found)
	assert.Equal(t, "tracker-7", record.Raw["deviceId"])

	_, found = svc.AlertByID("missing")
	assert.False(t, found)
}

func TestFeedService_Updates_SignalledOnReplace(t *testing.T) {
	svc := newTestFeedService(t)

	ch, cancel := svc.Updates()
	defer cancel()

	svc.replaceCases([]entity.Case{{ID: "case-1"}})

	select {
	case <-ch:
	default:
		t.Fatal("expected an update signal after replaceCases")
	}
}

func TestFeedService_Updates_NonBlockingWithSlowSubscriber(t *testing.T) {
	svc := newTestFeedService(t)

	ch, cancel := svc.Updates()
	defer cancel()

	// Several replacements while the subscriber never drains; notify must
	// not block and the subscriber keeps exactly one pending wakeup.
	for range 5 {
		svc.replaceAlerts([]entity.DeviceAlert{{ID: "alert-1"}})
	}

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending update signal")
	}
	select {
	case <-ch:
		t.Fatal("expected at most one pending update signal")
	default:
	}
}

func TestFeedService_Updates_CancelRemovesSubscriber(t *testing.T) {
	svc := newTestFeedService(t)

	ch, cancel := svc.Updates()
	cancel()

	svc.replaceCases([]entity.Case{{ID: "case-1"}})

	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not be signalled")
	default:
	}
}
