// Package impl provides the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"watchdesk/internal/domain/entity"
	"watchdesk/internal/domain/repository"
	"watchdesk/internal/usecase"

	"github.com/pkg/errors"
)

const feedRetryInterval = 5 * time.Second

type feedService struct {
	caseRepo  repository.CaseRepository
	alertRepo repository.AlertRepository
	logger    *slog.Logger

	mu          sync.RWMutex
	cases       []entity.Case
	alerts      []entity.DeviceAlert
	caseFeedUp  bool
	alertFeedUp bool

	subMu       sync.Mutex
	subscribers map[chan struct{}]struct{}
}

// NewFeedService creates the dashboard use case backed by the live feeds.
func NewFeedService(
	caseRepo repository.CaseRepository,
	alertRepo repository.AlertRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &feedService{
		caseRepo:    caseRepo,
		alertRepo:   alertRepo,
		logger:      logger,
		subscribers: make(map[chan struct{}]struct{}),
	}
}

func (s *feedService) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("feed service requires a context")
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.watchCases(ctx)
	}()
	go func() {
		defer wg.Done()
		s.watchAlerts(ctx)
	}()

	wg.Wait()

	return nil
}

// watchCases keeps the case listener attached, reattaching after failures so
// a transient backend error never leaves the dashboard without a feed.
func (s *feedService) watchCases(ctx context.Context) {
	for {
		err := s.caseRepo.WatchCases(ctx, s.replaceCases)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logger.Error("case feed detached", slog.Any("error", err))
		}

		s.setCaseFeedUp(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(feedRetryInterval):
		}
	}
}

func (s *feedService) watchAlerts(ctx context.Context) {
	for {
		err := s.alertRepo.WatchAlerts(ctx, s.replaceAlerts)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logger.Error("alert feed detached", slog.Any("error", err))
		}

		s.setAlertFeedUp(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(feedRetryInterval):
		}
	}
}

// replaceCases swaps in the full case list delivered by the feed. Partial
// merges never happen; each delivery replaces everything.
func (s *feedService) replaceCases(cases []entity.Case) {
	s.mu.Lock()
	s.cases = cases
	s.caseFeedUp = true
	s.mu.Unlock()

	s.notify()
}

func (s *feedService) replaceAlerts(alerts []entity.DeviceAlert) {
	s.mu.Lock()
	s.alerts = alerts
	s.alertFeedUp = true
	s.mu.Unlock()

	s.notify()
}

func (s *feedService) setCaseFeedUp(up bool) {
	s.mu.Lock()
	changed := s.caseFeedUp != up
	s.caseFeedUp = up
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *feedService) setAlertFeedUp(up bool) {
	s.mu.Lock()
	changed := s.alertFeedUp != up
	s.alertFeedUp = up
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *feedService) CurrentSnapshot() usecase.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return usecase.Snapshot{
		Cases:    slices.Clone(s.cases),
		Alerts:   slices.Clone(s.alerts),
		Degraded: !s.caseFeedUp || !s.alertFeedUp,
	}
}

func (s *feedService) CaseByID(id string) (entity.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cases {
		if c.ID == id {
			return c, true
		}
	}

	return entity.Case{}, false
}

func (s *feedService) AlertByID(id string) (entity.DeviceAlert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.alerts {
		if a.ID == id {
			return a, true
		}
	}

	return entity.DeviceAlert{}, false
}

func (s *feedService) Updates() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subscribers, ch)
		s.subMu.Unlock()
	}

	return ch, cancel
}

// notify signals every subscriber without blocking; a subscriber that has not
// drained its channel yet already has a wakeup pending.
func (s *feedService) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
