// Package service declares the domain service contracts implemented by infra.
package service

import (
	"context"
	"time"
)

// Resolve event sources.
const (
	ResolveSourceCase        = "case"
	ResolveSourceDeviceAlert = "device_alert"
)

// ResolveEvent is published after an operator marks a record resolved, for
// asynchronous downstream consumers (audit trail, paging, analytics).
type ResolveEvent struct {
	EventID    string    `json:"event_id"`
	Source     string    `json:"source"`
	RecordID   string    `json:"record_id"`
	ResolvedBy string    `json:"resolved_by"`
	Station    string    `json:"station,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishResolveEvent publishes a resolve event for async processing.
	PublishResolveEvent(ctx context.Context, event *ResolveEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
