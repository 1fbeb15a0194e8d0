// Package delivery defines the transport layer contract.
package delivery

import "context"

// Delivery is a transport that serves the application until ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
