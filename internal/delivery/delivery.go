// Package delivery groups the inbound adapters started by the server process.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
