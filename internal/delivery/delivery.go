// Package delivery defines the transports that expose the account usecases.
package delivery

import "context"

// Delivery is a transport started by the application after fx has run its start hooks.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
