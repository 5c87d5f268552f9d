// Package delivery defines the entry points through which the outside
// world reaches the application: the HTTP API and the match worker.
package delivery

import "context"

// Delivery is a serving process. Serve blocks until the server stops
// or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
