// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport front end. Serve blocks until the
// transport is shut down or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
