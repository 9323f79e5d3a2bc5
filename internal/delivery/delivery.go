// Package delivery holds the entry points that drive the usecases.
package delivery

import "context"

// Delivery is a front end started by the CLI. Serve blocks until the work is
// done or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
