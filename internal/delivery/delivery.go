// Package delivery defines the contract shared by every server process.
package delivery

import "context"

// Delivery is a long-running server started by the fx application. Members of
// the "deliveries" group are served concurrently from main.
type Delivery interface {
	Serve(ctx context.Context) error
}
