// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a server that can be started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
