// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a serveable transport endpoint (HTTP, etc.) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
