// Package delivery defines the contract shared by the serving surfaces.
package delivery

import "context"

// Delivery is anything the application can run: the HTTP server and the
// background job scheduler both implement it.
type Delivery interface {
	Serve(ctx context.Context) error
}
