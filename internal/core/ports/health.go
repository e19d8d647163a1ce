package ports

import "context"

// StoreHealth probes the relational store for operational diagnostics.
type StoreHealth interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// ServerVersion reports the store's version string.
	ServerVersion(ctx context.Context) (string, error)
}
