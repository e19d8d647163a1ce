package postgres

import (
	"context"
	"fmt"
)

// HealthCheck implements ports.StoreHealth for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks PostgreSQL connectivity.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// ServerVersion reports the PostgreSQL server version string.
func (h *HealthCheck) ServerVersion(ctx context.Context) (string, error) {
	var version string
	if err := h.pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("query server version: %w", err)
	}
	return version, nil
}
