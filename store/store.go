// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/brandforge/brandforge/domain"
)

// BrandCacheKey is the fixed key under which the last completed
// identity is cached.
const BrandCacheKey = "root"

// Store defines the interface for data persistence.
type Store interface {
	// Run operations
	CreateRun(ctx context.Context, run *domain.Run) error
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	LatestRun(ctx context.Context) (*domain.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status domain.RunStatus) error
	UpdateRunCompleted(ctx context.Context, runID string, status domain.RunStatus, errMsg string) error

	// Event operations
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvents(ctx context.Context, runID string, afterTs int64, types []string, limit int) ([]domain.Event, error)

	// Brand cache operations
	SaveBrand(ctx context.Context, key string, identity *domain.BrandIdentity) error
	GetBrand(ctx context.Context, key string) (*domain.BrandIdentity, error)
	DeleteBrand(ctx context.Context, key string) error

	// Lifecycle
	Close() error
}
