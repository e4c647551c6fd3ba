package service

import (
	"context"

	"snaplearn-service/internal/models"
)

// Store interfaces consumed by the services. The Mongo repositories satisfy
// them; tests substitute in-memory fakes. A nil store means "no database
// connected" and selects the static fallback branch, which is a different
// condition from a store call failing.

type ItemStore interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByCategory(ctx context.Context, category string) ([]models.Item, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type ProgressStore interface {
	ApplyDelta(ctx context.Context, delta models.ProgressDelta) (*models.Progress, error)
	FindByDevice(ctx context.Context, deviceID, category string) ([]models.Progress, error)
}

type SeedStore interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []models.Item) error
}
