package service

import (
	"context"
	"log"

	"snaplearn-service/internal/models"
)

// EnsureSeedContent inserts the starter catalog when the item collection
// holds no documents. The count check is all-or-nothing: a single existing
// item skips seeding entirely, so a partially seeded store is never topped
// up. Errors are logged and absorbed; the service starts regardless.
func EnsureSeedContent(ctx context.Context, store SeedStore) {
	if store == nil {
		return
	}
	count, err := store.Count(ctx)
	if err != nil {
		log.Printf("seed check failed, continuing without seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}
	if err := store.InsertMany(ctx, models.SeedCatalog); err != nil {
		log.Printf("seeding starter content failed: %v", err)
		return
	}
	log.Printf("seeded %d starter items", len(models.SeedCatalog))
}
