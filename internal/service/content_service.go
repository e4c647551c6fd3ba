package service

import (
	"context"
	"log"

	"snaplearn-service/internal/models"
)

type ContentService struct {
	Store ItemStore
}

func NewContentService(store ItemStore) *ContentService {
	return &ContentService{Store: store}
}

// ListCategories returns the distinct categories present in the store, or
// the default category list when the store is absent, empty, or failing.
// It never errors; a category list is always available.
func (s *ContentService) ListCategories(ctx context.Context) []string {
	if s.Store == nil {
		return models.DefaultCategories
	}
	categories, err := s.Store.DistinctCategories(ctx)
	if err != nil {
		log.Printf("listing categories from store failed, using defaults: %v", err)
		return models.DefaultCategories
	}
	if len(categories) == 0 {
		return models.DefaultCategories
	}
	return categories
}

// ListItems returns all items, or only those in the given category when one
// is provided. Without a store it serves the embedded sample set, filtered
// the same way.
func (s *ContentService) ListItems(ctx context.Context, category string) ([]models.Item, error) {
	if s.Store == nil {
		return filterByCategory(models.FallbackItems, category), nil
	}
	if category != "" {
		return s.Store.FindByCategory(ctx, category)
	}
	return s.Store.FindAll(ctx)
}

func filterByCategory(items []models.Item, category string) []models.Item {
	if category == "" {
		return items
	}
	filtered := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
