package repository

import (
	"context"
	"sort"

	"snaplearn-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ItemRepository struct {
	Col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{Col: db.Collection("item")}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *ItemRepository) FindByCategory(ctx context.Context, category string) ([]models.Item, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *ItemRepository) find(ctx context.Context, filter bson.M) ([]models.Item, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, cur.Err()
}

// DistinctCategories returns the sorted set of category values present in
// the item collection.
func (r *ItemRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

func (r *ItemRepository) InsertMany(ctx context.Context, items []models.Item) error {
	docs := make([]interface{}, len(items))
	for i, it := range items {
		docs[i] = it
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}
