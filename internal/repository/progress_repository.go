package repository

import (
	"context"

	"snaplearn-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

// ApplyDelta merges one progress update into the record for the delta's
// (device_id, category) pair and returns the post-update state. The whole
// merge is a single upsert, so concurrent updates for the same pair cannot
// lose increments and the pair can never gain a second record.
func (r *ProgressRepository) ApplyDelta(ctx context.Context, delta models.ProgressDelta) (*models.Progress, error) {
	filter := bson.M{"device_id": delta.DeviceID, "category": delta.Category}
	update := bson.M{
		"$inc": bson.M{
			"points":   delta.Points,
			"correct":  delta.Correct,
			"attempts": delta.Attempts,
		},
	}
	if delta.Badge != "" {
		update["$addToSet"] = bson.M{"badges": delta.Badge}
	} else {
		update["$setOnInsert"] = bson.M{"badges": []string{}}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var progress models.Progress
	if err := r.Col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindByDevice returns all progress records for a device, optionally
// narrowed to one category.
func (r *ProgressRepository) FindByDevice(ctx context.Context, deviceID, category string) ([]models.Progress, error) {
	filter := bson.M{"device_id": deviceID}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}
