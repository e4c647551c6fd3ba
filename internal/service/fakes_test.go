package service

import (
	"context"
	"sort"

	"snaplearn-service/internal/models"
)

// In-memory stand-ins for the Mongo repositories.

type fakeItemStore struct {
	items []models.Item
	err   error
}

func (f *fakeItemStore) FindAll(ctx context.Context) ([]models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeItemStore) FindByCategory(ctx context.Context, category string) ([]models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Item
	for _, it := range f.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemStore) DistinctCategories(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	var out []string
	for _, it := range f.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeProgressStore struct {
	records []*models.Progress
	err     error
}

// ApplyDelta mirrors the repository's upsert: accumulate counters, treat
// badges as a set, create the record on first update for the pair.
func (f *fakeProgressStore) ApplyDelta(ctx context.Context, delta models.ProgressDelta) (*models.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records {
		if r.DeviceID == delta.DeviceID && r.Category == delta.Category {
			r.Points += delta.Points
			r.Correct += delta.Correct
			r.Attempts += delta.Attempts
			if delta.Badge != "" && !contains(r.Badges, delta.Badge) {
				r.Badges = append(r.Badges, delta.Badge)
			}
			cp := *r
			return &cp, nil
		}
	}
	rec := &models.Progress{
		ID:       "p1",
		DeviceID: delta.DeviceID,
		Category: delta.Category,
		Points:   delta.Points,
		Correct:  delta.Correct,
		Attempts: delta.Attempts,
		Badges:   []string{},
	}
	if delta.Badge != "" {
		rec.Badges = []string{delta.Badge}
	}
	f.records = append(f.records, rec)
	cp := *rec
	return &cp, nil
}

func (f *fakeProgressStore) FindByDevice(ctx context.Context, deviceID, category string) ([]models.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Progress
	for _, r := range f.records {
		if r.DeviceID != deviceID {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

type fakeSeedStore struct {
	count     int64
	countErr  error
	insertErr error
	inserted  []models.Item
}

func (f *fakeSeedStore) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeSeedStore) InsertMany(ctx context.Context, items []models.Item) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, items...)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
