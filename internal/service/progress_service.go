package service

import (
	"context"

	"snaplearn-service/internal/models"
)

type ProgressService struct {
	Store ProgressStore
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{Store: store}
}

// UpdateProgress merges a delta into the record for the delta's
// (device_id, category) pair and returns the accumulated state. Without a
// store nothing is persisted and a nil record is returned; the caller must
// not assume durability in that mode.
func (s *ProgressService) UpdateProgress(ctx context.Context, delta models.ProgressDelta) (*models.Progress, error) {
	if s.Store == nil {
		return nil, nil
	}
	progress, err := s.Store.ApplyDelta(ctx, delta)
	if err != nil {
		return nil, err
	}
	if progress.Badges == nil {
		progress.Badges = []string{}
	}
	return progress, nil
}

// GetProgress returns all progress records for a device, optionally
// filtered by category. Without a store the result is empty.
func (s *ProgressService) GetProgress(ctx context.Context, deviceID, category string) ([]models.Progress, error) {
	if s.Store == nil {
		return []models.Progress{}, nil
	}
	records, err := s.Store.FindByDevice(ctx, deviceID, category)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Progress{}
	}
	for i := range records {
		if records[i].Badges == nil {
			records[i].Badges = []string{}
		}
	}
	return records, nil
}
