package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Activities returns all showcase activities in insertion order.
func (s *Store) Activities(ctx context.Context) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Activities, nil
}

// Activity returns the showcase activity with the given id.
func (s *Store) Activity(ctx context.Context, id string) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.Activity{}, err
	}
	i := indexByID(doc.Activities, id)
	if i < 0 {
		return models.Activity{}, ErrNotFound
	}
	return doc.Activities[i], nil
}

// AddActivity stores a new showcase activity.
func (s *Store) AddActivity(ctx context.Context, draft dto.ActivityDraft) (models.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "store.activities.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("activities", "add", "invalid")
		return models.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("activities", "add", "error")
		return models.Activity{}, err
	}

	activity := draft.Record()
	activity.ID = s.nextID(doc)
	activity.CreatedAt = s.now()
	doc.Activities = append(doc.Activities, activity)

	if err := s.save(ctx, doc); err != nil {
		s.count("activities", "add", "error")
		return models.Activity{}, err
	}

	s.count("activities", "add", "ok")
	return activity, nil
}

// UpdateActivity shallow-merges the patch over the stored activity.
func (s *Store) UpdateActivity(ctx context.Context, id string, patch dto.ActivityPatch) (models.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "store.activities.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("activities", "update", "invalid")
		return models.Activity{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("activities", "update", "error")
		return models.Activity{}, err
	}

	i := indexByID(doc.Activities, id)
	if i < 0 {
		s.count("activities", "update", "not_found")
		return models.Activity{}, ErrNotFound
	}

	merged := doc.Activities[i]
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.Activities[i] = merged

	if err := s.save(ctx, doc); err != nil {
		s.count("activities", "update", "error")
		return models.Activity{}, err
	}

	s.count("activities", "update", "ok")
	return merged, nil
}

// DeleteActivity removes the showcase activity with the given id.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.activities.delete")
	defer span.End()

	return s.deleteRecord(ctx, "activities", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.Activities, id)
		doc.Activities = kept
		return removed
	})
}
