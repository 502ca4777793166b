package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Events returns all scheduled events in insertion order.
func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

// Event returns the event with the given id.
func (s *Store) Event(ctx context.Context, id string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.Event{}, err
	}
	i := indexByID(doc.Events, id)
	if i < 0 {
		return models.Event{}, ErrNotFound
	}
	return doc.Events[i], nil
}

// AddEvent stores a new scheduled event.
func (s *Store) AddEvent(ctx context.Context, draft dto.EventDraft) (models.Event, error) {
	ctx, span := s.tracer.Start(ctx, "store.events.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("events", "add", "invalid")
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("events", "add", "error")
		return models.Event{}, err
	}

	event := draft.Record()
	event.ID = s.nextID(doc)
	event.CreatedAt = s.now()
	doc.Events = append(doc.Events, event)

	if err := s.save(ctx, doc); err != nil {
		s.count("events", "add", "error")
		return models.Event{}, err
	}

	s.count("events", "add", "ok")
	return event, nil
}

// UpdateEvent shallow-merges the patch over the stored event.
func (s *Store) UpdateEvent(ctx context.Context, id string, patch dto.EventPatch) (models.Event, error) {
	ctx, span := s.tracer.Start(ctx, "store.events.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("events", "update", "invalid")
		return models.Event{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("events", "update", "error")
		return models.Event{}, err
	}

	i := indexByID(doc.Events, id)
	if i < 0 {
		s.count("events", "update", "not_found")
		return models.Event{}, ErrNotFound
	}

	merged := doc.Events[i]
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.Events[i] = merged

	if err := s.save(ctx, doc); err != nil {
		s.count("events", "update", "error")
		return models.Event{}, err
	}

	s.count("events", "update", "ok")
	return merged, nil
}

// DeleteEvent removes the event with the given id.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.events.delete")
	defer span.End()

	return s.deleteRecord(ctx, "events", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.Events, id)
		doc.Events = kept
		return removed
	})
}
