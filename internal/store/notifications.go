package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Notifications returns all notifications in append order.
func (s *Store) Notifications(ctx context.Context) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Notifications, nil
}

// AddNotification appends a notification directly. The store derives
// its own notifications from enrollment and message mutations; this
// entry point exists for completeness and administrative tooling.
func (s *Store) AddNotification(ctx context.Context, draft dto.NotificationDraft) (models.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "store.notifications.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("notifications", "add", "invalid")
		return models.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("notifications", "add", "error")
		return models.Notification{}, err
	}

	notification := s.appendNotification(doc, draft.Record())

	if err := s.save(ctx, doc); err != nil {
		s.count("notifications", "add", "error")
		return models.Notification{}, err
	}

	s.announce(ctx, &notification)
	s.count("notifications", "add", "ok")
	return notification, nil
}

// MarkNotificationRead flips the read flag in place.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.notifications.mark_read")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("notifications", "mark_read", "error")
		return err
	}

	i := indexByID(doc.Notifications, id)
	if i < 0 {
		s.count("notifications", "mark_read", "not_found")
		return ErrNotFound
	}

	doc.Notifications[i].IsRead = true

	if err := s.save(ctx, doc); err != nil {
		s.count("notifications", "mark_read", "error")
		return err
	}

	s.count("notifications", "mark_read", "ok")
	return nil
}
