package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Enrollments returns all admission applications in insertion order.
func (s *Store) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Enrollments, nil
}

// Enrollment returns the application with the given id.
func (s *Store) Enrollment(ctx context.Context, id string) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.Enrollment{}, err
	}
	i := indexByID(doc.Enrollments, id)
	if i < 0 {
		return models.Enrollment{}, ErrNotFound
	}
	return doc.Enrollments[i], nil
}

// AddEnrollment stores a new admission application. The record always
// starts pending regardless of caller input.
func (s *Store) AddEnrollment(ctx context.Context, draft dto.EnrollmentDraft) (models.Enrollment, error) {
	ctx, span := s.tracer.Start(ctx, "store.enrollments.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("enrollments", "add", "invalid")
		return models.Enrollment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("enrollments", "add", "error")
		return models.Enrollment{}, err
	}

	enrollment := draft.Record()
	enrollment.ID = s.nextID(doc)
	enrollment.CreatedAt = s.now()
	enrollment.Status = models.EnrollmentPending
	doc.Enrollments = append(doc.Enrollments, enrollment)

	if err := s.save(ctx, doc); err != nil {
		s.count("enrollments", "add", "error")
		return models.Enrollment{}, err
	}

	s.count("enrollments", "add", "ok")
	s.logger.Info().Str("id", enrollment.ID).Msg("enrollment submitted")
	return enrollment, nil
}

// UpdateEnrollment shallow-merges the patch over the stored record and
// stamps updatedAt. Changing the status to a different value derives an
// enrollment_status notification addressed to the guardian email.
func (s *Store) UpdateEnrollment(ctx context.Context, id string, patch dto.EnrollmentPatch) (models.Enrollment, error) {
	ctx, span := s.tracer.Start(ctx, "store.enrollments.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("enrollments", "update", "invalid")
		return models.Enrollment{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("enrollments", "update", "error")
		return models.Enrollment{}, err
	}

	i := indexByID(doc.Enrollments, id)
	if i < 0 {
		s.count("enrollments", "update", "not_found")
		return models.Enrollment{}, ErrNotFound
	}

	prior := doc.Enrollments[i]
	merged := prior
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.Enrollments[i] = merged

	var derived *models.Notification
	if patch.Status != nil && *patch.Status != prior.Status {
		notification := s.appendNotification(doc, enrollmentStatusNotification(merged))
		derived = &notification
	}

	if err := s.save(ctx, doc); err != nil {
		s.count("enrollments", "update", "error")
		return models.Enrollment{}, err
	}

	s.announce(ctx, derived)
	s.count("enrollments", "update", "ok")
	return merged, nil
}

// DeleteEnrollment removes the application with the given id.
func (s *Store) DeleteEnrollment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.enrollments.delete")
	defer span.End()

	return s.deleteRecord(ctx, "enrollments", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.Enrollments, id)
		doc.Enrollments = kept
		return removed
	})
}

func enrollmentStatusNotification(e models.Enrollment) models.Notification {
	action := "رفض"
	if e.Status == models.EnrollmentApproved {
		action = "قبول"
	}
	return models.Notification{
		Type:      models.NotificationEnrollmentStatus,
		Title:     "تحديث حالة التسجيل",
		Message:   "تم " + action + " طلب التسجيل",
		Recipient: e.Email,
	}
}
