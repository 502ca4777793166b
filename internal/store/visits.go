package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Visits returns the current visit counters.
func (s *Store) Visits(ctx context.Context) (models.VisitStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.VisitStats{}, err
	}
	return doc.Visits, nil
}

// RecordVisit increments the total and today counters.
func (s *Store) RecordVisit(ctx context.Context) (models.VisitStats, error) {
	ctx, span := s.tracer.Start(ctx, "store.visits.record")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("visits", "record", "error")
		return models.VisitStats{}, err
	}

	doc.Visits.Total++
	doc.Visits.Today++

	if err := s.save(ctx, doc); err != nil {
		s.count("visits", "record", "error")
		return models.VisitStats{}, err
	}

	s.count("visits", "record", "ok")
	return doc.Visits, nil
}

// RollOverVisits moves today's count into yesterday and zeroes today.
// The persisted shape carries no date, so deciding when a day has
// passed is the caller's responsibility.
func (s *Store) RollOverVisits(ctx context.Context) (models.VisitStats, error) {
	ctx, span := s.tracer.Start(ctx, "store.visits.rollover")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("visits", "rollover", "error")
		return models.VisitStats{}, err
	}

	doc.Visits.Yesterday = doc.Visits.Today
	doc.Visits.Today = 0

	if err := s.save(ctx, doc); err != nil {
		s.count("visits", "rollover", "error")
		return models.VisitStats{}, err
	}

	s.count("visits", "rollover", "ok")
	return doc.Visits, nil
}
