package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Settings returns the flat configuration map.
func (s *Store) Settings(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Settings, nil
}

// UpdateSettings shallow-merges the partial map over the stored
// settings and returns the merged result. Values must be scalars; a
// nested value would fail shape validation on the next load, so it is
// rejected before anything is persisted.
func (s *Store) UpdateSettings(ctx context.Context, partial models.Settings) (models.Settings, error) {
	ctx, span := s.tracer.Start(ctx, "store.settings.update")
	defer span.End()

	for key, value := range partial {
		if !scalarSettingValue(value) {
			s.count("settings", "update", "invalid")
			return nil, fmt.Errorf("%w: %q", ErrInvalidSetting, key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("settings", "update", "error")
		return nil, err
	}

	for key, value := range partial {
		doc.Settings[key] = value
	}

	if err := s.save(ctx, doc); err != nil {
		s.count("settings", "update", "error")
		return nil, err
	}

	s.count("settings", "update", "ok")
	return doc.Settings, nil
}

func scalarSettingValue(value any) bool {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}
