package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// GalleryImages returns all gallery images in insertion order.
func (s *Store) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.GalleryImages, nil
}

// GalleryImage returns the gallery image with the given id.
func (s *Store) GalleryImage(ctx context.Context, id string) (models.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.GalleryImage{}, err
	}
	i := indexByID(doc.GalleryImages, id)
	if i < 0 {
		return models.GalleryImage{}, ErrNotFound
	}
	return doc.GalleryImages[i], nil
}

// AddGalleryImage stores a new gallery image.
func (s *Store) AddGalleryImage(ctx context.Context, draft dto.GalleryDraft) (models.GalleryImage, error) {
	ctx, span := s.tracer.Start(ctx, "store.gallery.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("galleryImages", "add", "invalid")
		return models.GalleryImage{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("galleryImages", "add", "error")
		return models.GalleryImage{}, err
	}

	image := draft.Record()
	image.ID = s.nextID(doc)
	image.CreatedAt = s.now()
	doc.GalleryImages = append(doc.GalleryImages, image)

	if err := s.save(ctx, doc); err != nil {
		s.count("galleryImages", "add", "error")
		return models.GalleryImage{}, err
	}

	s.count("galleryImages", "add", "ok")
	return image, nil
}

// UpdateGalleryImage shallow-merges the patch over the stored image.
func (s *Store) UpdateGalleryImage(ctx context.Context, id string, patch dto.GalleryPatch) (models.GalleryImage, error) {
	ctx, span := s.tracer.Start(ctx, "store.gallery.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("galleryImages", "update", "invalid")
		return models.GalleryImage{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("galleryImages", "update", "error")
		return models.GalleryImage{}, err
	}

	i := indexByID(doc.GalleryImages, id)
	if i < 0 {
		s.count("galleryImages", "update", "not_found")
		return models.GalleryImage{}, ErrNotFound
	}

	merged := doc.GalleryImages[i]
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.GalleryImages[i] = merged

	if err := s.save(ctx, doc); err != nil {
		s.count("galleryImages", "update", "error")
		return models.GalleryImage{}, err
	}

	s.count("galleryImages", "update", "ok")
	return merged, nil
}

// DeleteGalleryImage removes the gallery image with the given id.
func (s *Store) DeleteGalleryImage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.gallery.delete")
	defer span.End()

	return s.deleteRecord(ctx, "galleryImages", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.GalleryImages, id)
		doc.GalleryImages = kept
		return removed
	})
}
