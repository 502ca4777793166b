package store

import (
	"context"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// News returns all articles, drafts included, in insertion order.
// Filtering published items is the caller's concern.
func (s *Store) News(ctx context.Context) ([]models.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.News, nil
}

// NewsItem returns the article with the given id.
func (s *Store) NewsItem(ctx context.Context, id string) (models.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.NewsItem{}, err
	}
	i := indexByID(doc.News, id)
	if i < 0 {
		return models.NewsItem{}, ErrNotFound
	}
	return doc.News[i], nil
}

// AddNews stores a new article.
func (s *Store) AddNews(ctx context.Context, draft dto.NewsDraft) (models.NewsItem, error) {
	ctx, span := s.tracer.Start(ctx, "store.news.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("news", "add", "invalid")
		return models.NewsItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("news", "add", "error")
		return models.NewsItem{}, err
	}

	item := draft.Record()
	item.ID = s.nextID(doc)
	item.CreatedAt = s.now()
	doc.News = append(doc.News, item)

	if err := s.save(ctx, doc); err != nil {
		s.count("news", "add", "error")
		return models.NewsItem{}, err
	}

	s.count("news", "add", "ok")
	return item, nil
}

// UpdateNews shallow-merges the patch over the stored article.
func (s *Store) UpdateNews(ctx context.Context, id string, patch dto.NewsPatch) (models.NewsItem, error) {
	ctx, span := s.tracer.Start(ctx, "store.news.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("news", "update", "invalid")
		return models.NewsItem{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("news", "update", "error")
		return models.NewsItem{}, err
	}

	i := indexByID(doc.News, id)
	if i < 0 {
		s.count("news", "update", "not_found")
		return models.NewsItem{}, ErrNotFound
	}

	merged := doc.News[i]
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.News[i] = merged

	if err := s.save(ctx, doc); err != nil {
		s.count("news", "update", "error")
		return models.NewsItem{}, err
	}

	s.count("news", "update", "ok")
	return merged, nil
}

// DeleteNews removes the article with the given id.
func (s *Store) DeleteNews(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.news.delete")
	defer span.End()

	return s.deleteRecord(ctx, "news", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.News, id)
		doc.News = kept
		return removed
	})
}
