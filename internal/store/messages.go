package store

import (
	"context"
	"strings"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// Messages returns all visitor messages in insertion order.
func (s *Store) Messages(ctx context.Context) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Messages, nil
}

// Message returns the visitor message with the given id.
func (s *Store) Message(ctx context.Context, id string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return models.Message{}, err
	}
	i := indexByID(doc.Messages, id)
	if i < 0 {
		return models.Message{}, ErrNotFound
	}
	return doc.Messages[i], nil
}

// AddMessage stores a contact-form submission. The record always
// starts pending, the body is stripped of any markup (and rejected if
// nothing remains), and a new_message notification to the admin
// recipient is derived inside the same write.
func (s *Store) AddMessage(ctx context.Context, draft dto.MessageDraft) (models.Message, error) {
	ctx, span := s.tracer.Start(ctx, "store.messages.add")
	defer span.End()

	if err := s.validate.Struct(draft); err != nil {
		s.count("messages", "add", "invalid")
		return models.Message{}, err
	}

	body := strings.TrimSpace(s.sanitizer.Sanitize(draft.Message))
	if body == "" {
		s.count("messages", "add", "invalid")
		return models.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("messages", "add", "error")
		return models.Message{}, err
	}

	message := draft.Record()
	message.Message = body
	message.ID = s.nextID(doc)
	message.CreatedAt = s.now()
	message.Status = models.MessagePending
	doc.Messages = append(doc.Messages, message)

	notification := s.appendNotification(doc, models.Notification{
		Type:      models.NotificationNewMessage,
		Title:     "رسالة جديدة",
		Message:   "رسالة جديدة من " + message.Name,
		Recipient: s.admin,
	})

	if err := s.save(ctx, doc); err != nil {
		s.count("messages", "add", "error")
		return models.Message{}, err
	}

	s.announce(ctx, &notification)
	s.count("messages", "add", "ok")
	s.logger.Info().Str("id", message.ID).Msg("visitor message received")
	return message, nil
}

// UpdateMessage shallow-merges the patch over the stored message and
// stamps updatedAt.
func (s *Store) UpdateMessage(ctx context.Context, id string, patch dto.MessagePatch) (models.Message, error) {
	ctx, span := s.tracer.Start(ctx, "store.messages.update")
	defer span.End()

	if patch.Status != nil && !patch.Status.Valid() {
		s.count("messages", "update", "invalid")
		return models.Message{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count("messages", "update", "error")
		return models.Message{}, err
	}

	i := indexByID(doc.Messages, id)
	if i < 0 {
		s.count("messages", "update", "not_found")
		return models.Message{}, ErrNotFound
	}

	merged := doc.Messages[i]
	patch.Apply(&merged)
	now := s.now()
	merged.UpdatedAt = &now
	doc.Messages[i] = merged

	if err := s.save(ctx, doc); err != nil {
		s.count("messages", "update", "error")
		return models.Message{}, err
	}

	s.count("messages", "update", "ok")
	return merged, nil
}

// ReplyToMessage is the admin reply action: it attaches the response
// text, moves the message to replied and stamps updatedAt.
func (s *Store) ReplyToMessage(ctx context.Context, id, response string) (models.Message, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return models.Message{}, ErrEmptyReply
	}
	status := models.MessageReplied
	return s.UpdateMessage(ctx, id, dto.MessagePatch{Status: &status, Response: &response})
}

// DeleteMessage removes the visitor message with the given id.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.messages.delete")
	defer span.End()

	return s.deleteRecord(ctx, "messages", func(doc *models.Document) bool {
		kept, removed := removeByID(doc.Messages, id)
		doc.Messages = kept
		return removed
	})
}
