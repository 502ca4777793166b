package dto

import "github.com/almukhtar-edu/sitestore/internal/models"

// MessageDraft is the payload accepted from the public contact form.
// The store assigns id, createdAt and the initial pending status.
type MessageDraft struct {
	Name    string `json:"name" validate:"required,max=128"`
	Email   string `json:"email" validate:"required,email,max=160"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=4000"`
}

// Record converts the draft into a message without generated fields.
func (d MessageDraft) Record() models.Message {
	return models.Message{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Subject: d.Subject,
		Message: d.Message,
	}
}

// MessagePatch is a partial update applied by the admin surface.
type MessagePatch struct {
	Status   *models.MessageStatus `json:"status,omitempty"`
	Response *string               `json:"response,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p MessagePatch) Apply(m *models.Message) {
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Response != nil {
		m.Response = *p.Response
	}
}

// NotificationDraft describes a notification to append. It is built by
// the store's derive paths; external callers normally never construct
// one, though nothing prevents it.
type NotificationDraft struct {
	Type      models.NotificationType `json:"type" validate:"required,oneof=enrollment_status new_message"`
	Title     string                  `json:"title" validate:"required,max=255"`
	Message   string                  `json:"message" validate:"required,max=2000"`
	Recipient string                  `json:"recipient" validate:"required,max=160"`
}

// Record converts the draft into a notification without generated fields.
func (d NotificationDraft) Record() models.Notification {
	return models.Notification{
		Type:      d.Type,
		Title:     d.Title,
		Message:   d.Message,
		Recipient: d.Recipient,
	}
}
