package models

import "time"

// MessageStatus tracks the handling state of a visitor message.
type MessageStatus string

const (
	MessagePending MessageStatus = "pending"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

// Valid reports whether the message status is a known value.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessagePending, MessageRead, MessageReplied:
		return true
	}
	return false
}

// NotificationType identifies which mutation derived a notification.
type NotificationType string

const (
	NotificationEnrollmentStatus NotificationType = "enrollment_status"
	NotificationNewMessage       NotificationType = "new_message"
)

// Message is a contact-form submission from a site visitor. The admin
// reply action moves it to replied and attaches the response text.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	Response  string        `json:"response,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (m Message) RecordID() string { return m.ID }

// Notification is an append-only record derived from enrollment status
// changes and new visitor messages. Callers never create these
// directly; the store appends them as a mutation side effect.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Recipient string           `json:"recipient"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// RecordID implements the record lookup contract.
func (n Notification) RecordID() string { return n.ID }
