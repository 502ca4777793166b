package models

import "time"

// PublishStatus marks editorial content as live or still being drafted.
type PublishStatus string

const (
	StatusPublished PublishStatus = "published"
	StatusDraft     PublishStatus = "draft"
)

// Valid reports whether the publish status is a known value.
func (s PublishStatus) Valid() bool {
	return s == StatusPublished || s == StatusDraft
}

// EventStatus is the canonical event lifecycle. The admin surface owns
// all three transitions, including cancellation.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventPast      EventStatus = "past"
	EventCancelled EventStatus = "cancelled"
)

// Valid reports whether the event status is a known value.
func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventPast, EventCancelled:
		return true
	}
	return false
}

// VisibilityStatus toggles showcase items on or off the public site.
type VisibilityStatus string

const (
	VisibilityActive   VisibilityStatus = "active"
	VisibilityInactive VisibilityStatus = "inactive"
)

// Valid reports whether the visibility status is a known value.
func (s VisibilityStatus) Valid() bool {
	return s == VisibilityActive || s == VisibilityInactive
}

// ActivityCategories is the fixed category set for showcase activities.
var ActivityCategories = []string{
	"Academic",
	"Sports",
	"Cultural",
	"Leadership",
	"Arts",
}

// GalleryCategories is the fixed category set for gallery images.
var GalleryCategories = []string{
	"classrooms",
	"sports",
	"events",
	"activities",
	"facilities",
	"students",
}

// NewsCategories is the fixed category set for news items.
var NewsCategories = []string{
	"announcements",
	"achievements",
	"events",
	"updates",
}

// NewsItem is a bilingual article published on the public site.
type NewsItem struct {
	ID        string        `json:"id"`
	TitleAr   string        `json:"titleAr"`
	TitleEn   string        `json:"titleEn"`
	ContentAr string        `json:"contentAr"`
	ContentEn string        `json:"contentEn"`
	Category  string        `json:"category"`
	Image     string        `json:"image,omitempty"`
	Status    PublishStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (n NewsItem) RecordID() string { return n.ID }

// Event is a scheduled school event shown on the public calendar.
type Event struct {
	ID            string      `json:"id"`
	TitleAr       string      `json:"titleAr"`
	TitleEn       string      `json:"titleEn"`
	DescriptionAr string      `json:"descriptionAr"`
	DescriptionEn string      `json:"descriptionEn"`
	Date          string      `json:"date"`
	Time          string      `json:"time,omitempty"`
	Location      string      `json:"location"`
	Image         string      `json:"image,omitempty"`
	Status        EventStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (e Event) RecordID() string { return e.ID }

// Activity is a showcase item distinct from a scheduled event.
type Activity struct {
	ID            string           `json:"id"`
	TitleAr       string           `json:"titleAr"`
	TitleEn       string           `json:"titleEn"`
	DescriptionAr string           `json:"descriptionAr"`
	DescriptionEn string           `json:"descriptionEn"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Status        VisibilityStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (a Activity) RecordID() string { return a.ID }

// GalleryImage is a media item in the public gallery.
type GalleryImage struct {
	ID        string           `json:"id"`
	TitleAr   string           `json:"titleAr"`
	TitleEn   string           `json:"titleEn"`
	Image     string           `json:"image"`
	Category  string           `json:"category"`
	Status    VisibilityStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
}

// RecordID implements the record lookup contract.
func (g GalleryImage) RecordID() string { return g.ID }
