package dto

import "github.com/almukhtar-edu/sitestore/internal/models"

// NewsDraft is the admin payload for creating a news item.
type NewsDraft struct {
	TitleAr   string               `json:"titleAr" validate:"required,max=255"`
	TitleEn   string               `json:"titleEn" validate:"required,max=255"`
	ContentAr string               `json:"contentAr" validate:"required"`
	ContentEn string               `json:"contentEn" validate:"required"`
	Category  string               `json:"category" validate:"required,max=64"`
	Image     string               `json:"image" validate:"omitempty,max=512"`
	Status    models.PublishStatus `json:"status" validate:"required,oneof=published draft"`
}

// Record converts the draft into a news item without generated fields.
func (d NewsDraft) Record() models.NewsItem {
	return models.NewsItem{
		TitleAr:   d.TitleAr,
		TitleEn:   d.TitleEn,
		ContentAr: d.ContentAr,
		ContentEn: d.ContentEn,
		Category:  d.Category,
		Image:     d.Image,
		Status:    d.Status,
	}
}

// NewsPatch is a partial update for a news item.
type NewsPatch struct {
	TitleAr   *string               `json:"titleAr,omitempty"`
	TitleEn   *string               `json:"titleEn,omitempty"`
	ContentAr *string               `json:"contentAr,omitempty"`
	ContentEn *string               `json:"contentEn,omitempty"`
	Category  *string               `json:"category,omitempty"`
	Image     *string               `json:"image,omitempty"`
	Status    *models.PublishStatus `json:"status,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p NewsPatch) Apply(n *models.NewsItem) {
	if p.TitleAr != nil {
		n.TitleAr = *p.TitleAr
	}
	if p.TitleEn != nil {
		n.TitleEn = *p.TitleEn
	}
	if p.ContentAr != nil {
		n.ContentAr = *p.ContentAr
	}
	if p.ContentEn != nil {
		n.ContentEn = *p.ContentEn
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
}

// EventDraft is the admin payload for creating an event.
type EventDraft struct {
	TitleAr       string             `json:"titleAr" validate:"required,max=255"`
	TitleEn       string             `json:"titleEn" validate:"required,max=255"`
	DescriptionAr string             `json:"descriptionAr" validate:"required"`
	DescriptionEn string             `json:"descriptionEn" validate:"required"`
	Date          string             `json:"date" validate:"required,max=32"`
	Time          string             `json:"time" validate:"omitempty,max=16"`
	Location      string             `json:"location" validate:"required,max=128"`
	Image         string             `json:"image" validate:"omitempty,max=512"`
	Status        models.EventStatus `json:"status" validate:"required,oneof=upcoming past cancelled"`
}

// Record converts the draft into an event without generated fields.
func (d EventDraft) Record() models.Event {
	return models.Event{
		TitleAr:       d.TitleAr,
		TitleEn:       d.TitleEn,
		DescriptionAr: d.DescriptionAr,
		DescriptionEn: d.DescriptionEn,
		Date:          d.Date,
		Time:          d.Time,
		Location:      d.Location,
		Image:         d.Image,
		Status:        d.Status,
	}
}

// EventPatch is a partial update for an event.
type EventPatch struct {
	TitleAr       *string             `json:"titleAr,omitempty"`
	TitleEn       *string             `json:"titleEn,omitempty"`
	DescriptionAr *string             `json:"descriptionAr,omitempty"`
	DescriptionEn *string             `json:"descriptionEn,omitempty"`
	Date          *string             `json:"date,omitempty"`
	Time          *string             `json:"time,omitempty"`
	Location      *string             `json:"location,omitempty"`
	Image         *string             `json:"image,omitempty"`
	Status        *models.EventStatus `json:"status,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p EventPatch) Apply(e *models.Event) {
	if p.TitleAr != nil {
		e.TitleAr = *p.TitleAr
	}
	if p.TitleEn != nil {
		e.TitleEn = *p.TitleEn
	}
	if p.DescriptionAr != nil {
		e.DescriptionAr = *p.DescriptionAr
	}
	if p.DescriptionEn != nil {
		e.DescriptionEn = *p.DescriptionEn
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}

// ActivityDraft is the admin payload for creating a showcase activity.
type ActivityDraft struct {
	TitleAr       string                  `json:"titleAr" validate:"required,max=255"`
	TitleEn       string                  `json:"titleEn" validate:"required,max=255"`
	DescriptionAr string                  `json:"descriptionAr" validate:"required"`
	DescriptionEn string                  `json:"descriptionEn" validate:"required"`
	Category      string                  `json:"category" validate:"required,oneof=Academic Sports Cultural Leadership Arts"`
	Image         string                  `json:"image" validate:"required,max=512"`
	Status        models.VisibilityStatus `json:"status" validate:"required,oneof=active inactive"`
}

// Record converts the draft into an activity without generated fields.
func (d ActivityDraft) Record() models.Activity {
	return models.Activity{
		TitleAr:       d.TitleAr,
		TitleEn:       d.TitleEn,
		DescriptionAr: d.DescriptionAr,
		DescriptionEn: d.DescriptionEn,
		Category:      d.Category,
		Image:         d.Image,
		Status:        d.Status,
	}
}

// ActivityPatch is a partial update for a showcase activity.
type ActivityPatch struct {
	TitleAr       *string                  `json:"titleAr,omitempty"`
	TitleEn       *string                  `json:"titleEn,omitempty"`
	DescriptionAr *string                  `json:"descriptionAr,omitempty"`
	DescriptionEn *string                  `json:"descriptionEn,omitempty"`
	Category      *string                  `json:"category,omitempty"`
	Image         *string                  `json:"image,omitempty"`
	Status        *models.VisibilityStatus `json:"status,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p ActivityPatch) Apply(a *models.Activity) {
	if p.TitleAr != nil {
		a.TitleAr = *p.TitleAr
	}
	if p.TitleEn != nil {
		a.TitleEn = *p.TitleEn
	}
	if p.DescriptionAr != nil {
		a.DescriptionAr = *p.DescriptionAr
	}
	if p.DescriptionEn != nil {
		a.DescriptionEn = *p.DescriptionEn
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

// GalleryDraft is the admin payload for adding a gallery image.
type GalleryDraft struct {
	TitleAr  string                  `json:"titleAr" validate:"required,max=255"`
	TitleEn  string                  `json:"titleEn" validate:"required,max=255"`
	Image    string                  `json:"image" validate:"required,max=512"`
	Category string                  `json:"category" validate:"required,oneof=classrooms sports events activities facilities students"`
	Status   models.VisibilityStatus `json:"status" validate:"required,oneof=active inactive"`
}

// Record converts the draft into a gallery image without generated fields.
func (d GalleryDraft) Record() models.GalleryImage {
	return models.GalleryImage{
		TitleAr:  d.TitleAr,
		TitleEn:  d.TitleEn,
		Image:    d.Image,
		Category: d.Category,
		Status:   d.Status,
	}
}

// GalleryPatch is a partial update for a gallery image.
type GalleryPatch struct {
	TitleAr  *string                  `json:"titleAr,omitempty"`
	TitleEn  *string                  `json:"titleEn,omitempty"`
	Image    *string                  `json:"image,omitempty"`
	Category *string                  `json:"category,omitempty"`
	Status   *models.VisibilityStatus `json:"status,omitempty"`
}

// Apply merges non-nil fields over the existing record.
func (p GalleryPatch) Apply(g *models.GalleryImage) {
	if p.TitleAr != nil {
		g.TitleAr = *p.TitleAr
	}
	if p.TitleEn != nil {
		g.TitleEn = *p.TitleEn
	}
	if p.Image != nil {
		g.Image = *p.Image
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
}
