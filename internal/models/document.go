package models

// VisitStats are the site visit counters persisted with the document.
// Rollover between days is an explicit store operation because the
// persisted shape carries no date.
type VisitStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Yesterday int `json:"yesterday"`
}

// Settings is the flat configuration map describing school identity,
// contact details, branding and feature toggles. Values are scalars
// (strings, numbers, booleans).
type Settings map[string]any

// Document is the root record serialized as one JSON blob under a
// single storage key. Every collection is always present, possibly as
// an empty array.
type Document struct {
	Enrollments   []Enrollment   `json:"enrollments"`
	News          []NewsItem     `json:"news"`
	Events        []Event        `json:"events"`
	Activities    []Activity     `json:"activities"`
	GalleryImages []GalleryImage `json:"galleryImages"`
	Messages      []Message      `json:"messages"`
	Notifications []Notification `json:"notifications"`
	Visits        VisitStats     `json:"visits"`
	Settings      Settings       `json:"settings"`
}

// EnsureCollections replaces nil slices and maps with empty ones so the
// document always serializes with every collection present.
func (d *Document) EnsureCollections() {
	if d.Enrollments == nil {
		d.Enrollments = []Enrollment{}
	}
	if d.News == nil {
		d.News = []NewsItem{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	if d.GalleryImages == nil {
		d.GalleryImages = []GalleryImage{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
	if d.Notifications == nil {
		d.Notifications = []Notification{}
	}
	if d.Settings == nil {
		d.Settings = Settings{}
	}
}

// HasID reports whether any record in any collection carries the id.
// The id generator uses this to avoid collisions under rapid creates.
func (d *Document) HasID(id string) bool {
	for _, e := range d.Enrollments {
		if e.ID == id {
			return true
		}
	}
	for _, n := range d.News {
		if n.ID == id {
			return true
		}
	}
	for _, e := range d.Events {
		if e.ID == id {
			return true
		}
	}
	for _, a := range d.Activities {
		if a.ID == id {
			return true
		}
	}
	for _, g := range d.GalleryImages {
		if g.ID == id {
			return true
		}
	}
	for _, m := range d.Messages {
		if m.ID == id {
			return true
		}
	}
	for _, n := range d.Notifications {
		if n.ID == id {
			return true
		}
	}
	return false
}
