package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureCollectionsSerializesEmptyArrays(t *testing.T) {
	var doc Document
	doc.EnsureCollections()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"enrollments", "news", "events", "activities",
		"galleryImages", "messages", "notifications",
	} {
		require.JSONEq(t, "[]", string(decoded[key]), "collection %q", key)
	}
	require.JSONEq(t, "{}", string(decoded["settings"]))
}

func TestHasIDSpansAllCollections(t *testing.T) {
	doc := Document{
		Enrollments:   []Enrollment{{ID: "e1"}},
		News:          []NewsItem{{ID: "n1"}},
		Events:        []Event{{ID: "ev1"}},
		Activities:    []Activity{{ID: "a1"}},
		GalleryImages: []GalleryImage{{ID: "g1"}},
		Messages:      []Message{{ID: "m1"}},
		Notifications: []Notification{{ID: "no1"}},
	}

	for _, id := range []string{"e1", "n1", "ev1", "a1", "g1", "m1", "no1"} {
		require.True(t, doc.HasID(id), "id %q", id)
	}
	require.False(t, doc.HasID("missing"))
}

func TestStatusEnums(t *testing.T) {
	require.True(t, EnrollmentApproved.Valid())
	require.False(t, EnrollmentStatus("archived").Valid())

	require.True(t, EventPast.Valid())
	require.False(t, EventStatus("postponed").Valid())

	require.True(t, MessageReplied.Valid())
	require.False(t, MessageStatus("spam").Valid())

	require.True(t, StatusDraft.Valid())
	require.False(t, PublishStatus("archived").Valid())

	require.True(t, VisibilityInactive.Valid())
	require.False(t, VisibilityStatus("hidden").Valid())
}
