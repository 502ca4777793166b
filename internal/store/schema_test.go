package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/almukhtar-edu/sitestore/internal/seed"
)

func TestValidateShapeAcceptsFixtureDocument(t *testing.T) {
	doc := seed.Document()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, validateShape(raw))
}

func TestValidateShapeRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"array root", "[]"},
		{"missing collection", `{"enrollments":[],"news":[],"events":[],"activities":[],"galleryImages":[],"messages":[],"notifications":[],"visits":{"total":0,"today":0,"yesterday":0}}`},
		{"collection not array", `{"enrollments":{},"news":[],"events":[],"activities":[],"galleryImages":[],"messages":[],"notifications":[],"visits":{"total":0,"today":0,"yesterday":0},"settings":{}}`},
		{"record without id", `{"enrollments":[{"createdAt":"2024-01-01T00:00:00Z"}],"news":[],"events":[],"activities":[],"galleryImages":[],"messages":[],"notifications":[],"visits":{"total":0,"today":0,"yesterday":0},"settings":{}}`},
		{"negative visits", `{"enrollments":[],"news":[],"events":[],"activities":[],"galleryImages":[],"messages":[],"notifications":[],"visits":{"total":-1,"today":0,"yesterday":0},"settings":{}}`},
		{"nested settings", `{"enrollments":[],"news":[],"events":[],"activities":[],"galleryImages":[],"messages":[],"notifications":[],"visits":{"total":0,"today":0,"yesterday":0},"settings":{"theme":{"color":"blue"}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, validateShape([]byte(tc.raw)))
		})
	}
}
