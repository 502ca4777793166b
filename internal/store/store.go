// Package store implements the single point of truth for the school
// site's persistent state: one JSON document under one storage key,
// exposing typed collection operations to the public site and the
// admin back office. Every operation re-reads the full document,
// mutates its collection and writes the whole document back, so the
// last writer wins across store instances sharing a key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/almukhtar-edu/sitestore/internal/models"
	"github.com/almukhtar-edu/sitestore/internal/notify"
	"github.com/almukhtar-edu/sitestore/internal/observability"
	"github.com/almukhtar-edu/sitestore/internal/seed"
	"github.com/almukhtar-edu/sitestore/internal/storage"
)

var (
	// ErrNotFound indicates no record carries the requested id.
	ErrNotFound = errors.New("store: record not found")
	// ErrCorruptDocument indicates the persisted blob could not be
	// parsed or fails shape validation.
	ErrCorruptDocument = errors.New("store: persisted document is corrupt")
	// ErrInvalidStatus indicates a patch carries a status outside the
	// entity's enum.
	ErrInvalidStatus = errors.New("store: invalid status value")
	// ErrEmptyReply indicates a reply action carried no text.
	ErrEmptyReply = errors.New("store: reply text must not be empty")
	// ErrEmptyMessage indicates a message body was empty once markup
	// was stripped.
	ErrEmptyMessage = errors.New("store: message body empty after sanitization")
	// ErrInvalidSetting indicates a settings value outside the scalar
	// types the document schema accepts.
	ErrInvalidSetting = errors.New("store: setting values must be strings, numbers or booleans")
)

// RecoveryPolicy decides what a load does with a corrupt document.
type RecoveryPolicy int

const (
	// RecoverFail surfaces ErrCorruptDocument and leaves storage untouched.
	RecoverFail RecoveryPolicy = iota
	// RecoverReseed overwrites the corrupt blob with the fixture document.
	RecoverReseed
)

const (
	// DefaultKey is the storage key the site historically used.
	DefaultKey = "mukhtar_school_site_db"
	// DefaultAdminRecipient receives new-message notifications.
	DefaultAdminRecipient = "admin@mukhtarschool.edu.sy"
)

// Options tune a Store. The zero value is usable.
type Options struct {
	// Key is the storage key holding the document. Defaults to DefaultKey.
	Key string
	// IDs generates record ids. Defaults to TimestampIDs.
	IDs IDSource
	// Clock supplies timestamps. Defaults to time.Now in UTC.
	Clock func() time.Time
	// Logger is used for seed and recovery events.
	Logger zerolog.Logger
	// Publisher, when set, receives every derived notification.
	Publisher notify.Publisher
	// Recovery is the corrupt-document policy. Defaults to RecoverFail.
	Recovery RecoveryPolicy
	// AdminRecipient addresses new-message notifications. Defaults to
	// DefaultAdminRecipient.
	AdminRecipient string
	// Validate overrides the draft validator, mainly for tests.
	Validate *validator.Validate
}

// Store owns the persisted document and all reads and writes to it.
type Store struct {
	mu        sync.Mutex
	backend   storage.Backend
	key       string
	ids       IDSource
	now       func() time.Time
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	tracer    trace.Tracer
	publisher notify.Publisher
	recovery  RecoveryPolicy
	admin     string
}

// Open constructs a store over the backend and runs the lazy-seed
// protocol: if the key is absent the fixture document is written once.
func Open(ctx context.Context, backend storage.Backend, opts Options) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("store: backend must not be nil")
	}
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.IDs == nil {
		opts.IDs = TimestampIDs{}
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	if opts.AdminRecipient == "" {
		opts.AdminRecipient = DefaultAdminRecipient
	}
	if opts.Validate == nil {
		opts.Validate = validator.New(validator.WithRequiredStructEnabled())
	}

	s := &Store{
		backend:   backend,
		key:       opts.Key,
		ids:       opts.IDs,
		now:       opts.Clock,
		validate:  opts.Validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    opts.Logger.With().Str("component", "document_store").Logger(),
		tracer:    otel.Tracer("github.com/almukhtar-edu/sitestore/internal/store"),
		publisher: opts.Publisher,
		recovery:  opts.Recovery,
		admin:     opts.AdminRecipient,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads and parses the full document, seeding on an absent key and
// applying the recovery policy on a corrupt one. Callers hold s.mu.
func (s *Store) load(ctx context.Context) (*models.Document, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return s.reseed(ctx)
		}
		trace.SpanFromContext(ctx).RecordError(err)
		return nil, fmt.Errorf("load document: %w", err)
	}

	doc, err := decodeDocument([]byte(raw))
	if err != nil {
		observability.CorruptDocuments().Inc()
		trace.SpanFromContext(ctx).RecordError(err)
		if s.recovery == RecoverReseed {
			s.logger.Warn().Err(err).Msg("corrupt document, reseeding with fixtures")
			return s.reseed(ctx)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return doc, nil
}

// decodeDocument parses and shape-checks a persisted blob.
func decodeDocument(raw []byte) (*models.Document, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.EnsureCollections()
	return &doc, nil
}

func (s *Store) reseed(ctx context.Context) (*models.Document, error) {
	doc := seed.Document()
	if err := s.save(ctx, &doc); err != nil {
		return nil, err
	}
	observability.DocumentReseeds().Inc()
	s.logger.Info().Str("key", s.key).Msg("seeded fixture document")
	return &doc, nil
}

// save serializes the full document and overwrites the storage key.
// Callers hold s.mu.
func (s *Store) save(ctx context.Context, doc *models.Document) error {
	doc.EnsureCollections()
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, string(raw)); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		return fmt.Errorf("persist document: %w", err)
	}
	observability.DocumentSize().Set(float64(len(raw)))
	return nil
}

// nextID issues an id unused anywhere in the document.
func (s *Store) nextID(doc *models.Document) string {
	return s.ids.Next(s.now(), doc.HasID)
}

func (s *Store) count(collection, op, outcome string) {
	observability.StoreOperations().WithLabelValues(collection, op, outcome).Inc()
}

// appendNotification stamps and appends a derived notification inside
// the same document mutation, keeping the operation a single write.
func (s *Store) appendNotification(doc *models.Document, record models.Notification) models.Notification {
	record.ID = s.nextID(doc)
	record.CreatedAt = s.now()
	doc.Notifications = append(doc.Notifications, record)
	observability.NotificationsDerived().WithLabelValues(string(record.Type)).Inc()
	return record
}

// deleteRecord runs a removal mutation under the store lock and
// persists only when a record was actually removed.
func (s *Store) deleteRecord(ctx context.Context, collection string, remove func(doc *models.Document) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.count(collection, "delete", "error")
		return err
	}
	if !remove(doc) {
		s.count(collection, "delete", "not_found")
		return ErrNotFound
	}
	if err := s.save(ctx, doc); err != nil {
		s.count(collection, "delete", "error")
		return err
	}
	s.count(collection, "delete", "ok")
	return nil
}

// announce hands a derived notification to the publisher after the
// owning write succeeded.
func (s *Store) announce(ctx context.Context, record *models.Notification) {
	if record == nil || s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, *record)
}
