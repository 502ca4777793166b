package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

// capturePublisher records every notification handed to it.
type capturePublisher struct {
	mu   sync.Mutex
	seen []models.Notification
}

func (p *capturePublisher) Publish(_ context.Context, n models.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, n)
}

func (p *capturePublisher) all() []models.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Notification(nil), p.seen...)
}

func TestAddMessageDerivesAdminNotification(t *testing.T) {
	ctx := context.Background()
	publisher := &capturePublisher{}
	st, _ := newTestStore(t, Options{Publisher: publisher})

	created, err := st.AddMessage(ctx, validMessage())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.MessagePending, created.Status)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	n := notifications[0]
	require.Equal(t, models.NotificationNewMessage, n.Type)
	require.Equal(t, DefaultAdminRecipient, n.Recipient)
	require.Contains(t, n.Message, created.Name)

	published := publisher.all()
	require.Len(t, published, 1)
	require.Equal(t, n.ID, published[0].ID)
}

func TestAddMessageStripsMarkup(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	draft := validMessage()
	draft.Message = "  <script>alert('x')</script><b>Please</b> call me back  "
	created, err := st.AddMessage(ctx, draft)
	require.NoError(t, err)
	require.Equal(t, "Please call me back", created.Message)
}

func TestAddMessageRejectsBodyThatSanitizesToNothing(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	draft := validMessage()
	draft.Message = "<script>alert('x')</script><img src=x>"
	_, err := st.AddMessage(ctx, draft)
	require.ErrorIs(t, err, ErrEmptyMessage)

	messages, err := st.Messages(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Empty(t, notifications, "no notification for a rejected message")
}

func TestAddMessageRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	draft := validMessage()
	draft.Subject = ""
	_, err := st.AddMessage(ctx, draft)
	require.Error(t, err)

	messages, err := st.Messages(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestReplyToMessage(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddMessage(ctx, validMessage())
	require.NoError(t, err)

	replied, err := st.ReplyToMessage(ctx, created.ID, "  Fees are listed on the site.  ")
	require.NoError(t, err)
	require.Equal(t, models.MessageReplied, replied.Status)
	require.Equal(t, "Fees are listed on the site.", replied.Response)
	require.NotNil(t, replied.UpdatedAt)

	_, err = st.ReplyToMessage(ctx, created.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyReply)

	_, err = st.ReplyToMessage(ctx, "no-such-id", "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMessageStatus(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddMessage(ctx, validMessage())
	require.NoError(t, err)

	status := models.MessageRead
	updated, err := st.UpdateMessage(ctx, created.ID, dto.MessagePatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, models.MessageRead, updated.Status)
	require.Equal(t, created.Message, updated.Message)

	bogus := models.MessageStatus("spam")
	_, err = st.UpdateMessage(ctx, created.ID, dto.MessagePatch{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	first, err := st.AddMessage(ctx, validMessage())
	require.NoError(t, err)
	second := validMessage()
	second.Name = "Nour"
	_, err = st.AddMessage(ctx, second)
	require.NoError(t, err)

	require.NoError(t, st.DeleteMessage(ctx, first.ID))

	messages, err := st.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	require.ErrorIs(t, st.DeleteMessage(ctx, first.ID), ErrNotFound)
}
