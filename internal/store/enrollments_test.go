package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/almukhtar-edu/sitestore/internal/dto"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

func TestAddEnrollmentStartsPending(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.EnrollmentPending, created.Status)
	require.False(t, created.CreatedAt.IsZero())
	require.Nil(t, created.UpdatedAt)

	stored, err := st.Enrollment(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, stored)

	// Submitting never derives a notification.
	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestAddEnrollmentRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	draft := validEnrollment()
	draft.AgreeToTerms = false
	_, err := st.AddEnrollment(ctx, draft)
	require.Error(t, err)

	draft = validEnrollment()
	draft.Email = "not-an-email"
	_, err = st.AddEnrollment(ctx, draft)
	require.Error(t, err)

	enrollments, err := st.Enrollments(ctx)
	require.NoError(t, err)
	require.Empty(t, enrollments, "rejected drafts must not be persisted")
}

func TestUpdateEnrollmentStatusDerivesNotification(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)

	status := models.EnrollmentApproved
	response := "مرحباً بكم"
	updated, err := st.UpdateEnrollment(ctx, created.ID, dto.EnrollmentPatch{
		Status:          &status,
		ResponseMessage: &response,
	})
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentApproved, updated.Status)
	require.Equal(t, response, updated.ResponseMessage)
	require.NotNil(t, updated.UpdatedAt)
	require.Equal(t, created.StudentName, updated.StudentName, "unpatched fields survive the merge")

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	n := notifications[0]
	require.Equal(t, models.NotificationEnrollmentStatus, n.Type)
	require.Equal(t, created.Email, n.Recipient)
	require.Contains(t, n.Message, "قبول")
	require.False(t, n.IsRead)
	require.NotEqual(t, created.ID, n.ID)
}

func TestUpdateEnrollmentSameStatusDerivesNothing(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)

	status := models.EnrollmentPending
	_, err = st.UpdateEnrollment(ctx, created.ID, dto.EnrollmentPatch{Status: &status})
	require.NoError(t, err)

	grade := "Grade 4"
	_, err = st.UpdateEnrollment(ctx, created.ID, dto.EnrollmentPatch{Grade: &grade})
	require.NoError(t, err)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestUpdateEnrollmentRejectionNotification(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)

	status := models.EnrollmentRejected
	_, err = st.UpdateEnrollment(ctx, created.ID, dto.EnrollmentPatch{Status: &status})
	require.NoError(t, err)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Contains(t, notifications[0].Message, "رفض")
}

func TestUpdateEnrollmentInvalidStatus(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	created, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)

	bogus := models.EnrollmentStatus("archived")
	_, err = st.UpdateEnrollment(ctx, created.ID, dto.EnrollmentPatch{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidStatus)

	stored, err := st.Enrollment(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentPending, stored.Status)
}

func TestUpdateEnrollmentUnknownID(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	status := models.EnrollmentApproved
	_, err := st.UpdateEnrollment(ctx, "no-such-id", dto.EnrollmentPatch{Status: &status})
	require.ErrorIs(t, err, ErrNotFound)

	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestDeleteEnrollment(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t, Options{})

	first, err := st.AddEnrollment(ctx, validEnrollment())
	require.NoError(t, err)
	second := validEnrollment()
	second.StudentName = "Omar Haddad"
	kept, err := st.AddEnrollment(ctx, second)
	require.NoError(t, err)

	require.NoError(t, st.DeleteEnrollment(ctx, first.ID))
	require.ErrorIs(t, st.DeleteEnrollment(ctx, first.ID), ErrNotFound)

	enrollments, err := st.Enrollments(ctx)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.Equal(t, kept.ID, enrollments[0].ID)
}
