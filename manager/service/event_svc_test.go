package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func adminContext() domain.RequestContext {
	return domain.RequestContext{
		Actor:     &domain.Actor{ID: bson.NewObjectID(), FullName: "Alice", Role: domain.RoleAdmin},
		IP:        "203.0.113.7",
		Method:    http.MethodPut,
		UserAgent: "Mozilla/5.0",
	}
}

func expectEvents(repo *domain.MockRepository, events ...*domain.Event) *domain.MockRepository_QueryEvents_Call {
	return repo.EXPECT().
		QueryEvents(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryEventOptions) {
			opt.Result = events
		}).
		Return(nil)
}

func scheduledEvent() *domain.Event {
	return &domain.Event{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		Title:      "Gala",
		StartTime:  1_700_000_000_000,
		Status:     domain.EventStatusScheduled,
	}
}

func TestCancelEventLogsActivity(t *testing.T) {
	rc := adminContext()
	event := scheduledEvent()

	repo := domain.NewMockRepository(t)
	expectEvents(repo, event).Once()
	repo.EXPECT().UpdateEvent(mock.Anything, mock.Anything).Return(nil).Once()

	var got *domain.ActivityLog
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *domain.ActivityLog) { got = entry }).
		Return(nil).
		Once()

	svc := newTestService(t, repo)
	require.NoError(t, svc.CancelEvent(context.Background(), rc, event.ID.Hex(), " weather "))

	assert.Equal(t, domain.EventStatusCancelled, event.Status)
	assert.Equal(t, "weather", event.CancelReason)
	require.NotNil(t, got)
	assert.Equal(t, domain.ActionCancelEvent, got.Action)
	assert.Equal(t, rc.Actor.ID, *got.ActorID)
	assert.Equal(t, "Alice", *got.ActorName)
	assert.Equal(t, domain.ActorTypeAdmin, got.ActorType)
	assert.Equal(t, domain.TargetTypeEvent, *got.TargetType)
	assert.Equal(t, event.ID.Hex(), *got.TargetID)
	assert.Equal(t, "Mozilla/5.0", *got.UserAgent)
}

func TestCancelEventSucceedsWhenAuditStoreIsDown(t *testing.T) {
	event := scheduledEvent()
	repo := domain.NewMockRepository(t)
	expectEvents(repo, event).Once()
	repo.EXPECT().UpdateEvent(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.Anything).
		Return(errors.New("no reachable servers")).
		Once()

	svc := newTestService(t, repo)
	err := svc.CancelEvent(context.Background(), adminContext(), event.ID.Hex(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, event.Status)
}

func TestCancelEventAlreadyCancelled(t *testing.T) {
	event := scheduledEvent()
	event.Status = domain.EventStatusCancelled
	repo := domain.NewMockRepository(t)
	expectEvents(repo, event).Once()

	svc := newTestService(t, repo)
	err := svc.CancelEvent(context.Background(), adminContext(), event.ID.Hex(), "")
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
}

func TestCancelEventUpdateFailureIsNotLogged(t *testing.T) {
	event := scheduledEvent()
	repo := domain.NewMockRepository(t)
	expectEvents(repo, event).Once()
	repo.EXPECT().UpdateEvent(mock.Anything, mock.Anything).Return(errors.New("write conflict")).Once()

	svc := newTestService(t, repo)
	err := svc.CancelEvent(context.Background(), adminContext(), event.ID.Hex(), "")
	assert.Error(t, err)
}

func TestCreateEvent(t *testing.T) {
	rc := adminContext()
	repo := domain.NewMockRepository(t)
	repo.EXPECT().
		CreateEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *domain.Event) {
			event.ID = bson.NewObjectID()
		}).
		Return(nil).
		Once()
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.MatchedBy(func(entry *domain.ActivityLog) bool {
			return entry.Action == domain.ActionCreateEvent && *entry.TargetType == domain.TargetTypeEvent
		})).
		Return(nil).
		Once()

	svc := newTestService(t, repo)
	event := &domain.Event{Title: " Launch ", StartTime: 10, EndTime: 20, Status: domain.EventStatusCancelled}
	require.NoError(t, svc.CreateEvent(context.Background(), rc, event))
	assert.Equal(t, "Launch", event.Title)
	assert.Equal(t, domain.EventStatusScheduled, event.Status)
	assert.Equal(t, rc.Actor.ID, event.CreatorID)
}

func TestCreateEventValidation(t *testing.T) {
	svc := newTestService(t, domain.NewMockRepository(t))
	for _, event := range []*domain.Event{
		{Title: "", StartTime: 10},
		{Title: "x"},
		{Title: "x", StartTime: 20, EndTime: 10},
		{Title: "x", StartTime: 20, Capacity: -1},
	} {
		err := svc.CreateEvent(context.Background(), adminContext(), event)
		httpErr, ok := errs.IsHTTPStatusError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	}

	err := svc.CreateEvent(context.Background(), domain.RequestContext{}, &domain.Event{Title: "x", StartTime: 1})
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestUpdateEventRecordsChangedFields(t *testing.T) {
	event := scheduledEvent()
	repo := domain.NewMockRepository(t)
	expectEvents(repo, event).Once()
	repo.EXPECT().UpdateEvent(mock.Anything, mock.Anything).Return(nil).Once()

	var got *domain.ActivityLog
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *domain.ActivityLog) { got = entry }).
		Return(nil).
		Once()

	svc := newTestService(t, repo)
	err := svc.UpdateEvent(context.Background(), adminContext(), event.ID.Hex(), domain.UpdateEventOptions{
		Venue:    util.Ptr("Hall B"),
		Capacity: util.Ptr(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hall B", event.Venue)
	require.NotNil(t, got)
	assert.Equal(t, domain.ActionUpdateEvent, got.Action)
	assert.Equal(t, []string{"venue", "capacity"}, got.Metadata["fields"])
}

func TestGetEvent(t *testing.T) {
	repo := domain.NewMockRepository(t)
	expectEvents(repo).Once()
	svc := newTestService(t, repo)

	_, err := svc.GetEvent(context.Background(), bson.NewObjectID().Hex())
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetEvent(context.Background(), "bad")
	httpErr, ok = errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}
