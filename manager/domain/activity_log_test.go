package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNewActivityLogAuthenticatedActor(t *testing.T) {
	actorID := bson.NewObjectID()
	rc := RequestContext{
		Actor:     &Actor{ID: actorID, FullName: "Bob", Role: RoleAdmin},
		IP:        "10.0.0.1",
		Method:    "PUT",
		Path:      "/api/v1/events/e1/cancel?notify=true",
		UserAgent: "curl/8.0",
	}

	entry, err := NewActivityLog(rc, ActivityDetails{
		Action:     ActionCancelEvent,
		TargetType: TargetTypeEvent,
		TargetID:   "E1",
	})
	require.NoError(t, err)

	require.NotNil(t, entry.ActorID)
	assert.Equal(t, actorID, *entry.ActorID)
	require.NotNil(t, entry.ActorName)
	assert.Equal(t, "Bob", *entry.ActorName)
	assert.Equal(t, ActorTypeAdmin, entry.ActorType)
	assert.Equal(t, "event", *entry.TargetType)
	assert.Equal(t, "E1", *entry.TargetID)
	assert.Equal(t, "10.0.0.1", *entry.IP)
	assert.Equal(t, "PUT", *entry.Method)
	assert.Equal(t, "/api/v1/events/e1/cancel?notify=true", *entry.Path)
	assert.Equal(t, "curl/8.0", *entry.UserAgent)
	assert.Nil(t, entry.StatusCode)
	assert.Zero(t, entry.CreatedTime, "store assigns timestamps")
}

func TestNewActivityLogWithoutActorIsSystem(t *testing.T) {
	entry, err := NewActivityLog(RequestContext{}, ActivityDetails{
		Action:   ActionLoginFailed,
		Metadata: map[string]any{"email": "x@y.com", "userType": "admin"},
	})
	require.NoError(t, err)

	assert.Nil(t, entry.ActorID)
	assert.Nil(t, entry.ActorName)
	assert.Equal(t, ActorTypeSystem, entry.ActorType)
	assert.Nil(t, entry.TargetType)
	assert.Nil(t, entry.TargetID)
	assert.Nil(t, entry.IP)
	assert.Nil(t, entry.Path)
	assert.Equal(t, "x@y.com", entry.Metadata["email"])
}

func TestNewActivityLogKeepsStatusCode(t *testing.T) {
	code := 409
	entry, err := NewActivityLog(RequestContext{}, ActivityDetails{Action: "x", StatusCode: &code})
	require.NoError(t, err)
	require.NotNil(t, entry.StatusCode)
	assert.Equal(t, 409, *entry.StatusCode)
}

func TestNewActivityLogRejectsEmptyAction(t *testing.T) {
	_, err := NewActivityLog(RequestContext{}, ActivityDetails{Action: "  "})
	assert.ErrorIs(t, err, ErrEmptyAction)
}

func TestNewActivityLogRejectsUnknownRole(t *testing.T) {
	rc := RequestContext{Actor: &Actor{ID: bson.NewObjectID(), Role: Role("student")}}
	_, err := NewActivityLog(rc, ActivityDetails{Action: "x"})
	assert.ErrorIs(t, err, ErrInvalidActorType)
}

func TestActorTypeValid(t *testing.T) {
	assert.True(t, ActorTypeAdmin.Valid())
	assert.True(t, ActorTypeSuperadmin.Valid())
	assert.True(t, ActorTypeSystem.Valid())
	assert.False(t, ActorType("root").Valid())
	assert.False(t, ActorType("").Valid())
}
