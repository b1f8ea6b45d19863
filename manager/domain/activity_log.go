package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ActorType string

const (
	ActorTypeAdmin      ActorType = "admin"
	ActorTypeSuperadmin ActorType = "superadmin"
	ActorTypeSystem     ActorType = "system"
)

func (t ActorType) Valid() bool {
	switch t {
	case ActorTypeAdmin, ActorTypeSuperadmin, ActorTypeSystem:
		return true
	}
	return false
}

// ActivityLog is a single audit record. It is written once and never updated.
type ActivityLog struct {
	ID          bson.ObjectID  `bson:"_id,omitempty"`
	Action      string         `bson:"action"`
	ActorID     *bson.ObjectID `bson:"actorId"`
	ActorName   *string        `bson:"actorName"`
	ActorType   ActorType      `bson:"actorType"`
	TargetType  *string        `bson:"targetType"`
	TargetID    *string        `bson:"targetId"`
	Metadata    map[string]any `bson:"metadata,omitempty"`
	IP          *string        `bson:"ip"`
	Method      *string        `bson:"method"`
	Path        *string        `bson:"path"`
	UserAgent   *string        `bson:"userAgent"`
	StatusCode  *int           `bson:"statusCode,omitempty"`
	CreatedTime int64          `bson:"createdTime"`
	UpdatedTime int64          `bson:"updatedTime"`
}

// ActivityDetails describes what happened. Only Action is required.
type ActivityDetails struct {
	Action     string
	TargetType string
	TargetID   string
	Metadata   map[string]any
	StatusCode *int
}

// NewActivityLog resolves the actor from rc and combines it with details and
// the request provenance. Timestamps are left for the store to assign.
func NewActivityLog(rc RequestContext, details ActivityDetails) (*ActivityLog, error) {
	action := strings.TrimSpace(details.Action)
	if action == "" {
		return nil, ErrEmptyAction
	}

	entry := &ActivityLog{
		Action:     action,
		ActorType:  ActorTypeSystem,
		TargetType: nullableString(details.TargetType),
		TargetID:   nullableString(details.TargetID),
		Metadata:   details.Metadata,
		IP:         nullableString(rc.IP),
		Method:     nullableString(rc.Method),
		Path:       nullableString(rc.Path),
		UserAgent:  nullableString(rc.UserAgent),
		StatusCode: details.StatusCode,
	}

	if rc.Actor != nil {
		actorType := ActorType(rc.Actor.Role)
		if !actorType.Valid() || actorType == ActorTypeSystem {
			return nil, fmt.Errorf("%w: %q", ErrInvalidActorType, rc.Actor.Role)
		}
		id := rc.Actor.ID
		entry.ActorID = &id
		entry.ActorName = nullableString(rc.Actor.FullName)
		entry.ActorType = actorType
	}
	return entry, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
