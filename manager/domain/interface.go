package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type QueryAccountOptions struct {
	IDs    []bson.ObjectID
	Emails []string
	Roles  []Role
	Result []*Account
}

type QueryEventOptions struct {
	IDs      []bson.ObjectID
	Statuses []EventStatus
	Skip     int64
	Limit    int64
	Result   []*Event
}

// QueryActivityLogOptions filters are exact matches combined with AND.
// Empty filters are ignored. Total is the match count before Skip and Limit.
// A positive Page replaces Skip with (Page-1)*Limit once Limit is resolved.
type QueryActivityLogOptions struct {
	Action     string
	ActorType  ActorType
	ActorID    *bson.ObjectID
	TargetType string
	Skip       int64
	Limit      int64
	Page       int64
	Result     []*ActivityLog
	Total      int64
}

type Repository interface {
	CreateAccount(ctx context.Context, account *Account) error
	UpdateAccount(ctx context.Context, account *Account) error
	QueryAccounts(ctx context.Context, opt *QueryAccountOptions) error

	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	QueryEvents(ctx context.Context, opt *QueryEventOptions) error

	CreateActivityLog(ctx context.Context, entry *ActivityLog) error
	QueryActivityLogs(ctx context.Context, opt *QueryActivityLogOptions) error
}

type Service interface {
	Login(ctx context.Context, rc RequestContext, email, password string, userType Role) (token string, err error)
	VerifyJWTToken(ctx context.Context, tokenString string) (*Actor, error)
	CreateSuperadminIfNotExists(ctx context.Context, email, password, fullName string) error

	CreateAdmin(ctx context.Context, rc RequestContext, account *Account) error
	UpdateAdmin(ctx context.Context, rc RequestContext, id string, opt UpdateAccountOptions) error
	QueryAccounts(ctx context.Context, opt *QueryAccountOptions) error

	CreateEvent(ctx context.Context, rc RequestContext, event *Event) error
	UpdateEvent(ctx context.Context, rc RequestContext, id string, opt UpdateEventOptions) error
	CancelEvent(ctx context.Context, rc RequestContext, id string, reason string) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, opt *QueryEventOptions) error

	LogActivity(ctx context.Context, rc RequestContext, details ActivityDetails)
	ListActivityLogs(ctx context.Context, caller *Actor, opt *QueryActivityLogOptions) error
}
