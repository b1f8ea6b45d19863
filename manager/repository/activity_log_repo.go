package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/registra/api/manager/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateActivityLog inserts entry. The insert time always wins over any
// timestamp the caller may have set.
func (r *repo) CreateActivityLog(ctx context.Context, entry *domain.ActivityLog) error {
	if entry == nil {
		return errors.New("nil activity log")
	}
	if entry.ID.IsZero() {
		entry.ID = bson.NewObjectID()
	}
	now := time.Now().UnixMilli()
	entry.CreatedTime = now
	entry.UpdatedTime = now

	_, err := r.db.Collection(activityLogCollection).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("create activity log, err: %w", err)
	}
	return nil
}

func (r *repo) QueryActivityLogs(ctx context.Context, opt *domain.QueryActivityLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := activityLogFilter(opt)
	coll := r.db.Collection(activityLogCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("count activity logs, err: %w", err)
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: defaultTimestampField, Value: -1},
		{Key: "_id", Value: -1},
	})
	if opt.Skip > 0 {
		findOpts.SetSkip(opt.Skip)
	}
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find activity logs, err: %w", err)
	}

	result := []*domain.ActivityLog{}
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode activity logs, err: %w", err)
	}
	opt.Result = result
	opt.Total = total
	return nil
}

func activityLogFilter(opt *domain.QueryActivityLogOptions) bson.M {
	filter := bson.M{}
	if opt.Action != "" {
		filter["action"] = opt.Action
	}
	if opt.ActorType != "" {
		filter["actorType"] = opt.ActorType
	}
	if opt.ActorID != nil {
		filter["actorId"] = *opt.ActorID
	}
	if opt.TargetType != "" {
		filter["targetType"] = opt.TargetType
	}
	return filter
}
