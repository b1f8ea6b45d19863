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

func (r *repo) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return errors.New("nil event")
	}

	now := time.Now().UnixMilli()
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}
	if event.CreatedTime == 0 {
		event.CreatedTime = now
	}
	event.UpdatedTime = now

	_, err := r.db.Collection(eventCollection).InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("create event, err: %w", err)
	}
	return nil
}

func (r *repo) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return errors.New("nil event")
	}
	if event.ID.IsZero() {
		return errors.New("event id is required")
	}

	event.UpdatedTime = time.Now().UnixMilli()
	res, err := r.db.Collection(eventCollection).ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return fmt.Errorf("update event, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) QueryEvents(ctx context.Context, opt *domain.QueryEventOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Statuses) > 0 {
		filter["status"] = bson.M{"$in": opt.Statuses}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "_id", Value: 1}})
	if opt.Skip > 0 {
		findOpts.SetSkip(opt.Skip)
	}
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}

	cursor, err := r.db.Collection(eventCollection).Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find events, err: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var event domain.Event
		if err := cursor.Decode(&event); err != nil {
			return fmt.Errorf("decode event, err: %w", err)
		}
		opt.Result = append(opt.Result, &event)
	}
	return cursor.Err()
}
