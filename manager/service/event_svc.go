package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (svc *Service) CreateEvent(ctx context.Context, rc domain.RequestContext, event *domain.Event) error {
	if rc.Actor == nil {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "unauthorized", nil)
	}
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "title is required", nil)
	}
	if err := validateEventWindow(event.StartTime, event.EndTime, event.Capacity); err != nil {
		return err
	}

	event.BaseEntity = domain.NewBaseEntity(util.Ptr(rc.Actor.ID), util.Ptr(rc.Actor.ID))
	event.Status = domain.EventStatusScheduled
	event.CancelReason = ""
	err := svc.Repo.CreateEvent(ctx, event)
	if err != nil {
		return errors.WithMessagef(err, "create event %q", event.Title)
	}

	svc.LogActivity(ctx, rc, domain.ActivityDetails{
		Action:     domain.ActionCreateEvent,
		TargetType: domain.TargetTypeEvent,
		TargetID:   event.ID.Hex(),
		Metadata: map[string]any{
			"title":     event.Title,
			"startTime": event.StartTime,
		},
	})
	return nil
}

func (svc *Service) UpdateEvent(ctx context.Context, rc domain.RequestContext, id string, opt domain.UpdateEventOptions) error {
	if rc.Actor == nil {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "unauthorized", nil)
	}
	event, err := svc.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if event.Status == domain.EventStatusCancelled {
		return errs.NewHTTPStatusError(http.StatusConflict, "event is cancelled", nil)
	}

	changed := []string{}
	if opt.Title != nil {
		title := strings.TrimSpace(*opt.Title)
		if title == "" {
			return errs.NewHTTPStatusError(http.StatusBadRequest, "title is required", nil)
		}
		event.Title = title
		changed = append(changed, "title")
	}
	if opt.Description != nil {
		event.Description = *opt.Description
		changed = append(changed, "description")
	}
	if opt.Venue != nil {
		event.Venue = *opt.Venue
		changed = append(changed, "venue")
	}
	if opt.StartTime != nil {
		event.StartTime = *opt.StartTime
		changed = append(changed, "startTime")
	}
	if opt.EndTime != nil {
		event.EndTime = *opt.EndTime
		changed = append(changed, "endTime")
	}
	if opt.Capacity != nil {
		event.Capacity = *opt.Capacity
		changed = append(changed, "capacity")
	}
	if err := validateEventWindow(event.StartTime, event.EndTime, event.Capacity); err != nil {
		return err
	}

	event.UpdaterID = rc.Actor.ID
	event.UpdatedTime = time.Now().UnixMilli()
	err = svc.Repo.UpdateEvent(ctx, event)
	if err != nil {
		return errors.WithMessagef(err, "update event %s", id)
	}

	svc.LogActivity(ctx, rc, domain.ActivityDetails{
		Action:     domain.ActionUpdateEvent,
		TargetType: domain.TargetTypeEvent,
		TargetID:   event.ID.Hex(),
		Metadata:   map[string]any{"fields": changed},
	})
	return nil
}

// CancelEvent marks the event cancelled. The audit entry is written after the
// update succeeds and its outcome never changes the result.
func (svc *Service) CancelEvent(ctx context.Context, rc domain.RequestContext, id string, reason string) error {
	if rc.Actor == nil {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "unauthorized", nil)
	}
	event, err := svc.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if event.Status == domain.EventStatusCancelled {
		return errs.NewHTTPStatusError(http.StatusConflict, "event already cancelled", nil)
	}

	event.Status = domain.EventStatusCancelled
	event.CancelReason = strings.TrimSpace(reason)
	event.UpdaterID = rc.Actor.ID
	event.UpdatedTime = time.Now().UnixMilli()
	err = svc.Repo.UpdateEvent(ctx, event)
	if err != nil {
		return errors.WithMessagef(err, "cancel event %s", id)
	}

	metadata := map[string]any{"title": event.Title}
	if event.CancelReason != "" {
		metadata["reason"] = event.CancelReason
	}
	svc.LogActivity(ctx, rc, domain.ActivityDetails{
		Action:     domain.ActionCancelEvent,
		TargetType: domain.TargetTypeEvent,
		TargetID:   event.ID.Hex(),
		Metadata:   metadata,
	})
	return nil
}

func (svc *Service) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	eventID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewHTTPStatusError(http.StatusBadRequest, "invalid event id", err)
	}
	opts := &domain.QueryEventOptions{IDs: []bson.ObjectID{eventID}}
	err = svc.Repo.QueryEvents(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, errs.NewHTTPStatusError(http.StatusNotFound, "event not found", domain.ErrNotFound)
	}
	return opts.Result[0], nil
}

func (svc *Service) ListEvents(ctx context.Context, opt *domain.QueryEventOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryEvents(ctx, opt)
}

func validateEventWindow(start, end int64, capacity int) error {
	if start <= 0 {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "startTime is required", nil)
	}
	if end != 0 && end < start {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "endTime must not be before startTime", nil)
	}
	if capacity < 0 {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "capacity must not be negative", nil)
	}
	return nil
}
