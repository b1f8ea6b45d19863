package service

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/manager/metrics"
	"github.com/registra/api/pkg/logger"
)

const fallbackActivityLogLimit int64 = 20

// LogActivity records an audit entry for an action that already happened.
// It never fails the caller: every error, including a panic from the store,
// is logged and counted instead.
func (svc *Service) LogActivity(ctx context.Context, rc domain.RequestContext, details domain.ActivityDetails) {
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if r := recover(); r != nil {
			metrics.ActivityLogWrites.WithLabelValues(details.Action, metrics.ResultFailure).Inc()
			logger.Logger(ctx).Error().
				Interface("panic", r).
				Str("action", details.Action).
				Msg("activity log write panicked")
		}
	}()

	err := svc.recordActivity(ctx, rc, details)
	if err != nil {
		metrics.ActivityLogWrites.WithLabelValues(details.Action, metrics.ResultFailure).Inc()
		logger.Logger(ctx).Error().Err(err).
			Str("action", details.Action).
			Str("target_type", details.TargetType).
			Str("target_id", details.TargetID).
			Msg("failed to record activity")
		return
	}
	metrics.ActivityLogWrites.WithLabelValues(details.Action, metrics.ResultSuccess).Inc()
}

func (svc *Service) recordActivity(ctx context.Context, rc domain.RequestContext, details domain.ActivityDetails) error {
	entry, err := domain.NewActivityLog(rc, details)
	if err != nil {
		return err
	}
	if timeout := svc.logCfg.WriteTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err = svc.Repo.CreateActivityLog(ctx, entry)
	return errors.WithMessagef(err, "insert activity log %q", entry.Action)
}

// ListActivityLogs fills opt.Result and opt.Total. Admin callers only ever see
// their own entries; any actor filter they pass is replaced by their own id.
func (svc *Service) ListActivityLogs(ctx context.Context, caller *domain.Actor, opt *domain.QueryActivityLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	if caller == nil {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "unauthorized", nil)
	}
	switch caller.Role {
	case domain.RoleAdmin:
		actorID := caller.ID
		opt.ActorID = &actorID
	case domain.RoleSuperadmin:
	default:
		return errs.NewHTTPStatusError(http.StatusForbidden, "forbidden", nil)
	}

	if opt.ActorType != "" && !opt.ActorType.Valid() {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "invalid actorType", nil)
	}
	if opt.Skip < 0 || opt.Limit < 0 || opt.Page < 0 {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "limit, skip and page must not be negative", nil)
	}
	svc.resolvePagination(opt)

	err := svc.Repo.QueryActivityLogs(ctx, opt)
	if err != nil {
		metrics.ActivityLogQueries.WithLabelValues(string(caller.Role), metrics.ResultFailure).Inc()
		logger.Logger(ctx).Error().Err(err).Msg("query activity logs")
		opt.Result = nil
		opt.Total = 0
		return errs.NewHTTPStatusError(http.StatusInternalServerError, "failed to load activity logs", err)
	}
	metrics.ActivityLogQueries.WithLabelValues(string(caller.Role), metrics.ResultSuccess).Inc()
	return nil
}

func (svc *Service) resolvePagination(opt *domain.QueryActivityLogOptions) {
	if opt.Limit == 0 {
		opt.Limit = svc.logCfg.DefaultLimit
		if opt.Limit <= 0 {
			opt.Limit = fallbackActivityLogLimit
		}
	}
	if svc.logCfg.MaxLimit > 0 && opt.Limit > svc.logCfg.MaxLimit {
		opt.Limit = svc.logCfg.MaxLimit
	}
	if opt.Page > 0 {
		opt.Skip = (opt.Page - 1) * opt.Limit
	}
}
