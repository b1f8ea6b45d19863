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
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (svc *Service) CreateAdmin(ctx context.Context, rc domain.RequestContext, account *domain.Account) error {
	if !rc.Actor.IsSuperadmin() {
		return errs.NewHTTPStatusError(http.StatusForbidden, "only superadmin can create admins", nil)
	}
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	if account.Email == "" || account.Password == "" {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "email and password are required", nil)
	}

	account.BaseEntity = domain.NewBaseEntity(util.Ptr(rc.Actor.ID), util.Ptr(rc.Actor.ID))
	account.Role = domain.RoleAdmin
	account.Status = domain.AccountStatusActive
	err := svc.Repo.CreateAccount(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return errs.NewHTTPStatusError(http.StatusConflict, "email already registered", err)
	}
	if err != nil {
		return errors.WithMessagef(err, "create admin %s", account.Email)
	}

	svc.LogActivity(ctx, rc, domain.ActivityDetails{
		Action:     domain.ActionCreateAdmin,
		TargetType: domain.TargetTypeAdmin,
		TargetID:   account.ID.Hex(),
		Metadata: map[string]any{
			"email":    account.Email,
			"fullName": account.FullName,
		},
	})
	return nil
}

func (svc *Service) UpdateAdmin(ctx context.Context, rc domain.RequestContext, id string, opt domain.UpdateAccountOptions) error {
	if !rc.Actor.IsSuperadmin() {
		return errs.NewHTTPStatusError(http.StatusForbidden, "only superadmin can update admins", nil)
	}
	accountID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "invalid admin id", err)
	}
	if opt.Status != nil && !opt.Status.Valid() {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "invalid status", nil)
	}

	query := &domain.QueryAccountOptions{
		IDs:   []bson.ObjectID{accountID},
		Roles: []domain.Role{domain.RoleAdmin},
	}
	err = svc.Repo.QueryAccounts(ctx, query)
	if err != nil {
		return err
	}
	if len(query.Result) == 0 {
		return errs.NewHTTPStatusError(http.StatusNotFound, "admin not found", domain.ErrNotFound)
	}

	account := query.Result[0]
	changes := map[string]any{}
	if opt.FullName != nil && *opt.FullName != account.FullName {
		account.FullName = *opt.FullName
		changes["fullName"] = *opt.FullName
	}
	if opt.Status != nil && *opt.Status != account.Status {
		account.Status = *opt.Status
		changes["status"] = int(*opt.Status)
	}
	account.UpdaterID = rc.Actor.ID
	account.UpdatedTime = time.Now().UnixMilli()
	err = svc.Repo.UpdateAccount(ctx, account)
	if err != nil {
		return errors.WithMessagef(err, "update admin %s", id)
	}
	svc.accountCache.Delete(accountID.Hex())

	svc.LogActivity(ctx, rc, domain.ActivityDetails{
		Action:     domain.ActionUpdateAdmin,
		TargetType: domain.TargetTypeAdmin,
		TargetID:   accountID.Hex(),
		Metadata:   changes,
	})
	return nil
}

func (svc *Service) QueryAccounts(ctx context.Context, opt *domain.QueryAccountOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryAccounts(ctx, opt)
}
