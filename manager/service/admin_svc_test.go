package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func superadminContext() domain.RequestContext {
	return domain.RequestContext{
		Actor:  &domain.Actor{ID: bson.NewObjectID(), FullName: "Root", Role: domain.RoleSuperadmin},
		Method: http.MethodPost,
		Path:   "/api/v1/admins",
	}
}

func TestCreateAdmin(t *testing.T) {
	rc := superadminContext()
	repo := domain.NewMockRepository(t)
	repo.EXPECT().
		CreateAccount(mock.Anything, mock.Anything).
		Run(func(_ context.Context, account *domain.Account) {
			account.ID = bson.NewObjectID()
		}).
		Return(nil).
		Once()

	var got *domain.ActivityLog
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *domain.ActivityLog) { got = entry }).
		Return(nil).
		Once()

	svc := newTestService(t, repo)
	account := &domain.Account{Email: "Bob@Registra.test", FullName: "Bob", Password: "pw", Role: domain.RoleSuperadmin}
	require.NoError(t, svc.CreateAdmin(context.Background(), rc, account))

	assert.Equal(t, domain.RoleAdmin, account.Role, "role is always admin")
	assert.Equal(t, "bob@registra.test", account.Email)
	assert.Equal(t, rc.Actor.ID, account.CreatorID)

	require.NotNil(t, got)
	assert.Equal(t, domain.ActionCreateAdmin, got.Action)
	assert.Equal(t, domain.TargetTypeAdmin, *got.TargetType)
	assert.Equal(t, account.ID.Hex(), *got.TargetID)
	assert.Equal(t, domain.ActorTypeSuperadmin, got.ActorType)
}

func TestCreateAdminErrors(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(t, domain.NewMockRepository(t))
	adminRC := domain.RequestContext{Actor: &domain.Actor{ID: bson.NewObjectID(), Role: domain.RoleAdmin}}
	err := svc.CreateAdmin(ctx, adminRC, &domain.Account{Email: "a@b.c", Password: "pw"})
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)

	repo := domain.NewMockRepository(t)
	repo.EXPECT().
		CreateAccount(mock.Anything, mock.Anything).
		Return(mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}).
		Once()
	svc = newTestService(t, repo)
	err = svc.CreateAdmin(ctx, superadminContext(), &domain.Account{Email: "a@b.c", Password: "pw"})
	httpErr, ok = errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
}

func TestUpdateAdminInvalidatesAccountCache(t *testing.T) {
	account := newTestAccount(t, domain.RoleAdmin, "secret")
	repo := domain.NewMockRepository(t)
	expectAccounts(repo, account).Once()
	repo.EXPECT().
		UpdateAccount(mock.Anything, mock.Anything).
		Run(func(_ context.Context, updated *domain.Account) {
			assert.Equal(t, domain.AccountStatusInactive, updated.Status)
			assert.Equal(t, "Alice B", updated.FullName)
		}).
		Return(nil).
		Once()

	var got *domain.ActivityLog
	repo.EXPECT().
		CreateActivityLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *domain.ActivityLog) { got = entry }).
		Return(nil).
		Once()

	svc := newTestService(t, repo)
	svc.accountCache.Set(account.ID.Hex(), account)

	status := domain.AccountStatusInactive
	err := svc.UpdateAdmin(context.Background(), superadminContext(), account.ID.Hex(), domain.UpdateAccountOptions{
		FullName: util.Ptr("Alice B"),
		Status:   &status,
	})
	require.NoError(t, err)

	_, cached := svc.accountCache.Get(account.ID.Hex())
	assert.False(t, cached)
	require.NotNil(t, got)
	assert.Equal(t, domain.ActionUpdateAdmin, got.Action)
	assert.Equal(t, map[string]any{"fullName": "Alice B", "status": 2}, got.Metadata)
}

func TestUpdateAdminNotFound(t *testing.T) {
	repo := domain.NewMockRepository(t)
	expectAccounts(repo).Once()
	svc := newTestService(t, repo)

	err := svc.UpdateAdmin(context.Background(), superadminContext(), bson.NewObjectID().Hex(), domain.UpdateAccountOptions{})
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)

	err = svc.UpdateAdmin(context.Background(), superadminContext(), "zzz", domain.UpdateAccountOptions{})
	httpErr, ok = errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}
