package repository

import (
	"context"
	"testing"

	"github.com/registra/api/config"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/pkg/container"
	"github.com/registra/api/pkg/logger"
	"github.com/registra/api/pkg/util"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

type RepositoryTestSuite struct {
	suite.Suite
	ctx            context.Context
	repo           *repo
	containerBuild *container.ContainerBuilder
	mongoCfg       config.MongoDBConfig
}

func (suite *RepositoryTestSuite) SetupSuite() {
	logger.InitLogger()
	suite.ctx = context.Background()

	builder, err := container.NewContainerBuilder("")
	if err != nil {
		suite.T().Skipf("docker is not available: %v", err)
	}
	suite.containerBuild = builder

	cfg, err := config.InitManagerConfig("manager_config.test", config.GetAbsPath("config"))
	suite.Require().NoError(err, "load test config")

	conn, err := container.RunMongoContainer(builder, "registra_repo_test_mongo", container.MongoContainerConnection{
		Username: cfg.MongoDB.User,
		Password: cfg.MongoDB.Password.Value(),
		Database: cfg.MongoDB.Database,
		Port:     cfg.MongoDB.Port,
	})
	suite.Require().NoError(err, "start mongo container")

	cfg.MongoDB.Host = conn.Host
	cfg.MongoDB.Port = conn.Port
	cfg.MongoDB.User = conn.Username
	cfg.MongoDB.Password = config.SecretValue(conn.Password)
	cfg.MongoDB.Database = conn.Database
	suite.mongoCfg = cfg.MongoDB

	repoInst, err := NewRepository(Params{MongoConfig: cfg.MongoDB})
	suite.Require().NoError(err, "init repository")

	r, ok := repoInst.(*repo)
	suite.Require().True(ok, "repository type assertion")
	suite.repo = r
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.containerBuild != nil {
		err := suite.containerBuild.PruneAll()
		suite.Require().NoError(err, "prune containers")
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.Require().NotNil(suite.repo, "repository not initialized")
	err := util.MongoCleanup(suite.repo.client, suite.mongoCfg.Database)
	suite.Require().NoError(err, "cleanup database")
}

func (suite *RepositoryTestSuite) createLog(action string, actorType domain.ActorType, actorID *bson.ObjectID, targetType string) *domain.ActivityLog {
	entry := &domain.ActivityLog{
		Action:    action,
		ActorType: actorType,
		ActorID:   actorID,
	}
	if targetType != "" {
		entry.TargetType = util.Ptr(targetType)
	}
	err := suite.repo.CreateActivityLog(suite.ctx, entry)
	suite.Require().NoError(err, "create activity log")
	return entry
}

func (suite *RepositoryTestSuite) TestCreateAndQueryAccount() {
	account := &domain.Account{
		Email:    "admin@registra.test",
		FullName: "Alice",
		Password: domain.EncryptedPassword("secret"),
		Role:     domain.RoleAdmin,
		Status:   domain.AccountStatusActive,
	}
	err := suite.repo.CreateAccount(suite.ctx, account)
	suite.Require().NoError(err, "create account")
	suite.False(account.ID.IsZero(), "account id should be assigned")

	opts := &domain.QueryAccountOptions{Emails: []string{account.Email}}
	err = suite.repo.QueryAccounts(suite.ctx, opts)
	suite.Require().NoError(err, "query accounts")
	suite.Require().Len(opts.Result, 1, "expect one account")
	suite.Equal("Alice", opts.Result[0].FullName)

	ok, err := opts.Result[0].Password.Cmp("secret")
	suite.Require().NoError(err)
	suite.True(ok, "password should be stored hashed and comparable")

	stored := opts.Result[0]
	stored.Status = domain.AccountStatusInactive
	err = suite.repo.UpdateAccount(suite.ctx, stored)
	suite.Require().NoError(err, "update account")

	opts = &domain.QueryAccountOptions{IDs: []bson.ObjectID{account.ID}}
	err = suite.repo.QueryAccounts(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Require().Len(opts.Result, 1)
	suite.Equal(domain.AccountStatusInactive, opts.Result[0].Status)
	ok, err = opts.Result[0].Password.Cmp("secret")
	suite.Require().NoError(err)
	suite.True(ok, "replacing the account must not re-hash the stored hash")
}

func (suite *RepositoryTestSuite) TestUpdateMissingEvent() {
	err := suite.repo.UpdateEvent(suite.ctx, &domain.Event{BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()}})
	suite.ErrorIs(err, domain.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestCreateAndQueryEvents() {
	for i, title := range []string{"late", "early"} {
		err := suite.repo.CreateEvent(suite.ctx, &domain.Event{
			Title:     title,
			StartTime: int64(2000 - i*1000),
			Status:    domain.EventStatusScheduled,
		})
		suite.Require().NoError(err)
	}
	opts := &domain.QueryEventOptions{Statuses: []domain.EventStatus{domain.EventStatusScheduled}}
	err := suite.repo.QueryEvents(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Require().Len(opts.Result, 2)
	suite.Equal("early", opts.Result[0].Title, "events are ordered by start time")
}

func (suite *RepositoryTestSuite) TestActivityLogsNewestFirst() {
	first := suite.createLog("first", domain.ActorTypeSystem, nil, "")
	second := suite.createLog("second", domain.ActorTypeSystem, nil, "")
	suite.GreaterOrEqual(second.CreatedTime, first.CreatedTime)

	opts := &domain.QueryActivityLogOptions{}
	err := suite.repo.QueryActivityLogs(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Require().Len(opts.Result, 2)
	suite.Equal("second", opts.Result[0].Action)
	suite.Equal("first", opts.Result[1].Action)
	suite.Nil(opts.Result[0].ActorID, "system entries keep a null actor")
}

func (suite *RepositoryTestSuite) TestActivityLogsAllWritesVisible() {
	const n = 7
	for i := 0; i < n; i++ {
		suite.createLog("write", domain.ActorTypeSystem, nil, "")
	}
	opts := &domain.QueryActivityLogOptions{Limit: 1000}
	err := suite.repo.QueryActivityLogs(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Len(opts.Result, n)
	suite.Equal(int64(n), opts.Total)
}

func (suite *RepositoryTestSuite) TestActivityLogsFilterConjunction() {
	a1 := bson.NewObjectID()
	a2 := bson.NewObjectID()
	suite.createLog(domain.ActionCancelEvent, domain.ActorTypeAdmin, &a1, domain.TargetTypeEvent)
	suite.createLog(domain.ActionCancelEvent, domain.ActorTypeAdmin, &a2, domain.TargetTypeEvent)
	suite.createLog(domain.ActionCancelEvent, domain.ActorTypeAdmin, &a1, "user")
	suite.createLog(domain.ActionCreateEvent, domain.ActorTypeSuperadmin, &a2, domain.TargetTypeEvent)

	opts := &domain.QueryActivityLogOptions{
		Action:     domain.ActionCancelEvent,
		TargetType: domain.TargetTypeEvent,
	}
	err := suite.repo.QueryActivityLogs(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Equal(int64(2), opts.Total)
	for _, entry := range opts.Result {
		suite.Equal(domain.ActionCancelEvent, entry.Action)
		suite.Equal(domain.TargetTypeEvent, *entry.TargetType)
	}

	opts = &domain.QueryActivityLogOptions{ActorID: &a1}
	err = suite.repo.QueryActivityLogs(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Equal(int64(2), opts.Total)
	for _, entry := range opts.Result {
		suite.Equal(a1, *entry.ActorID)
	}

	opts = &domain.QueryActivityLogOptions{ActorType: domain.ActorTypeSuperadmin}
	err = suite.repo.QueryActivityLogs(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.Equal(int64(1), opts.Total)
}

func (suite *RepositoryTestSuite) TestActivityLogsPagination() {
	for i := 0; i < 5; i++ {
		suite.createLog("page", domain.ActorTypeSystem, nil, "")
	}

	cases := []struct {
		skip, limit int64
		want        int
	}{
		{skip: 0, limit: 2, want: 2},
		{skip: 4, limit: 2, want: 1},
		{skip: 5, limit: 2, want: 0},
		{skip: 9, limit: 2, want: 0},
	}
	for _, tc := range cases {
		opts := &domain.QueryActivityLogOptions{Skip: tc.skip, Limit: tc.limit}
		err := suite.repo.QueryActivityLogs(suite.ctx, opts)
		suite.Require().NoError(err)
		suite.Equal(int64(5), opts.Total, "total ignores pagination")
		suite.Len(opts.Result, tc.want, "skip=%d limit=%d", tc.skip, tc.limit)
		suite.NotNil(opts.Result)
	}
}

func TestActivityLogFilter(t *testing.T) {
	actorID := bson.NewObjectID()
	filter := activityLogFilter(&domain.QueryActivityLogOptions{
		Action:     "cancel_event",
		ActorType:  domain.ActorTypeAdmin,
		ActorID:    &actorID,
		TargetType: "event",
		Skip:       10,
		Limit:      5,
	})
	want := bson.M{
		"action":     "cancel_event",
		"actorType":  domain.ActorTypeAdmin,
		"actorId":    actorID,
		"targetType": "event",
	}
	if len(filter) != len(want) {
		t.Fatalf("filter = %v, want %v", filter, want)
	}
	for k, v := range want {
		if filter[k] != v {
			t.Fatalf("filter[%s] = %v, want %v", k, filter[k], v)
		}
	}

	if empty := activityLogFilter(&domain.QueryActivityLogOptions{}); len(empty) != 0 {
		t.Fatalf("empty options should match everything, got %v", empty)
	}
}
