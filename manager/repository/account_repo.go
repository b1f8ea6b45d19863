package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/registra/api/manager/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateAccount(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return errors.New("nil account")
	}

	now := time.Now().UnixMilli()
	if account.ID.IsZero() {
		account.ID = bson.NewObjectID()
	}
	if account.CreatedTime == 0 {
		account.CreatedTime = now
	}
	account.UpdatedTime = now

	res, err := r.db.Collection(accountCollection).InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("create account, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

func (r *repo) UpdateAccount(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return errors.New("nil account")
	}
	if account.ID.IsZero() {
		return errors.New("account id is required")
	}

	account.UpdatedTime = time.Now().UnixMilli()
	res, err := r.db.Collection(accountCollection).ReplaceOne(ctx, bson.M{"_id": account.ID}, account)
	if err != nil {
		return fmt.Errorf("update account, err: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) QueryAccounts(ctx context.Context, opt *domain.QueryAccountOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Emails) > 0 {
		filter["email"] = bson.M{"$in": opt.Emails}
	}
	if len(opt.Roles) > 0 {
		filter["role"] = bson.M{"$in": opt.Roles}
	}

	cursor, err := r.db.Collection(accountCollection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find accounts, err: %w", err)
	}

	var result []*domain.Account
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode accounts, err: %w", err)
	}
	opt.Result = result
	return nil
}
