package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNilQueryInput    = errors.New("query options is nil")
	ErrEmptyAction      = errors.New("activity action is empty")
	ErrInvalidActorType = errors.New("invalid actor type")
)
