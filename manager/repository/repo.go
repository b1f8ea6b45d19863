package repository

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/registra/api/config"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	accountCollection     = "accounts"
	eventCollection       = "events"
	activityLogCollection = "activity_logs"

	defaultTimestampField = "createdTime"
	connectTimeout        = 10 * time.Second
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
	Lc          fx.Lifecycle `optional:"true"`
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewRepository(params Params) (domain.Repository, error) {
	cfg := params.MongoConfig
	clientOpts := options.Client().ApplyURI(cfg.URI(false))
	if cfg.CAPem.Value() != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(cfg.CAPem.Value())) {
			return nil, errors.New("parse mongodb ca pem")
		}
		clientOpts.SetTLSConfig(&tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12})
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb %s:%s, err: %w", cfg.Host, cfg.Port, err)
	}

	r := &repo{
		client: client,
		db:     client.Database(cfg.Database),
	}
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Logger(ctx).Info().Msg("disconnecting mongodb")
				return client.Disconnect(ctx)
			},
		})
	}
	return r, nil
}
