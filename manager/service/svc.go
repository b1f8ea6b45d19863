package service

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/registra/api/config"
	"github.com/registra/api/manager/domain"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Repo              domain.Repository
	KeyConfig         config.KeyConfig
	AuthConfig        config.AuthConfig
	ActivityLogConfig config.ActivityLogConfig
}

func NewService(params Params) (domain.Service, error) {
	jwtPrivateKey, err := initRSAPrivateKey(params.KeyConfig.RsaPrivateKeyPem.Value())
	if err != nil {
		return nil, fmt.Errorf("initialize RSA private key: %w", err)
	}
	return newService(params.Repo, jwtPrivateKey, params.AuthConfig, params.ActivityLogConfig), nil
}

func newService(repo domain.Repository, key *rsa.PrivateKey, authCfg config.AuthConfig, logCfg config.ActivityLogConfig) *Service {
	return &Service{
		Repo:          repo,
		jwtPrivateKey: key,
		authCfg:       authCfg,
		logCfg:        logCfg,
		accountCache:  cache.New[string, *domain.Account](),
	}
}

type Service struct {
	Repo          domain.Repository
	jwtPrivateKey *rsa.PrivateKey
	authCfg       config.AuthConfig
	logCfg        config.ActivityLogConfig
	// accountCache holds accounts resolved during token verification, keyed by hex id.
	accountCache *cache.Cache[string, *domain.Account]
}

func initRSAPrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Try PKCS8 format
		keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %v", err)
		}
		var ok bool
		key, ok = keyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA")
		}
	}
	return key, nil
}
