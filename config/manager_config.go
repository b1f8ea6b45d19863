package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type ManageConfig struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	MongoDB     MongoDBConfig     `mapstructure:"mongodb"`
	Key         KeyConfig         `mapstructure:"key"`
	Account     AccountConfig     `mapstructure:"account"`
	Auth        AuthConfig        `mapstructure:"auth"`
	ActivityLog ActivityLogConfig `mapstructure:"activity_log"`
}

type MongoDBConfig struct {
	Database string      `mapstructure:"database"`
	CAPem    SecretValue `mapstructure:"ca_pem"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
	Options  string      `mapstructure:"options"`
}

// URI builds a mongodb:// connection string, with the database as path when
// withDatabase is set.
func (c MongoDBConfig) URI(withDatabase bool) string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   "/",
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password.Value())
	}
	if withDatabase {
		u.Path = "/" + c.Database
	}
	u.RawQuery = c.Options
	return u.String()
}

type KeyConfig struct {
	RsaPrivateKeyPem SecretValue `mapstructure:"rsa_private_key_pem"`
}

// AccountConfig holds the superadmin account created on first start.
type AccountConfig struct {
	SuperadminEmail    string      `mapstructure:"superadmin_email"`
	SuperadminPassword SecretValue `mapstructure:"superadmin_password"`
	SuperadminName     string      `mapstructure:"superadmin_name"`
}

type AuthConfig struct {
	TokenTTLHr         int `mapstructure:"token_ttl_hr"`
	AccountCacheTTLSec int `mapstructure:"account_cache_ttl_sec"`
}

func (c AuthConfig) TokenTTL() time.Duration {
	if c.TokenTTLHr <= 0 {
		return 3 * time.Hour
	}
	return time.Duration(c.TokenTTLHr) * time.Hour
}

func (c AuthConfig) AccountCacheTTL() time.Duration {
	if c.AccountCacheTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(c.AccountCacheTTLSec) * time.Second
}

// ActivityLogConfig controls the audit trail writer and its list endpoint.
// A zero WriteTimeoutMs keeps the caller's context deadline, a zero MaxLimit
// leaves the page size unbounded.
type ActivityLogConfig struct {
	WriteTimeoutMs int   `mapstructure:"write_timeout_ms"`
	DefaultLimit   int64 `mapstructure:"default_limit"`
	MaxLimit       int64 `mapstructure:"max_limit"`
}

func (c ActivityLogConfig) WriteTimeout() time.Duration {
	if c.WriteTimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.WriteTimeoutMs) * time.Millisecond
}

var (
	managerCfg *ManageConfig
)

func GetConfig() *ManageConfig {
	return managerCfg
}

func InitManagerConfig(configName string, configPath string) (ManageConfig, error) {
	var cfg ManageConfig
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "manager_config"
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("MANAGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("server.host", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("activity_log.default_limit", 20)
	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	managerCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
