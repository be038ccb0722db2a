package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int           `mapstructure:"SERVER_PORT"`
	ShutdownTimeout time.Duration `mapstructure:"SERVER_SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"DATABASE_HOST"`
	Port     int    `mapstructure:"DATABASE_PORT"`
	User     string `mapstructure:"DATABASE_USER"`
	Password string `mapstructure:"DATABASE_PASSWORD"`
	DBName   string `mapstructure:"DATABASE_DBNAME"`
	SSLMode  string `mapstructure:"DATABASE_SSLMODE"`
	PoolSize int    `mapstructure:"DATABASE_POOL_SIZE"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     int    `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"S3_ENDPOINT"`
	AccessKeyID     string `mapstructure:"S3_ACCESSKEYID"`
	SecretAccessKey string `mapstructure:"S3_SECRETACCESSKEY"`
	BucketName      string `mapstructure:"S3_BUCKETNAME"`
	Region          string `mapstructure:"S3_REGION"`
	PublicBaseURL   string `mapstructure:"S3_PUBLIC_BASE_URL"`
}

type AuthConfig struct {
	AccessSecret  string `mapstructure:"AUTH_ACCESS_SECRET"`
	RefreshSecret string `mapstructure:"AUTH_REFRESH_SECRET"`
}

type CatalogConfig struct {
	PageSize      int           `mapstructure:"CATALOG_PAGE_SIZE"`
	CacheTTL      time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	QueryCacheTTL time.Duration `mapstructure:"CATALOG_QUERY_CACHE_TTL"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:",squash"`
	Database DatabaseConfig `mapstructure:",squash"`
	Redis    RedisConfig    `mapstructure:",squash"`
	S3       S3Config       `mapstructure:",squash"`
	Auth     AuthConfig     `mapstructure:",squash"`
	Catalog  CatalogConfig  `mapstructure:",squash"`
}

var configKeys = []string{
	"SERVER_PORT", "SERVER_SHUTDOWN_TIMEOUT",
	"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD",
	"DATABASE_DBNAME", "DATABASE_SSLMODE", "DATABASE_POOL_SIZE",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
	"S3_ENDPOINT", "S3_ACCESSKEYID", "S3_SECRETACCESSKEY",
	"S3_BUCKETNAME", "S3_REGION", "S3_PUBLIC_BASE_URL",
	"AUTH_ACCESS_SECRET", "AUTH_REFRESH_SECRET",
	"CATALOG_PAGE_SIZE", "CATALOG_CACHE_TTL", "CATALOG_QUERY_CACHE_TTL",
}

// Load は環境変数から設定を読み込みます。
// トークンの署名鍵が未設定の場合はエラーになります。
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, k := range configKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("環境変数 %s のバインドに失敗しました: %w", k, err)
		}
	}

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_SSLMODE", "require")
	v.SetDefault("DATABASE_POOL_SIZE", 10)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_PAGE_SIZE", 8)
	v.SetDefault("CATALOG_CACHE_TTL", 4*time.Hour)
	v.SetDefault("CATALOG_QUERY_CACHE_TTL", 30*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定のデコードに失敗しました: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.AccessSecret == "" {
		return errors.New("AUTH_ACCESS_SECRET が設定されていません")
	}
	if c.Auth.RefreshSecret == "" {
		return errors.New("AUTH_REFRESH_SECRET が設定されていません")
	}
	if c.Database.Host == "" {
		return errors.New("DATABASE_HOST が設定されていません")
	}
	if c.Redis.Host == "" {
		return errors.New("REDIS_HOST が設定されていません")
	}
	return nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: ***, SecretAccessKey: ***, BucketName: %s, Region: %s}",
		c.Endpoint, c.BucketName, c.Region)
}

func (c AuthConfig) String() string {
	return "AuthConfig{AccessSecret: ***, RefreshSecret: ***}"
}
