package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "ESNAN"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Cache         CacheConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	Media         MediaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ESNAN_APP_ENV" required:"true"`
	Port         string `envconfig:"ESNAN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ESNAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ESNAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ESNAN_DB_DSN"`
	Driver string `envconfig:"ESNAN_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"ESNAN_DB_HOST"`
	Port     int    `envconfig:"ESNAN_DB_PORT" default:"5432"`
	User     string `envconfig:"ESNAN_DB_USER"`
	Password string `envconfig:"ESNAN_DB_PASSWORD"`
	Name     string `envconfig:"ESNAN_DB_NAME"`
	SSLMode  string `envconfig:"ESNAN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ESNAN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ESNAN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ESNAN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ESNAN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ESNAN_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ESNAN_REDIS_ADDR"`
	Password     string        `envconfig:"ESNAN_REDIS_PASSWORD"`
	DB           int           `envconfig:"ESNAN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ESNAN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ESNAN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ESNAN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ESNAN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ESNAN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"ESNAN_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"ESNAN_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"ESNAN_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"ESNAN_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ESNAN_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ESNAN_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ESNAN_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ESNAN_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ESNAN_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"ESNAN_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"ESNAN_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"ESNAN_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"ESNAN_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"ESNAN_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"ESNAN_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// CacheConfig controls the per-user snapshot cache. Snapshots approximate a
/// browsing session: short-lived, refreshed on every cold read.
type CacheConfig struct {
	SnapshotTTL time.Duration `envconfig:"ESNAN_CACHE_SNAPSHOT_TTL" default:"30m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ESNAN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ESNAN_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"ESNAN_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"ESNAN_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"ESNAN_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName      string        `envconfig:"ESNAN_GCS_BUCKET_NAME"`
	UploadURLExpiry time.Duration `envconfig:"ESNAN_GCS_UPLOAD_URL_EXPIRY" default:"15m"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"ESNAN_MAX_UPLOAD_MB" default:"20"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := map[string]string{
		"ESNAN_DB_HOST": db.Host,
		"ESNAN_DB_USER": db.User,
		"ESNAN_DB_NAME": db.Name,
	}
	for _, key := range []string{"ESNAN_DB_HOST", "ESNAN_DB_USER", "ESNAN_DB_NAME"} {
		if required[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either ESNAN_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
