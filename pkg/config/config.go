package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/env"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// PaaS platforms inject PORT.
	if port := env.Get(EnvPlatformPort, ""); port != "" {
		cfg.App.Port = port
	}
	if cfg.FeatureFlags.UseSQLite {
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOJA_APP_ENV" required:"true"`
	Port         string `envconfig:"LOJA_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"LOJA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOJA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"LOJA_DB_DSN"`

	Host     string `envconfig:"LOJA_DB_HOST"`
	Port     int    `envconfig:"LOJA_DB_PORT" default:"5432"`
	User     string `envconfig:"LOJA_DB_USER"`
	Password string `envconfig:"LOJA_DB_PASSWORD"`
	Name     string `envconfig:"LOJA_DB_NAME"`
	SSLMode  string `envconfig:"LOJA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOJA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOJA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOJA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOJA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: with neither URL nor Addr set, rate limiting and
// idempotency replay are disabled.
type RedisConfig struct {
	URL          string        `envconfig:"LOJA_REDIS_URL"`
	Address      string        `envconfig:"LOJA_REDIS_ADDR"`
	Password     string        `envconfig:"LOJA_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOJA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOJA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOJA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOJA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOJA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOJA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"LOJA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LOJA_JWT_ISSUER" default:"loja-virtual"`
	ExpirationMinutes int    `envconfig:"LOJA_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LOJA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LOJA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LOJA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LOJA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LOJA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"LOJA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"LOJA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"LOJA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"LOJA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"LOJA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"LOJA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LOJA_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"LOJA_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"LOJA_SQLITE_PATH" default:"loja.db"`
	AutoMigrate bool   `envconfig:"LOJA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	discrete := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if discrete[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
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
