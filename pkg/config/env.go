package config

const EnvPrefix = "LOJA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv      = "LOJA_APP_ENV"
	EnvPort        = "LOJA_APP_PORT"
	EnvLogLevel    = "LOJA_LOG_LEVEL"
	EnvDBDSN       = "LOJA_DB_DSN"
	EnvDBHost      = "LOJA_DB_HOST"
	EnvDBPort      = "LOJA_DB_PORT"
	EnvDBUser      = "LOJA_DB_USER"
	EnvDBPassword  = "LOJA_DB_PASSWORD"
	EnvDBName      = "LOJA_DB_NAME"
	EnvRedisURL    = "LOJA_REDIS_URL"
	EnvJWTSecret   = "LOJA_JWT_SECRET"
	EnvJWTIssuer   = "LOJA_JWT_ISSUER"
	EnvJWTExpMins  = "LOJA_JWT_EXPIRATION_MINUTES"
	EnvUseSQLite   = "LOJA_USE_SQLITE"
	EnvAutoMigrate = "LOJA_AUTO_MIGRATE"
	EnvCORSOrigins = "LOJA_CORS_ALLOWED_ORIGINS"
)

const EnvPlatformPort = "PORT"

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
