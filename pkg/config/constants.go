package config

const (
	EnvPrefix = "VASTRA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv     = "VASTRA_APP_ENV"
	EnvPort       = "VASTRA_APP_PORT"
	EnvDBDSN      = "VASTRA_DB_DSN"
	EnvDBHost     = "VASTRA_DB_HOST"
	EnvDBUser     = "VASTRA_DB_USER"
	EnvDBName     = "VASTRA_DB_NAME"
	EnvRedisURL   = "VASTRA_REDIS_URL"
	EnvJWTSecret  = "VASTRA_JWT_SECRET"
	EnvJWTIssuer  = "VASTRA_JWT_ISSUER"
	EnvJWTExpMins = "VASTRA_JWT_EXPIRATION_MINUTES"
)

var componentDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
