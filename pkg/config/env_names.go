package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "MENUFLOW"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "MENUFLOW_APP_ENV"
	EnvPort     = "MENUFLOW_APP_PORT"
	EnvDBDSN    = "MENUFLOW_DB_DSN"
	EnvDBHost   = "MENUFLOW_DB_HOST"
	EnvDBUser   = "MENUFLOW_DB_USER"
	EnvDBName   = "MENUFLOW_DB_NAME"
	EnvRedisURL = "MENUFLOW_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
