package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Delivery     DeliveryProviderConfig
	Maps         MapsConfig
	Settings     SettingsCacheConfig
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
	Env          string `envconfig:"MENUFLOW_APP_ENV" required:"true"`
	Port         string `envconfig:"MENUFLOW_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MENUFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MENUFLOW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MENUFLOW_DB_DSN"`
	Driver string `envconfig:"MENUFLOW_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MENUFLOW_DB_HOST"`
	LegacyPort     int    `envconfig:"MENUFLOW_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MENUFLOW_DB_USER"`
	LegacyPassword string `envconfig:"MENUFLOW_DB_PASSWORD"`
	LegacyName     string `envconfig:"MENUFLOW_DB_NAME"`
	LegacySSLMode  string `envconfig:"MENUFLOW_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MENUFLOW_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MENUFLOW_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MENUFLOW_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MENUFLOW_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MENUFLOW_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MENUFLOW_REDIS_ADDR"`
	Password     string        `envconfig:"MENUFLOW_REDIS_PASSWORD"`
	DB           int           `envconfig:"MENUFLOW_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MENUFLOW_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MENUFLOW_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MENUFLOW_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MENUFLOW_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MENUFLOW_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MENUFLOW_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MENUFLOW_AUTO_MIGRATE" default:"false"`
}

// DeliveryProviderConfig wires the external delivery fee-estimate API.
type DeliveryProviderConfig struct {
	Enabled  bool          `envconfig:"MENUFLOW_DELIVERY_PROVIDER_ENABLED" default:"false"`
	BaseURL  string        `envconfig:"MENUFLOW_DELIVERY_PROVIDER_BASE_URL"`
	APIKey   string        `envconfig:"MENUFLOW_DELIVERY_PROVIDER_API_KEY"`
	Timeout  time.Duration `envconfig:"MENUFLOW_DELIVERY_PROVIDER_TIMEOUT" default:"5s"`
	Provider string        `envconfig:"MENUFLOW_DELIVERY_PROVIDER_NAME" default:"shipday"`
}

type MapsConfig struct {
	AccessToken string `envconfig:"MENUFLOW_MAPBOX_ACCESS_TOKEN"`
}

// SettingsCacheConfig controls the pricing-settings read-through cache.
type SettingsCacheConfig struct {
	CacheTTL time.Duration `envconfig:"MENUFLOW_SETTINGS_CACHE_TTL" default:"60s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
