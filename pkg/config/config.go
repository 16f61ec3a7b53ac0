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
	JWT          JWTConfig
	Password     PasswordConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	Uploads      UploadsConfig
	Gateway      GatewayConfig
	Mail         MailConfig
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
	Env          string `envconfig:"VASTRA_APP_ENV" required:"true"`
	Port         string `envconfig:"VASTRA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VASTRA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VASTRA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VASTRA_DB_DSN"`
	Driver string `envconfig:"VASTRA_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"VASTRA_DB_HOST"`
	Port     int    `envconfig:"VASTRA_DB_PORT" default:"5432"`
	User     string `envconfig:"VASTRA_DB_USER"`
	Password string `envconfig:"VASTRA_DB_PASSWORD"`
	Name     string `envconfig:"VASTRA_DB_NAME"`
	SSLMode  string `envconfig:"VASTRA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VASTRA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VASTRA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VASTRA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VASTRA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VASTRA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"VASTRA_REDIS_ADDR"`
	Password     string        `envconfig:"VASTRA_REDIS_PASSWORD"`
	DB           int           `envconfig:"VASTRA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VASTRA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VASTRA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VASTRA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VASTRA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VASTRA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"VASTRA_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"VASTRA_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"VASTRA_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"VASTRA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
	CookieName             string `envconfig:"VASTRA_SESSION_COOKIE_NAME" default:"vastra_session"`
	CookieDomain           string `envconfig:"VASTRA_SESSION_COOKIE_DOMAIN"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost       int           `envconfig:"VASTRA_BCRYPT_COST" default:"10"`
	MinLength        int           `envconfig:"VASTRA_PASSWORD_MIN_LENGTH" default:"6"`
	VerifyTokenTTL   time.Duration `envconfig:"VASTRA_VERIFY_TOKEN_TTL" default:"24h"`
	ResetTokenTTL    time.Duration `envconfig:"VASTRA_RESET_TOKEN_TTL" default:"1h"`
	VerifyTokenBytes int           `envconfig:"VASTRA_VERIFY_TOKEN_BYTES" default:"32"`
}

type RateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"VASTRA_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"VASTRA_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"VASTRA_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"VASTRA_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"VASTRA_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"VASTRA_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"VASTRA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"VASTRA_AUTO_MIGRATE" default:"false"`
}

type UploadsConfig struct {
	Dir         string `envconfig:"VASTRA_UPLOADS_DIR" default:"uploads"`
	MaxUploadMB int    `envconfig:"VASTRA_MAX_UPLOAD_MB" default:"5"`
	PublicBase  string `envconfig:"VASTRA_UPLOADS_PUBLIC_BASE" default:"/uploads"`
}

type GatewayConfig struct {
	BaseURL   string        `envconfig:"VASTRA_GATEWAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	KeyID     string        `envconfig:"VASTRA_GATEWAY_KEY_ID"`
	KeySecret string        `envconfig:"VASTRA_GATEWAY_KEY_SECRET"`
	Currency  string        `envconfig:"VASTRA_GATEWAY_CURRENCY" default:"INR"`
	Timeout   time.Duration `envconfig:"VASTRA_GATEWAY_TIMEOUT" default:"15s"`
}

type MailConfig struct {
	FromAddress string `envconfig:"VASTRA_MAIL_FROM" default:"no-reply@vastra.shop"`
	BaseURL     string `envconfig:"VASTRA_MAIL_LINK_BASE_URL" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range componentDBEnvVars {
		if values[env] == "" {
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
