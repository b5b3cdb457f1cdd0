package config

import (
	"strings"
	"time"

	"boat-scheduler/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, secrets, remote endpoint)
// - default: values common across all environments (timezone, timeouts, prices)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Operator OperatorConfig
	Schedule ScheduleConfig
	Remote   RemoteConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// OperatorConfig lists staff accounts as "username:role:bcrypt-hash" entries.
type OperatorConfig struct {
	Accounts []string `envconfig:"OPERATOR_ACCOUNTS" required:"true"`
}

const (
	DataSourceDemo   = "demo"
	DataSourceRemote = "remote"
	DataSourceEmpty  = "empty"
)

type ScheduleConfig struct {
	DataSource       string        `envconfig:"SCHEDULE_DATA_SOURCE" default:"demo"`
	ConfirmTimeout   time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"3s"`
	SinglePriceCents int64         `envconfig:"SINGLE_BOOKING_PRICE_CENTS" default:"45000"`
	TimeZone         string        `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Tokyo"`
	// SyncWindow is how far back and ahead of now a remote load reaches.
	SyncWindow time.Duration `envconfig:"SCHEDULE_SYNC_WINDOW" default:"720h"`
}

func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "load schedule time zone %q", c.TimeZone)
	}
	return loc, nil
}

type RemoteConfig struct {
	BaseURL          string        `envconfig:"REMOTE_BASE_URL" default:""`
	APIKey           string        `envconfig:"REMOTE_API_KEY" default:""`
	Timeout          time.Duration `envconfig:"REMOTE_TIMEOUT" default:"10s"`
	ServicesCacheTTL time.Duration `envconfig:"REMOTE_SERVICES_CACHE_TTL" default:"10m"`
}

type SessionConfig struct {
	TTL             time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	CleanupInterval time.Duration `envconfig:"SESSION_CLEANUP_INTERVAL" default:"10m"`
}

func (c Config) Validate() error {
	switch c.Schedule.DataSource {
	case DataSourceDemo, DataSourceEmpty:
	case DataSourceRemote:
		if strings.TrimSpace(c.Remote.BaseURL) == "" {
			return errs.New("REMOTE_BASE_URL is required when SCHEDULE_DATA_SOURCE=remote")
		}
	default:
		return errs.Newf("unknown SCHEDULE_DATA_SOURCE %q", c.Schedule.DataSource)
	}
	if c.Schedule.ConfirmTimeout <= 0 {
		return errs.New("CONFIRM_TIMEOUT must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Operator: OperatorConfig{
			// every account's password is "password123"
			Accounts: []string{
				"skipper:operator:" + testPasswordHash,
				"deckhand:viewer:" + testPasswordHash,
				"harbormaster:admin:" + testPasswordHash,
			},
		},
		Schedule: ScheduleConfig{
			DataSource:       DataSourceDemo,
			ConfirmTimeout:   3 * time.Second,
			SinglePriceCents: 45000,
			TimeZone:         "Asia/Tokyo",
			SyncWindow:       720 * time.Hour,
		},
		Remote: RemoteConfig{
			Timeout:          time.Second,
			ServicesCacheTTL: time.Minute,
		},
		Session: SessionConfig{
			TTL:             time.Hour,
			CleanupInterval: time.Minute,
		},
	}
}
