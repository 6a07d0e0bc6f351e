package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Venue  VenueConfig
	Stripe StripeConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Mail   MailConfig
	Sentry SentryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// VenueConfig describes the physical venue. Hours are read in TimeZone, never in the caller's zone.
type VenueConfig struct {
	TimeZone     string `envconfig:"VENUE_TIMEZONE" default:"America/New_York"`
	OpenHour     int    `envconfig:"VENUE_OPEN_HOUR" default:"10"`
	CloseHour    int    `envconfig:"VENUE_CLOSE_HOUR" default:"22"`
	DemoFallback bool   `envconfig:"AVAILABILITY_DEMO_FALLBACK" default:"false"`
}

type StripeConfig struct {
	SecretKey      string            `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret  string            `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	PublishableKey string            `envconfig:"STRIPE_PUBLISHABLE_KEY" default:""`
	PriceIDs       map[string]string `envconfig:"STRIPE_PRICE_IDS" default:""`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"30s"`
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"true"`
}

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

type AuthConfig struct {
	Provider                string `envconfig:"AUTH_PROVIDER" default:"jwt"`
	FirebaseProjectID       string `envconfig:"FIREBASE_PROJECT_ID" default:""`
	FirebaseCredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE" default:""`
}

type MailConfig struct {
	Enabled   bool   `envconfig:"MAIL_ENABLED" default:"false"`
	From      string `envconfig:"MAIL_FROM" default:"bookings@example.com"`
	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`
}

type SentryConfig struct {
	DSN         string `envconfig:"SENTRY_DSN" default:""`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the venue timezone, falling back to UTC on an unknown name.
func (v VenueConfig) Location() *time.Location {
	loc, err := time.LoadLocation(v.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is a local convenience only
	if os.Getenv("GIN_MODE") != "release" {
		_ = godotenv.Load()
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Venue.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (v VenueConfig) validate() error {
	if v.OpenHour < 0 || v.CloseHour > 24 || v.OpenHour >= v.CloseHour {
		return fmt.Errorf("invalid venue hours: open=%d close=%d", v.OpenHour, v.CloseHour)
	}
	if _, err := time.LoadLocation(v.TimeZone); err != nil {
		return fmt.Errorf("invalid VENUE_TIMEZONE %q: %w", v.TimeZone, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Venue: VenueConfig{
			TimeZone:  "America/New_York",
			OpenHour:  10,
			CloseHour: 22,
		},
		Stripe: StripeConfig{
			SecretKey:      "sk_test_dummy",
			WebhookSecret:  "whsec_test_secret",
			PublishableKey: "pk_test_dummy",
			PriceIDs: map[string]string{
				"kart-rookie": "price_kart_rookie",
				"kart-pro":    "price_kart_pro",
			},
		},
		Redis: RedisConfig{
			CacheTTL: 30 * time.Second,
			Enabled:  false,
		},
		Auth: AuthConfig{
			Provider: AuthProviderJWT,
		},
	}
}
