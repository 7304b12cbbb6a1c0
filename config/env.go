package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the typed application configuration read from the environment.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// DataSource selects the entity store: "postgres" or "fixtures".
	DataSource   string `env:"DATA_SOURCE" envDefault:"postgres"`
	FixturesPath string `env:"FIXTURES_PATH" envDefault:"fixtures/showcase.yaml"`
	// DraftStore selects draft persistence: "postgres", "sqlite" or "memory".
	DraftStore string `env:"DRAFT_STORE" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/local.db"`

	Database Database
	Storage  Storage
	Notify   Notify

	AdminJWTSecret  string        `env:"ADMIN_JWT_SECRET"`
	DraftDebounce   time.Duration `env:"DRAFT_DEBOUNCE" envDefault:"2s"`
	AcceptedOrigins []string      `env:"ACCEPTED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"`
	MaxUploadFiles  int           `env:"MAX_UPLOAD_FILES" envDefault:"10"`
}

// Database holds the hosted Postgres connection settings.
type Database struct {
	Host        string `env:"SUPABASE_DB_HOST"`
	User        string `env:"SUPABASE_DB_USER"`
	Password    string `env:"SUPABASE_DB_PASSWORD"`
	Name        string `env:"SUPABASE_DB_NAME" envDefault:"postgres"`
	Port        string `env:"SUPABASE_DB_PORT" envDefault:"5432"`
	SSLMode     string `env:"SUPABASE_DB_SSLMODE" envDefault:"require"`
	ReplicaHost string `env:"SUPABASE_DB_REPLICA_HOST"`
}

// DSN builds a libpq style connection string for host.
func (d Database) DSN(host string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Storage holds the object storage settings used for uploads and asset URLs.
type Storage struct {
	PublicBaseURL  string `env:"STORAGE_PUBLIC_URL"`
	Placeholder    string `env:"STORAGE_PLACEHOLDER_URL" envDefault:"/placeholder.svg"`
	Endpoint       string `env:"S3_ENDPOINT"`
	Region         string `env:"S3_REGION" envDefault:"eu-north-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_ACCESS_KEY"`
	UploadBucket   string `env:"S3_UPLOAD_BUCKET" envDefault:"submissions"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"true"`
}

// Notify holds credentials for submission notifications. Empty values disable a channel.
type Notify struct {
	ResendAPIKey    string   `env:"RESEND_API_KEY"`
	ResendFromEmail string   `env:"RESEND_FROM_EMAIL"`
	EmailRecipients []string `env:"NOTIFY_EMAILS" envSeparator:","`

	TwilioAccountSID string   `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string   `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string   `env:"TWILIO_FROM_NUMBER"`
	SMSRecipients    []string `env:"NOTIFY_SMS_NUMBERS" envSeparator:","`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses Config from an explicit variable map, as returned by New.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
