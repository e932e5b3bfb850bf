// Package config loads the service configuration from the environment.
//
// A .env file in the working directory is loaded first if it exists.
// Variables that are already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageS3     = "s3"
)

type Config struct {
	Port     string
	APIURL   *url.URL
	AppURL   string
	GinMode  string
	Human    bool // human readable log output
	Pprof    bool
	CORS     []string
	Timeout  time.Duration
	Database Database
	Auth     Auth
	Storage  Storage
	Invites  Invitations
	AMQP     AMQP
}

type Database struct {
	Path     string // SQLite database file, used when Host is empty
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Postgres reports if the PostgreSQL driver is configured.
func (d Database) Postgres() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Auth struct {
	JWTSecret     string
	JWTIssuer     string
	AdminUserIDs  []string
	AdminEmails   []string
	WebhookSecret string
}

type Storage struct {
	Provider  string
	Bucket    string
	Region    string
	MaxSizeMB int64
}

// MaxBytes is the upload size limit in bytes.
func (s Storage) MaxBytes() int64 {
	return s.MaxSizeMB * 1024 * 1024
}

type Invitations struct {
	APIURL    string
	SecretKey string
}

type AMQP struct {
	URL      string
	Exchange string
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("DB_PATH", "data/santo-dinheiro.db")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("AUTH_JWT_ISSUER", "")
	v.SetDefault("STORAGE_PROVIDER", StorageMemory)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("BLOB_MAX_SIZE_MB", 25)
	v.SetDefault("INVITATIONS_API_URL", "https://api.clerk.com/v1")
	v.SetDefault("AMQP_EXCHANGE", "santo-dinheiro")
}

// Load reads the configuration of the API and validates it.
func Load() (Config, error) {
	cfg, err := read()
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// LoadMaintenance reads the configuration for jobs that only work on the
// database. Only the database settings are validated.
func LoadMaintenance() (Config, error) {
	cfg, err := read()
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Database.Validate()
}

func read() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, fmt.Errorf("API_URL must be an absolute URL, got %q", v.GetString("API_URL"))
	}

	cfg := Config{
		Port:    v.GetString("PORT"),
		APIURL:  apiURL,
		AppURL:  strings.TrimSuffix(v.GetString("APP_URL"), "/"),
		GinMode: v.GetString("GIN_MODE"),
		Human:   v.GetString("LOG_FORMAT") == "human",
		Pprof:   v.GetBool("ENABLE_PPROF"),
		CORS:    strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		Timeout: v.GetDuration("REQUEST_TIMEOUT"),
		Database: Database{
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("AUTH_JWT_SECRET"),
			JWTIssuer:     v.GetString("AUTH_JWT_ISSUER"),
			AdminUserIDs:  List(v.GetString("ADMIN_USER_IDS")),
			AdminEmails:   List(v.GetString("ADMIN_EMAILS")),
			WebhookSecret: v.GetString("WEBHOOK_SECRET"),
		},
		Storage: Storage{
			Provider:  v.GetString("STORAGE_PROVIDER"),
			Bucket:    v.GetString("S3_BUCKET"),
			Region:    v.GetString("S3_REGION"),
			MaxSizeMB: v.GetInt64("BLOB_MAX_SIZE_MB"),
		},
		Invites: Invitations{
			APIURL:    strings.TrimSuffix(v.GetString("INVITATIONS_API_URL"), "/"),
			SecretKey: v.GetString("INVITATIONS_SECRET_KEY"),
		},
		AMQP: AMQP{
			URL:      v.GetString("AMQP_URL"),
			Exchange: v.GetString("AMQP_EXCHANGE"),
		},
	}

	return cfg, nil
}

// Validate checks the database settings.
func (d Database) Validate() error {
	if !d.Postgres() {
		if d.Path == "" {
			return errors.New("DB_PATH must be set when DB_HOST is empty")
		}
		return nil
	}

	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("DB_NAME must be set when DB_HOST is set"))
	}

	if d.Port <= 0 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("DB_PORT must be a valid port, got %d", d.Port))
	}

	return errors.Join(errs...)
}

// Validate checks the configuration for values the service cannot run with.
func (c Config) Validate() error {
	errs := []error{c.Database.Validate()}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must be set"))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Timeout))
	}

	if c.Storage.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("BLOB_MAX_SIZE_MB must be positive, got %d", c.Storage.MaxSizeMB))
	}

	switch c.Storage.Provider {
	case StorageMemory:
	case StorageS3:
		if c.Storage.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET must be set when STORAGE_PROVIDER is s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_PROVIDER must be one of %q, %q, got %q", StorageMemory, StorageS3, c.Storage.Provider))
	}

	if c.AMQP.URL != "" {
		u, err := url.Parse(c.AMQP.URL)
		if err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			errs = append(errs, fmt.Errorf("AMQP_URL must use the amqp or amqps scheme, got %q", c.AMQP.URL))
		}
	}

	return errors.Join(errs...)
}

// List splits a comma separated value, trims every entry and drops empty ones.
func List(s string) []string {
	var list []string
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			list = append(list, entry)
		}
	}

	return list
}
