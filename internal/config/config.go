package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Upload batch policies
const (
	BatchBestEffort = "best-effort"
	BatchAtomic     = "atomic"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DatabaseURL       string        `envconfig:"DATABASE_URL" required:"true"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s"`

	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	UploadPath          string `envconfig:"UPLOAD_PATH" default:"./uploads"`
	PicturesUploadPath  string `envconfig:"PICTURES_UPLOAD_PATH"`
	ReportsUploadPath   string `envconfig:"REPORTS_UPLOAD_PATH"`
	DocumentsUploadPath string `envconfig:"DOCUMENTS_UPLOAD_PATH"`
	UploadMaxBytes      int64  `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
	UploadBatchMode     string `envconfig:"UPLOAD_BATCH_MODE" default:"best-effort"`

	// Seeded at startup when both are set and the username is free
	SeedAdminUsername string `envconfig:"SEED_ADMIN_USERNAME"`
	SeedAdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
	SeedAdminEmail    string `envconfig:"SEED_ADMIN_EMAIL"`
}

// Load reads configs/.env when present, then the environment.
// A missing DATABASE_URL or SESSION_SECRET is an error; there are no built-in credentials.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{"configs/.env"}
	}
	// a missing file is fine, the environment may carry everything
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL must be provided")
	}
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: SESSION_SECRET must be provided")
	}
	switch c.UploadBatchMode {
	case BatchBestEffort, BatchAtomic:
	default:
		return fmt.Errorf("config: UPLOAD_BATCH_MODE must be %q or %q", BatchBestEffort, BatchAtomic)
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("config: UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// UploadRoot resolves the base directory for an upload kind ("pictures", "reports", "documents").
// A kind-specific override wins over UPLOAD_PATH/<kind>.
func (c *Config) UploadRoot(kind string) string {
	var override string
	switch kind {
	case "pictures":
		override = c.PicturesUploadPath
	case "reports":
		override = c.ReportsUploadPath
	case "documents":
		override = c.DocumentsUploadPath
	}
	if override != "" {
		return override
	}
	return filepath.Join(c.UploadPath, kind)
}
