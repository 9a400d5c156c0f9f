// Package config provides configuration loading and management for the recruiting server.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hrops/recruiting-server/internal/telemetry"
)

// EnvPrefix is the prefix used for environment variable overrides
const EnvPrefix = "RECRUITING"

const (
	// DefaultAshbyBaseURL is the public Ashby API endpoint
	DefaultAshbyBaseURL = "https://api.ashbyhq.com"

	// DefaultRequestTimeout bounds a single call to the Ashby API
	DefaultRequestTimeout = 30 * time.Second

	// DefaultRetryDelay is the fixed pause between Ashby retry attempts
	DefaultRetryDelay = 2 * time.Second

	// DefaultMaxPages caps the number of pages followed by one listing
	DefaultMaxPages = 500

	// DefaultSyncInterval is the period of the scheduled candidate sync
	DefaultSyncInterval = 6 * time.Hour

	// DefaultLLMTimeout bounds a single completion call
	DefaultLLMTimeout = 60 * time.Second
)

const (
	// LLMProviderNone disables AI-backed endpoints
	LLMProviderNone = "none"

	// LLMProviderOpenAI uses the OpenAI chat completions API
	LLMProviderOpenAI = "openai"

	// LLMProviderGroq uses the Groq OpenAI-compatible API
	LLMProviderGroq = "groq"

	// LLMProviderOllama uses a local Ollama server
	LLMProviderOllama = "ollama"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Database  *DatabaseConfig   `yaml:"database,omitempty"`
	Ashby     *AshbyConfig      `yaml:"ashby"`
	Sync      *SyncConfig       `yaml:"sync,omitempty"`
	LLM       *LLMConfig        `yaml:"llm,omitempty"`
	Auth      *AuthConfig       `yaml:"auth,omitempty"`
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// AshbyConfig defines how the server talks to the Ashby API and verifies its webhooks
type AshbyConfig struct {
	// BaseURL defaults to https://api.ashbyhq.com
	BaseURL string `yaml:"baseURL,omitempty"`

	// APIKey is used as the basic-auth username. Prefer APIKeyFile or the
	// RECRUITING_ASHBY_API_KEY environment variable.
	APIKey     string `yaml:"apiKey,omitempty"`
	APIKeyFile string `yaml:"apiKeyFile,omitempty"`

	// WebhookSecret is the shared HMAC secret. When empty, webhook signatures
	// are not verified.
	WebhookSecret     string `yaml:"webhookSecret,omitempty"`
	WebhookSecretFile string `yaml:"webhookSecretFile,omitempty"`

	// RequestTimeout bounds a single API call (e.g. "30s")
	RequestTimeout string `yaml:"requestTimeout,omitempty"`

	// RetryDelay is the pause between retry attempts (e.g. "2s")
	RetryDelay string `yaml:"retryDelay,omitempty"`

	// MaxPages caps pagination per listing
	MaxPages int `yaml:"maxPages,omitempty"`
}

// SyncConfig defines the background synchronization schedule
type SyncConfig struct {
	// Interval between scheduled candidate syncs (e.g. "6h")
	Interval string `yaml:"interval,omitempty"`

	// FullSyncOnStartup runs one full sync in the background when the server starts.
	// Defaults to true.
	FullSyncOnStartup *bool `yaml:"fullSyncOnStartup,omitempty"`
}

// LLMConfig defines the text completion backend
type LLMConfig struct {
	Provider   string `yaml:"provider,omitempty"`
	BaseURL    string `yaml:"baseURL,omitempty"`
	Model      string `yaml:"model,omitempty"`
	APIKey     string `yaml:"apiKey,omitempty"`
	APIKeyFile string `yaml:"apiKeyFile,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

// AuthConfig defines bearer-token protection of administrative endpoints
type AuthConfig struct {
	// JWTSecret signs HS256 admin tokens. Empty disables authentication.
	JWTSecret     string `yaml:"jwtSecret,omitempty"`
	JWTSecretFile string `yaml:"jwtSecretFile,omitempty"`

	// PublicPaths are added to the built-in list of unauthenticated paths
	PublicPaths []string `yaml:"publicPaths,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username used by the application
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// MigrationUser runs schema migrations and prime-db. Defaults to User.
	MigrationUser string `yaml:"migrationUser,omitempty"`

	// MigrationPasswordFile holds the migration user's password
	MigrationPasswordFile string `yaml:"migrationPasswordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns is the maximum number of open connections to the database
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// MaxIdleConns is the minimum number of connections kept in the pool
	MaxIdleConns int32 `yaml:"maxIdleConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`
}

// newEnv returns a viper instance bound to RECRUITING_* environment variables.
// Keys use dots, so "ashby.api_key" reads RECRUITING_ASHBY_API_KEY.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// resolveSecret returns the first non-empty value from file, environment, or inline config.
func resolveSecret(file, envKey, inline string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(filepath.Clean(file))
		if err != nil {
			return "", fmt.Errorf("failed to read secret from file %s: %w", file, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if value := newEnv().GetString(envKey); value != "" {
		return value, nil
	}

	return inline, nil
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from RECRUITING_DATABASE_PASSWORD environment variable
func (d *DatabaseConfig) GetPassword() (string, error) {
	password, err := resolveSecret(d.PasswordFile, "database.password", "")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", fmt.Errorf(
			"no database password configured: set passwordFile or %s_DATABASE_PASSWORD environment variable",
			EnvPrefix,
		)
	}
	return password, nil
}

// GetMigrationUser returns the user that runs migrations
func (d *DatabaseConfig) GetMigrationUser() string {
	if d.MigrationUser == "" {
		return d.User
	}
	return d.MigrationUser
}

// GetMigrationPassword returns the migration user's password, falling back to
// the application password when no dedicated migration user is configured.
func (d *DatabaseConfig) GetMigrationPassword() (string, error) {
	if d.MigrationUser == "" {
		return d.GetPassword()
	}
	password, err := resolveSecret(d.MigrationPasswordFile, "database.migration_password", "")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", fmt.Errorf(
			"no migration password configured: set migrationPasswordFile or %s_DATABASE_MIGRATION_PASSWORD",
			EnvPrefix,
		)
	}
	return password, nil
}

// GetConnectionString builds a PostgreSQL connection string for the application user.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}
	return d.buildConnectionString(d.User, password), nil
}

// GetMigrationConnectionString builds a PostgreSQL connection string for the migration user.
func (d *DatabaseConfig) GetMigrationConnectionString() (string, error) {
	password, err := d.GetMigrationPassword()
	if err != nil {
		return "", err
	}
	return d.buildConnectionString(d.GetMigrationUser(), password), nil
}

func (d *DatabaseConfig) buildConnectionString(user, password string) string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(user),
		url.QueryEscape(password),
		d.Host,
		d.Port,
		d.Database,
		sslMode,
	)
}

// GetBaseURL returns the Ashby base URL without a trailing slash
func (a *AshbyConfig) GetBaseURL() string {
	if a.BaseURL == "" {
		return DefaultAshbyBaseURL
	}
	return strings.TrimRight(a.BaseURL, "/")
}

// GetAPIKey returns the Ashby API key from file, RECRUITING_ASHBY_API_KEY, or config
func (a *AshbyConfig) GetAPIKey() (string, error) {
	return resolveSecret(a.APIKeyFile, "ashby.api_key", a.APIKey)
}

// GetWebhookSecret returns the webhook HMAC secret. An empty result means verification is disabled.
func (a *AshbyConfig) GetWebhookSecret() (string, error) {
	return resolveSecret(a.WebhookSecretFile, "ashby.webhook_secret", a.WebhookSecret)
}

// GetRequestTimeout returns the per-call timeout
func (a *AshbyConfig) GetRequestTimeout() time.Duration {
	return parseDurationOr(a.RequestTimeout, DefaultRequestTimeout)
}

// GetRetryDelay returns the delay between retry attempts
func (a *AshbyConfig) GetRetryDelay() time.Duration {
	return parseDurationOr(a.RetryDelay, DefaultRetryDelay)
}

// GetMaxPages returns the pagination safety valve
func (a *AshbyConfig) GetMaxPages() int {
	if a.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return a.MaxPages
}

// GetInterval returns the scheduled sync interval
func (s *SyncConfig) GetInterval() time.Duration {
	if s == nil {
		return DefaultSyncInterval
	}
	return parseDurationOr(s.Interval, DefaultSyncInterval)
}

// GetFullSyncOnStartup reports whether a full sync runs when the server starts
func (s *SyncConfig) GetFullSyncOnStartup() bool {
	if s == nil || s.FullSyncOnStartup == nil {
		return true
	}
	return *s.FullSyncOnStartup
}

// GetProvider returns the configured provider, defaulting to none
func (l *LLMConfig) GetProvider() string {
	if l == nil || l.Provider == "" {
		return LLMProviderNone
	}
	return strings.ToLower(l.Provider)
}

// GetAPIKey returns the LLM API key from file, RECRUITING_LLM_API_KEY, or config
func (l *LLMConfig) GetAPIKey() (string, error) {
	if l == nil {
		return "", nil
	}
	return resolveSecret(l.APIKeyFile, "llm.api_key", l.APIKey)
}

// GetTimeout returns the per-completion timeout
func (l *LLMConfig) GetTimeout() time.Duration {
	if l == nil {
		return DefaultLLMTimeout
	}
	return parseDurationOr(l.Timeout, DefaultLLMTimeout)
}

// GetJWTSecret returns the admin token secret. An empty result disables authentication.
func (a *AuthConfig) GetJWTSecret() (string, error) {
	if a == nil {
		return resolveSecret("", "auth.jwt_secret", "")
	}
	return resolveSecret(a.JWTSecretFile, "auth.jwt_secret", a.JWTSecret)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var errs []error

	if c.Database == nil {
		errs = append(errs, fmt.Errorf("database: configuration is required"))
	} else if err := c.Database.validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if c.Ashby == nil {
		errs = append(errs, fmt.Errorf("ashby: configuration is required"))
	} else if err := c.Ashby.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ashby: %w", err))
	}

	if err := validateDuration(c.syncInterval(), "sync.interval"); err != nil {
		errs = append(errs, err)
	}

	if c.LLM != nil {
		if err := c.LLM.validate(); err != nil {
			errs = append(errs, fmt.Errorf("llm: %w", err))
		}
	}

	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) syncInterval() string {
	if c.Sync == nil {
		return ""
	}
	return c.Sync.Interval
}

func (d *DatabaseConfig) validate() error {
	if d.Host == "" {
		return fmt.Errorf("host is required")
	}
	if d.Port <= 0 {
		return fmt.Errorf("port is required")
	}
	if d.User == "" {
		return fmt.Errorf("user is required")
	}
	if d.Database == "" {
		return fmt.Errorf("database name is required")
	}
	return validateDuration(d.ConnMaxLifetime, "connMaxLifetime")
}

func (a *AshbyConfig) validate() error {
	if a.BaseURL != "" {
		u, err := url.Parse(a.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("baseURL must be an absolute URL, got %q", a.BaseURL)
		}
	}
	if a.MaxPages < 0 {
		return fmt.Errorf("maxPages must not be negative")
	}
	if err := validateDuration(a.RequestTimeout, "requestTimeout"); err != nil {
		return err
	}
	return validateDuration(a.RetryDelay, "retryDelay")
}

func (l *LLMConfig) validate() error {
	switch l.GetProvider() {
	case LLMProviderNone, LLMProviderOpenAI, LLMProviderGroq, LLMProviderOllama:
	default:
		return fmt.Errorf("unsupported provider %q", l.Provider)
	}
	return validateDuration(l.Timeout, "timeout")
}

func validateDuration(value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: invalid duration %q: %w", field, value, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s: must be positive, got %q", field, value)
	}
	return nil
}
