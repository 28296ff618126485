// Package config loads console settings from the environment.
//
// A .env file in the working directory is loaded first (see cmd/sklad).
// Variables are prefixed with SKLAD_, e.g. SKLAD_API_URL.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	envPrefix = "SKLAD"

	CredentialStoreFile     = "file"
	CredentialStoreDynamoDB = "dynamodb"

	DefaultProfile = "default"
)

// SMTP holds outgoing mail settings used to send exported reports.
// Read from SKLAD_SMTP_HOST, SKLAD_SMTP_PORT and so on.
type SMTP struct {
	Host     string
	Port     int `default:"587"`
	User     string
	Password string
	From     string
}

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://127.0.0.1:8000"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	CredentialStore  string `envconfig:"CREDENTIAL_STORE" default:"file"`
	// CredentialsPath is the session file of the default profile; other
	// profiles keep theirs beside it, see CredentialFile.
	CredentialsPath  string `envconfig:"CREDENTIALS_PATH"`
	CredentialsTable string `envconfig:"CREDENTIALS_TABLE" default:"sklad_sessions"`
	Profile          string `envconfig:"PROFILE" default:"default"`

	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"300ms"`
	PageSize       int           `envconfig:"PAGE_SIZE" default:"50"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
	Locale   string `envconfig:"LOCALE" default:"ru"`

	PublicURL string `envconfig:"PUBLIC_URL"`
	// PDFFont is a TTF with Cyrillic glyphs for printed estimates. Without
	// it estimates are printed transliterated.
	PDFFont string `envconfig:"PDF_FONT"`

	SMTP SMTP
}

// Load reads the configuration from the environment and fills derived
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		return errors.New("SKLAD_API_URL must not be empty")
	}
	if c.PageSize <= 0 {
		c.PageSize = 50
	}
	if c.SearchDebounce <= 0 {
		c.SearchDebounce = 300 * time.Millisecond
	}
	switch c.CredentialStore {
	case CredentialStoreFile, CredentialStoreDynamoDB:
	default:
		return errors.Errorf("unknown credential store %q", c.CredentialStore)
	}
	if c.CredentialsPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		c.CredentialsPath = filepath.Join(dir, "sklad", "credentials.json")
	}
	if c.PublicURL == "" {
		c.PublicURL = c.APIURL
	}
	if _, err := c.CredentialFile(); err != nil {
		return err
	}
	return nil
}

// CredentialFile is the session file of the active profile:
// credentials.json for the default profile, credentials-<profile>.json
// beside it for any other.
func (c Config) CredentialFile() (string, error) {
	profile := strings.TrimSpace(c.Profile)
	if profile == "" || profile == DefaultProfile {
		return c.CredentialsPath, nil
	}
	if profile == "." || profile == ".." || strings.ContainsAny(profile, `/\`) {
		return "", errors.Errorf("profile %q is not a valid name", c.Profile)
	}
	ext := filepath.Ext(c.CredentialsPath)
	return strings.TrimSuffix(c.CredentialsPath, ext) + "-" + profile + ext, nil
}
