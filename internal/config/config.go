// Package config loads accountctl settings with Viper. Values come from
// <home>/config.yaml, then ACCOUNTCTL_* environment variables (an
// optional .env file is loaded first), then defaults.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// File layout
const (
	EnvPrefix = "ACCOUNTCTL"
	DirName   = ".accountctl"
	FileName  = "config.yaml"
	EnvFile   = ".env"
)

// Config holds the application configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Site      SiteConfig      `mapstructure:"site"`
}

// APIConfig locates the account API.
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig controls the token store.
type StorageConfig struct {
	Encrypt    bool   `mapstructure:"encrypt"`
	Passphrase string `mapstructure:"passphrase"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds tracing configuration.
type TelemetryConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Endpoint   string  `mapstructure:"endpoint"`
	Insecure   bool    `mapstructure:"insecure"`
	SampleRate float64 `mapstructure:"sample_rate"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
}

// SiteConfig holds the pages Stripe sends the user back to.
type SiteConfig struct {
	URL        string `mapstructure:"url"`
	SuccessURL string `mapstructure:"success_url"`
	CancelURL  string `mapstructure:"cancel_url"`
	ReturnURL  string `mapstructure:"return_url"`
}

// CheckoutSuccessURL is the Checkout success page, derived from site.url
// when not set explicitly.
func (s SiteConfig) CheckoutSuccessURL() string {
	return orDerived(s.SuccessURL, s.URL, "/subscription/success")
}

// CheckoutCancelURL is the Checkout cancel page.
func (s SiteConfig) CheckoutCancelURL() string {
	return orDerived(s.CancelURL, s.URL, "/subscription/cancel")
}

// PortalReturnURL is where the billing portal returns to. Empty lets the
// server decide.
func (s SiteConfig) PortalReturnURL() string {
	return orDerived(s.ReturnURL, s.URL, "/profile")
}

func orDerived(explicit, base, path string) string {
	if explicit != "" {
		return explicit
	}
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + path
}

var defaults = map[string]any{
	"api.url":                 "http://localhost:8000",
	"api.key":                 "",
	"api.timeout":             30 * time.Second,
	"storage.encrypt":         false,
	"storage.passphrase":      "",
	"logging.level":           "warn",
	"logging.format":          "text",
	"telemetry.enabled":       false,
	"telemetry.endpoint":      "",
	"telemetry.insecure":      false,
	"telemetry.sample_rate":   1.0,
	"metrics.pushgateway_url": "",
	"site.url":                "http://localhost:5173",
	"site.success_url":        "",
	"site.cancel_url":         "",
	"site.return_url":         "",
}

// secretKeys are masked by View.
var secretKeys = map[string]bool{
	"api.key":            true,
	"storage.passphrase": true,
}

// Keys returns every known configuration key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a configuration key.
func IsKnown(key string) bool {
	_, ok := defaults[key]
	return ok
}

// DefaultHome returns $ACCOUNTCTL_HOME or ~/.accountctl.
func DefaultHome() (string, error) {
	if home := os.Getenv(EnvPrefix + "_HOME"); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigRead, "failed to get home directory", err)
	}
	return filepath.Join(userHome, DirName), nil
}

// Options select where configuration is read from.
type Options struct {
	// Home is the accountctl directory. Empty means DefaultHome.
	Home string
	// File overrides <home>/config.yaml.
	File string
	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

// Loaded is a resolved configuration plus the Viper instance behind it.
type Loaded struct {
	Config *Config
	Home   string
	Path   string

	v *viper.Viper
}

// Resolve returns the home directory and config file path opts select.
func (o Options) Resolve() (home, path string, err error) {
	home = o.Home
	if home == "" {
		if home, err = DefaultHome(); err != nil {
			return "", "", err
		}
	}
	path = o.File
	if path == "" {
		path = filepath.Join(home, FileName)
	}
	return home, path, nil
}

// Load reads configuration from file and environment.
func Load(opts Options) (*Loaded, error) {
	home, path, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	if !opts.SkipDotEnv {
		if err := loadDotEnv(EnvFile, filepath.Join(home, EnvFile)); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigRead, "failed to read config "+path, err).
				WithSuggestion("Fix the YAML syntax or remove the file to use defaults")
		}
	} else if opts.File != "" {
		return nil, errors.Wrap(errors.ErrCodeConfigRead, "config file not found: "+path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigRead, "failed to decode config", err)
	}

	return &Loaded{Config: &cfg, Home: home, Path: path, v: v}, nil
}

// loadDotEnv loads the first files that exist. Variables already set in
// the environment are not overridden.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		err := godotenv.Load(p)
		if err == nil || stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		return errors.Wrap(errors.ErrCodeConfigRead, "failed to load "+p, err)
	}
	return nil
}

// Get returns the effective value of key.
func (l *Loaded) Get(key string) (any, error) {
	if !IsKnown(key) {
		return nil, errors.NewConfigUnknownKeyError(key)
	}
	return l.v.Get(key), nil
}

// View returns every effective setting keyed by dotted name. Secrets are
// masked.
func (l *Loaded) View() map[string]any {
	out := make(map[string]any, len(defaults))
	for _, k := range Keys() {
		val := l.v.Get(k)
		if secretKeys[k] {
			val = mask(l.v.GetString(k))
		}
		if d, ok := val.(time.Duration); ok {
			val = d.String()
		}
		out[k] = val
	}
	return out
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
