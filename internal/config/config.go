// Package config loads crate2bib settings from defaults, an optional
// crate2bib.yaml, CRATE2BIB_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
)

// Configuration keys.
const (
	KeyUserAgent        = "user_agent"
	KeyTimeout          = "timeout"
	KeyBranch           = "branch"
	KeyFilenames        = "filenames"
	KeyGitHubToken      = "github_token"
	KeyGitLabToken      = "gitlab_token"
	KeyProbeConcurrency = "probe_concurrency"
	KeyRegistryRate     = "registry_rate"
	KeyAddr             = "addr"
)

const (
	appName   = "crate2bib"
	envPrefix = "CRATE2BIB"

	// DefaultUserAgent identifies crate2bib to crates.io.
	DefaultUserAgent = "crate2bib-cli-user-agent"
)

// Config holds resolved settings.
type Config struct {
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Branch           string        `mapstructure:"branch"`
	Filenames        []string      `mapstructure:"filenames"`
	GitHubToken      string        `mapstructure:"github_token"`
	GitLabToken      string        `mapstructure:"gitlab_token"`
	ProbeConcurrency int           `mapstructure:"probe_concurrency"`
	RegistryRate     float64       `mapstructure:"registry_rate"`
	Addr             string        `mapstructure:"addr"`
}

// New returns a viper instance with defaults and environment binding set up.
// If file is non-empty it is used as the config file; otherwise crate2bib.yaml
// is looked up in the working directory and ~/.config/crate2bib.
func New(file string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyUserAgent, DefaultUserAgent)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyBranch, "")
	v.SetDefault(KeyFilenames, []string{"CITATION.cff", "citation.bib"})
	v.SetDefault(KeyGitHubToken, "")
	v.SetDefault(KeyGitLabToken, "")
	v.SetDefault(KeyProbeConcurrency, 4)
	v.SetDefault(KeyRegistryRate, 1.0)
	v.SetDefault(KeyAddr, ":8080")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing default file is not an error) and
// decodes every layer into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.Filenames = splitList(cfg.Filenames)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail deep inside a request.
func (c *Config) Validate() error {
	if err := cerrors.ValidateHeaderValue("User-Agent", c.UserAgent); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "timeout must not be negative, got %s", c.Timeout)
	}
	if c.ProbeConcurrency < 1 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "probe_concurrency must be at least 1, got %d", c.ProbeConcurrency)
	}
	for _, f := range c.Filenames {
		if err := cerrors.ValidatePath(f); err != nil {
			return err
		}
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated strings, which is
// how lists arrive from environment variables.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
