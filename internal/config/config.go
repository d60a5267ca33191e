package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = ".githelper"
	envPrefix  = "GITHELPER"
)

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	GithubToken      string        `mapstructure:"github_token"`
	GithubOwner      string        `mapstructure:"github_owner"`
	GithubRepo       string        `mapstructure:"github_repo"`
	ExcludedBranches []string      `mapstructure:"excluded_branches"`
	LockDir          string        `mapstructure:"lock_dir"`
	CommandTimeout   time.Duration `mapstructure:"command_timeout"`
	RetryCount       uint64        `mapstructure:"retry_count"`
	LogFile          string        `mapstructure:"log_file"`
	LogLevel         string        `mapstructure:"log_level"`
	UpdateCheck      bool          `mapstructure:"update_check"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GithubOwner:      "compozy",
		GithubRepo:       "githelper",
		ExcludedBranches: []string{"master", "dev", "release"},
		CommandTimeout:   5 * time.Minute,
		RetryCount:       2,
		LogLevel:         "warn",
		UpdateCheck:      true,
	}
}

// Validate validates the configuration. The GitHub token is optional and its
// format is not enforced here; see ValidateGitHubToken.
func (c *Config) Validate() error {
	if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
		return fmt.Errorf("invalid github configuration: %w", err)
	}
	for _, branch := range c.ExcludedBranches {
		if strings.TrimSpace(branch) == "" {
			return errors.New("excluded_branches cannot contain empty names")
		}
	}
	if strings.Contains(c.LockDir, "..") {
		return errors.New("lock_dir contains invalid path traversal")
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive, got %s", c.CommandTimeout)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, expected one of: %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	return nil
}

// ValidateGitHubToken checks a token against the known GitHub token formats.
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	personalToken := regexp.MustCompile(`^ghp_[a-zA-Z0-9]{36}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!personalToken.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// LoadConfig reads configuration from configFile, or from .githelper.yaml in the
// working directory or $HOME when configFile is empty. Environment variables
// prefixed with GITHELPER_ override file values.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - it will check them in order
	if err := v.BindEnv("github_token", "GITHELPER_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	for _, key := range []string{
		"github_owner", "github_repo", "excluded_branches", "lock_dir",
		"command_timeout", "retry_count", "log_file", "log_level", "update_check",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("github_owner", defaults.GithubOwner)
	v.SetDefault("github_repo", defaults.GithubRepo)
	v.SetDefault("excluded_branches", defaults.ExcludedBranches)
	v.SetDefault("command_timeout", defaults.CommandTimeout)
	v.SetDefault("retry_count", defaults.RetryCount)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("update_check", defaults.UpdateCheck)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
