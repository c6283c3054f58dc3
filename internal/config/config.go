// Package config loads runtime settings from an optional issuesift.yaml
// file, environment variables prefixed ISSUESIFT_, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GitHub holds the settings for the issue fetch step.
type GitHub struct {
	Owner  string
	Repo   string
	Token  string
	State  string
	Target int
}

// Anthropic holds the settings for the priority triage step.
type Anthropic struct {
	APIKey         string
	Model          string
	MaxTokens      int
	Timeout        time.Duration
	MaxAttempts    int
	RateLimitDelay time.Duration
	APIErrorDelay  time.Duration
	IssueDelay     time.Duration
}

// Classify holds the settings for the classification step.
type Classify struct {
	TaxonomyPath string
	RulesPath    string
}

// Log holds logging settings.
type Log struct {
	Level string
	JSON  bool
}

// Config is the full runtime configuration.
type Config struct {
	GitHub    GitHub
	Anthropic Anthropic
	Classify  Classify
	Log       Log
}

// Load reads configuration from path (or the working directory when path
// is empty), layering environment variables over file values over
// defaults. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ISSUESIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("issuesift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			// No file present; defaults and env still apply.
			return fromViper(v), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}
	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("github.state", "all")
	v.SetDefault("github.target", 500)
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 150)
	v.SetDefault("anthropic.timeout", 60*time.Second)
	v.SetDefault("anthropic.max_attempts", 3)
	v.SetDefault("anthropic.rate_limit_delay", 5*time.Second)
	v.SetDefault("anthropic.api_error_delay", 2*time.Second)
	v.SetDefault("anthropic.issue_delay", 500*time.Millisecond)
	v.SetDefault("classify.taxonomy_path", "taxonomy.csv")
	v.SetDefault("classify.rules_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		GitHub: GitHub{
			Owner:  v.GetString("github.owner"),
			Repo:   v.GetString("github.repo"),
			Token:  v.GetString("github.token"),
			State:  v.GetString("github.state"),
			Target: v.GetInt("github.target"),
		},
		Anthropic: Anthropic{
			APIKey:         v.GetString("anthropic.api_key"),
			Model:          v.GetString("anthropic.model"),
			MaxTokens:      v.GetInt("anthropic.max_tokens"),
			Timeout:        v.GetDuration("anthropic.timeout"),
			MaxAttempts:    v.GetInt("anthropic.max_attempts"),
			RateLimitDelay: v.GetDuration("anthropic.rate_limit_delay"),
			APIErrorDelay:  v.GetDuration("anthropic.api_error_delay"),
			IssueDelay:     v.GetDuration("anthropic.issue_delay"),
		},
		Classify: Classify{
			TaxonomyPath: v.GetString("classify.taxonomy_path"),
			RulesPath:    v.GetString("classify.rules_path"),
		},
		Log: Log{
			Level: v.GetString("log.level"),
			JSON:  v.GetBool("log.json"),
		},
	}
}

// Validate checks the settings a fetch run needs.
func (g GitHub) Validate() error {
	if g.Owner == "" || g.Repo == "" {
		return errors.New("config: github owner and repo are required")
	}
	if g.Target <= 0 {
		return errors.New("config: github target must be positive")
	}
	switch g.State {
	case "all", "open", "closed":
	default:
		return fmt.Errorf("config: invalid github state %q", g.State)
	}
	return nil
}

// Validate checks the settings a triage run needs.
func (a Anthropic) Validate() error {
	if a.APIKey == "" {
		return errors.New("config: anthropic api_key is required (set ISSUESIFT_ANTHROPIC_API_KEY)")
	}
	if a.MaxAttempts <= 0 {
		return errors.New("config: anthropic max_attempts must be positive")
	}
	return nil
}
