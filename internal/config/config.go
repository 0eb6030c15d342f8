// Package config loads vfsh settings from defaults, an optional YAML file,
// VFSH_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dendrascience/vfsh/shell"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "VFSH"

// Interaction modes accepted by the interactive setting.
const (
	InteractiveAuto   = "auto"
	InteractiveAlways = "always"
	InteractiveNever  = "never"
)

// Config holds the runtime settings of a shell session.
type Config struct {
	Archive     string `mapstructure:"archive"`     // zip archive to load at startup; empty uses built-in data
	Script      string `mapstructure:"script"`      // host path of a startup script
	Home        string `mapstructure:"home"`        // value of $HOME inside the session
	User        string `mapstructure:"user"`        // value of $USER inside the session
	Prompt      string `mapstructure:"prompt"`      // prompt template
	EnvFile     string `mapstructure:"env_file"`    // dotenv file merged into the session environment
	LogLevel    string `mapstructure:"log_level"`   // debug, info, warn or error
	LogFile     string `mapstructure:"log_file"`    // log destination; empty means stderr (line mode) or nowhere (TUI)
	Interactive string `mapstructure:"interactive"` // auto, always or never
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file; empty skips file loading.
	ConfigFile string
	// Flags are bound by their names with dashes mapped to underscores.
	Flags *pflag.FlagSet
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Home:        defaultHome(),
		User:        defaultUser(),
		Prompt:      shell.DefaultPrompt,
		LogLevel:    "info",
		Interactive: InteractiveAuto,
	}
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("archive", defaults.Archive)
	v.SetDefault("script", defaults.Script)
	v.SetDefault("home", defaults.Home)
	v.SetDefault("user", defaults.User)
	v.SetDefault("prompt", defaults.Prompt)
	v.SetDefault("env_file", defaults.EnvFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("interactive", defaults.Interactive)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		var bindErr error
		opts.Flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Interactive {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
	default:
		return fmt.Errorf("%w: interactive must be auto, always or never, got %q", ErrInvalidSetting, c.Interactive)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidSetting, c.LogLevel)
	}
	return nil
}

func defaultHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "/"
}

func defaultUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "user"
}
