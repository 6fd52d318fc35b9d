// Package config loads CLI settings from flags, environment variables and
// an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds tokenizer and process settings for the CLI.
type Config struct {
	Separators  []string `mapstructure:"separators"`
	Mark        bool     `mapstructure:"mark"`
	MinTokenLen int      `mapstructure:"min-token-len"`
	PadValue    string   `mapstructure:"pad-value"`
	LogLevel    string   `mapstructure:"log-level"`
}

// LoadOptions bundles the inputs to Load.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Separators:  []string{" "},
		Mark:        false,
		MinTokenLen: 0,
		PadValue:    "",
		LogLevel:    "info",
	}
}

// RegisterFlags declares one flag per config field.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.StringSlice("separators", defaults.Separators, "Separator strings, longest match wins")
	fs.Bool("mark", defaults.Mark, "Wrap each cell's tokens in start/end marker tokens")
	fs.Int("min-token-len", defaults.MinTokenLen, "Drop mid-string tokens at or below this length in code units")
	fs.String("pad-value", defaults.PadValue, "String written into unused trailing slots")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

// Load resolves the effective configuration from defaults, an optional
// config file (yaml|toml|json), TOKGRID_* environment variables and bound
// command flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("TOKGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("tokgrid")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("separators", c.Separators)
	v.SetDefault("mark", c.Mark)
	v.SetDefault("min-token-len", c.MinTokenLen)
	v.SetDefault("pad-value", c.PadValue)
	v.SetDefault("log-level", c.LogLevel)
}
