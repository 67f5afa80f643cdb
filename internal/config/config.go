// Package config loads testsel settings from a YAML file, TESTSEL_*
// environment variables and defaults, using viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "testsel.yaml"

const envPrefix = "TESTSEL"

// Config holds the selection settings.
// Priority: explicit flags > environment > config file > defaults.
type Config struct {
	Include    []string // include rule expressions
	Exclude    []string // exclude rule expressions
	Combinator string   // how include rules combine: any or all
	Catalog    string   // path to the test catalog
	Workers    int      // parallel evaluation workers
	LogLevel   string   // debug, info, warn, error
	File       string   // config file actually read, empty if none
}

// Load reads configuration. An empty file means DefaultFile, which may be
// absent; an explicitly named file must exist.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	explicit := file != ""
	if !explicit {
		file = DefaultFile
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	used := file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		used = ""
	}

	include, err := ruleList(v, "include")
	if err != nil {
		return nil, err
	}
	exclude, err := ruleList(v, "exclude")
	if err != nil {
		return nil, err
	}

	return &Config{
		Include:    include,
		Exclude:    exclude,
		Combinator: v.GetString("combinator"),
		Catalog:    v.GetString("catalog"),
		Workers:    v.GetInt("workers"),
		LogLevel:   v.GetString("log-level"),
		File:       used,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("combinator", "any")
	v.SetDefault("catalog", "tests.yaml")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("log-level", "warn")
}

// ruleList reads a list of rule expressions. A plain string, as set through
// the environment, is a single rule: rules contain spaces and commas.
func ruleList(v *viper.Viper, key string) ([]string, error) {
	raw := v.Get(key)
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return []string{s}, nil
	}
	if raw == nil {
		return nil, nil
	}
	list, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, ValidationError{Field: key, Message: fmt.Sprintf("must be a list of rules: %v", err)}
	}
	return list, nil
}

// ValidationError describes an invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate checks setting constraints. Rule expressions are validated when
// they are parsed, not here.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Combinator) {
	case "any", "or", "all", "and":
	default:
		return ValidationError{Field: "combinator", Message: fmt.Sprintf("must be 'any' or 'all', got '%s'", c.Combinator)}
	}

	if c.Workers < 1 {
		return ValidationError{Field: "workers", Message: fmt.Sprintf("must be at least 1, got %d", c.Workers)}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ValidationError{Field: "log-level", Message: fmt.Sprintf("must be debug, info, warn or error, got '%s'", c.LogLevel)}
	}

	return nil
}
