package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger - logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Validation - frame validation rules configuration
	Validation ValidationConfig `mapstructure:"validation"`
	// Output - score sheet rendering configuration
	Output OutputConfig `mapstructure:"output"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level - log level: debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
	// File - optional path of a rotating log file. Logs go to stderr when empty.
	File string `mapstructure:"file"`
	// MaxSize - maximal log file size in MB before rotation (default 10)
	MaxSize int `mapstructure:"max_size"`
	// MaxBackups - number of rotated log files to keep (default 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// ValidationConfig defines where frame validation rules come from.
type ValidationConfig struct {
	// Rules - path to the file with validation rules in YAML format.
	// The embedded rule set is used when empty.
	Rules string `mapstructure:"rules"`
}

// OutputConfig defines how score sheets are printed.
type OutputConfig struct {
	// Format - text or json.
	Format string `mapstructure:"format"`
}

// Validate checks the correctness of the entire application configuration.
// Calls validation for each nested structure and returns the first detected error.
// Returns nil if the configuration is valid.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Output.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the correctness of the logger configuration.
// Verifies that the log level is set and is one of the supported values.
// Supported values: debug, info, warn, warning, error (case-insensitive).
// Fills rotation defaults when they are not set.
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	if l.MaxSize < 0 || l.MaxBackups < 0 {
		return errors.New("logger: max_size and max_backups must not be negative")
	}

	if l.MaxSize == 0 {
		l.MaxSize = 10
	}

	if l.MaxBackups == 0 {
		l.MaxBackups = 3
	}

	return nil
}

// Validate checks the output format.
func (o *OutputConfig) Validate() error {
	switch strings.ToLower(o.Format) {
	case OutputFormatText, OutputFormatJSON:
		o.Format = strings.ToLower(o.Format)
		return nil
	default:
		return fmt.Errorf("output.format: unsupported format '%s'", o.Format)
	}
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("validation.rules", "")
	v.SetDefault("output.format", OutputFormatText)
}

// LoadConfig loads configuration into the provided Viper instance.
// Supports YAML format. Also includes environment variable loading (AutomaticEnv)
// with the BOWLING_ prefix, e.g. BOWLING_LOGGER_LEVEL, which overrides file values.
// Flags bound to v take precedence over both.
//
// Parameter configPath - path to the configuration file; it is optional and
// defaults are used when empty.
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(v *viper.Viper, configPath string) (*AppConfig, error) {
	SetDefaults(v)
	v.SetEnvPrefix("bowling")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
