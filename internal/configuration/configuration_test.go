package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Logger.Level)
	assert.Empty(t, config.Logger.File)
	assert.Equal(t, 10, config.Logger.MaxSize)
	assert.Equal(t, 3, config.Logger.MaxBackups)
	assert.Empty(t, config.Validation.Rules)
	assert.Equal(t, OutputFormatText, config.Output.Format)
}

func TestLoadConfig_File(t *testing.T) {
	file := writeConfig(t, `
logger:
  level: debug
  file: /var/log/bowling.log
  max_size: 50
validation:
  rules: /etc/bowling/rules.yaml
output:
  format: JSON
`)
	config, err := LoadConfig(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "/var/log/bowling.log", config.Logger.File)
	assert.Equal(t, 50, config.Logger.MaxSize)
	assert.Equal(t, 3, config.Logger.MaxBackups)
	assert.Equal(t, "/etc/bowling/rules.yaml", config.Validation.Rules)
	assert.Equal(t, OutputFormatJSON, config.Output.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BOWLING_LOGGER_LEVEL", "error")

	config, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", config.Logger.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	file := writeConfig(t, `
logger:
  level: chatty
`)
	_, err := LoadConfig(viper.New(), file)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logger.level")
}

func TestLoggerConfig_Validate(t *testing.T) {
	l := LoggerConfig{}
	assert.Error(t, l.Validate(), "level must be specified")

	l = LoggerConfig{Level: "WARNING"}
	assert.NoError(t, l.Validate())

	l = LoggerConfig{Level: "info", MaxSize: -1}
	assert.Error(t, l.Validate())
}

func TestOutputConfig_Validate(t *testing.T) {
	o := OutputConfig{Format: "Text"}
	assert.NoError(t, o.Validate())
	assert.Equal(t, OutputFormatText, o.Format)

	o = OutputConfig{Format: "xml"}
	assert.Error(t, o.Validate())
}
