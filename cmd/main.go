// bowling prints ten-pin bowling score sheets.
//
// Usage:
//
//	bowling score [file]   - Score a game read from a YAML or JSON file (stdin when omitted)
//	bowling rules          - List active frame validation rules
//
// Global flags:
//
//	--config <path>     - Configuration file (optional)
//	--log-level <level> - debug, info, warn, error
//	--rules <path>      - Validation rules file replacing the embedded rules
//	--format <format>   - text or json
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"bowling/internal/configuration"
	"bowling/internal/logging"
	"bowling/internal/score"
	"bowling/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds the components shared by subcommands once configuration is loaded.
type app struct {
	settings   *viper.Viper
	config     *configuration.AppConfig
	validator  *validation.Validator
	calculator *score.Calculator
	logCloser  io.Closer
}

// bindFlags maps persistent flags to configuration keys.
func (a *app) bindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"logger.level":     "log-level",
		"validation.rules": "rules",
		"output.format":    "format",
	}
	for key, name := range bindings {
		if err := a.settings.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// setup loads configuration, installs the logger and compiles validation rules.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.bindFlags(cmd.Flags()); err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	config, err := configuration.LoadConfig(a.settings, configPath)
	if err != nil {
		return err
	}
	a.config = config
	a.logCloser = logging.Setup(config.Logger)

	if config.Validation.Rules != "" {
		a.validator, err = validation.LoadFromFile(config.Validation.Rules)
	} else {
		a.validator, err = validation.Default()
	}
	if err != nil {
		return fmt.Errorf("unable to initialize validation rules: %w", err)
	}
	a.calculator = score.NewCalculator(a.validator)

	slog.Debug("configuration loaded",
		"config", configPath,
		"rules", len(a.validator.Rules()),
		"format", config.Output.Format,
	)
	return nil
}

// close flushes the log output.
func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	if err := a.logCloser.Close(); err != nil {
		return fmt.Errorf("unable to close log output: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{settings: viper.New()}

	root := &cobra.Command{
		Use:   "bowling",
		Short: "Ten-pin bowling score calculator",
		Long: `Computes frame scores, running totals and the total of a ten-pin bowling game.

A game is a list of frames, each frame a list of pins knocked down per ball.
A strike in frames 1-9 is recorded as [10, 0].

Examples:
  bowling score game.yaml
  echo '[[10,0],[7,3],[9,0]]' | bowling score --format json
  bowling rules`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Configuration file (YAML)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("rules", "", "Validation rules file (YAML), embedded rules when empty")
	flags.String("format", "", "Output format: text or json")

	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newRulesCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
