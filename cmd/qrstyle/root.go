package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ggqr "github.com/gogpu/gg-qr"
)

// app carries the configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	cmd := &cobra.Command{
		Use:   "qrstyle",
		Short: "Render styled QR symbols as PNG, SVG or PDF",
		Long: `qrstyle renders QR symbols with configurable pixel, eye and pupil
shapes, gradient or image fills and drop shadows.

Configuration precedence, highest first:
  1. command-line flags
  2. GGQR_* environment variables (GGQR_SIZE, GGQR_LOG_LEVEL, ...)
  3. the config file (--config, GGQR_CONFIG_FILE or ./.qrstyle.yaml)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .qrstyle.yaml, can also use GGQR_CONFIG_FILE)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	a.bind(cmd.PersistentFlags(), "log-level")

	cmd.AddCommand(
		newRenderCommand(a),
		newGeneratorsCommand(),
		newFormatsCommand(),
		newDesignCommand(),
	)
	return cmd
}

// bind makes the flag named key readable through viper, where environment
// variables and the config file can supply it.
func (a *app) bind(flags *pflag.FlagSet, key string) {
	if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(fmt.Sprintf("qrstyle: bind flag %q: %v", key, err))
	}
}

// init loads the config file and installs the logger.
func (a *app) init(cmd *cobra.Command) error {
	v := a.v
	explicit := a.cfgFile
	if explicit == "" {
		explicit = os.Getenv("GGQR_CONFIG_FILE")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".qrstyle")
	}

	v.SetEnvPrefix("GGQR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	ggqr.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	if used := v.ConfigFileUsed(); used != "" {
		ggqr.Logger().Debug("qrstyle: using config file", "path", used)
	}
	return nil
}
